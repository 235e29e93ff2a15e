package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type JumpCommand struct{ base }

func (c *JumpCommand) Name() string        { return "jump" }
func (c *JumpCommand) Description() string { return "Jump to a specific track in the queue" }

func (c *JumpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "index",
				Description: "Track number as shown by /queue",
				Required:    true,
				MinValue:    &one,
			},
		},
	}
}

func (c *JumpCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	index := int(options(e)["index"].IntValue())
	if err := c.player(e.GuildID).Jump(index - 1); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, fmt.Sprintf("⏭️ Jumping to track %d.", index))
}
