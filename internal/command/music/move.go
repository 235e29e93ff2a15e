package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type MoveCommand struct{ base }

func (c *MoveCommand) Name() string        { return "move" }
func (c *MoveCommand) Description() string { return "Move a track to another position" }

func (c *MoveCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "from",
				Description: "Track number to move",
				Required:    true,
				MinValue:    &one,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "to",
				Description: "New position",
				Required:    true,
				MinValue:    &one,
			},
		},
	}
}

func (c *MoveCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	opts := options(e)
	from := int(opts["from"].IntValue())
	to := int(opts["to"].IntValue())

	if err := c.player(e.GuildID).Move(from-1, to-1); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, fmt.Sprintf("↕️ Moved track %d to position %d.", from, to))
}
