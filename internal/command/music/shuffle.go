package music

import (
	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type ShuffleCommand struct{ base }

func (c *ShuffleCommand) Name() string        { return "shuffle" }
func (c *ShuffleCommand) Description() string { return "Shuffle the upcoming tracks" }

func (c *ShuffleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ShuffleCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	c.player(e.GuildID).Shuffle()
	return bot.Respond(slash.Session, e, "🔀 Shuffled the upcoming tracks.")
}
