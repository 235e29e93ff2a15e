package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type ClearCommand struct{ base }

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Clear the queue" }

func (c *ClearCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "upcoming",
				Description: "Only drop upcoming tracks, keep the current one playing",
			},
		},
	}
}

func (c *ClearCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	p := c.player(e.GuildID)
	if opt, ok := options(e)["upcoming"]; ok && opt.BoolValue() {
		n := p.ClearUpcoming()
		return bot.Respond(slash.Session, e, fmt.Sprintf("🧹 Dropped %d upcoming track(s).", n))
	}

	p.Clear()
	return bot.Respond(slash.Session, e, "🧹 Queue cleared, playback stopped.")
}
