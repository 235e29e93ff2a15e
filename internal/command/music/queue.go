package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type QueueCommand struct{ base }

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Description() string { return "Show the current queue" }

func (c *QueueCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "page",
				Description: "Page to show",
				MinValue:    &one,
			},
		},
	}
}

var one = float64(1)

func (c *QueueCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	page := 1
	if opt, ok := options(e)["page"]; ok {
		page = int(opt.IntValue())
	}

	p := c.player(e.GuildID)
	tracks := p.Tracks()

	body, pages := formatQueuePage(tracks, p.CurrentIndex(), page)
	embed := &discordgo.MessageEmbed{
		Title:       "Queue",
		Description: body,
	}
	if len(tracks) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d track(s) · %s · page %d/%d · loop: %s",
				len(tracks), totalDurationString(tracks), min(page, pages), pages, p.Loop()),
		}
	}
	return bot.RespondEmbed(slash.Session, e, embed)
}
