package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type NowCommand struct{ base }

func (c *NowCommand) Name() string        { return "now" }
func (c *NowCommand) Description() string { return "Show the track playing right now" }

func (c *NowCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *NowCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	p := c.player(e.GuildID)
	t, pos, err := p.NowPlaying()
	if err != nil {
		return bot.RespondEphemeral(slash.Session, e, "Nothing is playing.")
	}

	bar := progressBar(pos, t.Duration, 16)
	desc := fmt.Sprintf("%s\n\n%s\n`%s / %s`", t.Markdown(), bar, fmtClock(pos), t.DurationString())
	if t.RequesterName != "" {
		desc += fmt.Sprintf("\nRequested by %s", t.RequesterName)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Now playing",
		Description: desc,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s · volume %d%% · loop: %s", p.State(), p.Volume(), p.Loop()),
		},
	}
	if t.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: t.Thumbnail}
	}
	return bot.RespondEmbed(slash.Session, e, embed)
}
