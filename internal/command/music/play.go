package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/music/sources"
)

type PlayCommand struct{ base }

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a track, playlist or radio link" }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "URL or search text",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "source",
				Description: "Force a source instead of autodetecting",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "YouTube", Value: sources.SourceYouTube},
					{Name: "SoundCloud", Value: sources.SourceSoundCloud},
					{Name: "Direct link", Value: sources.SourceDirect},
				},
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	opts := options(e)
	query := opts["query"].StringValue()
	source := ""
	if opt, ok := opts["source"]; ok {
		source = opt.StringValue()
	}

	// Resolving can hit the network, defer before doing anything slow.
	if err := bot.RespondDeferred(slash.Session, e); err != nil {
		return err
	}

	id, name := caller(e)
	p := c.player(e.GuildID)

	added, err := p.Enqueue(query, source, id, name)
	if err != nil {
		return bot.Followup(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	if err := p.EnsurePlaying(c.userVoiceChannel(e)); err != nil {
		return bot.Followup(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}

	embed := &discordgo.MessageEmbed{}
	if len(added) == 1 {
		t := added[0]
		embed.Title = "Added to queue"
		embed.Description = fmt.Sprintf("%s `[%s]`", t.Markdown(), t.DurationString())
		if t.Thumbnail != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: t.Thumbnail}
		}
	} else {
		embed.Title = fmt.Sprintf("Added %d tracks to queue", len(added))
		embed.Description = fmt.Sprintf("Total length `%s`", totalDurationString(added))
	}
	return bot.FollowupEmbed(slash.Session, e, embed)
}
