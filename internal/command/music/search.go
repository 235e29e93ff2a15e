package music

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/music/source_resolver"
	"groovebox/internal/music/sources"
)

const searchResultLimit = 5

type SearchCommand struct {
	base
	resolver *source_resolver.Resolver
}

func (c *SearchCommand) Name() string        { return "search" }
func (c *SearchCommand) Description() string { return "Search YouTube and pick a result to queue" }

func (c *SearchCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Search text",
				Required:    true,
			},
		},
	}
}

func (c *SearchCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	query := options(e)["query"].StringValue()
	if err := bot.RespondDeferred(slash.Session, e); err != nil {
		return err
	}

	results, err := c.resolver.Search(query, searchResultLimit)
	if err != nil {
		return bot.Followup(slash.Session, e, fmt.Sprintf("❌ Search failed: %v", err))
	}
	if len(results) == 0 {
		return bot.Followup(slash.Session, e, "No results found.")
	}

	var sb strings.Builder
	buttons := make([]discordgo.MessageComponent, 0, len(results))
	for i, t := range results {
		fmt.Fprintf(&sb, "`%d.` %s `[%s]`\n", i+1, t.Markdown(), t.DurationString())
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%d", i+1),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("search:%s", t.URL),
		})
	}

	_, err = slash.Session.FollowupMessageCreate(e.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       fmt.Sprintf("Results for “%s”", query),
			Description: sb.String(),
			Color:       bot.EmbedColor,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		},
	})
	return err
}

// Component handles a result button press. The custom ID carries the
// selected video URL after the command prefix.
func (c *SearchCommand) Component(ctx *command.ComponentInteractionContext) error {
	e := ctx.Event
	url, _ := strings.CutPrefix(e.MessageComponentData().CustomID, "search:")
	if url == "" {
		return fmt.Errorf("empty search selection")
	}

	if err := bot.RespondDeferred(ctx.Session, e); err != nil {
		return err
	}

	id, name := caller(e)
	p := c.player(e.GuildID)

	added, err := p.Enqueue(url, sources.SourceYouTube, id, name)
	if err != nil {
		return bot.Followup(ctx.Session, e, fmt.Sprintf("❌ %v", err))
	}
	if err := p.EnsurePlaying(c.userVoiceChannel(e)); err != nil {
		return bot.Followup(ctx.Session, e, fmt.Sprintf("❌ %v", err))
	}

	t := added[0]
	return bot.FollowupEmbed(ctx.Session, e, &discordgo.MessageEmbed{
		Title:       "Added to queue",
		Description: fmt.Sprintf("%s `[%s]`", t.Markdown(), t.DurationString()),
	})
}
