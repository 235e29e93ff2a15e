package music

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

const historyPageSize = 15

type HistoryCommand struct{ base }

func (c *HistoryCommand) Name() string        { return "history" }
func (c *HistoryCommand) Description() string { return "Show recently played tracks" }

func (c *HistoryCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HistoryCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	history := c.player(e.GuildID).History()
	if len(history) == 0 {
		return bot.RespondEphemeral(slash.Session, e, "Nothing has been played yet.")
	}

	// Most recent first.
	var sb strings.Builder
	shown := 0
	for i := len(history) - 1; i >= 0 && shown < historyPageSize; i-- {
		t := history[i]
		fmt.Fprintf(&sb, "`%2d.` %s `[%s]`\n", shown+1, t.Markdown(), t.DurationString())
		shown++
	}

	return bot.RespondEmbed(slash.Session, e, &discordgo.MessageEmbed{
		Title:       "Recently played",
		Description: sb.String(),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d track(s) in history", len(history))},
	})
}
