package music

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/music/player"
)

type LeaveCommand struct{ base }

func (c *LeaveCommand) Name() string        { return "leave" }
func (c *LeaveCommand) Description() string { return "Stop playback and leave the voice channel" }

func (c *LeaveCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LeaveCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	// Disconnecting while idle is fine, only report real failures.
	if err := c.player(e.GuildID).StopPlayback(true); err != nil && !errors.Is(err, player.ErrNotPlaying) {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, "👋 Left the voice channel.")
}
