package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type ResumeCommand struct{ base }

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume paused playback" }

func (c *ResumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ResumeCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	p := c.player(e.GuildID)
	if err := p.Resume(); err == nil {
		return bot.Respond(slash.Session, e, "▶️ Resumed.")
	}

	// Not paused. If a queue survived a stop or restart, start it over
	// from the caller's channel.
	if err := p.EnsurePlaying(c.userVoiceChannel(e)); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, "▶️ Resuming the queue.")
}
