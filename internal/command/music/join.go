package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type JoinCommand struct{ base }

func (c *JoinCommand) Name() string        { return "join" }
func (c *JoinCommand) Description() string { return "Join your voice channel" }

func (c *JoinCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *JoinCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	channelID := c.userVoiceChannel(e)
	if channelID == "" {
		return bot.RespondEphemeral(slash.Session, e, "❌ You are not in a voice channel.")
	}
	if err := c.player(e.GuildID).Join(channelID); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, "👋 Joined your voice channel.")
}
