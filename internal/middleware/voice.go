package middleware

import (
	"context"

	"groovebox/internal/bot"
	"groovebox/pkg/cmd"
)

// WithVoiceRequired rejects users who are not in a voice channel, and users
// in a different channel than the bot when the bot is already connected.
func WithVoiceRequired(voice bot.BotVoice) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok || e.GuildID == "" {
				return c.Run(ctx, inv)
			}

			vs, err := voice.FindUserVoiceState(e.GuildID, userID(e))
			if err != nil || vs == nil || vs.ChannelID == "" {
				return bot.RespondEphemeral(s, e, "Join a voice channel first.")
			}

			p := voice.GetOrCreatePlayer(e.GuildID)
			if botChannel := p.ChannelID(); botChannel != "" && botChannel != vs.ChannelID {
				return bot.RespondEphemeral(s, e, "You need to be in the same voice channel as the bot.")
			}
			return c.Run(ctx, inv)
		})
	}
}
