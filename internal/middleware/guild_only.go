package middleware

import (
	"context"

	"groovebox/internal/bot"
	"groovebox/pkg/cmd"
)

// WithGuildOnly rejects invocations from DMs.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok {
				return c.Run(ctx, inv)
			}
			if e.GuildID == "" {
				return bot.RespondEphemeral(s, e, "This command only works in a server.")
			}
			return c.Run(ctx, inv)
		})
	}
}
