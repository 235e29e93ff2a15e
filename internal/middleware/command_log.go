package middleware

import (
	"context"
	"log"
	"time"

	"groovebox/pkg/cmd"
)

// WithCommandLogger logs every invocation with its outcome and duration.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			_, e, ok := interactionEvent(inv)
			start := time.Now()
			err := c.Run(ctx, inv)

			if ok {
				if err != nil {
					log.Printf("[ERR] command /%s guild=%s user=%s took=%s: %v",
						c.Name(), e.GuildID, userID(e), time.Since(start).Round(time.Millisecond), err)
				} else {
					log.Printf("[INFO] command /%s guild=%s user=%s took=%s",
						c.Name(), e.GuildID, userID(e), time.Since(start).Round(time.Millisecond))
				}
			}
			return err
		})
	}
}
