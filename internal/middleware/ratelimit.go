package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"groovebox/internal/bot"
	"groovebox/pkg/cmd"
)

// userLimiter hands out one token-bucket limiter per guild and user.
type userLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	perMinute int
}

func newUserLimiter(perMinute int) *userLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &userLimiter{
		limiters:  make(map[string]*rate.Limiter),
		perMinute: perMinute,
	}
}

func (u *userLimiter) allow(key string) bool {
	u.mu.Lock()
	lim, ok := u.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(u.perMinute)), u.perMinute)
		u.limiters[key] = lim
	}
	u.mu.Unlock()
	return lim.Allow()
}

// WithRateLimit caps command invocations per user per minute. Bursts up to
// the full budget are allowed.
func WithRateLimit(perMinute int) cmd.Middleware {
	limiter := newUserLimiter(perMinute)
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok {
				return c.Run(ctx, inv)
			}
			if !limiter.allow(e.GuildID + ":" + userID(e)) {
				return bot.RespondEphemeral(s, e, "Slow down, you are sending commands too fast.")
			}
			return c.Run(ctx, inv)
		})
	}
}
