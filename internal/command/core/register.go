package core

import (
	"groovebox/internal/command"
	"groovebox/internal/config"
	"groovebox/internal/middleware"
)

// Register wires the core command set into the registry with its
// middleware stack.
func Register(cfg *config.Config) {
	command.RegisterCommand(&PingCommand{},
		middleware.WithCommandLogger(),
		middleware.WithRateLimit(cfg.RateLimitCommands),
	)
	command.RegisterCommand(&HelpCommand{},
		middleware.WithCommandLogger(),
		middleware.WithRateLimit(cfg.RateLimitCommands),
	)
	command.RegisterCommand(&AboutCommand{},
		middleware.WithCommandLogger(),
		middleware.WithRateLimit(cfg.RateLimitCommands),
	)
	command.RegisterCommand(&StatusCommand{},
		middleware.WithCommandLogger(),
		middleware.WithOwnerOnly(),
	)
	command.RegisterCommand(&SyncCommand{},
		middleware.WithCommandLogger(),
		middleware.WithOwnerOnly(),
		middleware.WithGuildOnly(),
	)
	command.RegisterCommand(&ServersCommand{},
		middleware.WithCommandLogger(),
		middleware.WithOwnerOnly(),
	)
	command.RegisterCommand(&ShutdownCommand{},
		middleware.WithCommandLogger(),
		middleware.WithOwnerOnly(),
	)
}
