package music

import (
	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/config"
	"groovebox/internal/middleware"
	"groovebox/internal/music/source_resolver"
)

// Register wires the music command set into the registry. Commands that
// start playback require the caller to be in voice; destructive ones go
// through the DJ check on top of that.
//
// Middlewares are listed innermost first: the guild gate runs before any
// permission or rate-limit check, so DMs are rejected without spending
// rate-limit tokens.
func Register(voice bot.BotVoice, cfg *config.Config) {
	b := base{Bot: voice}

	// Read-only views: guild only, rate limited.
	for _, c := range []command.DiscordCommand{
		&QueueCommand{base: b},
		&NowCommand{base: b},
		&HistoryCommand{base: b},
		&PlaylistCommand{base: b},
	} {
		command.RegisterCommand(c,
			middleware.WithCommandLogger(),
			middleware.WithRateLimit(cfg.RateLimitCommands),
			middleware.WithGuildOnly(),
		)
	}

	// Playback starters and skip: the caller must be in a voice channel.
	for _, c := range []command.DiscordCommand{
		&PlayCommand{base: b},
		&SearchCommand{base: b, resolver: source_resolver.New()},
		&JoinCommand{base: b},
		&ResumeCommand{base: b},
		&SkipCommand{base: b},
	} {
		command.RegisterCommand(c,
			middleware.WithCommandLogger(),
			middleware.WithRateLimit(cfg.RateLimitCommands),
			middleware.WithVoiceRequired(voice),
			middleware.WithGuildOnly(),
		)
	}

	// Controls that affect everyone listening: DJ or admin only.
	for _, c := range []command.DiscordCommand{
		&PreviousCommand{base: b},
		&JumpCommand{base: b},
		&StopCommand{base: b},
		&PauseCommand{base: b},
		&SeekCommand{base: b},
		&VolumeCommand{base: b},
		&LoopCommand{base: b},
		&ShuffleCommand{base: b},
		&RemoveCommand{base: b},
		&MoveCommand{base: b},
		&ClearCommand{base: b},
		&LeaveCommand{base: b},
	} {
		command.RegisterCommand(c,
			middleware.WithCommandLogger(),
			middleware.WithRateLimit(cfg.RateLimitCommands),
			middleware.WithDJCheck(voice),
			middleware.WithVoiceRequired(voice),
			middleware.WithGuildOnly(),
		)
	}
}
