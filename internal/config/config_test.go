package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := New()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.UseRedis {
		t.Fatal("expected UseRedis to default to false")
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected default redis url: %s", cfg.RedisURL)
	}
	if cfg.SQLitePath != "data/groovebox.db" {
		t.Fatalf("unexpected default sqlite path: %s", cfg.SQLitePath)
	}
	if cfg.DefaultVolume != 100 {
		t.Fatalf("unexpected default volume: %d", cfg.DefaultVolume)
	}
	if cfg.MaxQueueSize != 500 {
		t.Fatalf("unexpected default max queue size: %d", cfg.MaxQueueSize)
	}
	if cfg.InactivityTimeout != 300*time.Second {
		t.Fatalf("unexpected default inactivity timeout: %v", cfg.InactivityTimeout)
	}
	if cfg.RateLimitCommands != 20 {
		t.Fatalf("unexpected default rate limit: %d", cfg.RateLimitCommands)
	}
}

func TestNewRejectsMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := New(); err == nil {
		t.Fatal("expected an error for an empty DISCORD_TOKEN")
	}
}

func TestNewClampsOutOfRangeValues(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DEFAULT_VOLUME", "900")
	t.Setenv("MAX_QUEUE_SIZE", "0")
	t.Setenv("INACTIVITY_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_COMMANDS", "-3")

	cfg, err := New()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.DefaultVolume != 200 {
		t.Fatalf("volume not clamped: %d", cfg.DefaultVolume)
	}
	if cfg.MaxQueueSize != 1 {
		t.Fatalf("max queue size not clamped: %d", cfg.MaxQueueSize)
	}
	if cfg.InactivityTimeout != time.Minute {
		t.Fatalf("inactivity timeout not clamped: %v", cfg.InactivityTimeout)
	}
	if cfg.RateLimitCommands != 1 {
		t.Fatalf("rate limit not clamped: %d", cfg.RateLimitCommands)
	}
}

func TestGuildBlacklistSeparator(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_BLACKLIST", "111,222,333")

	cfg, err := New()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if len(cfg.GuildBlacklist) != 3 || cfg.GuildBlacklist[1] != "222" {
		t.Fatalf("unexpected blacklist: %v", cfg.GuildBlacklist)
	}
}
