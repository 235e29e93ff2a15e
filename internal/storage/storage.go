// Package storage persists queues, per-guild settings and user playlists.
// Redis is preferred when enabled, with SQLite as the durable fallback and
// an in-memory store as the last resort so the bot always starts.
package storage

import (
	"context"
	"errors"
	"log"

	"groovebox/internal/config"
	"groovebox/internal/music/queue"
	"groovebox/internal/music/track"
)

// ErrNotFound reports that no record exists for the requested key.
var ErrNotFound = errors.New("storage: not found")

// Settings are the per-guild knobs that survive restarts.
type Settings struct {
	Volume int `json:"volume"`
}

// Store is the persistence contract shared by all backends.
type Store interface {
	SaveQueue(ctx context.Context, guildID string, s queue.Snapshot) error
	LoadQueue(ctx context.Context, guildID string) (queue.Snapshot, error)
	ClearQueue(ctx context.Context, guildID string) error

	SaveSettings(ctx context.Context, guildID string, s Settings) error
	LoadSettings(ctx context.Context, guildID string) (Settings, error)

	SavePlaylist(ctx context.Context, userID, name string, tracks []track.Track) error
	LoadPlaylist(ctx context.Context, userID, name string) ([]track.Track, error)
	ListPlaylists(ctx context.Context, userID string) ([]string, error)
	DeletePlaylist(ctx context.Context, userID, name string) error

	Close() error
}

// Open selects a backend from config. Failures degrade rather than abort:
// Redis falls back to SQLite, SQLite falls back to memory.
func Open(ctx context.Context, cfg *config.Config) Store {
	if cfg.UseRedis {
		store, err := NewRedis(ctx, cfg.RedisURL)
		if err == nil {
			log.Printf("[INFO] storage: using redis at %s", cfg.RedisURL)
			return store
		}
		log.Printf("[WARN] storage: redis unavailable (%v), falling back to sqlite", err)
	}

	store, err := NewSQLite(cfg.SQLitePath)
	if err == nil {
		log.Printf("[INFO] storage: using sqlite at %s", cfg.SQLitePath)
		return store
	}
	log.Printf("[WARN] storage: sqlite unavailable (%v), falling back to memory", err)

	return NewMemory()
}
