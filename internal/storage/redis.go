package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"groovebox/internal/music/queue"
	"groovebox/internal/music/track"
)

// queueTTL bounds how long an abandoned queue lingers in Redis.
const queueTTL = 7 * 24 * time.Hour

type Redis struct {
	client *redis.Client
}

// NewRedis connects and pings; a dead server fails fast so Open can fall
// back to SQLite.
func NewRedis(ctx context.Context, rawURL string) (*Redis, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client}, nil
}

func queueKey(guildID string) string    { return "queue:" + guildID }
func settingsKey(guildID string) string { return "settings:" + guildID }
func playlistKey(userID, name string) string {
	return "playlist:" + userID + ":" + name
}
func playlistIndexKey(userID string) string { return "playlists:" + userID }

func (r *Redis) SaveQueue(ctx context.Context, guildID string, s queue.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, queueKey(guildID), data, queueTTL).Err()
}

func (r *Redis) LoadQueue(ctx context.Context, guildID string) (queue.Snapshot, error) {
	var s queue.Snapshot
	data, err := r.client.Get(ctx, queueKey(guildID)).Result()
	if err == redis.Nil {
		return s, ErrNotFound
	}
	if err != nil {
		return s, err
	}
	err = json.Unmarshal([]byte(data), &s)
	return s, err
}

func (r *Redis) ClearQueue(ctx context.Context, guildID string) error {
	return r.client.Del(ctx, queueKey(guildID)).Err()
}

func (r *Redis) SaveSettings(ctx context.Context, guildID string, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, settingsKey(guildID), data, 0).Err()
}

func (r *Redis) LoadSettings(ctx context.Context, guildID string) (Settings, error) {
	var s Settings
	data, err := r.client.Get(ctx, settingsKey(guildID)).Result()
	if err == redis.Nil {
		return s, ErrNotFound
	}
	if err != nil {
		return s, err
	}
	err = json.Unmarshal([]byte(data), &s)
	return s, err
}

func (r *Redis) SavePlaylist(ctx context.Context, userID, name string, tracks []track.Track) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playlistKey(userID, name), data, 0)
	pipe.SAdd(ctx, playlistIndexKey(userID), name)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) LoadPlaylist(ctx context.Context, userID, name string) ([]track.Track, error) {
	data, err := r.client.Get(ctx, playlistKey(userID, name)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var tracks []track.Track
	err = json.Unmarshal([]byte(data), &tracks)
	return tracks, err
}

func (r *Redis) ListPlaylists(ctx context.Context, userID string) ([]string, error) {
	names, err := r.client.SMembers(ctx, playlistIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Redis) DeletePlaylist(ctx context.Context, userID, name string) error {
	n, err := r.client.Del(ctx, playlistKey(userID, name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return r.client.SRem(ctx, playlistIndexKey(userID), name).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
