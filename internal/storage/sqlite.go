package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"groovebox/internal/music/queue"
	"groovebox/internal/music/track"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS guild_queues (
	guild_id   TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS guild_settings (
	guild_id TEXT PRIMARY KEY,
	settings TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS user_playlists (
	user_id TEXT NOT NULL,
	name    TEXT NOT NULL,
	tracks  TEXT NOT NULL,
	PRIMARY KEY (user_id, name)
);
`

type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates the database file and applies the schema.
// ":memory:" is accepted for tests.
func NewSQLite(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite dir: %w", err)
		}
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) SaveQueue(ctx context.Context, guildID string, snap queue.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO guild_queues (guild_id, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (guild_id) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`,
		guildID, string(data))
	return err
}

func (s *SQLite) LoadQueue(ctx context.Context, guildID string) (queue.Snapshot, error) {
	var snap queue.Snapshot
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM guild_queues WHERE guild_id = ?`, guildID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNotFound
	}
	if err != nil {
		return snap, err
	}
	err = json.Unmarshal([]byte(data), &snap)
	return snap, err
}

func (s *SQLite) ClearQueue(ctx context.Context, guildID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM guild_queues WHERE guild_id = ?`, guildID)
	return err
}

func (s *SQLite) SaveSettings(ctx context.Context, guildID string, st Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO guild_settings (guild_id, settings) VALUES (?, ?)
		ON CONFLICT (guild_id) DO UPDATE SET settings = excluded.settings`,
		guildID, string(data))
	return err
}

func (s *SQLite) LoadSettings(ctx context.Context, guildID string) (Settings, error) {
	var st Settings
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT settings FROM guild_settings WHERE guild_id = ?`, guildID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return st, ErrNotFound
	}
	if err != nil {
		return st, err
	}
	err = json.Unmarshal([]byte(data), &st)
	return st, err
}

func (s *SQLite) SavePlaylist(ctx context.Context, userID, name string, tracks []track.Track) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_playlists (user_id, name, tracks) VALUES (?, ?, ?)
		ON CONFLICT (user_id, name) DO UPDATE SET tracks = excluded.tracks`,
		userID, name, string(data))
	return err
}

func (s *SQLite) LoadPlaylist(ctx context.Context, userID, name string) ([]track.Track, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT tracks FROM user_playlists WHERE user_id = ? AND name = ?`,
		userID, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var tracks []track.Track
	err = json.Unmarshal([]byte(data), &tracks)
	return tracks, err
}

func (s *SQLite) ListPlaylists(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM user_playlists WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLite) DeletePlaylist(ctx context.Context, userID, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM user_playlists WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
