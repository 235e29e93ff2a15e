package storage

import (
	"context"
	"slices"
	"sync"

	"groovebox/internal/music/queue"
	"groovebox/internal/music/track"
)

// Memory holds everything in process, losing it on restart. Used when no
// durable backend can be opened, and handy in tests.
type Memory struct {
	mu        sync.RWMutex
	queues    map[string]queue.Snapshot
	settings  map[string]Settings
	playlists map[string]map[string][]track.Track // user to name to tracks
}

func NewMemory() *Memory {
	return &Memory{
		queues:    make(map[string]queue.Snapshot),
		settings:  make(map[string]Settings),
		playlists: make(map[string]map[string][]track.Track),
	}
}

func (m *Memory) SaveQueue(_ context.Context, guildID string, s queue.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Tracks = slices.Clone(s.Tracks)
	m.queues[guildID] = s
	return nil
}

func (m *Memory) LoadQueue(_ context.Context, guildID string) (queue.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.queues[guildID]
	if !ok {
		return queue.Snapshot{}, ErrNotFound
	}
	s.Tracks = slices.Clone(s.Tracks)
	return s, nil
}

func (m *Memory) ClearQueue(_ context.Context, guildID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.queues, guildID)
	return nil
}

func (m *Memory) SaveSettings(_ context.Context, guildID string, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[guildID] = s
	return nil
}

func (m *Memory) LoadSettings(_ context.Context, guildID string) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.settings[guildID]
	if !ok {
		return Settings{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) SavePlaylist(_ context.Context, userID, name string, tracks []track.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playlists[userID] == nil {
		m.playlists[userID] = make(map[string][]track.Track)
	}
	m.playlists[userID][name] = slices.Clone(tracks)
	return nil
}

func (m *Memory) LoadPlaylist(_ context.Context, userID, name string) ([]track.Track, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tracks, ok := m.playlists[userID][name]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(tracks), nil
}

func (m *Memory) ListPlaylists(_ context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.playlists[userID]))
	for name := range m.playlists[userID] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (m *Memory) DeletePlaylist(_ context.Context, userID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.playlists[userID][name]; !ok {
		return ErrNotFound
	}
	delete(m.playlists[userID], name)
	return nil
}

func (m *Memory) Close() error { return nil }
