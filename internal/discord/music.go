package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"groovebox/internal/bot"
	"groovebox/internal/command/music"
	"groovebox/internal/music/player"
	"groovebox/internal/storage"
)

// registerMusicCommands wires the music command set. It needs a live Bot
// because the commands reach players through it.
func (b *Bot) registerMusicCommands() {
	music.Register(b, b.cfg)
}

// GetOrCreatePlayer returns the guild's player, creating and restoring it
// on first use.
func (b *Bot) GetOrCreatePlayer(guildID string) *player.Player {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.players[guildID]; ok {
		return p
	}

	p := player.New(player.Options{
		GuildID:       guildID,
		Store:         b.store,
		Resolver:      b.resolver,
		Voice:         sessionVoice{dg: b.dg},
		MaxQueueSize:  b.cfg.MaxQueueSize,
		DefaultVolume: b.cfg.DefaultVolume,
		Inactivity:    b.cfg.InactivityTimeout,
	})
	if err := p.RestoreQueue(context.Background()); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[WARN] Queue restore for guild %s: %v", guildID, err)
	}

	go b.watchStatus(p)

	b.players[guildID] = p
	return p
}

// watchStatus drains a player's status events into the log.
func (b *Bot) watchStatus(p *player.Player) {
	for {
		select {
		case status := <-p.Status:
			log.Printf("[INFO] [%s] Player status: %s", p.GuildID(), status)
		case <-p.Done():
			return
		}
	}
}

// FindUserVoiceState finds the voice state of a user.
func (b *Bot) FindUserVoiceState(guildID, userID string) (*bot.VoiceState, error) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving guild: %w", err)
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return &bot.VoiceState{
				ChannelID: vs.ChannelID,
				UserID:    vs.UserID,
			}, nil
		}
	}
	return nil, fmt.Errorf("user not in any voice channel")
}
