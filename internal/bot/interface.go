// Package bot holds the small shared surface between the command layer and
// the Discord runtime: the voice interface, response helpers and the system
// event bus. Keeping it here avoids an import cycle between the two.
package bot

import "groovebox/internal/music/player"

// BotVoice is what music commands need from the Discord runtime.
type BotVoice interface {
	GetOrCreatePlayer(guildID string) *player.Player
	FindUserVoiceState(guildID, userID string) (*VoiceState, error)
}

// VoiceState is the minimal voice channel state for a user.
type VoiceState struct {
	ChannelID string
	UserID    string
}
