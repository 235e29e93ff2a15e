package discord

import (
	"github.com/bwmarrin/discordgo"

	"groovebox/internal/music/player"
)

// sessionVoice adapts a discordgo session to the player's Voice interface.
type sessionVoice struct {
	dg *discordgo.Session
}

func (v sessionVoice) Join(guildID, channelID string) (player.VoiceConn, error) {
	vc, err := v.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, err
	}
	return voiceConn{vc}, nil
}

// voiceConn narrows a discordgo voice connection to what the player uses.
type voiceConn struct {
	vc *discordgo.VoiceConnection
}

func (c voiceConn) Speaking(b bool) error   { return c.vc.Speaking(b) }
func (c voiceConn) OpusSend() chan<- []byte { return c.vc.OpusSend }
func (c voiceConn) ChannelID() string       { return c.vc.ChannelID }
func (c voiceConn) Disconnect() error       { return c.vc.Disconnect() }
