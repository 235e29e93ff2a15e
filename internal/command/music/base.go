// Package music implements the playback slash commands. Every command holds
// a reference to the bot's voice layer and finds its guild player through it.
package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/music/player"
)

// base carries what every music command needs.
type base struct {
	Bot bot.BotVoice
}

func (b *base) Group() string            { return "music" }
func (b *base) Category() string         { return "🎵 Music" }
func (b *base) UserPermissions() []int64 { return nil }

func slashCtx(ctx interface{}) (*command.SlashInteractionContext, error) {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return nil, fmt.Errorf("wrong context type")
	}
	return slash, nil
}

func (b *base) player(guildID string) *player.Player {
	return b.Bot.GetOrCreatePlayer(guildID)
}

// userVoiceChannel returns the caller's voice channel ID, or empty.
func (b *base) userVoiceChannel(e *discordgo.InteractionCreate) string {
	if e.Member == nil || e.Member.User == nil {
		return ""
	}
	vs, err := b.Bot.FindUserVoiceState(e.GuildID, e.Member.User.ID)
	if err != nil || vs == nil {
		return ""
	}
	return vs.ChannelID
}

// options flattens interaction options into a name-keyed map.
func options(e *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range e.ApplicationCommandData().Options {
		out[opt.Name] = opt
	}
	return out
}

func caller(e *discordgo.InteractionCreate) (id, name string) {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID, e.Member.User.Username
	}
	if e.User != nil {
		return e.User.ID, e.User.Username
	}
	return "", ""
}
