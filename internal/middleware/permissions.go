package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/config"
	"groovebox/pkg/cmd"
)

// djRoleName marks members who may control playback regardless of server
// permissions.
const djRoleName = "dj"

// WithOwnerOnly restricts a command to the configured bot owner.
func WithOwnerOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok {
				return c.Run(ctx, inv)
			}
			if userID(e) != config.Current().BotOwnerID {
				return bot.RespondEphemeral(s, e, "Only the bot owner can use this command.")
			}
			return c.Run(ctx, inv)
		})
	}
}

// WithUserPermissionCheck enforces the command's declared permissions. A
// member needs at least one of them; administrators and the bot owner pass.
func WithUserPermissionCheck() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok || e.GuildID == "" || e.Member == nil || e.Member.User == nil {
				return c.Run(ctx, inv)
			}

			meta, metaOK := cmd.Root(c).(command.DiscordMeta)
			if !metaOK || len(meta.UserPermissions()) == 0 {
				return c.Run(ctx, inv)
			}

			perms, err := s.UserChannelPermissions(e.Member.User.ID, e.ChannelID)
			if err != nil {
				return fmt.Errorf("user permissions: %w", err)
			}
			if perms&discordgo.PermissionAdministrator != 0 {
				return c.Run(ctx, inv)
			}
			if e.Member.User.ID == config.Current().BotOwnerID {
				return c.Run(ctx, inv)
			}

			for _, p := range meta.UserPermissions() {
				if perms&p != 0 {
					return c.Run(ctx, inv)
				}
			}
			return bot.RespondEphemeral(s, e, "You do not have permission to use this command.")
		})
	}
}

// WithDJCheck allows playback control for DJs, managers and users who are
// alone with the bot in voice.
func WithDJCheck(voice bot.BotVoice) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			s, e, ok := interactionEvent(inv)
			if !ok || e.GuildID == "" || e.Member == nil {
				return c.Run(ctx, inv)
			}
			if IsDJOrAdmin(s, voice, e.GuildID, e.ChannelID, e.Member) {
				return c.Run(ctx, inv)
			}
			return bot.RespondEphemeral(s, e,
				"You need the DJ role, Manage Server permission, or to be alone with the bot to do that.")
		})
	}
}

// IsDJOrAdmin reports whether the member may control playback: owner, admin,
// Manage Server, a role named "dj", or being the only listener.
func IsDJOrAdmin(s *discordgo.Session, voice bot.BotVoice, guildID, channelID string, m *discordgo.Member) bool {
	if m == nil || m.User == nil {
		return false
	}
	if m.User.ID == config.Current().BotOwnerID {
		return true
	}

	if perms, err := s.UserChannelPermissions(m.User.ID, channelID); err == nil {
		if perms&(discordgo.PermissionAdministrator|discordgo.PermissionManageServer) != 0 {
			return true
		}
	}

	if guild, err := s.State.Guild(guildID); err == nil {
		for _, roleID := range m.Roles {
			for _, role := range guild.Roles {
				if role.ID == roleID && strings.EqualFold(role.Name, djRoleName) {
					return true
				}
			}
		}
	}

	return aloneWithBot(s, voice, guildID, m.User.ID)
}

// aloneWithBot reports whether the user shares a voice channel with the bot
// and no other humans.
func aloneWithBot(s *discordgo.Session, voice bot.BotVoice, guildID, uID string) bool {
	vs, err := voice.FindUserVoiceState(guildID, uID)
	if err != nil || vs == nil {
		return false
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		return false
	}

	botID := s.State.User.ID
	botInChannel := false
	humans := 0
	for _, state := range guild.VoiceStates {
		if state.ChannelID != vs.ChannelID {
			continue
		}
		if state.UserID == botID {
			botInChannel = true
			continue
		}
		humans++
	}
	return botInChannel && humans == 1
}

func userID(e *discordgo.InteractionCreate) string {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID
	}
	if e.User != nil {
		return e.User.ID
	}
	return ""
}
