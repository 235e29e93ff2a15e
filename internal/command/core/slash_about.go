package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/version"
)

var startedAt = time.Now()

type AboutCommand struct{}

func (c *AboutCommand) Name() string             { return "about" }
func (c *AboutCommand) Description() string      { return "About this bot" }
func (c *AboutCommand) Group() string            { return "core" }
func (c *AboutCommand) Category() string         { return "🛠️ Maintenance" }
func (c *AboutCommand) UserPermissions() []int64 { return nil }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName,
		Description: "A music bot that plays YouTube, SoundCloud and direct streams in your voice channel.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Version", Value: version.AppVersion, Inline: true},
			{Name: "Servers", Value: fmt.Sprintf("%d", len(slash.Session.State.Guilds)), Inline: true},
			{Name: "Uptime", Value: time.Since(startedAt).Round(time.Second).String(), Inline: true},
			{Name: "Latency", Value: fmt.Sprintf("%dms", slash.Session.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
	}
	return bot.RespondEmbed(slash.Session, slash.Event, embed)
}
