package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

type PingCommand struct{}

func (c *PingCommand) Name() string             { return "ping" }
func (c *PingCommand) Description() string      { return "Check bot latency" }
func (c *PingCommand) Group() string            { return "core" }
func (c *PingCommand) Category() string         { return "🛠️ Maintenance" }
func (c *PingCommand) UserPermissions() []int64 { return nil }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	latency := slash.Session.HeartbeatLatency().Milliseconds()
	return bot.Respond(slash.Session, slash.Event, fmt.Sprintf("🏓 Pong! %dms", latency))
}
