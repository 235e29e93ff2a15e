package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

// ShutdownCommand stops the bot process gracefully. Owner only.
type ShutdownCommand struct{}

func (c *ShutdownCommand) Name() string             { return "shutdown" }
func (c *ShutdownCommand) Description() string      { return "Shut the bot down" }
func (c *ShutdownCommand) Group() string            { return "core" }
func (c *ShutdownCommand) Category() string         { return "🛠️ Maintenance" }
func (c *ShutdownCommand) UserPermissions() []int64 { return nil }

func (c *ShutdownCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ShutdownCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := bot.RespondEphemeral(slash.Session, slash.Event, "Shutting down. Bye! 👋"); err != nil {
		return err
	}
	bot.PublishSystemEvent(bot.SystemEvent{Type: bot.SystemEventShutdown})
	return nil
}
