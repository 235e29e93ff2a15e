package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

// SyncCommand re-reconciles slash commands for the current guild. With a
// target it re-registers that single command unconditionally, skipping the
// hash cache. Owner only.
type SyncCommand struct{}

func (c *SyncCommand) Name() string             { return "sync" }
func (c *SyncCommand) Description() string      { return "Re-register slash commands for this server" }
func (c *SyncCommand) Group() string            { return "core" }
func (c *SyncCommand) Category() string         { return "🛠️ Maintenance" }
func (c *SyncCommand) UserPermissions() []int64 { return nil }

func (c *SyncCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "target",
				Description: "Command name to re-register (default: all)",
				Required:    false,
			},
		},
	}
}

func (c *SyncCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	target := "all"
	for _, opt := range slash.Event.ApplicationCommandData().Options {
		if opt.Name == "target" && opt.StringValue() != "" {
			target = opt.StringValue()
		}
	}

	bot.PublishSystemEvent(bot.SystemEvent{
		Type:    bot.SystemEventRefreshCommands,
		GuildID: slash.Event.GuildID,
		Target:  target,
	})
	if strings.EqualFold(target, "all") {
		return bot.RespondEphemeral(slash.Session, slash.Event, "Command sync started for this server.")
	}
	return bot.RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("Re-registering /%s for this server.", target))
}
