package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

// ServersCommand lists every guild the bot is in. Owner only.
type ServersCommand struct{}

func (c *ServersCommand) Name() string             { return "servers" }
func (c *ServersCommand) Description() string      { return "List servers the bot is in" }
func (c *ServersCommand) Group() string            { return "core" }
func (c *ServersCommand) Category() string         { return "🛠️ Maintenance" }
func (c *ServersCommand) UserPermissions() []int64 { return nil }

func (c *ServersCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ServersCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	guilds := slash.Session.State.Guilds
	var lines []string
	for i, g := range guilds {
		if i >= 25 { // keep the embed within Discord's limits
			lines = append(lines, fmt.Sprintf("...and %d more", len(guilds)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("%s (`%s`), %d members", g.Name, g.ID, g.MemberCount))
	}
	if len(lines) == 0 {
		lines = []string{"No servers."}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Servers (%d)", len(guilds)),
		Description: strings.Join(lines, "\n"),
	}
	return bot.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}
