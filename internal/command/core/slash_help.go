package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/version"
	"groovebox/pkg/cmd"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string             { return "help" }
func (c *HelpCommand) Description() string      { return "List available commands" }
func (c *HelpCommand) Group() string            { return "core" }
func (c *HelpCommand) Category() string         { return "🛠️ Maintenance" }
func (c *HelpCommand) UserPermissions() []int64 { return nil }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	byCategory := make(map[string][]string)
	for _, registered := range command.AllCommands() {
		meta, hasMeta := cmd.Root(registered).(command.DiscordMeta)
		category := "Other"
		if hasMeta {
			category = meta.Category()
		}
		byCategory[category] = append(byCategory[category],
			fmt.Sprintf("`/%s` — %s", registered.Name(), registered.Description()))
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	embed := &discordgo.MessageEmbed{
		Title: version.AppName + " Commands",
	}
	for _, category := range categories {
		sort.Strings(byCategory[category])
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: strings.Join(byCategory[category], "\n"),
		})
	}

	return bot.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}
