package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

type StatusCommand struct{}

func (c *StatusCommand) Name() string             { return "status" }
func (c *StatusCommand) Description() string      { return "Set the bot's presence text" }
func (c *StatusCommand) Group() string            { return "core" }
func (c *StatusCommand) Category() string         { return "🛠️ Maintenance" }
func (c *StatusCommand) UserPermissions() []int64 { return nil }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "type",
				Description: "Activity type",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Playing", Value: "playing"},
					{Name: "Listening", Value: "listening"},
					{Name: "Watching", Value: "watching"},
					{Name: "Competing", Value: "competing"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Presence text",
				Required:    true,
			},
		},
	}
}

func (c *StatusCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	var kind, text string
	for _, opt := range slash.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "type":
			kind = opt.StringValue()
		case "text":
			text = opt.StringValue()
		}
	}

	activityType := discordgo.ActivityTypeGame
	switch kind {
	case "listening":
		activityType = discordgo.ActivityTypeListening
	case "watching":
		activityType = discordgo.ActivityTypeWatching
	case "competing":
		activityType = discordgo.ActivityTypeCompeting
	}

	err := slash.Session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{Name: text, Type: activityType}},
	})
	if err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}
	return bot.RespondEphemeral(slash.Session, slash.Event,
		fmt.Sprintf("✅ Presence set to %s **%s**.", kind, text))
}
