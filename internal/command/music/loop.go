package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/music/queue"
)

type LoopCommand struct{ base }

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Description() string { return "Show or change the loop mode" }

func (c *LoopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "mode",
				Description: "Loop mode",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Off", Value: string(queue.LoopOff)},
					{Name: "Current track", Value: string(queue.LoopOne)},
					{Name: "Whole queue", Value: string(queue.LoopAll)},
				},
			},
		},
	}
}

func (c *LoopCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	p := c.player(e.GuildID)
	opt, ok := options(e)["mode"]
	if !ok {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("🔁 Loop mode is `%s`.", p.Loop()))
	}

	mode := queue.ParseLoopMode(opt.StringValue())
	p.SetLoop(mode)
	return bot.Respond(slash.Session, e, fmt.Sprintf("🔁 Loop mode set to `%s`.", mode))
}
