package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
)

type VolumeCommand struct{ base }

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Description() string { return "Show or set playback volume (0-200%)" }

func (c *VolumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	var lo, hi = float64(0), float64(200)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "percent",
				Description: "New volume, 100 is normal",
				MinValue:    &lo,
				MaxValue:    hi,
			},
		},
	}
}

func (c *VolumeCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	p := c.player(e.GuildID)
	opt, ok := options(e)["percent"]
	if !ok {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("🔊 Volume is %d%%.", p.Volume()))
	}

	percent := int(opt.IntValue())
	if err := p.SetVolume(percent); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, fmt.Sprintf("🔊 Volume set to %d%%.", percent))
}
