package music

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/storage"
)

const playlistOpTimeout = 5 * time.Second

type PlaylistCommand struct{ base }

func (c *PlaylistCommand) Name() string        { return "playlist" }
func (c *PlaylistCommand) Description() string { return "Save and load personal playlists" }

func (c *PlaylistCommand) SlashDefinition() *discordgo.ApplicationCommand {
	nameOpt := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: desc,
			Required:    true,
		}
	}
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "save",
				Description: "Save the current queue as a playlist",
				Options:     []*discordgo.ApplicationCommandOption{nameOpt("Playlist name")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "load",
				Description: "Append a saved playlist to the queue",
				Options:     []*discordgo.ApplicationCommandOption{nameOpt("Playlist to load")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List your saved playlists",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete a saved playlist",
				Options:     []*discordgo.ApplicationCommandOption{nameOpt("Playlist to delete")},
			},
		},
	}
}

func (c *PlaylistCommand) Run(ctx interface{}) error {
	slash, err := slashCtx(ctx)
	if err != nil {
		return err
	}
	e := slash.Event

	sub := e.ApplicationCommandData().Options[0]
	name := ""
	if len(sub.Options) > 0 {
		name = strings.TrimSpace(sub.Options[0].StringValue())
	}

	userID, _ := caller(e)
	opCtx, cancel := context.WithTimeout(context.Background(), playlistOpTimeout)
	defer cancel()

	switch sub.Name {
	case "save":
		return c.save(opCtx, slash, userID, name)
	case "load":
		return c.load(opCtx, slash, userID, name)
	case "list":
		return c.list(opCtx, slash, userID)
	case "delete":
		return c.delete(opCtx, slash, userID, name)
	}
	return fmt.Errorf("unknown playlist subcommand %q", sub.Name)
}

func (c *PlaylistCommand) save(ctx context.Context, slash *command.SlashInteractionContext, userID, name string) error {
	e := slash.Event
	tracks := c.player(e.GuildID).Tracks()
	if len(tracks) == 0 {
		return bot.RespondEphemeral(slash.Session, e, "❌ The queue is empty, nothing to save.")
	}
	if err := slash.Store.SavePlaylist(ctx, userID, name, tracks); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e,
		fmt.Sprintf("💾 Saved %d track(s) as **%s**.", len(tracks), name))
}

func (c *PlaylistCommand) load(ctx context.Context, slash *command.SlashInteractionContext, userID, name string) error {
	e := slash.Event
	tracks, err := slash.Store.LoadPlaylist(ctx, userID, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return bot.RespondEphemeral(slash.Session, e,
				fmt.Sprintf("❌ You have no playlist named **%s**.", name))
		}
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}

	id, username := caller(e)
	p := c.player(e.GuildID)
	added, err := p.EnqueueTracks(tracks, id, username)
	if err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	if err := p.EnsurePlaying(c.userVoiceChannel(e)); err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e,
		fmt.Sprintf("📂 Queued %d track(s) from **%s**.", len(added), name))
}

func (c *PlaylistCommand) list(ctx context.Context, slash *command.SlashInteractionContext, userID string) error {
	e := slash.Event
	names, err := slash.Store.ListPlaylists(ctx, userID)
	if err != nil {
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	if len(names) == 0 {
		return bot.RespondEphemeral(slash.Session, e, "You have no saved playlists.")
	}

	var sb strings.Builder
	for i, n := range names {
		fmt.Fprintf(&sb, "`%d.` %s\n", i+1, n)
	}
	return bot.RespondEmbedEphemeral(slash.Session, e, &discordgo.MessageEmbed{
		Title:       "Your playlists",
		Description: sb.String(),
	})
}

func (c *PlaylistCommand) delete(ctx context.Context, slash *command.SlashInteractionContext, userID, name string) error {
	e := slash.Event
	if err := slash.Store.DeletePlaylist(ctx, userID, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return bot.RespondEphemeral(slash.Session, e,
				fmt.Sprintf("❌ You have no playlist named **%s**.", name))
		}
		return bot.RespondEphemeral(slash.Session, e, fmt.Sprintf("❌ %v", err))
	}
	return bot.Respond(slash.Session, e, fmt.Sprintf("🗑️ Deleted playlist **%s**.", name))
}
