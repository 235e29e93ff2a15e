// Package discord runs the bot: session lifecycle, event dispatch, slash
// command registration and the per-guild player registry.
package discord

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/internal/config"
	"groovebox/internal/music/player"
	"groovebox/internal/music/source_resolver"
	"groovebox/internal/storage"
	"groovebox/pkg/cmd"
)

// Bot is the Discord runtime.
type Bot struct {
	dg       *discordgo.Session
	store    storage.Store
	cfg      *config.Config
	resolver *source_resolver.Resolver

	mu      sync.RWMutex
	players map[string]*player.Player

	shutdown context.CancelFunc
}

// StartBot connects to Discord and blocks until ctx is done or a /shutdown
// is issued.
func StartBot(ctx context.Context, cfg *config.Config, store storage.Store) error {
	b := &Bot{
		cfg:      cfg,
		store:    store,
		resolver: source_resolver.New(),
		players:  make(map[string]*player.Player),
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	b.shutdown = cancel

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMessages

	b.registerMusicCommands()

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go b.systemEventLoop()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	b.stopAllPlayers()
	return nil
}

func (b *Bot) systemEventLoop() {
	for evt := range bot.SystemEvents() {
		switch evt.Type {
		case bot.SystemEventRefreshCommands:
			go b.handleRefreshCommands(evt)
		case bot.SystemEventShutdown:
			log.Println("[INFO] Shutdown requested via command")
			b.shutdown()
			return
		}
	}
}

func (b *Bot) stopAllPlayers() {
	b.mu.Lock()
	players := make([]*player.Player, 0, len(b.players))
	for _, p := range b.players {
		players = append(players, p)
	}
	b.mu.Unlock()

	for _, p := range players {
		if err := p.StopPlayback(true); err != nil && err != player.ErrNotPlaying {
			log.Printf("[WARN] Stopping player for guild %s: %v", p.GuildID(), err)
		}
		p.Close()
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	for _, g := range r.Guilds {
		if b.isGuildBlacklisted(g.ID) {
			log.Printf("[INFO] Leaving blacklisted guild: %s", g.ID)
			if err := s.GuildLeave(g.ID); err != nil {
				log.Printf("[ERR] Failed to leave guild %s: %v", g.ID, err)
			}
			continue
		}

		if b.cfg.InitSlashCommands {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		} else {
			log.Println("[INFO] Registering slash commands skipped")
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if b.isGuildBlacklisted(g.Guild.ID) {
		log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.Guild.ID, g.Guild.Name)
		if err := s.GuildLeave(g.Guild.ID); err != nil {
			log.Printf("[ERR] Failed to leave guild %s: %v", g.Guild.ID, err)
		}
		return
	}

	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(g.Guild.ID); err != nil {
			log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmdName := i.ApplicationCommandData().Name
		c, ok := command.GetCommand(cmdName)
		if !ok {
			log.Printf("[WARN] Unknown command: %s", cmdName)
			return
		}

		ctx := &command.SlashInteractionContext{
			Session: s,
			Event:   i,
			Store:   b.store,
		}
		if err := c.Run(context.Background(), &cmd.Invocation{Data: ctx}); err != nil {
			log.Println("[ERR] Error running slash command:", err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running command: %v", err),
			})
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		name, _, _ := strings.Cut(customID, ":")

		c, ok := command.GetCommand(name)
		if !ok {
			log.Printf("[WARN] No matching command for customID: %s", customID)
			return
		}
		handler, ok := cmd.Root(c).(command.ComponentInteractionHandler)
		if !ok {
			log.Printf("[WARN] Command %s has no component handler", name)
			return
		}

		ctx := &command.ComponentInteractionContext{
			Session: s,
			Event:   i,
			Store:   b.store,
		}
		if err := handler.Component(ctx); err != nil {
			log.Printf("[ERR] Error running component for %s: %v", name, err)
			bot.RespondEmbedEphemeral(s, i, &discordgo.MessageEmbed{
				Description: fmt.Sprintf("Error running command: %v", err),
			})
		}
	}
}

func (b *Bot) isGuildBlacklisted(guildID string) bool {
	return slices.Contains(b.cfg.GuildBlacklist, guildID)
}
