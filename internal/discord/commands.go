package discord

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
	"groovebox/pkg/cmd"
)

// registerCommands reconciles a guild's slash commands with the registry.
// Hashes of previously registered definitions are cached on disk so only
// changed commands hit the Discord API.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	localHashes := loadGuildCommandHashes(guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, c := range command.AllCommands() {
		if def := normalizeDefinition(c); def != nil {
			wanted = append(wanted, def)
			wantedHashes[def.Name] = hashCommand(def)
		}
	}

	// Delete obsolete
	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	// Create or update changed commands
	var changed []*discordgo.ApplicationCommand
	for _, c := range wanted {
		if localHashes[c.Name] != wantedHashes[c.Name] {
			changed = append(changed, c)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d commands changed, updating with rate limit...", guildID, len(changed))
		registerCommandsWithRateLimit(b, guildID, changed)
		for _, c := range changed {
			localHashes[c.Name] = wantedHashes[c.Name]
		}
	}

	saveGuildCommandHashes(guildID, localHashes)
	return nil
}

// normalizeDefinition extracts a registrable definition from a command,
// unwrapping any middleware layers.
func normalizeDefinition(c cmd.Command) *discordgo.ApplicationCommand {
	slash, ok := cmd.Root(c).(command.SlashProvider)
	if !ok {
		return nil
	}
	def := slash.SlashDefinition()
	if def == nil {
		return nil
	}
	if def.Type == 0 {
		def.Type = discordgo.ChatApplicationCommand
	}
	return def
}

// registerCommandsWithRateLimit spaces out command creates so a burst of
// changed definitions does not trip the Discord API limiter.
func registerCommandsWithRateLimit(b *Bot, guildID string, cmds []*discordgo.ApplicationCommand) {
	ticker := time.NewTicker(time.Second / 40)
	defer ticker.Stop()

	var wg sync.WaitGroup
	for _, job := range cmds {
		wg.Add(1)
		go func(def *discordgo.ApplicationCommand) {
			defer wg.Done()
			<-ticker.C

			_, err := b.dg.ApplicationCommandCreate(b.dg.State.User.ID, guildID, def)
			if err != nil {
				log.Printf("[ERR] Can't create command %s: %v", def.Name, err)
			} else {
				log.Printf("[DONE] Command created: %s", def.Name)
			}
		}(job)
	}
	wg.Wait()
}

// handleRefreshCommands re-registers commands in response to a /sync.
func (b *Bot) handleRefreshCommands(evt bot.SystemEvent) {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			log.Printf("[ERR][%s] Failed to fetch self: %v", evt.GuildID, err)
			return
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, evt.GuildID)

	// A blacklisted guild loses all its commands.
	if b.isGuildBlacklisted(evt.GuildID) {
		log.Printf("[INFO][%s] Guild is blacklisted, removing all commands", evt.GuildID)
		for _, c := range existing {
			if err := b.dg.ApplicationCommandDelete(appID, evt.GuildID, c.ID); err != nil {
				log.Printf("[ERR][%s] Failed to delete command %s: %v", evt.GuildID, c.Name, err)
			}
		}
		return
	}

	if strings.EqualFold(evt.Target, "all") || evt.Target == "" {
		if err := b.registerCommands(evt.GuildID); err != nil {
			log.Printf("[ERR][%s] Command refresh failed: %v", evt.GuildID, err)
		}
		return
	}

	// Refresh a single command by name.
	for _, c := range command.AllCommands() {
		if strings.EqualFold(c.Name(), evt.Target) {
			if def := normalizeDefinition(c); def != nil {
				_, _ = b.dg.ApplicationCommandCreate(appID, evt.GuildID, def)
			}
			return
		}
	}
}
