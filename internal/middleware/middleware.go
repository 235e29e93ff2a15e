// Package middleware provides the command wrappers applied at registration:
// guild gating, permission and DJ checks, voice presence checks, rate
// limiting and invocation logging.
package middleware

import (
	"github.com/bwmarrin/discordgo"

	"groovebox/internal/command"
	"groovebox/pkg/cmd"
)

// interactionEvent pulls the session and event out of any Discord context.
func interactionEvent(inv *cmd.Invocation) (*discordgo.Session, *discordgo.InteractionCreate, bool) {
	switch v := inv.Data.(type) {
	case *command.SlashInteractionContext:
		return v.Session, v.Event, true
	case *command.ComponentInteractionContext:
		return v.Session, v.Event, true
	}
	return nil, nil, false
}
