package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestHashCommandDeterministic(t *testing.T) {
	def := &discordgo.ApplicationCommand{
		Name:        "play",
		Description: "Play a track",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "query", Description: "URL", Required: true},
		},
	}
	if hashCommand(def) != hashCommand(def) {
		t.Fatal("hash is not deterministic")
	}
}

func TestHashCommandIgnoresOptionOrder(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name: "play", Description: "d", Type: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "query", Description: "q", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "source", Description: "s"},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name: "play", Description: "d", Type: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "source", Description: "s"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "query", Description: "q", Required: true},
		},
	}
	if hashCommand(a) != hashCommand(b) {
		t.Fatal("hash should not depend on option order")
	}
}

func TestHashCommandSeesChanges(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "skip", Description: "Skip", Type: discordgo.ChatApplicationCommand}
	b := &discordgo.ApplicationCommand{Name: "skip", Description: "Skip to the next track", Type: discordgo.ChatApplicationCommand}
	if hashCommand(a) == hashCommand(b) {
		t.Fatal("description change should change the hash")
	}

	c := &discordgo.ApplicationCommand{
		Name: "skip", Description: "Skip", Type: discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "count", Description: "n"},
		},
	}
	if hashCommand(a) == hashCommand(c) {
		t.Fatal("added option should change the hash")
	}
}
