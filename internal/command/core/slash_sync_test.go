package core

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/bot"
	"groovebox/internal/command"
)

type noContentTransport struct{}

func (noContentTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}, nil
}

func syncContext(guildID string, opts []*discordgo.ApplicationCommandInteractionDataOption) *command.SlashInteractionContext {
	return &command.SlashInteractionContext{
		Session: &discordgo.Session{
			Client:      &http.Client{Transport: noContentTransport{}},
			Ratelimiter: discordgo.NewRatelimiter(),
		},
		Event: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: guildID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "sync",
				Options: opts,
			},
		}},
	}
}

func drainSystemEvents() {
	for {
		select {
		case <-bot.SystemEvents():
		default:
			return
		}
	}
}

func TestSyncPublishesTarget(t *testing.T) {
	drainSystemEvents()

	c := &SyncCommand{}
	err := c.Run(syncContext("g1", []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "target", Type: discordgo.ApplicationCommandOptionString, Value: "play"},
	}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	select {
	case evt := <-bot.SystemEvents():
		if evt.Type != bot.SystemEventRefreshCommands {
			t.Fatalf("event type = %s", evt.Type)
		}
		if evt.GuildID != "g1" || evt.Target != "play" {
			t.Fatalf("event = %+v, want guild g1 target play", evt)
		}
	default:
		t.Fatal("no system event published")
	}
}

func TestSyncDefaultsToAll(t *testing.T) {
	drainSystemEvents()

	c := &SyncCommand{}
	if err := c.Run(syncContext("g1", nil)); err != nil {
		t.Fatalf("run: %v", err)
	}

	select {
	case evt := <-bot.SystemEvents():
		if evt.Target != "all" {
			t.Fatalf("target = %q, want all", evt.Target)
		}
	default:
		t.Fatal("no system event published")
	}
}
