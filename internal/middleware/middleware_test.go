package middleware

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"groovebox/internal/command"
	"groovebox/pkg/cmd"
)

// noContentTransport answers every REST call with 204 so responders work
// without the network.
type noContentTransport struct{}

func (noContentTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}, nil
}

func testSession() *discordgo.Session {
	return &discordgo.Session{
		Client:      &http.Client{Transport: noContentTransport{}},
		Ratelimiter: discordgo.NewRatelimiter(),
	}
}

type countingCommand struct {
	runs int
}

func (c *countingCommand) Name() string        { return "counting" }
func (c *countingCommand) Description() string { return "counts runs" }
func (c *countingCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	c.runs++
	return nil
}

func slashInvocation(s *discordgo.Session, guildID, userID string) *cmd.Invocation {
	e := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		GuildID: guildID,
	}}
	if guildID == "" {
		e.User = &discordgo.User{ID: userID, Username: userID}
	} else {
		e.Member = &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}}
	}
	return &cmd.Invocation{Data: &command.SlashInteractionContext{Session: s, Event: e}}
}

// The registration stacks list middlewares innermost first, so the guild
// gate is the outermost layer: a DM must bounce off it without spending
// rate-limit tokens.
func TestGuildGateRunsBeforeRateLimit(t *testing.T) {
	s := testSession()
	inner := &countingCommand{}
	chained := cmd.Apply(inner,
		WithCommandLogger(),
		WithRateLimit(1),
		WithGuildOnly(),
	)

	for i := 0; i < 3; i++ {
		if err := chained.Run(context.Background(), slashInvocation(s, "", "u1")); err != nil {
			t.Fatalf("DM invocation %d: %v", i+1, err)
		}
	}
	if inner.runs != 0 {
		t.Fatalf("inner command ran %d times from DMs", inner.runs)
	}

	// The single token is still available for the first guild call.
	if err := chained.Run(context.Background(), slashInvocation(s, "g1", "u1")); err != nil {
		t.Fatalf("guild invocation: %v", err)
	}
	if inner.runs != 1 {
		t.Fatalf("inner runs = %d, want 1", inner.runs)
	}

	if err := chained.Run(context.Background(), slashInvocation(s, "g1", "u1")); err != nil {
		t.Fatalf("throttled invocation: %v", err)
	}
	if inner.runs != 1 {
		t.Fatalf("inner ran while rate limited, runs = %d", inner.runs)
	}
}
