package command

import (
	"context"
	"testing"

	"groovebox/pkg/cmd"
)

type recordingCommand struct {
	name string
	got  interface{}
}

func (c *recordingCommand) Name() string             { return c.name }
func (c *recordingCommand) Description() string      { return "records its context" }
func (c *recordingCommand) Group() string            { return "test" }
func (c *recordingCommand) Category() string         { return "test" }
func (c *recordingCommand) UserPermissions() []int64 { return nil }

func (c *recordingCommand) Run(ctx interface{}) error {
	c.got = ctx
	return nil
}

// The gateway hands registered commands a cmd.Invocation whose Data carries
// the interaction context; the adapter must pass it through to Run.
func TestDispatchCarriesContextThroughInvocation(t *testing.T) {
	rec := &recordingCommand{name: "record-dispatch"}
	RegisterCommand(rec)

	registered, ok := GetCommand("record-dispatch")
	if !ok {
		t.Fatal("registered command not found")
	}

	sctx := &SlashInteractionContext{}
	if err := registered.Run(context.Background(), &cmd.Invocation{Data: sctx}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if rec.got != sctx {
		t.Fatalf("command received %T, want the slash context", rec.got)
	}
}
