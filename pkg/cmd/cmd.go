// Package cmd is a transport-agnostic command core: a command has a name,
// a description and Run(ctx, invocation). Registration and dispatch for a
// concrete transport (Discord slash, CLI) live in adapters that wrap this.
package cmd

import "context"

// Invocation is the minimal input any runner can pass: positional arguments
// and an opaque payload. Adapters set Data to their own context type.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract. Permissions, options and
// transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
