// Package commands wires the CLI surface to the deployment core. Each
// command constructor binds its flags into env.Envars and an input
// struct, then obtains a Stevedore from the provider so tests can swap
// the real AWS clients out.
package commands

import (
	"context"

	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
)

// Provider builds a ready-to-use Stevedore for the given configuration.
type Provider func(ctx context.Context, envars *env.Envars) (types.Stevedore, error)

type Commands struct {
	provider Provider
}

func NewCommands(provider Provider) *Commands {
	return &Commands{provider: provider}
}

func (c *Commands) setup(ctx *cli.Context, envars *env.Envars) (types.Stevedore, error) {
	if err := env.EnsureEnvars(envars); err != nil {
		return nil, err
	}
	return c.provider(ctx.Context, envars)
}
