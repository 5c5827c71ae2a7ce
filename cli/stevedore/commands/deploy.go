package commands

import (
	"github.com/apex/log"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func (c *Commands) Deploy(envars *env.Envars) *cli.Command {
	var m mutationFlags
	input := types.DeployInput{}
	flags := []cli.Flag{
		RegionFlag(&envars.Region),
		ClusterFlag(&envars.Cluster),
		ServiceFlag(&envars.Service),
		ProfileFlag(&envars.Profile),
		TimeoutFlag(&envars.DeployWaitSec),
		PollIntervalFlag(&envars.PollIntervalSec),
		TaskDefinitionFlag(&input.TaskDefinitionArn),
		ModuleVersionFlag(&input.ModuleVersion),
		DeregisterFlag(&input.DeregisterOld),
		RuleFlag(&input.Rule),
		IgnoreWarningsFlag(&input.IgnoreWarnings),
	}
	flags = append(flags, m.flags()...)
	return &cli.Command{
		Name:        "deploy",
		Usage:       "roll the service onto a new task definition revision",
		Description: "applies the requested changes to the base revision, registers the result and updates the service. Nothing is registered when no field actually changes.",
		Flags:       flags,
		Action: func(ctx *cli.Context) error {
			if envars.Service == "" {
				return xerrors.Errorf("--service [%s] is required", env.ServiceKey)
			}
			mutations, err := m.mutations()
			if err != nil {
				return err
			}
			input.Mutations = mutations
			s, err := c.setup(ctx, envars)
			if err != nil {
				return err
			}
			result, err := s.Deploy(ctx.Context, &input)
			if err != nil {
				return err
			}
			log.Infof("deployment of '%s' completed", result.TaskDefinition.FamilyRevision())
			return nil
		},
	}
}
