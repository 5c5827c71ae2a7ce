package commands

import (
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func (c *Commands) Diff(envars *env.Envars) *cli.Command {
	input := types.DiffInput{}
	return &cli.Command{
		Name:        "diff",
		Usage:       "compare two task definition revisions structurally",
		Description: "environment, secret and attribute ordering differences are ignored. Without --base the service's current revision is compared.",
		Flags: []cli.Flag{
			RegionFlag(&envars.Region),
			ClusterFlag(&envars.Cluster),
			ServiceFlag(&envars.Service),
			ProfileFlag(&envars.Profile),
			&cli.StringFlag{
				Name:        "base",
				Usage:       "base revision arn or family:revision; defaults to the service's current one",
				Destination: &input.Base,
			},
			&cli.StringFlag{
				Name:        "target",
				Usage:       "target revision arn or family:revision",
				Destination: &input.Target,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			if input.Base == "" && envars.Service == "" {
				return xerrors.Errorf("--base or --service [%s] is required", env.ServiceKey)
			}
			s, err := c.setup(ctx, envars)
			if err != nil {
				return err
			}
			_, err = s.Diff(ctx.Context, &input)
			return err
		},
	}
}
