package commands

import (
	"github.com/apex/log"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func (c *Commands) Scale(envars *env.Envars) *cli.Command {
	var count int
	var noWait bool
	return &cli.Command{
		Name:  "scale",
		Usage: "set the service's desired task count",
		Flags: []cli.Flag{
			RegionFlag(&envars.Region),
			ClusterFlag(&envars.Cluster),
			ServiceFlag(&envars.Service),
			ProfileFlag(&envars.Profile),
			TimeoutFlag(&envars.DeployWaitSec),
			PollIntervalFlag(&envars.PollIntervalSec),
			&cli.IntFlag{
				Name:        "count",
				Usage:       "desired task count",
				Destination: &count,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "no-wait",
				Usage:       "return without waiting for the count to be reached",
				Destination: &noWait,
			},
		},
		Action: func(ctx *cli.Context) error {
			if envars.Service == "" {
				return xerrors.Errorf("--service [%s] is required", env.ServiceKey)
			}
			s, err := c.setup(ctx, envars)
			if err != nil {
				return err
			}
			result, err := s.Scale(ctx.Context, &types.ScaleInput{
				DesiredCount: int32(count),
				NoWait:       noWait,
			})
			if err != nil {
				return err
			}
			log.Infof("service '%s' scaled to %d", envars.Service, result.Service.DesiredCount)
			return nil
		},
	}
}
