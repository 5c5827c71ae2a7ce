package commands

import (
	"github.com/stevedore-deploy/stevedore/cli/stevedore/upgrade"
	"github.com/urfave/cli/v2"
)

func (c *Commands) Upgrade(currVersion string) *cli.Command {
	var preRelease bool
	return &cli.Command{
		Name:  "upgrade",
		Usage: "upgrade the stevedore binary to the latest release",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "pre-release",
				Usage:       "include pre-release versions",
				Destination: &preRelease,
			},
		},
		Action: func(ctx *cli.Context) error {
			return upgrade.Upgrade(&upgrade.Input{
				CurrentVersion: currVersion,
				PreRelease:     preRelease,
			})
		},
	}
}
