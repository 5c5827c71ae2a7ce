package main

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/stevedore-deploy/stevedore/cli/stevedore/commands"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "stevedore"
	app.HelpName = "stevedore"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A task definition deployment tool for AWS ECS"
	envars := env.Envars{}
	cmds := commands.NewCommands(commands.DefaultProvider)
	app.Commands = []*cli.Command{
		cmds.Deploy(&envars),
		cmds.Scale(&envars),
		cmds.Run(&envars),
		cmds.Diff(&envars),
		cmds.Upgrade(version),
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "ci",
			Usage:       "CI mode. Skip all confirmations and use default values.",
			EnvVars:     []string{"CI"},
			Destination: &envars.CI,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored output",
			EnvVars:     []string{"NO_COLOR"},
			Destination: &envars.NoColor,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}
