package commands

import (
	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
)

func (c *Commands) Run(envars *env.Envars) *cli.Command {
	var m mutationFlags
	var launchType string
	var count int
	var subnets, securityGroups cli.StringSlice
	input := types.RunInput{}
	flags := []cli.Flag{
		RegionFlag(&envars.Region),
		ClusterFlag(&envars.Cluster),
		ProfileFlag(&envars.Profile),
		TaskDefinitionFlag(&input.TaskDefinition),
		&cli.StringFlag{
			Name:        "family",
			Usage:       "task definition family, resolved together with --module-version",
			Destination: &input.Family,
		},
		ModuleVersionFlag(&input.ModuleVersion),
		&cli.StringFlag{
			Name:        "launchtype",
			Usage:       "launch type, FARGATE or EC2",
			Value:       "FARGATE",
			Destination: &launchType,
		},
		&cli.IntFlag{
			Name:        "count",
			Usage:       "number of tasks to start",
			Value:       1,
			Destination: &count,
		},
		&cli.StringSliceFlag{
			Name:        "subnet",
			Usage:       "subnet id for awsvpc networking, repeatable",
			Destination: &subnets,
		},
		&cli.StringSliceFlag{
			Name:        "securitygroup",
			Usage:       "security group id for awsvpc networking, repeatable",
			Destination: &securityGroups,
		},
		&cli.BoolFlag{
			Name:        "public-ip",
			Usage:       "assign a public ip to the task",
			Destination: &input.AssignPublicIp,
		},
		&cli.StringFlag{
			Name:        "platform-version",
			Usage:       "fargate platform version",
			Destination: &input.PlatformVersion,
		},
		&cli.StringFlag{
			Name:        "started-by",
			Usage:       "startedBy marker on the task",
			Destination: &input.StartedBy,
		},
	}
	flags = append(flags, m.overrideFlags()...)
	return &cli.Command{
		Name:        "run",
		Usage:       "start one-off tasks from a registered revision",
		Description: "command, environment and secret changes become launch-time overrides; no new revision is registered.",
		Flags:       flags,
		Action: func(ctx *cli.Context) error {
			mutations, err := m.mutations()
			if err != nil {
				return err
			}
			input.Mutations = mutations
			input.LaunchType = ecstypes.LaunchType(launchType)
			input.Count = int32(count)
			input.Subnets = subnets.Value()
			input.SecurityGroups = securityGroups.Value()
			s, err := c.setup(ctx, envars)
			if err != nil {
				return err
			}
			result, err := s.RunTask(ctx.Context, &input)
			if err != nil {
				return err
			}
			for _, task := range result.Tasks {
				log.Infof("started %s", aws.ToString(task.TaskArn))
			}
			return nil
		},
	}
}
