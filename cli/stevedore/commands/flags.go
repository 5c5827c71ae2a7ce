package commands

import (
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/urfave/cli/v2"
)

func RegionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "region",
		EnvVars:     []string{env.RegionKey},
		Usage:       "aws region of the cluster",
		Destination: dest,
		Required:    true,
	}
}

func ClusterFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "cluster",
		EnvVars:     []string{env.ClusterKey},
		Usage:       "ecs cluster name",
		Destination: dest,
		Required:    true,
	}
}

func ServiceFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "service",
		EnvVars:     []string{env.ServiceKey},
		Usage:       "ecs service name",
		Destination: dest,
	}
}

func ProfileFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "profile",
		EnvVars:     []string{env.ProfileKey},
		Usage:       "aws shared config profile",
		Destination: dest,
	}
}

func TimeoutFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "timeout",
		EnvVars:     []string{env.DeployWaitKey},
		Usage:       "seconds to wait for the deployment to settle",
		Destination: dest,
	}
}

func PollIntervalFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "poll-interval",
		EnvVars:     []string{env.PollIntervalKey},
		Usage:       "seconds between deployment state checks",
		Destination: dest,
	}
}

func ImageFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "image",
		Aliases:     []string{"i"},
		Usage:       "container image as [container=]image; the short form needs a single-container task definition",
		Destination: dest,
	}
}

func TagFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "tag",
		Aliases:     []string{"t"},
		Usage:       "image tag applied to every container without an explicit --image",
		Destination: dest,
	}
}

func CommandFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "command",
		Aliases:     []string{"c"},
		Usage:       "container command as container=command; JSON arrays and whitespace-separated strings are accepted",
		Destination: dest,
	}
}

func EnvFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "env",
		Aliases:     []string{"e"},
		Usage:       "environment variable as container=NAME=value",
		Destination: dest,
	}
}

func EnvFileFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "env-file",
		Usage:       "file of NAME=value lines as container=path",
		Destination: dest,
	}
}

func SecretFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "secret",
		Aliases:     []string{"s"},
		Usage:       "secret as container=NAME=valueFrom (ssm parameter or secrets manager arn)",
		Destination: dest,
	}
}

func ExclusiveEnvFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "exclusive-env",
		Usage:       "replace container environments instead of merging",
		Destination: dest,
	}
}

func ExclusiveSecretsFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "exclusive-secrets",
		Usage:       "replace container secrets instead of merging",
		Destination: dest,
	}
}

func RoleFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "role",
		Usage:       "task role arn for the new revision",
		Destination: dest,
	}
}

func ExecutionRoleFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "execution-role",
		Usage:       "execution role arn for the new revision",
		Destination: dest,
	}
}

func SetTagFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "set-tag",
		Usage:       "resource tag as key=value on the new revision",
		Destination: dest,
	}
}

func TaskDefinitionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "task-definition",
		Usage:       "task definition arn or family:revision to start from",
		Destination: dest,
	}
}

func ModuleVersionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "module-version",
		Usage:       "resolve the base revision by its ModuleVersion tag (patch and the nine following releases)",
		Destination: dest,
	}
}

func IgnoreWarningsFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "ignore-warnings",
		Usage:       "do not fail the rollout on scheduler warnings",
		Destination: dest,
	}
}

func DeregisterFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "deregister",
		Usage:       "deregister the previously active revision after the rollout",
		Destination: dest,
	}
}

func RuleFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "rule",
		Usage:       "eventbridge scheduled rule re-pointed at the new revision",
		Destination: dest,
	}
}
