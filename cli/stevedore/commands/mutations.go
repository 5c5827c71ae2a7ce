package commands

import (
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
)

// mutationFlags collects the task definition change flags shared by
// deploy and run.
type mutationFlags struct {
	images           cli.StringSlice
	commands         cli.StringSlice
	envs             cli.StringSlice
	envFiles         cli.StringSlice
	secrets          cli.StringSlice
	setTags          cli.StringSlice
	tag              string
	role             string
	executionRole    string
	exclusiveEnv     bool
	exclusiveSecrets bool
}

func (m *mutationFlags) flags() []cli.Flag {
	return []cli.Flag{
		ImageFlag(&m.images),
		TagFlag(&m.tag),
		CommandFlag(&m.commands),
		EnvFlag(&m.envs),
		EnvFileFlag(&m.envFiles),
		SecretFlag(&m.secrets),
		ExclusiveEnvFlag(&m.exclusiveEnv),
		ExclusiveSecretsFlag(&m.exclusiveSecrets),
		RoleFlag(&m.role),
		ExecutionRoleFlag(&m.executionRole),
		SetTagFlag(&m.setTags),
	}
}

// overrideFlags is the subset meaningful for one-off tasks, where
// changes become launch-time overrides instead of a new revision.
func (m *mutationFlags) overrideFlags() []cli.Flag {
	return []cli.Flag{
		CommandFlag(&m.commands),
		EnvFlag(&m.envs),
		EnvFileFlag(&m.envFiles),
		SecretFlag(&m.secrets),
		ExclusiveEnvFlag(&m.exclusiveEnv),
		ExclusiveSecretsFlag(&m.exclusiveSecrets),
	}
}

func (m *mutationFlags) mutations() (types.Mutations, error) {
	images, err := ParseImages(m.images.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	commands, err := ParseCommands(m.commands.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	envs, err := ParseEnvVars("env", m.envs.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	fileEnvs, err := ParseEnvFiles(m.envFiles.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	secrets, err := ParseEnvVars("secret", m.secrets.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	tags, err := ParseTags(m.setTags.Value())
	if err != nil {
		return types.Mutations{}, err
	}
	return types.Mutations{
		Tag:              m.tag,
		Images:           images,
		Commands:         commands,
		Env:              append(fileEnvs, envs...),
		Secrets:          secrets,
		ExclusiveEnv:     m.exclusiveEnv,
		ExclusiveSecrets: m.exclusiveSecrets,
		RoleArn:          m.role,
		ExecutionRoleArn: m.executionRole,
		Tags:             tags,
	}, nil
}
