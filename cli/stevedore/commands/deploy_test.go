package commands_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/stretchr/testify/assert"
)

func TestDeployCommand(t *testing.T) {
	t.Run("binds flags into the deploy input", func(t *testing.T) {
		app, envars, mock := setup(t)
		var got *types.DeployInput
		mock.EXPECT().Deploy(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *types.DeployInput) (*types.DeployResult, error) {
				got = input
				return &types.DeployResult{TaskDefinition: someTaskDefinition()}, nil
			})
		err := app.Run([]string{"stevedore", "deploy",
			"--region", "us-west-2",
			"--cluster", "stevedore-test",
			"--service", "webapp-service",
			"--image", "web=myrepo/app:2.0",
			"--tag", "2.0",
			"--command", "web=serve --verbose",
			"--env", "web=LOG_LEVEL=debug",
			"--secret", "web=DB_PASSWORD=arn:aws:ssm:us-west-2:012345678910:parameter/db-password",
			"--set-tag", "Team=platform",
			"--module-version", "1.2.3",
			"--deregister",
			"--ignore-warnings",
		})
		assert.NoError(t, err)
		assert.Equal(t, "us-west-2", envars.Region)
		assert.Equal(t, "stevedore-test", envars.Cluster)
		assert.Equal(t, "webapp-service", envars.Service)
		assert.Equal(t, "1.2.3", got.ModuleVersion)
		assert.True(t, got.DeregisterOld)
		assert.True(t, got.IgnoreWarnings)
		assert.Equal(t, "2.0", got.Mutations.Tag)
		assert.Equal(t, map[string]string{"web": "myrepo/app:2.0"}, got.Mutations.Images)
		assert.Equal(t, map[string]string{"web": "serve --verbose"}, got.Mutations.Commands)
		assert.Equal(t, []taskdef.EnvVar{{Container: "web", Name: "LOG_LEVEL", Value: "debug"}}, got.Mutations.Env)
		assert.Equal(t, []taskdef.EnvVar{{Container: "web", Name: "DB_PASSWORD", Value: "arn:aws:ssm:us-west-2:012345678910:parameter/db-password"}}, got.Mutations.Secrets)
		assert.Equal(t, map[string]string{"Team": "platform"}, got.Mutations.Tags)
	})
	t.Run("fails without a service", func(t *testing.T) {
		app, _, _ := setup(t)
		err := app.Run([]string{"stevedore", "deploy",
			"--region", "us-west-2",
			"--cluster", "stevedore-test",
		})
		assert.Error(t, err)
	})
	t.Run("rejects malformed env flags before providing a client", func(t *testing.T) {
		app, _, _ := setup(t)
		err := app.Run([]string{"stevedore", "deploy",
			"--region", "us-west-2",
			"--cluster", "stevedore-test",
			"--service", "webapp-service",
			"--env", "missing-container",
		})
		assert.Error(t, err)
	})
}
