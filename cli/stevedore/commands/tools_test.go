package commands_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/cli/stevedore/commands"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/mocks/mock_types"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/urfave/cli/v2"
)

func setup(t *testing.T) (*cli.App, *env.Envars, *mock_types.MockStevedore) {
	ctrl := gomock.NewController(t)
	mock := mock_types.NewMockStevedore(ctrl)
	envars := &env.Envars{}
	cmds := commands.NewCommands(func(ctx context.Context, e *env.Envars) (types.Stevedore, error) {
		return mock, nil
	})
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		cmds.Deploy(envars),
		cmds.Scale(envars),
		cmds.Run(envars),
		cmds.Diff(envars),
	}
	return app, envars, mock
}

func someTaskDefinition() *taskdef.TaskDefinition {
	return taskdef.New(ecstypes.TaskDefinition{
		Family:            aws.String("webapp"),
		Revision:          2,
		TaskDefinitionArn: aws.String("arn:aws:ecs:us-west-2:012345678910:task-definition/webapp:2"),
	}, nil)
}
