package stevedore

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/mocks/mock_awsiface"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/test"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/stretchr/testify/assert"
)

func TestStevedore_RunTask(t *testing.T) {
	t.Run("launches a one-off task with overrides", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 0)
		result, err := s.RunTask(context.Background(), &types.RunInput{
			TaskDefinition: "webapp:1",
			Mutations: types.Mutations{
				Commands: map[string]string{"web": `["migrate", "--dry-run"]`},
				Env:      []taskdef.EnvVar{{Container: "web", Name: "TARGET", Value: "production"}},
			},
			LaunchType:     ecstypes.LaunchTypeFargate,
			Subnets:        []string{"subnet-1"},
			SecurityGroups: []string{"sg-1"},
		})
		assert.NoError(t, err)
		assert.Len(t, result.Tasks, 1)
		task := result.Tasks[0]
		assert.Len(t, task.Overrides.ContainerOverrides, 1)
		override := task.Overrides.ContainerOverrides[0]
		assert.Equal(t, "web", aws.ToString(override.Name))
		assert.Equal(t, []string{"migrate", "--dry-run"}, override.Command)
		assert.True(t, strings.HasPrefix(aws.ToString(task.StartedBy), "stevedore/"))
		assert.Equal(t, 1, mocker.TaskSize())
	})
	t.Run("resolves the revision through family and module version", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		result, err := s.RunTask(context.Background(), &types.RunInput{
			Family:        "webapp",
			ModuleVersion: "1.2.3",
			LaunchType:    ecstypes.LaunchTypeEc2,
			Count:         2,
		})
		assert.NoError(t, err)
		assert.Len(t, result.Tasks, 2)
	})
	t.Run("honors an explicit StartedBy", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		result, err := s.RunTask(context.Background(), &types.RunInput{
			TaskDefinition: "webapp:1",
			LaunchType:     ecstypes.LaunchTypeEc2,
			StartedBy:      "nightly-batch",
		})
		assert.NoError(t, err)
		assert.Equal(t, "nightly-batch", aws.ToString(result.Tasks[0].StartedBy))
	})
	t.Run("rejects a serverless launch without placement before any remote call", func(t *testing.T) {
		envars := test.DefaultEnvars()
		ctrl := gomock.NewController(t)
		// no expectations: any remote call fails the test
		s := NewStevedore(&types.Deps{
			Env:    envars,
			Ecs:    mock_awsiface.NewMockEcsClient(ctrl),
			Tags:   mock_awsiface.NewMockTaggingClient(ctrl),
			Events: mock_awsiface.NewMockEventsClient(ctrl),
			Time:   test.NewFakeTime(),
		})
		_, err := s.RunTask(context.Background(), &types.RunInput{
			TaskDefinition: "webapp:1",
			LaunchType:     ecstypes.LaunchTypeFargate,
		})
		var placement *TaskPlacementError
		assert.ErrorAs(t, err, &placement)
		_, err = s.RunTask(context.Background(), &types.RunInput{
			TaskDefinition: "webapp:1",
			LaunchType:     ecstypes.LaunchTypeFargate,
			Subnets:        []string{"subnet-1"},
		})
		assert.ErrorAs(t, err, &placement)
	})
	t.Run("requires a revision reference or a family and version", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		_, err := s.RunTask(context.Background(), &types.RunInput{
			LaunchType: ecstypes.LaunchTypeEc2,
		})
		assert.Error(t, err)
	})
}
