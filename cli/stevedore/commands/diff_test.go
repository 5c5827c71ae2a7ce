package commands_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/stretchr/testify/assert"
)

func TestDiffCommand(t *testing.T) {
	t.Run("binds base and target", func(t *testing.T) {
		app, _, mock := setup(t)
		var got *types.DiffInput
		mock.EXPECT().Diff(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *types.DiffInput) (*types.DiffResult, error) {
				got = input
				return &types.DiffResult{}, nil
			})
		err := app.Run([]string{"stevedore", "diff",
			"--region", "us-west-2",
			"--cluster", "stevedore-test",
			"--base", "webapp:1",
			"--target", "webapp:2",
		})
		assert.NoError(t, err)
		assert.Equal(t, "webapp:1", got.Base)
		assert.Equal(t, "webapp:2", got.Target)
	})
	t.Run("requires a base or a service for the fallback", func(t *testing.T) {
		app, _, _ := setup(t)
		err := app.Run([]string{"stevedore", "diff",
			"--region", "us-west-2",
			"--cluster", "stevedore-test",
			"--target", "webapp:2",
		})
		assert.Error(t, err)
	})
}
