package stevedore

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/test"
	"github.com/stevedore-deploy/stevedore/types"
	"github.com/stretchr/testify/assert"
)

func newTestStevedore(t *testing.T, taskCount int32) (*test.MockContext, types.Stevedore) {
	envars := test.DefaultEnvars()
	ctrl := gomock.NewController(t)
	mocker, ecsMock, tagsMock, eventsMock := test.Setup(ctrl, envars, taskCount)
	s := NewStevedore(&types.Deps{
		Env:    envars,
		Ecs:    ecsMock,
		Tags:   tagsMock,
		Events: eventsMock,
		Time:   test.NewFakeTime(),
	})
	return mocker, s
}

func TestStevedore_ResolveTaskDefinition(t *testing.T) {
	t.Run("finds a revision tagged with the exact version", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		td, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "webapp", "1.2.3")
		assert.NoError(t, err)
		assert.Equal(t, "webapp:1", td.FamilyRevision())
	})
	t.Run("accepts any patch inside the ten-release window", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 0)
		_, _ = mocker.RegisterTaskDefinition(context.Background(), test.DefaultTaskDefinitionInput("webapp", "1.2.9"))
		td, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "webapp", "1.2.0")
		assert.NoError(t, err)
		assert.Equal(t, "webapp:2", td.FamilyRevision())
	})
	t.Run("prefers the highest revision among matches", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 0)
		_, _ = mocker.RegisterTaskDefinition(context.Background(), test.DefaultTaskDefinitionInput("webapp", "1.2.4"))
		_, _ = mocker.RegisterTaskDefinition(context.Background(), test.DefaultTaskDefinitionInput("webapp", "1.2.5"))
		td, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "webapp", "1.2.3")
		assert.NoError(t, err)
		assert.Equal(t, "webapp:3", td.FamilyRevision())
	})
	t.Run("does not reach back to older patches", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		_, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "webapp", "1.2.4")
		var unknown *UnknownTaskDefinitionError
		assert.ErrorAs(t, err, &unknown)
		assert.Equal(t, "webapp", unknown.Family)
		assert.Equal(t, "1.2.4", unknown.Version)
	})
	t.Run("window is bounded at ten patches", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 0)
		_, _ = mocker.RegisterTaskDefinition(context.Background(), test.DefaultTaskDefinitionInput("api", "1.2.10"))
		td, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "api", "1.2.1")
		assert.NoError(t, err)
		assert.Equal(t, "api:1", td.FamilyRevision())
		_, err = s.(*stevedore).ResolveTaskDefinition(context.Background(), "api", "1.2.0")
		var unknown *UnknownTaskDefinitionError
		assert.ErrorAs(t, err, &unknown)
	})
	t.Run("rejects non-semver versions", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		_, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "webapp", "latest")
		assert.Error(t, err)
	})
	t.Run("unknown family", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		_, err := s.(*stevedore).ResolveTaskDefinition(context.Background(), "ghost", "1.2.3")
		var unknown *UnknownTaskDefinitionError
		assert.ErrorAs(t, err, &unknown)
	})
}
