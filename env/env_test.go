package env_test

import (
	"testing"
	"time"

	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stretchr/testify/assert"
)

func TestEnsureEnvars(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e := &env.Envars{Region: "us-west-2", Cluster: "cluster"}
		assert.NoError(t, env.EnsureEnvars(e))
	})
	t.Run("missing region", func(t *testing.T) {
		e := &env.Envars{Cluster: "cluster"}
		assert.Error(t, env.EnsureEnvars(e))
	})
	t.Run("missing cluster", func(t *testing.T) {
		e := &env.Envars{Region: "us-west-2"}
		assert.Error(t, env.EnsureEnvars(e))
	})
}

func TestMergeEnvars(t *testing.T) {
	dest := &env.Envars{Region: "us-west-2", Cluster: "old"}
	env.MergeEnvars(dest, &env.Envars{Cluster: "new", Service: "svc", DeployWaitSec: 60})
	assert.Equal(t, "us-west-2", dest.Region)
	assert.Equal(t, "new", dest.Cluster)
	assert.Equal(t, "svc", dest.Service)
	assert.Equal(t, 60, dest.DeployWaitSec)
}

func TestEnvars_Waits(t *testing.T) {
	e := &env.Envars{}
	assert.Equal(t, 5*time.Minute, e.DeployWait())
	assert.Equal(t, 2*time.Second, e.PollInterval())
	e.DeployWaitSec = 30
	e.PollIntervalSec = 1
	assert.Equal(t, 30*time.Second, e.DeployWait())
	assert.Equal(t, time.Second, e.PollInterval())
}
