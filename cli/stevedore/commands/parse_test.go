package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stevedore-deploy/stevedore/cli/stevedore/commands"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stretchr/testify/assert"
)

func TestParseImages(t *testing.T) {
	t.Run("container-qualified and bare forms", func(t *testing.T) {
		images, err := commands.ParseImages([]string{"web=myrepo/app:2.0", "myrepo/sidecar:1.1"})
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"web": "myrepo/app:2.0", "": "myrepo/sidecar:1.1"}, images)
	})
	t.Run("at most one bare image", func(t *testing.T) {
		_, err := commands.ParseImages([]string{"myrepo/app:2.0", "myrepo/worker:2.0"})
		assert.Error(t, err)
	})
	t.Run("empty container name", func(t *testing.T) {
		_, err := commands.ParseImages([]string{"=myrepo/app:2.0"})
		assert.Error(t, err)
	})
}

func TestParseCommands(t *testing.T) {
	commandsByContainer, err := commands.ParseCommands([]string{"web=serve --verbose", "worker=[\"consume\"]"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"web": "serve --verbose", "worker": "[\"consume\"]"}, commandsByContainer)
	_, err = commands.ParseCommands([]string{"no-separator"})
	assert.Error(t, err)
}

func TestParseEnvVars(t *testing.T) {
	t.Run("container=NAME=value", func(t *testing.T) {
		vars, err := commands.ParseEnvVars("env", []string{"web=LOG_LEVEL=debug", "web=EMPTY="})
		assert.NoError(t, err)
		assert.Equal(t, []taskdef.EnvVar{
			{Container: "web", Name: "LOG_LEVEL", Value: "debug"},
			{Container: "web", Name: "EMPTY", Value: ""},
		}, vars)
	})
	t.Run("value may contain equals signs", func(t *testing.T) {
		vars, err := commands.ParseEnvVars("env", []string{"web=OPTS=a=b"})
		assert.NoError(t, err)
		assert.Equal(t, "a=b", vars[0].Value)
	})
	t.Run("missing parts", func(t *testing.T) {
		_, err := commands.ParseEnvVars("env", []string{"web=NOVALUE"})
		assert.Error(t, err)
		_, err = commands.ParseEnvVars("env", []string{"=NAME=value"})
		assert.Error(t, err)
	})
}

func TestParseEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web.env")
	assert.NoError(t, os.WriteFile(path, []byte("# comment\nLOG_LEVEL=debug\n\nOPTS=a=b\n"), 0644))
	vars, err := commands.ParseEnvFiles([]string{"web=" + path})
	assert.NoError(t, err)
	assert.Equal(t, []taskdef.EnvVar{
		{Container: "web", Name: "LOG_LEVEL", Value: "debug"},
		{Container: "web", Name: "OPTS", Value: "a=b"},
	}, vars)
	_, err = commands.ParseEnvFiles([]string{"no-separator"})
	assert.Error(t, err)
	_, err = commands.ParseEnvFiles([]string{"web=" + filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestParseTags(t *testing.T) {
	tags, err := commands.ParseTags([]string{"Team=platform", "Empty="})
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"Team": "platform", "Empty": ""}, tags)
	_, err = commands.ParseTags([]string{"no-separator"})
	assert.Error(t, err)
}
