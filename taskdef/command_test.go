package taskdef_test

import (
	"testing"

	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Run("whitespace words", func(t *testing.T) {
		tokens, err := taskdef.ParseCommand("echo hi")
		assert.NoError(t, err)
		assert.Equal(t, []string{"echo", "hi"}, tokens)
	})
	t.Run("json list", func(t *testing.T) {
		tokens, err := taskdef.ParseCommand(`["sh","-c","echo hi"]`)
		assert.NoError(t, err)
		assert.Equal(t, []string{"sh", "-c", "echo hi"}, tokens)
	})
	t.Run("json list with surrounding whitespace", func(t *testing.T) {
		tokens, err := taskdef.ParseCommand(`  ["ls"] `)
		assert.NoError(t, err)
		assert.Equal(t, []string{"ls"}, tokens)
	})
	t.Run("malformed json list", func(t *testing.T) {
		_, err := taskdef.ParseCommand("[invalid")
		var parseErr *taskdef.CommandParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "[invalid", parseErr.Command)
	})
	t.Run("empty string", func(t *testing.T) {
		tokens, err := taskdef.ParseCommand("")
		assert.NoError(t, err)
		assert.Empty(t, tokens)
	})
}
