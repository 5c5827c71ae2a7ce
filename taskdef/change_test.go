package taskdef_test

import (
	"testing"

	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stretchr/testify/assert"
)

func TestChange_String(t *testing.T) {
	t.Run("container field", func(t *testing.T) {
		c := taskdef.Change{
			Container: "web",
			Field:     taskdef.FieldImage,
			Value:     "myrepo/app:2.0",
			OldValue:  "myrepo/app:1.0",
		}
		assert.Equal(t, `Changed image of container "web" to: "myrepo/app:2.0" (was: "myrepo/app:1.0")`, c.String())
	})
	t.Run("definition-level field", func(t *testing.T) {
		c := taskdef.Change{
			Field:    taskdef.TagField("ModuleVersion"),
			Value:    "1.2.4",
			OldValue: "1.2.3",
		}
		assert.Equal(t, `Changed tags[ModuleVersion] to: "1.2.4" (was: "1.2.3")`, c.String())
	})
	t.Run("environment renders one line per changed and removed key", func(t *testing.T) {
		c := taskdef.Change{
			Container: "web",
			Field:     taskdef.FieldEnvironment,
			Value:     map[string]string{"a": "1", "b": "3"},
			OldValue:  map[string]string{"b": "2", "c": "4"},
		}
		assert.Equal(t,
			"Changed environment \"a\" of container \"web\" to: \"1\"\n"+
				"Changed environment \"b\" of container \"web\" to: \"3\"\n"+
				"Removed environment \"c\" of container \"web\"",
			c.String())
	})
	t.Run("secrets render with their own label", func(t *testing.T) {
		c := taskdef.Change{
			Container: "web",
			Field:     taskdef.FieldSecrets,
			Value:     map[string]string{"API_KEY": "arn:key"},
			OldValue:  map[string]string{},
		}
		assert.Equal(t, `Changed secret "API_KEY" of container "web" to: "arn:key"`, c.String())
	})
}
