package taskdef

import (
	"fmt"
	"sort"
	"strings"
)

// Field names a mutable part of a task definition in a change record.
type Field string

const (
	FieldImage            Field = "image"
	FieldCommand          Field = "command"
	FieldEnvironment      Field = "environment"
	FieldSecrets          Field = "secrets"
	FieldRoleArn          Field = "role_arn"
	FieldExecutionRoleArn Field = "execution_role_arn"
)

// TagField names a single task definition tag, e.g. tags[ModuleVersion].
func TagField(key string) Field {
	return Field(fmt.Sprintf("tags[%s]", key))
}

// Change is one recorded field-level mutation. Container is empty for
// definition-level fields (role ARNs, tags). Value and OldValue hold a
// string for scalar fields, []string for commands and map[string]string
// for environment and secrets.
type Change struct {
	Container string
	Field     Field
	Value     any
	OldValue  any
}

func (c Change) String() string {
	switch c.Field {
	case FieldEnvironment:
		return strings.Join(mappingChangeLines(c, "environment"), "\n")
	case FieldSecrets:
		return strings.Join(mappingChangeLines(c, "secret"), "\n")
	}
	if c.Container != "" {
		return fmt.Sprintf("Changed %s of container \"%s\" to: \"%v\" (was: \"%v\")",
			c.Field, c.Container, c.Value, c.OldValue)
	}
	return fmt.Sprintf("Changed %s to: \"%v\" (was: \"%v\")", c.Field, c.Value, c.OldValue)
}

func mappingChangeLines(c Change, kind string) []string {
	value, _ := c.Value.(map[string]string)
	oldValue, _ := c.OldValue.(map[string]string)
	var lines []string
	for _, name := range sortedKeys(value) {
		if old, ok := oldValue[name]; !ok || old != value[name] {
			lines = append(lines, fmt.Sprintf("Changed %s \"%s\" of container \"%s\" to: \"%s\"",
				kind, name, c.Container, value[name]))
		}
	}
	for _, name := range sortedKeys(oldValue) {
		if _, ok := value[name]; !ok {
			lines = append(lines, fmt.Sprintf("Removed %s \"%s\" of container \"%s\"",
				kind, name, c.Container))
		}
	}
	return lines
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
