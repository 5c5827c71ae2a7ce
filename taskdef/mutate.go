package taskdef

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// validateContainers fails with UnknownContainerError if any of the
// given names is not a container of this definition. Every setter calls
// this before mutating anything, so a failed call leaves the definition
// untouched.
func (t *TaskDefinition) validateContainers(names ...string) error {
	known := map[string]struct{}{}
	for _, n := range t.ContainerNames() {
		known[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := known[n]; !ok {
			return &UnknownContainerError{Container: n}
		}
	}
	return nil
}

// SetImages assigns container images. An entry in images replaces that
// container's image reference entirely. Containers without an explicit
// entry keep their repository and get the global tag, when one is given,
// substituted after the last ':' of the current reference. Unchanged
// images record nothing.
func (t *TaskDefinition) SetImages(tag string, images map[string]string) error {
	if err := t.validateContainers(mapKeys(images)...); err != nil {
		return err
	}
	for i := range t.def.ContainerDefinitions {
		c := &t.def.ContainerDefinitions[i]
		name := aws.ToString(c.Name)
		current := aws.ToString(c.Image)
		var next string
		if image, ok := images[name]; ok {
			next = image
		} else if tag != "" {
			repo := current
			if j := strings.LastIndex(current, ":"); j >= 0 {
				repo = current[:j]
			}
			next = repo + ":" + strings.TrimSpace(tag)
		} else {
			continue
		}
		if next == current {
			continue
		}
		t.record(Change{Container: name, Field: FieldImage, Value: next, OldValue: current})
		c.Image = aws.String(next)
	}
	return nil
}

// SetCommands replaces container commands. Each value is parsed with
// ParseCommand; parse failures surface before any container is modified.
func (t *TaskDefinition) SetCommands(commands map[string]string) error {
	if err := t.validateContainers(mapKeys(commands)...); err != nil {
		return err
	}
	parsed := map[string][]string{}
	for name, command := range commands {
		tokens, err := ParseCommand(command)
		if err != nil {
			return err
		}
		parsed[name] = tokens
	}
	for i := range t.def.ContainerDefinitions {
		c := &t.def.ContainerDefinitions[i]
		name := aws.ToString(c.Name)
		tokens, ok := parsed[name]
		if !ok || slices.Equal(tokens, c.Command) {
			continue
		}
		t.record(Change{Container: name, Field: FieldCommand, Value: tokens, OldValue: c.Command})
		c.Command = tokens
	}
	return nil
}

// SetEnvironment applies environment variable assignments grouped by
// container. With exclusive false the new variables are merged over the
// existing ones; with exclusive true each container ends up with exactly
// the given set, and containers not mentioned at all are cleared. A
// container whose merged result equals its current environment records
// nothing.
func (t *TaskDefinition) SetEnvironment(vars []EnvVar, exclusive bool) error {
	grouped := groupByContainer(vars)
	if err := t.validateContainers(mapKeys(grouped)...); err != nil {
		return err
	}
	for i := range t.def.ContainerDefinitions {
		c := &t.def.ContainerDefinitions[i]
		name := aws.ToString(c.Name)
		if next, ok := grouped[name]; ok {
			t.applyEnvironment(c, next, exclusive)
		} else if exclusive {
			t.applyEnvironment(c, map[string]string{}, true)
		}
	}
	return nil
}

func (t *TaskDefinition) applyEnvironment(c *ecstypes.ContainerDefinition, next map[string]string, exclusive bool) {
	old := map[string]string{}
	for _, kv := range c.Environment {
		old[aws.ToString(kv.Name)] = aws.ToString(kv.Value)
	}
	merged := next
	if !exclusive {
		merged = maps.Clone(old)
		maps.Copy(merged, next)
	}
	if maps.Equal(old, merged) {
		return
	}
	t.record(Change{Container: aws.ToString(c.Name), Field: FieldEnvironment, Value: merged, OldValue: old})
	c.Environment = keyValuePairs(merged)
}

// SetSecrets applies secret assignments grouped by container, with the
// same merge and exclusive semantics as SetEnvironment. EnvVar.Value is
// the valueFrom reference of the secret.
func (t *TaskDefinition) SetSecrets(vars []EnvVar, exclusive bool) error {
	grouped := groupByContainer(vars)
	if err := t.validateContainers(mapKeys(grouped)...); err != nil {
		return err
	}
	for i := range t.def.ContainerDefinitions {
		c := &t.def.ContainerDefinitions[i]
		name := aws.ToString(c.Name)
		if next, ok := grouped[name]; ok {
			t.applySecrets(c, next, exclusive)
		} else if exclusive {
			t.applySecrets(c, map[string]string{}, true)
		}
	}
	return nil
}

func (t *TaskDefinition) applySecrets(c *ecstypes.ContainerDefinition, next map[string]string, exclusive bool) {
	old := map[string]string{}
	for _, s := range c.Secrets {
		old[aws.ToString(s.Name)] = aws.ToString(s.ValueFrom)
	}
	merged := next
	if !exclusive {
		merged = maps.Clone(old)
		maps.Copy(merged, next)
	}
	if maps.Equal(old, merged) {
		return
	}
	t.record(Change{Container: aws.ToString(c.Name), Field: FieldSecrets, Value: merged, OldValue: old})
	c.Secrets = secretPairs(merged)
}

// SetRoleArn assigns the task role. Empty or unchanged values record
// nothing.
func (t *TaskDefinition) SetRoleArn(roleArn string) {
	if roleArn == "" || roleArn == t.RoleArn() {
		return
	}
	t.record(Change{Field: FieldRoleArn, Value: roleArn, OldValue: t.RoleArn()})
	t.def.TaskRoleArn = aws.String(roleArn)
}

// SetExecutionRoleArn assigns the execution role. Empty or unchanged
// values record nothing.
func (t *TaskDefinition) SetExecutionRoleArn(executionRoleArn string) {
	if executionRoleArn == "" || executionRoleArn == t.ExecutionRoleArn() {
		return
	}
	t.record(Change{Field: FieldExecutionRoleArn, Value: executionRoleArn, OldValue: t.ExecutionRoleArn()})
	t.def.ExecutionRoleArn = aws.String(executionRoleArn)
}

// SetTag updates the resource tag with the given key, appending the tag
// when the key is absent. Empty keys and values are ignored, as is an
// unchanged value.
func (t *TaskDefinition) SetTag(key string, value string) {
	if key == "" || value == "" {
		return
	}
	for i := range t.tags {
		if aws.ToString(t.tags[i].Key) != key {
			continue
		}
		if old := aws.ToString(t.tags[i].Value); old != value {
			t.record(Change{Field: TagField(key), Value: value, OldValue: old})
			t.tags[i].Value = aws.String(value)
		}
		return
	}
	t.record(Change{Field: TagField(key), Value: value, OldValue: nil})
	t.tags = append(t.tags, ecstypes.Tag{Key: aws.String(key), Value: aws.String(value)})
}

func groupByContainer(vars []EnvVar) map[string]map[string]string {
	grouped := map[string]map[string]string{}
	for _, v := range vars {
		if grouped[v.Container] == nil {
			grouped[v.Container] = map[string]string{}
		}
		grouped[v.Container][v.Name] = v.Value
	}
	return grouped
}

// keyValuePairs expands a name-keyed mapping back into the API's pair
// list. The sequence form carries no ordering contract; sorting keeps
// payloads deterministic.
func keyValuePairs(m map[string]string) []ecstypes.KeyValuePair {
	pairs := make([]ecstypes.KeyValuePair, 0, len(m))
	for _, name := range sortedKeys(m) {
		pairs = append(pairs, ecstypes.KeyValuePair{Name: aws.String(name), Value: aws.String(m[name])})
	}
	return pairs
}

func secretPairs(m map[string]string) []ecstypes.Secret {
	pairs := make([]ecstypes.Secret, 0, len(m))
	for _, name := range sortedKeys(m) {
		pairs = append(pairs, ecstypes.Secret{Name: aws.String(name), ValueFrom: aws.String(m[name])})
	}
	return pairs
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
