package taskdef

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// ContainerOverride is the minimal per-container delta derived from the
// change log. Only fields that actually changed are populated; an entry
// with just a name marks a container whose recorded changes (e.g. image)
// have no launch-time override form.
type ContainerOverride struct {
	Name        string
	Command     []string
	Environment map[string]string
	Secrets     map[string]string
}

// Overrides folds the change log into one override per container, in
// order of each container's first appearance. Records are grouped by
// container name, so interleaved mutations of several containers still
// produce a single entry each. Definition-level records (roles, tags)
// carry no container and are skipped.
func (t *TaskDefinition) Overrides() []ContainerOverride {
	index := map[string]int{}
	var overrides []ContainerOverride
	for _, ch := range t.changes {
		if ch.Container == "" {
			continue
		}
		i, ok := index[ch.Container]
		if !ok {
			i = len(overrides)
			index[ch.Container] = i
			overrides = append(overrides, ContainerOverride{Name: ch.Container})
		}
		switch ch.Field {
		case FieldCommand:
			overrides[i].Command, _ = ch.Value.([]string)
		case FieldEnvironment:
			overrides[i].Environment, _ = ch.Value.(map[string]string)
		case FieldSecrets:
			overrides[i].Secrets, _ = ch.Value.(map[string]string)
		}
	}
	return overrides
}

// TaskOverride expands container overrides into the run-task payload.
// The remote override type accepts command and environment only; secret
// deltas stay in the domain representation.
func TaskOverride(overrides []ContainerOverride) *ecstypes.TaskOverride {
	var containers []ecstypes.ContainerOverride
	for _, o := range overrides {
		c := ecstypes.ContainerOverride{Name: aws.String(o.Name)}
		if o.Command != nil {
			c.Command = o.Command
		}
		if o.Environment != nil {
			c.Environment = keyValuePairs(o.Environment)
		}
		containers = append(containers, c)
	}
	return &ecstypes.TaskOverride{ContainerOverrides: containers}
}
