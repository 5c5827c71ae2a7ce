// Package taskdef holds the in-memory representation of an ECS task
// definition and the mutation operations that track their own changes.
// A TaskDefinition starts as a snapshot of a registered revision; named
// setters modify specific fields and append a Change record only when a
// value actually changes. The accumulated change log drives minimal
// launch-time overrides, while StructuralDiff provides an independent
// report-oriented comparison between two revisions.
package taskdef

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

type TaskDefinition struct {
	def     ecstypes.TaskDefinition
	tags    []ecstypes.Tag
	changes []Change
}

// New wraps a task definition snapshot and its resource tags. The change
// log starts empty; the snapshot is the baseline all mutations are
// recorded against.
func New(def ecstypes.TaskDefinition, tags []ecstypes.Tag) *TaskDefinition {
	return &TaskDefinition{def: def, tags: tags}
}

func FromDescribe(o *ecs.DescribeTaskDefinitionOutput) *TaskDefinition {
	return New(*o.TaskDefinition, o.Tags)
}

func FromRegister(o *ecs.RegisterTaskDefinitionOutput) *TaskDefinition {
	return New(*o.TaskDefinition, o.Tags)
}

func (t *TaskDefinition) Family() string {
	return aws.ToString(t.def.Family)
}

func (t *TaskDefinition) Revision() int32 {
	return t.def.Revision
}

func (t *TaskDefinition) Arn() string {
	return aws.ToString(t.def.TaskDefinitionArn)
}

// FamilyRevision returns the family:revision reference accepted by the
// service and run-task APIs.
func (t *TaskDefinition) FamilyRevision() string {
	return fmt.Sprintf("%s:%d", t.Family(), t.def.Revision)
}

func (t *TaskDefinition) RoleArn() string {
	return aws.ToString(t.def.TaskRoleArn)
}

func (t *TaskDefinition) ExecutionRoleArn() string {
	return aws.ToString(t.def.ExecutionRoleArn)
}

func (t *TaskDefinition) ContainerNames() []string {
	var names []string
	for _, c := range t.def.ContainerDefinitions {
		names = append(names, aws.ToString(c.Name))
	}
	return names
}

// Images returns the current container name to image mapping.
func (t *TaskDefinition) Images() map[string]string {
	images := map[string]string{}
	for _, c := range t.def.ContainerDefinitions {
		images[aws.ToString(c.Name)] = aws.ToString(c.Image)
	}
	return images
}

func (t *TaskDefinition) Tags() []ecstypes.Tag {
	return t.tags
}

// Tag returns the value of the resource tag with the given key.
func (t *TaskDefinition) Tag(key string) (string, bool) {
	for _, tag := range t.tags {
		if aws.ToString(tag.Key) == key {
			return aws.ToString(tag.Value), true
		}
	}
	return "", false
}

// Changes returns the ordered change log accumulated by setters.
func (t *TaskDefinition) Changes() []Change {
	return t.changes
}

// Updated reports whether any setter recorded a change.
func (t *TaskDefinition) Updated() bool {
	return len(t.changes) > 0
}

func (t *TaskDefinition) record(c Change) {
	t.changes = append(t.changes, c)
}

func (t *TaskDefinition) container(name string) *ecstypes.ContainerDefinition {
	for i := range t.def.ContainerDefinitions {
		if aws.ToString(t.def.ContainerDefinitions[i].Name) == name {
			return &t.def.ContainerDefinitions[i]
		}
	}
	return nil
}

// RegisterInput builds the registration request for the current state of
// the definition. Revision, ARN, status, registration timestamps and
// registrant are not part of the input type, so a re-registration
// naturally creates a fresh revision.
func (t *TaskDefinition) RegisterInput() *ecs.RegisterTaskDefinitionInput {
	d := t.def
	return &ecs.RegisterTaskDefinitionInput{
		Family:                  d.Family,
		ContainerDefinitions:    d.ContainerDefinitions,
		Volumes:                 d.Volumes,
		TaskRoleArn:             d.TaskRoleArn,
		ExecutionRoleArn:        d.ExecutionRoleArn,
		Cpu:                     d.Cpu,
		Memory:                  d.Memory,
		NetworkMode:             d.NetworkMode,
		IpcMode:                 d.IpcMode,
		PidMode:                 d.PidMode,
		PlacementConstraints:    d.PlacementConstraints,
		ProxyConfiguration:      d.ProxyConfiguration,
		RequiresCompatibilities: d.RequiresCompatibilities,
		RuntimePlatform:         d.RuntimePlatform,
		EphemeralStorage:        d.EphemeralStorage,
		InferenceAccelerators:   d.InferenceAccelerators,
		Tags:                    t.tags,
	}
}
