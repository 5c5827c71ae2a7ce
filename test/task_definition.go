package test

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// TaskDefinitionRepository keeps registered revisions per family the way
// the real control plane does, with resource tags kept alongside so the
// fake tagging API can answer tag-filtered lookups.
type TaskDefinitionRepository struct {
	families map[string]*taskDefinitionFamily
	tags     map[string][]ecstypes.Tag
}

type taskDefinitionFamily struct {
	family    string
	revision  int32
	revisions map[int32]*ecstypes.TaskDefinition
}

func NewTaskDefinitionRepository() *TaskDefinitionRepository {
	return &TaskDefinitionRepository{
		families: make(map[string]*taskDefinitionFamily),
		tags:     make(map[string][]ecstypes.Tag),
	}
}

func (t *TaskDefinitionRepository) Register(input *ecs.RegisterTaskDefinitionInput) *ecstypes.TaskDefinition {
	family := *input.Family
	f, ok := t.families[family]
	if !ok {
		f = &taskDefinitionFamily{
			family:    family,
			revisions: make(map[int32]*ecstypes.TaskDefinition),
		}
		t.families[family] = f
	}
	f.revision++
	arn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:task-definition/%s:%d", f.family, f.revision)
	td := &ecstypes.TaskDefinition{
		TaskDefinitionArn:       &arn,
		Family:                  &f.family,
		Revision:                f.revision,
		Status:                  ecstypes.TaskDefinitionStatusActive,
		ContainerDefinitions:    input.ContainerDefinitions,
		Volumes:                 input.Volumes,
		TaskRoleArn:             input.TaskRoleArn,
		ExecutionRoleArn:        input.ExecutionRoleArn,
		Cpu:                     input.Cpu,
		Memory:                  input.Memory,
		NetworkMode:             input.NetworkMode,
		RequiresCompatibilities: input.RequiresCompatibilities,
	}
	f.revisions[f.revision] = td
	t.tags[arn] = input.Tags
	return td
}

// Get resolves a full ARN or a family:revision reference.
func (t *TaskDefinitionRepository) Get(ref string) *ecstypes.TaskDefinition {
	family, revision := parseTaskDefinitionRef(ref)
	f, ok := t.families[family]
	if !ok {
		return nil
	}
	return f.revisions[revision]
}

func (t *TaskDefinitionRepository) Tags(arn string) []ecstypes.Tag {
	return t.tags[arn]
}

func (t *TaskDefinitionRepository) Deregister(ref string) *ecstypes.TaskDefinition {
	td := t.Get(ref)
	if td != nil {
		td.Status = ecstypes.TaskDefinitionStatusInactive
	}
	return td
}

// List returns every registered revision across families.
func (t *TaskDefinitionRepository) List() []*ecstypes.TaskDefinition {
	var tds []*ecstypes.TaskDefinition
	for _, f := range t.families {
		for _, td := range f.revisions {
			tds = append(tds, td)
		}
	}
	return tds
}

// HasTag reports whether the revision carries the given tag value.
func (t *TaskDefinitionRepository) HasTag(td *ecstypes.TaskDefinition, key string, values []string) bool {
	for _, tag := range t.tags[aws.ToString(td.TaskDefinitionArn)] {
		if aws.ToString(tag.Key) != key {
			continue
		}
		for _, v := range values {
			if aws.ToString(tag.Value) == v {
				return true
			}
		}
	}
	return false
}

var arnPattern = regexp.MustCompile(`arn:aws:ecs:.*:.*:task-definition/.*:\d+`)
var familyRevPattern = regexp.MustCompile(`.*:\d+`)

func parseTaskDefinitionRef(ref string) (string, int32) {
	if arnPattern.MatchString(ref) {
		split := strings.Split(ref, "/")
		ref = split[len(split)-1]
	} else if !familyRevPattern.MatchString(ref) {
		return "", 0
	}
	split := strings.Split(ref, ":")
	revision, _ := strconv.ParseInt(split[len(split)-1], 10, 32)
	return strings.Join(split[:len(split)-1], ":"), int32(revision)
}
