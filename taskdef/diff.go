package taskdef

import (
	"encoding/json"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/r3labs/diff/v3"
	"golang.org/x/xerrors"
)

// fields of the snapshot that are modeled explicitly; everything else is
// carried opaquely as additional properties.
var modeledFields = []string{
	"Family", "Revision", "Status", "TaskDefinitionArn",
	"ContainerDefinitions", "Volumes", "RequiresAttributes",
	"TaskRoleArn", "ExecutionRoleArn", "Compatibilities",
	"RegisteredAt", "RegisteredBy", "DeregisteredAt",
}

// StructuralDiff compares two task definition snapshots and returns a
// generic add/remove/change report. Containers are indexed by name with
// environment and secrets normalized into name-keyed mappings, and
// required attribute names are sorted, so array ordering alone never
// registers as a change. The result is informational; launch-time
// overrides are built from the change log, never from this diff.
func StructuralDiff(a *TaskDefinition, b *TaskDefinition) (diff.Changelog, error) {
	compositeA, err := a.composite()
	if err != nil {
		return nil, err
	}
	compositeB, err := b.composite()
	if err != nil {
		return nil, err
	}
	changelog, err := diff.Diff(compositeA, compositeB)
	if err != nil {
		return nil, xerrors.Errorf("failed to diff task definitions: %w", err)
	}
	return changelog, nil
}

func (t *TaskDefinition) composite() (map[string]any, error) {
	raw, err := toMap(t.def)
	if err != nil {
		return nil, xerrors.Errorf("failed to normalize task definition '%s': %w", t.Arn(), err)
	}
	containers := map[string]any{}
	for _, c := range t.def.ContainerDefinitions {
		m, err := toMap(c)
		if err != nil {
			return nil, xerrors.Errorf("failed to normalize container '%s': %w", aws.ToString(c.Name), err)
		}
		env := map[string]any{}
		for _, kv := range c.Environment {
			env[aws.ToString(kv.Name)] = aws.ToString(kv.Value)
		}
		m["Environment"] = env
		secrets := map[string]any{}
		for _, s := range c.Secrets {
			secrets[aws.ToString(s.Name)] = aws.ToString(s.ValueFrom)
		}
		m["Secrets"] = secrets
		containers[aws.ToString(c.Name)] = m
	}
	var attributes []string
	for _, attr := range t.def.RequiresAttributes {
		attributes = append(attributes, aws.ToString(attr.Name))
	}
	sort.Strings(attributes)
	var compatibilities []string
	for _, c := range t.def.Compatibilities {
		compatibilities = append(compatibilities, string(c))
	}
	additional := map[string]any{}
	for k, v := range raw {
		additional[k] = v
	}
	for _, k := range modeledFields {
		delete(additional, k)
	}
	return map[string]any{
		"containers":            containers,
		"volumes":               raw["Volumes"],
		"requires_attributes":   attributes,
		"role_arn":              t.RoleArn(),
		"execution_role_arn":    t.ExecutionRoleArn(),
		"compatibilities":       compatibilities,
		"additional_properties": additional,
	}, nil
}

// toMap round-trips a typed SDK value through JSON to get a uniform
// nested map both snapshots share.
func toMap(v any) (map[string]any, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(d, &m); err != nil {
		return nil, err
	}
	return m, nil
}
