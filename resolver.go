package stevedore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	tagging "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	taggingtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"golang.org/x/xerrors"
)

const familyTagKey = "Family"
const moduleVersionTagKey = "ModuleVersion"

// patchWindow bounds the forward-compatibility search: the requested
// patch and the nine following releases.
const patchWindow = 10

// ResolveTaskDefinition finds the newest registered revision of family
// whose ModuleVersion tag falls inside the patch window starting at the
// requested version. Revisions are ranked by the numeric revision suffix
// of their ARN.
func (s *stevedore) ResolveTaskDefinition(ctx context.Context, family string, version string) (*taskdef.TaskDefinition, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, xerrors.Errorf("invalid module version '%s': %w", version, err)
	}
	candidates := make([]string, 0, patchWindow)
	for i := 0; i < patchWindow; i++ {
		candidates = append(candidates, fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch()+uint64(i)))
	}
	log.Infof("looking up task definition [Family=%s, ModuleVersion=%s]", family, version)
	o, err := s.di.Tags.GetResources(ctx, &tagging.GetResourcesInput{
		ResourceTypeFilters: []string{"ecs:task-definition"},
		TagFilters: []taggingtypes.TagFilter{
			{Key: aws.String(familyTagKey), Values: []string{family}},
			{Key: aws.String(moduleVersionTagKey), Values: candidates},
		},
	})
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	var arns []string
	for _, item := range o.ResourceTagMappingList {
		arns = append(arns, aws.ToString(item.ResourceARN))
	}
	if len(arns) == 0 {
		return nil, &UnknownTaskDefinitionError{Family: family, Version: version}
	}
	sort.Slice(arns, func(i, j int) bool {
		return revisionOf(arns[i]) > revisionOf(arns[j])
	})
	td, err := s.GetTaskDefinition(ctx, arns[0])
	if err != nil {
		return nil, err
	}
	found, _ := td.Tag(moduleVersionTagKey)
	log.Infof("found task definition '%s' [Family=%s, ModuleVersion=%s]", td.FamilyRevision(), family, found)
	return td, nil
}

// revisionOf parses the numeric revision from the trailing path segment
// of a task definition ARN.
func revisionOf(arn string) int {
	i := strings.LastIndex(arn, ":")
	if i < 0 {
		return 0
	}
	rev, err := strconv.Atoi(arn[i+1:])
	if err != nil {
		return 0
	}
	return rev
}
