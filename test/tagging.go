package test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	tagging "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	taggingtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
)

// GetResources answers tag-filtered lookups from the task definition
// repository. Every filter must match, mirroring the AND semantics of
// the real API.
func (ctx *MockContext) GetResources(_ context.Context, input *tagging.GetResourcesInput, _ ...func(*tagging.Options)) (*tagging.GetResourcesOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	var list []taggingtypes.ResourceTagMapping
	for _, td := range ctx.TaskDefs.List() {
		matched := true
		for _, filter := range input.TagFilters {
			if !ctx.TaskDefs.HasTag(td, aws.ToString(filter.Key), filter.Values) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		var tags []taggingtypes.Tag
		for _, tag := range ctx.TaskDefs.Tags(aws.ToString(td.TaskDefinitionArn)) {
			tags = append(tags, taggingtypes.Tag{Key: tag.Key, Value: tag.Value})
		}
		list = append(list, taggingtypes.ResourceTagMapping{
			ResourceARN: td.TaskDefinitionArn,
			Tags:        tags,
		})
	}
	return &tagging.GetResourcesOutput{ResourceTagMappingList: list}, nil
}
