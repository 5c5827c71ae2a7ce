package stevedore

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	eventbridgetypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stevedore-deploy/stevedore/types"
	"golang.org/x/xerrors"
)

// UpdateRule re-points a scheduled rule's ECS target at a new task
// definition revision. The rule must already have a target with ECS
// parameters; everything else about the target is preserved.
func (s *stevedore) UpdateRule(ctx context.Context, input *types.UpdateRuleInput) (*types.UpdateRuleResult, error) {
	o, err := s.di.Events.ListTargetsByRule(ctx, &eventbridge.ListTargetsByRuleInput{
		Rule: aws.String(input.Rule),
	})
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	for i := range o.Targets {
		target := o.Targets[i]
		if target.EcsParameters == nil {
			continue
		}
		target.EcsParameters.TaskDefinitionArn = aws.String(input.TaskDefinitionArn)
		if _, err := s.di.Events.PutTargets(ctx, &eventbridge.PutTargetsInput{
			Rule:    aws.String(input.Rule),
			Targets: []eventbridgetypes.Target{target},
		}); err != nil {
			return nil, &DeploymentError{Op: "update-rule", Err: err}
		}
		log.Infof("rule '%s' target '%s' now runs '%s'", input.Rule, aws.ToString(target.Id), input.TaskDefinitionArn)
		return &types.UpdateRuleResult{TargetId: aws.ToString(target.Id)}, nil
	}
	return nil, &DeploymentError{Op: "update-rule", Err: xerrors.Errorf("rule '%s' has no target with ECS parameters", input.Rule)}
}
