package test

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
)

func (ctx *MockContext) ListTargetsByRule(_ context.Context, input *eventbridge.ListTargetsByRuleInput, _ ...func(*eventbridge.Options)) (*eventbridge.ListTargetsByRuleOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	targets, ok := ctx.Targets[*input.Rule]
	if !ok {
		return nil, fmt.Errorf("rule not found: %s", *input.Rule)
	}
	return &eventbridge.ListTargetsByRuleOutput{Targets: targets}, nil
}

func (ctx *MockContext) PutTargets(_ context.Context, input *eventbridge.PutTargetsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutTargetsOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	existing := ctx.Targets[*input.Rule]
	for _, target := range input.Targets {
		replaced := false
		for i := range existing {
			if *existing[i].Id == *target.Id {
				existing[i] = target
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, target)
		}
	}
	ctx.Targets[*input.Rule] = existing
	return &eventbridge.PutTargetsOutput{}, nil
}
