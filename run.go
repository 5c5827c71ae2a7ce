package stevedore

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/google/uuid"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/types"
	"golang.org/x/xerrors"
)

const defaultPlatformVersion = "LATEST"

// RunTask launches one-off tasks from an existing revision. Mutations
// are not registered as a new revision; they become launch-time
// overrides instead. Placement parameters are validated before the first
// remote call.
func (s *stevedore) RunTask(ctx context.Context, input *types.RunInput) (*types.RunResult, error) {
	if err := validatePlacement(input); err != nil {
		return nil, err
	}
	td, err := s.runTaskDefinition(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := applyMutations(td, &input.Mutations); err != nil {
		return nil, err
	}
	logChanges(td)
	count := input.Count
	if count <= 0 {
		count = 1
	}
	startedBy := input.StartedBy
	if startedBy == "" {
		startedBy = fmt.Sprintf("stevedore/%s", uuid.NewString())
	}
	req := &ecs.RunTaskInput{
		Cluster:        aws.String(s.di.Env.Cluster),
		TaskDefinition: aws.String(td.Arn()),
		Count:          aws.Int32(count),
		StartedBy:      aws.String(startedBy),
		LaunchType:     input.LaunchType,
	}
	if overrides := td.Overrides(); len(overrides) > 0 {
		req.Overrides = taskdef.TaskOverride(overrides)
	}
	if len(input.Subnets) > 0 {
		assign := ecstypes.AssignPublicIpDisabled
		if input.AssignPublicIp {
			assign = ecstypes.AssignPublicIpEnabled
		}
		req.NetworkConfiguration = &ecstypes.NetworkConfiguration{
			AwsvpcConfiguration: &ecstypes.AwsVpcConfiguration{
				Subnets:        input.Subnets,
				SecurityGroups: input.SecurityGroups,
				AssignPublicIp: assign,
			},
		}
	}
	if input.LaunchType == ecstypes.LaunchTypeFargate {
		pv := input.PlatformVersion
		if pv == "" {
			pv = defaultPlatformVersion
		}
		req.PlatformVersion = aws.String(pv)
	}
	o, err := s.di.Ecs.RunTask(ctx, req)
	if err != nil {
		return nil, &DeploymentError{Op: "run", Err: err}
	}
	if len(o.Failures) > 0 {
		f := o.Failures[0]
		return nil, &DeploymentError{Op: "run", Err: xerrors.Errorf("task failed to start: %s (%s)",
			aws.ToString(f.Reason), aws.ToString(f.Detail))}
	}
	for _, task := range o.Tasks {
		log.Infof("task '%s' has been started", aws.ToString(task.TaskArn))
	}
	return &types.RunResult{Tasks: o.Tasks}, nil
}

// validatePlacement rejects serverless launches that cannot be placed.
// Fargate tasks run in awsvpc mode and need a subnet and a security
// group; the check runs before anything is looked up remotely.
func validatePlacement(input *types.RunInput) error {
	if input.LaunchType != ecstypes.LaunchTypeFargate {
		return nil
	}
	if len(input.Subnets) == 0 {
		return &TaskPlacementError{Message: "FARGATE launch type requires at least one subnet"}
	}
	if len(input.SecurityGroups) == 0 {
		return &TaskPlacementError{Message: "FARGATE launch type requires at least one security group"}
	}
	return nil
}

func (s *stevedore) runTaskDefinition(ctx context.Context, input *types.RunInput) (*taskdef.TaskDefinition, error) {
	if input.TaskDefinition != "" {
		return s.GetTaskDefinition(ctx, input.TaskDefinition)
	}
	if input.Family != "" && input.ModuleVersion != "" {
		return s.ResolveTaskDefinition(ctx, input.Family, input.ModuleVersion)
	}
	return nil, xerrors.New("either a task definition reference or a family and module version is required")
}
