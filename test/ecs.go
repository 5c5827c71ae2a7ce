package test

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/google/uuid"
)

// CreateService seeds a service with its desired count of running tasks.
// Tests call it directly; the tool itself never creates services.
func (ctx *MockContext) CreateService(_ context.Context, input *ecs.CreateServiceInput, _ ...func(*ecs.Options)) (*ecs.CreateServiceOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	if _, ok := ctx.Services[*input.ServiceName]; ok {
		return nil, fmt.Errorf("service already exists: %s", *input.ServiceName)
	}
	st := "ACTIVE"
	arn := uuid.NewString()
	svc := &ecstypes.Service{
		ServiceArn:     &arn,
		ServiceName:    input.ServiceName,
		Status:         &st,
		DesiredCount:   aws.ToInt32(input.DesiredCount),
		TaskDefinition: input.TaskDefinition,
		LaunchType:     input.LaunchType,
	}
	ctx.Services[*input.ServiceName] = svc
	ctx.reconcileTasks(svc)
	return &ecs.CreateServiceOutput{Service: svc}, nil
}

func (ctx *MockContext) DescribeServices(_ context.Context, input *ecs.DescribeServicesInput, _ ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	var services []ecstypes.Service
	for _, name := range input.Services {
		if svc, ok := ctx.Services[name]; ok {
			services = append(services, *svc)
		}
	}
	return &ecs.DescribeServicesOutput{Services: services}, nil
}

// UpdateService applies desired count and task definition changes and
// converges the task set immediately, so a single poll observes the
// steady state.
func (ctx *MockContext) UpdateService(_ context.Context, input *ecs.UpdateServiceInput, _ ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	svc, ok := ctx.Services[*input.Service]
	if !ok {
		return nil, fmt.Errorf("service not found: %s", *input.Service)
	}
	if input.TaskDefinition != nil {
		td := ctx.TaskDefs.Get(*input.TaskDefinition)
		if td == nil {
			return nil, fmt.Errorf("task definition not found: %s", *input.TaskDefinition)
		}
		svc.TaskDefinition = td.TaskDefinitionArn
	}
	if input.DesiredCount != nil {
		svc.DesiredCount = *input.DesiredCount
	}
	ctx.reconcileTasks(svc)
	return &ecs.UpdateServiceOutput{Service: svc}, nil
}

// reconcileTasks replaces the service's task set with DesiredCount
// running tasks on the current task definition and leaves one PRIMARY
// deployment behind. Callers hold the lock.
func (ctx *MockContext) reconcileTasks(svc *ecstypes.Service) {
	group := fmt.Sprintf("service:%s", aws.ToString(svc.ServiceName))
	for arn, task := range ctx.Tasks {
		if aws.ToString(task.Group) == group {
			delete(ctx.Tasks, arn)
		}
	}
	for i := int32(0); i < svc.DesiredCount; i++ {
		ctx.startTaskLocked(svc.TaskDefinition, group, "")
	}
	svc.RunningCount = svc.DesiredCount
	primary := "PRIMARY"
	svc.Deployments = []ecstypes.Deployment{{
		Status:         &primary,
		TaskDefinition: svc.TaskDefinition,
		DesiredCount:   svc.DesiredCount,
		RunningCount:   svc.DesiredCount,
	}}
}

func (ctx *MockContext) startTaskLocked(taskDefinitionArn *string, group string, startedBy string) *ecstypes.Task {
	running := "RUNNING"
	arn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:task/%s", uuid.NewString())
	task := &ecstypes.Task{
		TaskArn:           &arn,
		TaskDefinitionArn: taskDefinitionArn,
		LastStatus:        &running,
		Group:             &group,
	}
	if startedBy != "" {
		task.StartedBy = &startedBy
	}
	ctx.Tasks[arn] = task
	return task
}

func (ctx *MockContext) ListTasks(_ context.Context, input *ecs.ListTasksInput, _ ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	var arns []string
	for arn, task := range ctx.Tasks {
		if input.ServiceName != nil {
			group := fmt.Sprintf("service:%s", *input.ServiceName)
			if aws.ToString(task.Group) != group {
				continue
			}
		}
		arns = append(arns, arn)
	}
	return &ecs.ListTasksOutput{TaskArns: arns}, nil
}

func (ctx *MockContext) DescribeTasks(_ context.Context, input *ecs.DescribeTasksInput, _ ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	var tasks []ecstypes.Task
	for _, arn := range input.Tasks {
		if task, ok := ctx.Tasks[arn]; ok {
			tasks = append(tasks, *task)
		}
	}
	return &ecs.DescribeTasksOutput{Tasks: tasks}, nil
}

func (ctx *MockContext) RunTask(_ context.Context, input *ecs.RunTaskInput, _ ...func(*ecs.Options)) (*ecs.RunTaskOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	td := ctx.TaskDefs.Get(*input.TaskDefinition)
	if td == nil {
		return nil, fmt.Errorf("task definition not found: %s", *input.TaskDefinition)
	}
	count := aws.ToInt32(input.Count)
	if count <= 0 {
		count = 1
	}
	var tasks []ecstypes.Task
	for i := int32(0); i < count; i++ {
		task := ctx.startTaskLocked(td.TaskDefinitionArn, "run-task", aws.ToString(input.StartedBy))
		task.Overrides = input.Overrides
		tasks = append(tasks, *task)
	}
	return &ecs.RunTaskOutput{Tasks: tasks}, nil
}

func (ctx *MockContext) RegisterTaskDefinition(_ context.Context, input *ecs.RegisterTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	td := ctx.TaskDefs.Register(input)
	return &ecs.RegisterTaskDefinitionOutput{
		TaskDefinition: td,
		Tags:           input.Tags,
	}, nil
}

func (ctx *MockContext) DescribeTaskDefinition(_ context.Context, input *ecs.DescribeTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	ref := *input.TaskDefinition
	td := ctx.TaskDefs.Get(ref)
	if td == nil {
		return nil, fmt.Errorf("task definition not found: %s", ref)
	}
	out := &ecs.DescribeTaskDefinitionOutput{TaskDefinition: td}
	for _, field := range input.Include {
		if field == ecstypes.TaskDefinitionFieldTags {
			out.Tags = ctx.TaskDefs.Tags(aws.ToString(td.TaskDefinitionArn))
		}
	}
	return out, nil
}

func (ctx *MockContext) DeregisterTaskDefinition(_ context.Context, input *ecs.DeregisterTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.DeregisterTaskDefinitionOutput, error) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	td := ctx.TaskDefs.Deregister(*input.TaskDefinition)
	if td == nil {
		return nil, fmt.Errorf("task definition not found: %s", *input.TaskDefinition)
	}
	return &ecs.DeregisterTaskDefinitionOutput{TaskDefinition: td}, nil
}

// RunningTasksOn counts running tasks whose definition ARN contains ref.
func (ctx *MockContext) RunningTasksOn(ref string) int {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	var n int
	for _, task := range ctx.Tasks {
		if strings.Contains(aws.ToString(task.TaskDefinitionArn), ref) &&
			aws.ToString(task.LastStatus) == "RUNNING" {
			n++
		}
	}
	return n
}
