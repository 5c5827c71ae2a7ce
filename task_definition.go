package stevedore

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stevedore-deploy/stevedore/taskdef"
)

// GetTaskDefinition describes a revision by arn or family:revision
// reference, tags included.
func (s *stevedore) GetTaskDefinition(ctx context.Context, ref string) (*taskdef.TaskDefinition, error) {
	o, err := s.di.Ecs.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: &ref,
		Include:        []ecstypes.TaskDefinitionField{ecstypes.TaskDefinitionFieldTags},
	})
	if err != nil {
		return nil, &UnknownTaskDefinitionError{Arn: ref, Err: err}
	}
	return taskdef.FromDescribe(o), nil
}

// RegisterTaskDefinition registers the current state of td as a new
// revision of its family and returns the fresh baseline.
func (s *stevedore) RegisterTaskDefinition(ctx context.Context, td *taskdef.TaskDefinition) (*taskdef.TaskDefinition, error) {
	o, err := s.di.Ecs.RegisterTaskDefinition(ctx, td.RegisterInput())
	if err != nil {
		return nil, err
	}
	next := taskdef.FromRegister(o)
	log.Infof("task definition '%s' has been registered", next.FamilyRevision())
	return next, nil
}

func (s *stevedore) DeregisterTaskDefinition(ctx context.Context, arn string) error {
	if _, err := s.di.Ecs.DeregisterTaskDefinition(ctx, &ecs.DeregisterTaskDefinitionInput{
		TaskDefinition: &arn,
	}); err != nil {
		return err
	}
	log.Infof("task definition '%s' has been deregistered", arn)
	return nil
}
