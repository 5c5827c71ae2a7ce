package stevedore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"golang.org/x/xerrors"
)

// Service wraps a described ECS service together with the cluster it
// was looked up in.
type Service struct {
	svc     ecstypes.Service
	cluster string
}

// GetService describes the configured service. Transport failures and
// empty results both come back as ConnectionError.
func (s *stevedore) GetService(ctx context.Context) (*Service, error) {
	env := s.di.Env
	o, err := s.di.Ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  &env.Cluster,
		Services: []string{env.Service},
	})
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	if len(o.Services) == 0 {
		return nil, &ConnectionError{Err: xerrors.Errorf("service '%s' not found in cluster '%s'", env.Service, env.Cluster)}
	}
	return &Service{svc: o.Services[0], cluster: env.Cluster}, nil
}

func (s *Service) Name() string {
	return aws.ToString(s.svc.ServiceName)
}

func (s *Service) Cluster() string {
	return s.cluster
}

func (s *Service) DesiredCount() int32 {
	return s.svc.DesiredCount
}

func (s *Service) TaskDefinitionArn() string {
	return aws.ToString(s.svc.TaskDefinition)
}

// PrimaryDeployment returns the deployment currently rolled out, if any.
func (s *Service) PrimaryDeployment() *ecstypes.Deployment {
	for i := range s.svc.Deployments {
		if aws.ToString(s.svc.Deployments[i].Status) == "PRIMARY" {
			return &s.svc.Deployments[i]
		}
	}
	return nil
}

// Warning is a service event the scheduler emitted while failing to
// place or keep tasks.
type Warning struct {
	At      time.Time
	Message string
}

// Warnings collects "unable" service events created inside the given
// window, oldest first.
func (s *Service) Warnings(since time.Time, until time.Time) []Warning {
	var warnings []Warning
	for _, event := range s.svc.Events {
		msg := aws.ToString(event.Message)
		if !strings.Contains(msg, "unable") {
			continue
		}
		at := aws.ToTime(event.CreatedAt)
		if at.After(since) && at.Before(until) {
			warnings = append(warnings, Warning{At: at, Message: msg})
		}
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].At.Before(warnings[j].At) })
	return warnings
}

// isDeployed reports whether the service has settled on its current
// task definition: a single deployment whose running task count, counted
// against tasks actually in RUNNING state on that revision, matches the
// desired count.
func (s *stevedore) isDeployed(ctx context.Context, srv *Service) (bool, error) {
	if len(srv.svc.Deployments) != 1 {
		return false, nil
	}
	list, err := s.di.Ecs.ListTasks(ctx, &ecs.ListTasksInput{
		Cluster:     &srv.cluster,
		ServiceName: srv.svc.ServiceName,
	})
	if err != nil {
		return false, err
	}
	if len(list.TaskArns) == 0 {
		return srv.DesiredCount() == 0, nil
	}
	running, err := s.runningTasksCount(ctx, srv, list.TaskArns)
	if err != nil {
		return false, err
	}
	return srv.DesiredCount() == running, nil
}

func (s *stevedore) runningTasksCount(ctx context.Context, srv *Service, taskArns []string) (int32, error) {
	o, err := s.di.Ecs.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: &srv.cluster,
		Tasks:   taskArns,
	})
	if err != nil {
		return 0, err
	}
	var running int32
	for _, task := range o.Tasks {
		if aws.ToString(task.TaskDefinitionArn) == srv.TaskDefinitionArn() &&
			aws.ToString(task.LastStatus) == "RUNNING" {
			running++
		}
	}
	return running, nil
}
