package stevedore

import (
	"context"
	"sort"
	"time"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/types"
	"golang.org/x/xerrors"
)

// Deploy rolls a new task definition revision out to the configured
// service. The base revision is the service's current one unless the
// input pins an ARN or a module version; mutations are applied on top,
// and a new revision is registered only when something actually changed.
func (s *stevedore) Deploy(ctx context.Context, input *types.DeployInput) (*types.DeployResult, error) {
	srv, err := s.GetService(ctx)
	if err != nil {
		return nil, err
	}
	td, err := s.baseTaskDefinition(ctx, srv, input.TaskDefinitionArn, input.ModuleVersion)
	if err != nil {
		return nil, err
	}
	oldArn := srv.TaskDefinitionArn()
	if err := applyMutations(td, &input.Mutations); err != nil {
		return nil, err
	}
	logChanges(td)
	next := td
	if td.Updated() {
		if next, err = s.RegisterTaskDefinition(ctx, td); err != nil {
			return nil, &DeploymentError{Op: "deploy", Err: err}
		}
	} else {
		log.Infof("task definition '%s' is unchanged", td.FamilyRevision())
	}
	startedAt := s.di.Time.Now()
	updated, err := s.di.Ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:        aws.String(srv.Cluster()),
		Service:        aws.String(srv.Name()),
		TaskDefinition: aws.String(next.Arn()),
	})
	if err != nil {
		return nil, &DeploymentError{Op: "deploy", Err: err}
	}
	log.Infof("service '%s' now points at '%s'", srv.Name(), next.FamilyRevision())
	if err := s.waitForDeployment(ctx, startedAt, input.IgnoreWarnings); err != nil {
		return nil, err
	}
	if input.Rule != "" {
		if _, err := s.UpdateRule(ctx, &types.UpdateRuleInput{
			Rule:              input.Rule,
			TaskDefinitionArn: next.Arn(),
		}); err != nil {
			return nil, &DeploymentError{Op: "deploy", Err: err}
		}
	}
	if input.DeregisterOld && oldArn != "" && oldArn != next.Arn() {
		if err := s.DeregisterTaskDefinition(ctx, oldArn); err != nil {
			return nil, &DeploymentError{Op: "deploy", Err: err}
		}
	}
	return &types.DeployResult{
		Service:        *updated.Service,
		TaskDefinition: next,
		OldArn:         oldArn,
	}, nil
}

// baseTaskDefinition picks the revision mutations start from: a pinned
// ARN, a module-version lookup against the service's family, or the
// revision the service is running now.
func (s *stevedore) baseTaskDefinition(ctx context.Context, srv *Service, arn string, moduleVersion string) (*taskdef.TaskDefinition, error) {
	switch {
	case arn != "":
		return s.GetTaskDefinition(ctx, arn)
	case moduleVersion != "":
		current, err := s.GetTaskDefinition(ctx, srv.TaskDefinitionArn())
		if err != nil {
			return nil, err
		}
		return s.ResolveTaskDefinition(ctx, current.Family(), moduleVersion)
	default:
		return s.GetTaskDefinition(ctx, srv.TaskDefinitionArn())
	}
}

// applyMutations replays every requested change against td in a fixed
// order. Unknown container names abort before any change is recorded.
func applyMutations(td *taskdef.TaskDefinition, m *types.Mutations) error {
	images, err := resolveImages(td, m.Images)
	if err != nil {
		return err
	}
	if m.Tag != "" || len(images) > 0 {
		if err := td.SetImages(m.Tag, images); err != nil {
			return err
		}
	}
	if err := td.SetCommands(m.Commands); err != nil {
		return err
	}
	if err := td.SetEnvironment(m.Env, m.ExclusiveEnv); err != nil {
		return err
	}
	if err := td.SetSecrets(m.Secrets, m.ExclusiveSecrets); err != nil {
		return err
	}
	td.SetRoleArn(m.RoleArn)
	td.SetExecutionRoleArn(m.ExecutionRoleArn)
	for _, key := range sortedTagKeys(m.Tags) {
		td.SetTag(key, m.Tags[key])
	}
	return nil
}

// resolveImages rebinds an image given without a container name (empty
// key) to the task definition's sole container. With several containers
// the short form is ambiguous and rejected.
func resolveImages(td *taskdef.TaskDefinition, images map[string]string) (map[string]string, error) {
	image, ok := images[""]
	if !ok {
		return images, nil
	}
	names := td.ContainerNames()
	if len(names) != 1 {
		return nil, xerrors.Errorf("task definition '%s' has %d containers; use container=image to name one", td.FamilyRevision(), len(names))
	}
	resolved := map[string]string{names[0]: image}
	for container, img := range images {
		if container != "" {
			resolved[container] = img
		}
	}
	return resolved, nil
}

func sortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func logChanges(td *taskdef.TaskDefinition) {
	for _, change := range td.Changes() {
		log.Info(change.String())
	}
}

// waitForDeployment polls the service until it settles on the new
// revision or the deploy window closes. Scheduler warnings emitted since
// startedAt fail the deploy unless ignored.
func (s *stevedore) waitForDeployment(ctx context.Context, startedAt time.Time, ignoreWarnings bool) error {
	deadline := s.di.Time.NewTimer(s.di.Env.DeployWait())
	defer deadline.Stop()
	log.Infof("waiting for deployment to complete...")
	for {
		srv, err := s.GetService(ctx)
		if err != nil {
			return err
		}
		if !ignoreWarnings {
			if warnings := srv.Warnings(startedAt, s.di.Time.Now()); len(warnings) > 0 {
				for _, w := range warnings {
					log.Errorf("%s: %s", w.At.Format(time.RFC3339), w.Message)
				}
				return &DeploymentError{Op: "deploy", Err: xerrors.Errorf("the scheduler reported %d warning(s) during rollout", len(warnings))}
			}
		}
		done, err := s.isDeployed(ctx, srv)
		if err != nil {
			return &DeploymentError{Op: "deploy", Err: err}
		}
		if done {
			log.Infof("service '%s' has reached a steady state", srv.Name())
			return nil
		}
		interval := s.di.Time.NewTimer(s.di.Env.PollInterval())
		select {
		case <-ctx.Done():
			interval.Stop()
			return ctx.Err()
		case <-deadline.C:
			interval.Stop()
			return &DeploymentError{Op: "deploy", Err: xerrors.New("deployment did not complete within the wait window")}
		case <-interval.C:
		}
	}
}
