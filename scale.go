package stevedore

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/stevedore-deploy/stevedore/types"
)

// Scale sets the service's desired count without touching its task
// definition, then waits for the count to be reached unless told not to.
func (s *stevedore) Scale(ctx context.Context, input *types.ScaleInput) (*types.ScaleResult, error) {
	srv, err := s.GetService(ctx)
	if err != nil {
		return nil, err
	}
	startedAt := s.di.Time.Now()
	o, err := s.di.Ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      aws.String(srv.Cluster()),
		Service:      aws.String(srv.Name()),
		DesiredCount: aws.Int32(input.DesiredCount),
	})
	if err != nil {
		return nil, &DeploymentError{Op: "scale", Err: err}
	}
	log.Infof("desired count of service '%s' set to %d", srv.Name(), input.DesiredCount)
	if !input.NoWait {
		if err := s.waitForDeployment(ctx, startedAt, false); err != nil {
			return nil, err
		}
	}
	return &types.ScaleResult{Service: *o.Service}, nil
}
