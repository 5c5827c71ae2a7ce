package stevedore

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
)

func TestStevedore_GetService(t *testing.T) {
	t.Run("describes the configured service", func(t *testing.T) {
		_, s := newTestStevedore(t, 2)
		srv, err := s.(*stevedore).GetService(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "webapp-service", srv.Name())
		assert.Equal(t, "stevedore-test", srv.Cluster())
		assert.Equal(t, int32(2), srv.DesiredCount())
	})
	t.Run("missing service is a connection error", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 1)
		delete(mocker.Services, "webapp-service")
		_, err := s.(*stevedore).GetService(context.Background())
		var connErr *ConnectionError
		assert.ErrorAs(t, err, &connErr)
	})
}

func TestService_Warnings(t *testing.T) {
	now := time.Now()
	event := func(offset time.Duration, msg string) ecstypes.ServiceEvent {
		at := now.Add(offset)
		return ecstypes.ServiceEvent{CreatedAt: &at, Message: &msg}
	}
	srv := &Service{svc: ecstypes.Service{
		Events: []ecstypes.ServiceEvent{
			event(-time.Hour, "(service webapp-service) was unable to place a task"),
			event(time.Minute, "(service webapp-service) has reached a steady state."),
			event(2*time.Minute, "(service webapp-service) was unable to place a task because no container instance met all of its requirements"),
			event(time.Minute, "(service webapp-service) was unable to consistently start tasks successfully"),
		},
	}}
	warnings := srv.Warnings(now, now.Add(10*time.Minute))
	assert.Len(t, warnings, 2)
	// oldest first, pre-window noise excluded
	assert.Contains(t, warnings[0].Message, "unable to consistently start")
	assert.Contains(t, warnings[1].Message, "unable to place")
}

func TestService_PrimaryDeployment(t *testing.T) {
	primary := "PRIMARY"
	active := "ACTIVE"
	srv := &Service{svc: ecstypes.Service{
		Deployments: []ecstypes.Deployment{
			{Status: &active, TaskDefinition: aws.String("old")},
			{Status: &primary, TaskDefinition: aws.String("new")},
		},
	}}
	d := srv.PrimaryDeployment()
	assert.NotNil(t, d)
	assert.Equal(t, "new", aws.ToString(d.TaskDefinition))
}

func TestStevedore_isDeployed(t *testing.T) {
	t.Run("steady state", func(t *testing.T) {
		_, s := newTestStevedore(t, 2)
		srv, err := s.(*stevedore).GetService(context.Background())
		assert.NoError(t, err)
		done, err := s.(*stevedore).isDeployed(context.Background(), srv)
		assert.NoError(t, err)
		assert.True(t, done)
	})
	t.Run("zero desired count with no tasks is deployed", func(t *testing.T) {
		_, s := newTestStevedore(t, 0)
		srv, err := s.(*stevedore).GetService(context.Background())
		assert.NoError(t, err)
		done, err := s.(*stevedore).isDeployed(context.Background(), srv)
		assert.NoError(t, err)
		assert.True(t, done)
	})
	t.Run("not deployed while several deployments exist", func(t *testing.T) {
		mocker, s := newTestStevedore(t, 1)
		svc := mocker.Services["webapp-service"]
		active := "ACTIVE"
		svc.Deployments = append(svc.Deployments, ecstypes.Deployment{Status: &active})
		srv, err := s.(*stevedore).GetService(context.Background())
		assert.NoError(t, err)
		done, err := s.(*stevedore).isDeployed(context.Background(), srv)
		assert.NoError(t, err)
		assert.False(t, done)
	})
}
