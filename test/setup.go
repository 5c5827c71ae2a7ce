package test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/golang/mock/gomock"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/mocks/mock_awsiface"
)

func DefaultEnvars() *env.Envars {
	return &env.Envars{
		Region:  "us-west-2",
		Cluster: "stevedore-test",
		Service: "webapp-service",
	}
}

// DefaultTaskDefinitionInput is the revision every test starts from: a
// web container with an image tag to rewrite, environment and a secret,
// and a worker container beside it.
func DefaultTaskDefinitionInput(family string, moduleVersion string) *ecs.RegisterTaskDefinitionInput {
	return &ecs.RegisterTaskDefinitionInput{
		Family: aws.String(family),
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{
				Name:    aws.String("web"),
				Image:   aws.String("myrepo/app:1.0"),
				Command: []string{"serve"},
				Environment: []ecstypes.KeyValuePair{
					{Name: aws.String("LOG_LEVEL"), Value: aws.String("info")},
				},
				Secrets: []ecstypes.Secret{
					{Name: aws.String("DB_PASSWORD"), ValueFrom: aws.String("arn:aws:ssm:us-west-2:012345678910:parameter/db-password")},
				},
			},
			{
				Name:  aws.String("worker"),
				Image: aws.String("myrepo/worker:1.0"),
			},
		},
		Tags: []ecstypes.Tag{
			{Key: aws.String("Family"), Value: aws.String(family)},
			{Key: aws.String("ModuleVersion"), Value: aws.String(moduleVersion)},
		},
	}
}

// Setup wires every fake handler behind gomock clients and seeds the
// remote state: one registered revision and the service running
// currentTaskCount tasks on it.
func Setup(ctrl *gomock.Controller, envars *env.Envars, currentTaskCount int32) (
	*MockContext,
	*mock_awsiface.MockEcsClient,
	*mock_awsiface.MockTaggingClient,
	*mock_awsiface.MockEventsClient,
) {
	mocker := NewMockContext()

	ecsMock := mock_awsiface.NewMockEcsClient(ctrl)
	ecsMock.EXPECT().DescribeServices(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.DescribeServices).AnyTimes()
	ecsMock.EXPECT().UpdateService(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.UpdateService).AnyTimes()
	ecsMock.EXPECT().DescribeTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.DescribeTaskDefinition).AnyTimes()
	ecsMock.EXPECT().RegisterTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.RegisterTaskDefinition).AnyTimes()
	ecsMock.EXPECT().DeregisterTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.DeregisterTaskDefinition).AnyTimes()
	ecsMock.EXPECT().RunTask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.RunTask).AnyTimes()
	ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.ListTasks).AnyTimes()
	ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.DescribeTasks).AnyTimes()

	tagsMock := mock_awsiface.NewMockTaggingClient(ctrl)
	tagsMock.EXPECT().GetResources(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.GetResources).AnyTimes()

	eventsMock := mock_awsiface.NewMockEventsClient(ctrl)
	eventsMock.EXPECT().ListTargetsByRule(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.ListTargetsByRule).AnyTimes()
	eventsMock.EXPECT().PutTargets(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(mocker.PutTargets).AnyTimes()

	td, _ := mocker.RegisterTaskDefinition(context.Background(), DefaultTaskDefinitionInput("webapp", "1.2.3"))
	_, _ = mocker.CreateService(context.Background(), &ecs.CreateServiceInput{
		ServiceName:    aws.String(envars.Service),
		Cluster:        aws.String(envars.Cluster),
		DesiredCount:   aws.Int32(currentTaskCount),
		TaskDefinition: td.TaskDefinition.TaskDefinitionArn,
		LaunchType:     ecstypes.LaunchTypeFargate,
	})
	return mocker, ecsMock, tagsMock, eventsMock
}
