package types

import (
	"context"
	"time"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/r3labs/diff/v3"
	"github.com/stevedore-deploy/stevedore/awsiface"
	"github.com/stevedore-deploy/stevedore/env"
	"github.com/stevedore-deploy/stevedore/logger"
	"github.com/stevedore-deploy/stevedore/taskdef"
)

// Deps holds every collaborator a Stevedore needs. Clients are
// constructed by the caller and passed in; nothing reaches for ambient
// AWS state.
type Deps struct {
	Env     *env.Envars
	Ecs     awsiface.EcsClient
	Tags    awsiface.TaggingClient
	Events  awsiface.EventsClient
	Time    Time
	Printer logger.Printer
}

type Time interface {
	Now() time.Time
	NewTimer(time.Duration) *time.Timer
}

type Stevedore interface {
	Deploy(ctx context.Context, input *DeployInput) (*DeployResult, error)
	Scale(ctx context.Context, input *ScaleInput) (*ScaleResult, error)
	RunTask(ctx context.Context, input *RunInput) (*RunResult, error)
	Diff(ctx context.Context, input *DiffInput) (*DiffResult, error)
	UpdateRule(ctx context.Context, input *UpdateRuleInput) (*UpdateRuleResult, error)
}

// Mutations names the task definition changes a deploy or run request
// carries. Zero values leave the corresponding field untouched.
type Mutations struct {
	// Tag rewrites the image tag of every container without an explicit
	// Images entry.
	Tag              string
	Images           map[string]string
	Commands         map[string]string
	Env              []taskdef.EnvVar
	Secrets          []taskdef.EnvVar
	ExclusiveEnv     bool
	ExclusiveSecrets bool
	RoleArn          string
	ExecutionRoleArn string
	// Tags are task definition resource tags set on the new revision.
	Tags map[string]string
}

type DeployInput struct {
	// TaskDefinitionArn deploys a specific revision instead of the
	// service's current one.
	TaskDefinitionArn string
	// ModuleVersion resolves the revision through the tag-encoded
	// compatible-version lookup against the service's family.
	ModuleVersion string
	Mutations     Mutations
	// DeregisterOld removes the previously active revision after the
	// service has been updated.
	DeregisterOld bool
	// Rule names an EventBridge scheduled rule re-pointed at the new
	// revision.
	Rule           string
	IgnoreWarnings bool
}

type DeployResult struct {
	Service        ecstypes.Service
	TaskDefinition *taskdef.TaskDefinition
	OldArn         string
}

type ScaleInput struct {
	DesiredCount int32
	// NoWait skips the post-update poll.
	NoWait bool
}

type ScaleResult struct {
	Service ecstypes.Service
}

type RunInput struct {
	// TaskDefinition is an arn or family:revision reference. Leave empty
	// and set Family+ModuleVersion to resolve through tags.
	TaskDefinition  string
	Family          string
	ModuleVersion   string
	Mutations       Mutations
	Count           int32
	StartedBy       string
	LaunchType      ecstypes.LaunchType
	Subnets         []string
	SecurityGroups  []string
	AssignPublicIp  bool
	PlatformVersion string
}

type RunResult struct {
	Tasks []ecstypes.Task
}

type DiffInput struct {
	// Base and Target are arn or family:revision references.
	Base   string
	Target string
}

type DiffResult struct {
	Changes diff.Changelog
}

type UpdateRuleInput struct {
	Rule              string
	TaskDefinitionArn string
}

type UpdateRuleResult struct {
	TargetId string
}
