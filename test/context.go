package test

import (
	"sync"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	eventbridgetypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
)

// MockContext is an in-memory rendition of the remote state the tool
// talks to: services, tasks, registered task definitions and scheduled
// rule targets. Every fake client method mutates it under one lock so
// tests can drive concurrent polls safely.
type MockContext struct {
	Services map[string]*ecstypes.Service
	Tasks    map[string]*ecstypes.Task
	TaskDefs *TaskDefinitionRepository
	Targets  map[string][]eventbridgetypes.Target
	mux      sync.Mutex
}

func NewMockContext() *MockContext {
	return &MockContext{
		Services: make(map[string]*ecstypes.Service),
		Tasks:    make(map[string]*ecstypes.Task),
		TaskDefs: NewTaskDefinitionRepository(),
		Targets:  make(map[string][]eventbridgetypes.Target),
	}
}

func (ctx *MockContext) GetService(name string) (*ecstypes.Service, bool) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	s, ok := ctx.Services[name]
	return s, ok
}

func (ctx *MockContext) GetTask(arn string) (*ecstypes.Task, bool) {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	t, ok := ctx.Tasks[arn]
	return t, ok
}

func (ctx *MockContext) TaskSize() int {
	ctx.mux.Lock()
	defer ctx.mux.Unlock()
	return len(ctx.Tasks)
}
