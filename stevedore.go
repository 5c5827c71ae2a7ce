// Package stevedore drives task definition deployments against ECS. It
// ties the mutation-tracking core in taskdef to the remote service:
// registering revisions, pointing services at them, launching one-off
// tasks with minimal overrides and resolving revisions by tag-encoded
// module versions.
package stevedore

import (
	"github.com/stevedore-deploy/stevedore/types"
)

type stevedore struct {
	di *types.Deps
}

func NewStevedore(di *types.Deps) types.Stevedore {
	if di.Time == nil {
		di.Time = &timeImpl{}
	}
	return &stevedore{di: di}
}
