package stevedore

import (
	"context"
	"strings"

	"github.com/r3labs/diff/v3"
	"github.com/stevedore-deploy/stevedore/logger"
	"github.com/stevedore-deploy/stevedore/taskdef"
	"github.com/stevedore-deploy/stevedore/types"
)

// Diff compares two registered revisions structurally and prints the
// result: additions in green, removals in red, updates in blue. The
// comparison ignores array ordering of environment, secrets and
// required attributes.
func (s *stevedore) Diff(ctx context.Context, input *types.DiffInput) (*types.DiffResult, error) {
	ref := input.Base
	if ref == "" {
		srv, err := s.GetService(ctx)
		if err != nil {
			return nil, err
		}
		ref = srv.TaskDefinitionArn()
	}
	base, err := s.GetTaskDefinition(ctx, ref)
	if err != nil {
		return nil, err
	}
	target, err := s.GetTaskDefinition(ctx, input.Target)
	if err != nil {
		return nil, err
	}
	changes, err := taskdef.StructuralDiff(base, target)
	if err != nil {
		return nil, err
	}
	s.printChangelog(base, target, changes)
	return &types.DiffResult{Changes: changes}, nil
}

func (s *stevedore) printChangelog(base *taskdef.TaskDefinition, target *taskdef.TaskDefinition, changes diff.Changelog) {
	color := &logger.Color{NoColor: s.di.Env.NoColor}
	out := s.di.Printer
	out.PrintOutf("%s\n", color.Boldf("--- %s", base.FamilyRevision()))
	out.PrintOutf("%s\n", color.Boldf("+++ %s", target.FamilyRevision()))
	if len(changes) == 0 {
		out.PrintOutf("no changes\n")
		return
	}
	for _, ch := range changes {
		path := strings.Join(ch.Path, "/")
		switch ch.Type {
		case diff.CREATE:
			out.PrintOutf("%s\n", color.Greenf("+ %s: %v", path, ch.To))
		case diff.DELETE:
			out.PrintOutf("%s\n", color.Redf("- %s: %v", path, ch.From))
		default:
			out.PrintOutf("%s\n", color.Bluef("~ %s: %v -> %v", path, ch.From, ch.To))
		}
	}
}
