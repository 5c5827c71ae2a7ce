package taskdef

import (
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// EnvVar is a single environment or secret assignment addressed to one
// container. For secrets, Value holds the valueFrom reference.
type EnvVar struct {
	Container string
	Name      string
	Value     string
}

// ReadEnvFile reads KEY=VALUE lines from path and returns them as EnvVar
// triples for the given container. Blank lines, comment lines and lines
// without '=' are skipped.
func ReadEnvFile(container string, path string) ([]EnvVar, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read env file '%s': %w", path, err)
	}
	var vars []EnvVar
	for _, line := range strings.Split(string(d), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		vars = append(vars, EnvVar{Container: container, Name: kv[0], Value: kv[1]})
	}
	return vars, nil
}
