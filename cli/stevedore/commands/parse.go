package commands

import (
	"strings"

	"github.com/stevedore-deploy/stevedore/taskdef"
	"golang.org/x/xerrors"
)

// ParseImages splits --image values. "container=image" binds the image
// to a container; a bare "image" is kept under the empty key and bound
// to the sole container later, when the task definition is known.
func ParseImages(specs []string) (map[string]string, error) {
	images := map[string]string{}
	for _, spec := range specs {
		container, image, ok := strings.Cut(spec, "=")
		if !ok {
			if _, dup := images[""]; dup {
				return nil, xerrors.Errorf("only one --image may omit the container name")
			}
			images[""] = spec
			continue
		}
		if container == "" || image == "" {
			return nil, xerrors.Errorf("invalid --image '%s': expected [container=]image", spec)
		}
		images[container] = image
	}
	return images, nil
}

// ParseCommands splits --command values of the form container=command.
func ParseCommands(specs []string) (map[string]string, error) {
	commands := map[string]string{}
	for _, spec := range specs {
		container, command, ok := strings.Cut(spec, "=")
		if !ok || container == "" {
			return nil, xerrors.Errorf("invalid --command '%s': expected container=command", spec)
		}
		commands[container] = command
	}
	return commands, nil
}

// ParseEnvVars splits --env or --secret values of the form
// container=NAME=value.
func ParseEnvVars(flag string, specs []string) ([]taskdef.EnvVar, error) {
	var vars []taskdef.EnvVar
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, xerrors.Errorf("invalid --%s '%s': expected container=NAME=value", flag, spec)
		}
		vars = append(vars, taskdef.EnvVar{Container: parts[0], Name: parts[1], Value: parts[2]})
	}
	return vars, nil
}

// ParseEnvFiles reads --env-file values of the form container=path.
func ParseEnvFiles(specs []string) ([]taskdef.EnvVar, error) {
	var vars []taskdef.EnvVar
	for _, spec := range specs {
		container, path, ok := strings.Cut(spec, "=")
		if !ok || container == "" || path == "" {
			return nil, xerrors.Errorf("invalid --env-file '%s': expected container=path", spec)
		}
		fileVars, err := taskdef.ReadEnvFile(container, path)
		if err != nil {
			return nil, err
		}
		vars = append(vars, fileVars...)
	}
	return vars, nil
}

// ParseTags splits --set-tag values of the form key=value.
func ParseTags(specs []string) (map[string]string, error) {
	tags := map[string]string{}
	for _, spec := range specs {
		key, value, ok := strings.Cut(spec, "=")
		if !ok || key == "" {
			return nil, xerrors.Errorf("invalid --set-tag '%s': expected key=value", spec)
		}
		tags[key] = value
	}
	return tags, nil
}
