package taskdef

import (
	"encoding/json"
	"strings"
)

// ParseCommand turns a command string into its token sequence. Strings
// starting with '[' are treated as a JSON array and must parse as one;
// anything else is split on whitespace.
func ParseCommand(command string) ([]string, error) {
	trimmed := strings.TrimSpace(command)
	if strings.HasPrefix(trimmed, "[") {
		var words []string
		if err := json.Unmarshal([]byte(trimmed), &words); err != nil {
			return nil, &CommandParseError{Command: command, Err: err}
		}
		return words, nil
	}
	return strings.Fields(command), nil
}
