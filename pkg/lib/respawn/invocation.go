package respawn

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

// MissingProcessMode selects what is reported when no process name is given.
type MissingProcessMode int

const (
	ReportWithUsage MissingProcessMode = iota
	ReportOnly
)

// Usage returns the one-line usage hint for the given invocation name.
func Usage(invocation string) string {
	return fmt.Sprintf("Usage: %s <process_name> [process_args...]", filepath.Base(invocation))
}

// ParseInvocation turns command-line tokens into the command to relaunch.
// tokens[0] is the invocation name, tokens[1] the process name and the rest
// are forwarded untouched.
func ParseInvocation(tokens []string, mode MissingProcessMode) (lib.Command, error) {
	if len(tokens) == 0 {
		return lib.Command{}, &Error{Kind: MalformedArgs, Err: errors.New("CLI arguments are malformed.")}
	}
	if len(tokens) < 2 || tokens[1] == "" {
		e := &Error{Kind: NoProcess, Err: errors.New("No process provided to restart!")}
		if mode == ReportWithUsage {
			e.Usage = Usage(tokens[0])
		}
		return lib.Command{}, e
	}

	return lib.Command{Command: tokens[1], Args: append([]string{}, tokens[2:]...)}, nil
}
