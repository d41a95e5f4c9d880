package respawn

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal respawn failures. Each kind maps to its own exit code.
type ErrorKind int

const (
	MalformedArgs ErrorKind = iota + 1
	NoProcess
	ChildSpawnFailed
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedArgs:
		return "MalformedArgs"
	case NoProcess:
		return "NoProcess"
	case ChildSpawnFailed:
		return "ChildSpawnFailed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by Respawner.Run for every fatal condition.
type Error struct {
	Kind ErrorKind
	// Usage is a one-line usage hint, set only for NoProcess in ReportWithUsage mode.
	Usage string
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Exit codes returned by the CLI.
const (
	ExitOK               = 0
	ExitMalformedArgs    = 1
	ExitNoProcess        = 2
	ExitChildSpawnFailed = 3
)

// ExitCode maps an error returned by Run to the process exit code.
// Errors that are not *Error are treated as malformed invocations.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var re *Error
	if !errors.As(err, &re) {
		return ExitMalformedArgs
	}
	switch re.Kind {
	case NoProcess:
		return ExitNoProcess
	case ChildSpawnFailed:
		return ExitChildSpawnFailed
	default:
		return ExitMalformedArgs
	}
}

// UsageOf returns the usage hint carried by err, if any.
func UsageOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Usage
	}
	return ""
}
