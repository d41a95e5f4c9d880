package respawn

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

const defaultPkillPath = "pkill"

// procps pkill exit statuses
const (
	pkillNoMatch   = 1
	pkillSyntaxErr = 2
)

// PkillTerminator shells out to pkill and waits for it to exit.
type PkillTerminator struct {
	// Path of the helper, resolved through PATH when not absolute. Defaults to "pkill".
	Path string
	// Signal sent to matching processes. Zero means DefaultSignal.
	Signal syscall.Signal
	// Exact restricts matching to the whole process name (pkill -x).
	Exact bool
	// Stderr receives the helper's own diagnostics. Nil discards them.
	Stderr io.Writer
}

func (p *PkillTerminator) Name() string {
	return p.path()
}

func (p *PkillTerminator) path() string {
	if p.Path == "" {
		return defaultPkillPath
	}
	return p.Path
}

// args builds the helper arguments. The default configuration produces
// exactly ["<name>"].
func (p *PkillTerminator) args(name string) []string {
	var args []string
	if p.Signal != 0 && p.Signal != DefaultSignal {
		args = append(args, fmt.Sprintf("-%d", int(p.Signal)))
	}
	if p.Exact {
		args = append(args, "-x")
	}
	// "--" keeps names starting with '-' from being read as options
	if len(name) > 0 && name[0] == '-' {
		args = append(args, "--")
	}
	return append(args, name)
}

func (p *PkillTerminator) TerminateByName(ctx context.Context, name string) (*lib.TerminationOutcome, error) {
	cmd := exec.CommandContext(ctx, p.path(), p.args(name)...)
	// cmd.Stdin and cmd.Stdout are left nil, so they use /dev/null
	cmd.Stderr = p.Stderr

	err := cmd.Run()
	if err == nil {
		return &lib.TerminationOutcome{Status: lib.TerminationSucceeded}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	code := exitErr.ExitCode()
	switch code {
	case pkillNoMatch:
		return &lib.TerminationOutcome{Status: lib.TerminationNotFound, Detail: fmt.Sprintf("%s exited with status %d", p.path(), code)}, nil
	case pkillSyntaxErr:
		return &lib.TerminationOutcome{Status: lib.TerminationFailed, Detail: fmt.Sprintf("%s rejected its arguments (status %d)", p.path(), code)}, nil
	default:
		return &lib.TerminationOutcome{Status: lib.TerminationFailed, Detail: fmt.Sprintf("%s exited with status %d", p.path(), code)}, nil
	}
}
