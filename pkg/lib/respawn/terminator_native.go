package respawn

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

// processTable abstracts the gopsutil calls so tests can supply a fixed table.
type processTable interface {
	Processes(ctx context.Context) ([]processHandle, error)
}

type processHandle interface {
	Pid() int32
	Name(ctx context.Context) (string, error)
	Signal(ctx context.Context, sig syscall.Signal) error
}

// NativeTerminator scans the process table itself instead of running a helper.
// Matching is on the exact process name; its own PID is never signalled.
type NativeTerminator struct {
	// Signal sent to matching processes. Zero means DefaultSignal.
	Signal syscall.Signal
	Logger zerolog.Logger

	table processTable
}

func NewNativeTerminator(sig syscall.Signal, logger zerolog.Logger) *NativeTerminator {
	return &NativeTerminator{Signal: sig, Logger: logger, table: gopsutilTable{}}
}

func (n *NativeTerminator) Name() string {
	return "native"
}

func (n *NativeTerminator) TerminateByName(ctx context.Context, name string) (*lib.TerminationOutcome, error) {
	table := n.table
	if table == nil {
		table = gopsutilTable{}
	}
	sig := n.Signal
	if sig == 0 {
		sig = DefaultSignal
	}

	procs, err := table.Processes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list processes")
	}

	self := int32(os.Getpid())
	outcome := &lib.TerminationOutcome{}
	denied := 0
	var lastErr error
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		pname, err := p.Name(ctx)
		if err != nil || pname != name {
			// processes that vanished or hide their name are not ours to kill
			continue
		}
		outcome.Matched++

		err = p.Signal(ctx, sig)
		switch {
		case err == nil:
			outcome.Signalled++
			n.Logger.Debug().Int32("pid", p.Pid()).Str("signal", unix.SignalName(sig)).Msg("Signalled process")
		case errors.Is(err, os.ErrProcessDone), errors.Is(err, unix.ESRCH):
			n.Logger.Debug().Int32("pid", p.Pid()).Msg("Process exited before it was signalled")
		case errors.Is(err, unix.EPERM):
			denied++
			lastErr = err
		default:
			lastErr = err
		}
	}

	switch {
	case outcome.Signalled > 0:
		outcome.Status = lib.TerminationSucceeded
	case denied > 0 && denied == outcome.Matched:
		outcome.Status = lib.TerminationDenied
		outcome.Detail = fmt.Sprintf("%d matching process(es): %v", denied, lastErr)
	case lastErr != nil:
		outcome.Status = lib.TerminationFailed
		outcome.Detail = lastErr.Error()
	default:
		outcome.Status = lib.TerminationNotFound
	}
	return outcome, nil
}

type gopsutilTable struct{}

func (gopsutilTable) Processes(ctx context.Context) ([]processHandle, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	handles := make([]processHandle, 0, len(procs))
	for _, p := range procs {
		handles = append(handles, gopsutilProcess{p: p})
	}
	return handles, nil
}

type gopsutilProcess struct {
	p *process.Process
}

func (g gopsutilProcess) Pid() int32 {
	return g.p.Pid
}

func (g gopsutilProcess) Name(ctx context.Context) (string, error) {
	return g.p.NameWithContext(ctx)
}

func (g gopsutilProcess) Signal(ctx context.Context, sig syscall.Signal) error {
	return g.p.SendSignalWithContext(ctx, sig)
}
