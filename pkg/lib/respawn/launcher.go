package respawn

import (
	"os/exec"

	"github.com/pkg/errors"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

// Launcher starts a new process and gives up ownership of it.
type Launcher interface {
	Launch(command lib.Command) (*LaunchResult, error)
}

// LaunchResult describes a started process. There is no handle: the
// process is not tracked after it starts.
type LaunchResult struct {
	Command lib.Command
	Pid     int
}

// ExecLauncher starts the process with os/exec, stdio on the null device.
type ExecLauncher struct {
	NewProcessGroup bool
}

func (l *ExecLauncher) Launch(command lib.Command) (*LaunchResult, error) {
	if command.Command == "" {
		return nil, errors.New("command is required")
	}

	// no CommandContext: cancelling the caller must not kill the child
	cmd := exec.Command(command.Command, command.Args...)
	// cmd.Stdin, cmd.Stdout and cmd.Stderr are left nil, so they use /dev/null
	cmd.SysProcAttr = getSysProcAttr(l.NewProcessGroup)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	res := &LaunchResult{
		Command: lib.Command{Command: command.Command, Args: append([]string{}, command.Args...)},
		Pid:     cmd.Process.Pid,
	}
	// never waited on; the child is reparented once we exit
	_ = cmd.Process.Release()

	return res, nil
}
