package respawn

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

type fakeTerminator struct {
	outcome *lib.TerminationOutcome
	err     error
	calls   []string
}

func (f *fakeTerminator) Name() string { return "fake" }

func (f *fakeTerminator) TerminateByName(_ context.Context, name string) (*lib.TerminationOutcome, error) {
	f.calls = append(f.calls, name)
	return f.outcome, f.err
}

type fakeLauncher struct {
	err      error
	launched []lib.Command
}

func (f *fakeLauncher) Launch(command lib.Command) (*LaunchResult, error) {
	f.launched = append(f.launched, command)
	if f.err != nil {
		return nil, f.err
	}
	return &LaunchResult{Command: command, Pid: 4242}, nil
}

func succeeded() *lib.TerminationOutcome {
	return &lib.TerminationOutcome{Status: lib.TerminationSucceeded, Signalled: 1}
}

func TestRun_RestartsWithoutArgs(t *testing.T) {
	term := &fakeTerminator{outcome: succeeded()}
	launch := &fakeLauncher{}

	res, err := New(term, launch).Run(context.Background(), []string{"restartutil", "webapp"})
	require.NoError(t, err)
	require.Equal(t, []string{"webapp"}, term.calls)
	require.Len(t, launch.launched, 1)
	require.Equal(t, "webapp", launch.launched[0].Command)
	require.Empty(t, launch.launched[0].Args)
	require.Equal(t, 4242, res.Launch.Pid)
	require.True(t, res.Termination.Success())
}

func TestRun_ArgumentPassThrough(t *testing.T) {
	term := &fakeTerminator{outcome: succeeded()}
	launch := &fakeLauncher{}

	_, err := New(term, launch).Run(context.Background(), []string{"restartutil", "myserver", "--port", "8080", "--verbose"})
	require.NoError(t, err)
	require.Len(t, launch.launched, 1)
	require.Equal(t, []string{"--port", "8080", "--verbose"}, launch.launched[0].Args)
}

func TestRun_NoProcessTouchesNothing(t *testing.T) {
	term := &fakeTerminator{outcome: succeeded()}
	launch := &fakeLauncher{}

	_, err := New(term, launch).Run(context.Background(), []string{"restartutil"})
	require.Error(t, err)
	require.Equal(t, ExitNoProcess, ExitCode(err))
	require.Equal(t, "Usage: restartutil <process_name> [process_args...]", UsageOf(err))
	require.Empty(t, term.calls)
	require.Empty(t, launch.launched)
}

func TestRun_NoProcessReportOnly(t *testing.T) {
	_, err := New(&fakeTerminator{}, &fakeLauncher{}, WithMissingProcessMode(ReportOnly)).
		Run(context.Background(), []string{"restartutil"})
	require.Equal(t, ExitNoProcess, ExitCode(err))
	require.Empty(t, UsageOf(err))
}

func TestRun_MalformedArgs(t *testing.T) {
	term := &fakeTerminator{}
	_, err := New(term, &fakeLauncher{}).Run(context.Background(), nil)
	require.Equal(t, ExitMalformedArgs, ExitCode(err))
	require.Equal(t, "CLI arguments are malformed.", err.Error())
	require.Empty(t, term.calls)
}

func TestRun_FailedKillStillRelaunches(t *testing.T) {
	for _, status := range []lib.TerminationStatus{lib.TerminationNotFound, lib.TerminationDenied, lib.TerminationFailed} {
		t.Run(status.String(), func(t *testing.T) {
			var logs bytes.Buffer
			term := &fakeTerminator{outcome: &lib.TerminationOutcome{Status: status}}
			launch := &fakeLauncher{}

			res, err := New(term, launch, WithLogger(zerolog.New(&logs))).
				Run(context.Background(), []string{"restartutil", "webapp"})
			require.NoError(t, err)
			require.Len(t, launch.launched, 1)
			require.Equal(t, status, res.Termination.Status)
			require.Contains(t, logs.String(), `"level":"warn"`)
			require.Contains(t, logs.String(), "Attempting to start new process anyways")
		})
	}
}

func TestRun_TerminatorSpawnFailure(t *testing.T) {
	term := &fakeTerminator{err: errors.New("exec: \"pkill\": executable file not found in $PATH")}
	launch := &fakeLauncher{}

	_, err := New(term, launch).Run(context.Background(), []string{"restartutil", "webapp"})
	require.Equal(t, ExitChildSpawnFailed, ExitCode(err))
	require.Contains(t, err.Error(), "Failed to spawn fake child")
	require.Empty(t, launch.launched)

	var re *Error
	require.ErrorAs(t, err, &re)
	require.Equal(t, ChildSpawnFailed, re.Kind)
}

func TestRun_LaunchFailure(t *testing.T) {
	cause := errors.New("permission denied")
	term := &fakeTerminator{outcome: &lib.TerminationOutcome{Status: lib.TerminationNotFound}}
	launch := &fakeLauncher{err: cause}

	_, err := New(term, launch).Run(context.Background(), []string{"restartutil", "webapp"})
	require.Equal(t, ExitChildSpawnFailed, ExitCode(err))
	require.Equal(t, "Failed to spawn webapp: permission denied", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestRun_IdempotentAgainstStoppedTarget(t *testing.T) {
	term := &fakeTerminator{outcome: &lib.TerminationOutcome{Status: lib.TerminationNotFound}}
	launch := &fakeLauncher{}
	r := New(term, launch)

	for i := 0; i < 2; i++ {
		_, err := r.Run(context.Background(), []string{"restartutil", "webapp", "-v"})
		require.NoError(t, err)
	}
	require.Len(t, term.calls, 2)
	require.Len(t, launch.launched, 2)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitMalformedArgs, ExitCode(errors.New("unknown flag: --bogus")))
	require.Equal(t, ExitChildSpawnFailed, ExitCode(&Error{Kind: ChildSpawnFailed, Err: errors.New("x")}))
}
