package respawn

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

// Respawner stops every process with a given name and starts a fresh one.
type Respawner struct {
	terminator  Terminator
	launcher    Launcher
	missingMode MissingProcessMode
	logger      zerolog.Logger
}

type Option func(*Respawner)

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Respawner) {
		r.logger = logger
	}
}

// WithMissingProcessMode chooses whether a missing process name carries a usage hint.
func WithMissingProcessMode(mode MissingProcessMode) Option {
	return func(r *Respawner) {
		r.missingMode = mode
	}
}

// New creates a Respawner. Warnings are discarded unless WithLogger is given.
func New(terminator Terminator, launcher Launcher, opts ...Option) *Respawner {
	r := &Respawner{
		terminator:  terminator,
		launcher:    launcher,
		missingMode: ReportWithUsage,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is returned when the new instance was started.
type Result struct {
	Termination *lib.TerminationOutcome
	Launch      *LaunchResult
}

// Run validates tokens, terminates processes named tokens[1] and relaunches
// it with tokens[2:]. A failed kill is logged and never prevents the relaunch.
func (r *Respawner) Run(ctx context.Context, tokens []string) (*Result, error) {
	command, err := ParseInvocation(tokens, r.missingMode)
	if err != nil {
		return nil, err
	}

	logger := r.logger.With().Str("process", command.Command).Logger()

	logger.Debug().Str("terminator", r.terminator.Name()).Msg("Terminating process")
	outcome, err := r.terminator.TerminateByName(ctx, command.Command)
	if err != nil {
		return nil, &Error{Kind: ChildSpawnFailed, Err: errors.Wrapf(err, "Failed to spawn %s child", r.terminator.Name())}
	}
	if outcome == nil {
		outcome = &lib.TerminationOutcome{Status: lib.TerminationFailed}
	}
	if !outcome.Success() {
		logger.Warn().
			Str("status", outcome.Status.String()).
			Str("detail", outcome.Detail).
			Msgf("Failed to kill process (%s). Attempting to start new process anyways", outcome.Status)
	} else {
		logger.Debug().Int("signalled", outcome.Signalled).Msg("Termination requested")
	}

	logger.Debug().Strs("args", command.Args).Msg("Launching process")
	launched, err := r.launcher.Launch(command)
	if err != nil {
		return nil, &Error{Kind: ChildSpawnFailed, Err: errors.Wrapf(err, "Failed to spawn %s", command.Command)}
	}
	logger.Debug().Int("pid", launched.Pid).Msg("Process launched")

	return &Result{Termination: outcome, Launch: launched}, nil
}
