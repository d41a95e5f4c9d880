package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
	"github.com/SanjoDeundiak/respawn/pkg/lib/respawn"
)

func NewRootCmd(invocation string, stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:           filepath.Base(invocation) + " [flags] <process_name> [process_args...]",
		Short:         "Kill every process with the given name and start a fresh detached instance",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cfg.resolve()
			if err != nil {
				return err
			}

			logger := newLogger(stderr, res.level).With().Str("run", lib.NewRunID()).Logger()

			var terminator respawn.Terminator
			switch cfg.Terminator {
			case terminatorNative:
				terminator = respawn.NewNativeTerminator(res.signal, logger)
			default:
				terminator = &respawn.PkillTerminator{
					Path:   cfg.PkillBinary,
					Signal: res.signal,
					Exact:  cfg.Exact,
					Stderr: stderr,
				}
			}
			launcher := &respawn.ExecLauncher{NewProcessGroup: cfg.NewGroup}

			r := respawn.New(terminator, launcher,
				respawn.WithLogger(logger),
				respawn.WithMissingProcessMode(res.missingMode),
			)
			result, err := r.Run(cmd.Context(), append([]string{invocation}, args...))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(stdout, "%s restarted successfully!\n", result.Launch.Command.Command)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	// everything from the process name on belongs to the relaunched process
	flags.SetInterspersed(false)
	flags.StringVar(&cfg.Terminator, "terminator", cfg.Terminator, "termination mechanism: pkill or native")
	flags.StringVar(&cfg.Signal, "signal", cfg.Signal, "signal sent to matching processes")
	flags.BoolVar(&cfg.Exact, "exact", cfg.Exact, "match the whole process name (pkill -x)")
	flags.BoolVar(&cfg.NewGroup, "new-group", cfg.NewGroup, "start the new process in its own process group")
	flags.BoolVar(&cfg.NoUsage, "no-usage", cfg.NoUsage, "omit the usage hint when no process name is given")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}
