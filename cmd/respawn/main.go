package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SanjoDeundiak/respawn/pkg/lib/respawn"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one respawn invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, defaultLogLevel)
	if len(args) == 0 {
		logger.Error().Msg("CLI arguments are malformed.")
		return respawn.ExitMalformedArgs
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd(args[0], stdout, stderr)
	root.SetArgs(args[1:])

	err := root.ExecuteContext(ctx)
	if err != nil {
		logger.Error().Msg(err.Error())
		if usage := respawn.UsageOf(err); usage != "" {
			_, _ = fmt.Fprintln(stderr, usage)
		}
	}
	return respawn.ExitCode(err)
}
