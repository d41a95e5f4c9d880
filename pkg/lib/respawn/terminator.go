package respawn

import (
	"context"

	"github.com/SanjoDeundiak/respawn/pkg/lib"
)

// Terminator requests termination of every OS process matching a name.
//
// A returned error means the mechanism itself could not run. A mechanism
// that ran but killed nothing reports it through the outcome status.
type Terminator interface {
	TerminateByName(ctx context.Context, name string) (*lib.TerminationOutcome, error)
	// Name identifies the mechanism in messages, e.g. "pkill".
	Name() string
}
