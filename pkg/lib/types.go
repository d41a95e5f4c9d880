package lib

// Command captures the executable name and arguments used to relaunch a process.
type Command struct {
	Command string
	Args    []string
}

// TerminationStatus is the high-level result of a termination request.
// Only TerminationSucceeded means at least one matching process was signalled.
type TerminationStatus int

const (
	TerminationSucceeded TerminationStatus = iota
	TerminationNotFound
	TerminationDenied
	TerminationFailed
)

func (s TerminationStatus) String() string {
	switch s {
	case TerminationSucceeded:
		return "succeeded"
	case TerminationNotFound:
		return "not found"
	case TerminationDenied:
		return "permission denied"
	default:
		return "failed"
	}
}

// TerminationOutcome captures what a terminator observed.
// Matched and Signalled are zero when the mechanism cannot count (pkill).
type TerminationOutcome struct {
	Status    TerminationStatus
	Matched   int
	Signalled int
	Detail    string
}

// Success reports whether the termination mechanism reported success.
func (o *TerminationOutcome) Success() bool {
	return o != nil && o.Status == TerminationSucceeded
}
