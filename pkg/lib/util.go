package lib

import (
	"github.com/google/uuid"
)

// NewRunID returns a random UUIDv4 tagging the log lines of a single invocation.
func NewRunID() string {
	return uuid.NewString()
}
