package respawn

import (
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// DefaultSignal is sent to matching processes unless configured otherwise.
const DefaultSignal = unix.SIGTERM

// ParseSignal accepts "TERM", "SIGTERM", "term" or a signal number.
// An empty name yields DefaultSignal.
func ParseSignal(name string) (syscall.Signal, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return DefaultSignal, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 || unix.SignalName(syscall.Signal(n)) == "" {
			return 0, errors.Errorf("unknown signal %q", name)
		}
		return syscall.Signal(n), nil
	}
	if !strings.HasPrefix(s, "SIG") {
		s = "SIG" + s
	}
	sig := unix.SignalNum(s)
	if sig == 0 {
		return 0, errors.Errorf("unknown signal %q", name)
	}
	return sig, nil
}
