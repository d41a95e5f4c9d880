package respawn

import (
	"syscall"
)

// getSysProcAttr returns the attributes for the relaunched process.
// Without a new process group the child shares the caller's group, as a plain spawn would.
func getSysProcAttr(newProcessGroup bool) *syscall.SysProcAttr {
	if !newProcessGroup {
		return nil
	}
	return &syscall.SysProcAttr{
		// New process group so terminal signals aimed at the caller skip the child
		Setpgid: true,
	}
}
