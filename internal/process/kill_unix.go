//go:build !windows

package process

import (
	"errors"
	"syscall"
)

// ErrInvalidPID is returned for PIDs that would target this process group.
var ErrInvalidPID = errors.New("invalid process id")

// KillTree sends SIGKILL to the process group led by pid, taking Chrome's
// renderer and GPU children down with it.
func KillTree(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	return syscall.Kill(-pid, syscall.SIGKILL)
}
