//go:build windows

package process

import (
	"errors"
	"os/exec"
	"strconv"
)

// ErrInvalidPID is returned for PIDs that cannot name a process.
var ErrInvalidPID = errors.New("invalid process id")

// KillTree force-kills pid and its children with taskkill (/F force, /T tree).
func KillTree(pid int) error {
	if pid <= 0 {
		return ErrInvalidPID
	}
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
