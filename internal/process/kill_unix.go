//go:build !windows

// Package process stops the Chrome processes a renderer launched.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid.
// Non-positive pids are ignored: -0 would target the caller's own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// The group may already be gone; the launcher's Kill follows anyway.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
