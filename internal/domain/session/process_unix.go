//go:build !windows

package session

import (
	"os"
	"syscall"
)

// Alive reports whether a process with the given pid is still running.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 performs the existence check without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}

// Interrupt sends SIGINT to the given pid. ffmpeg finalizes its output
// container on SIGINT, so the artifact stays readable.
func Interrupt(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Signal(os.Interrupt)
}
