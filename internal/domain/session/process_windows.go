//go:build windows

package session

import "os"

// Alive reports whether a process with the given pid is still running.
// On Windows FindProcess fails for pids that no longer exist.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	_, err := os.FindProcess(pid)
	return err == nil
}

// Interrupt terminates the given pid. Windows has no SIGINT delivery for
// unrelated processes, so this falls back to a hard kill.
func Interrupt(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}
