package session

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestLockAcquireReadRelease(t *testing.T) {
	lock := &Lock{Path: filepath.Join(t.TempDir(), "session.json")}

	st := &State{
		PID:       1234,
		SessionID: "abc",
		StartedAt: time.Now().UTC().Truncate(time.Second),
		AudioPath: "/tmp/input.ogg",
	}

	if err := lock.Acquire(st); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !lock.Held() {
		t.Fatal("expected lock to be held")
	}

	got, err := lock.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.PID != st.PID || got.SessionID != st.SessionID || got.AudioPath != st.AudioPath {
		t.Fatalf("state mismatch: got %+v, want %+v", got, st)
	}
	if !got.StartedAt.Equal(st.StartedAt) {
		t.Fatalf("StartedAt mismatch: got %v, want %v", got.StartedAt, st.StartedAt)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if lock.Held() {
		t.Fatal("expected lock to be released")
	}
}

func TestLockAcquireIsExclusive(t *testing.T) {
	lock := &Lock{Path: filepath.Join(t.TempDir(), "session.json")}

	if err := lock.Acquire(&State{PID: 1}); err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	if err := lock.Acquire(&State{PID: 2}); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	// The loser must not have clobbered the winner's state.
	got, err := lock.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.PID != 1 {
		t.Fatalf("expected pid 1, got %d", got.PID)
	}
}

func TestLockReleaseIdempotent(t *testing.T) {
	lock := &Lock{Path: filepath.Join(t.TempDir(), "session.json")}

	if err := lock.Release(); err != nil {
		t.Fatalf("releasing a non-held lock should not fail: %v", err)
	}

	if err := lock.Acquire(&State{PID: 1}); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("second Release should not fail: %v", err)
	}
}

func TestLockReadMissing(t *testing.T) {
	lock := &Lock{Path: filepath.Join(t.TempDir(), "session.json")}
	if _, err := lock.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestAlive(t *testing.T) {
	if !Alive(os.Getpid()) {
		t.Fatal("expected current process to be alive")
	}
	if Alive(0) || Alive(-1) {
		t.Fatal("expected non-positive pids to be dead")
	}

	// A reaped child pid must read as dead.
	cmd := exec.Command("true")
	if err := cmd.Run(); err != nil {
		t.Fatalf("running child: %v", err)
	}
	if Alive(cmd.Process.Pid) {
		t.Fatalf("expected exited pid %d to be dead", cmd.Process.Pid)
	}
}

func TestInterruptStopsProcess(t *testing.T) {
	cmd := exec.Command("sleep", "60")
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting child: %v", err)
	}

	if err := Interrupt(cmd.Process.Pid); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("process did not exit after Interrupt")
	}
}
