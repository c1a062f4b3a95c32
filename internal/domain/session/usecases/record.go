package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/zetahernandez/whisper-fastapi/internal/audio"
	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
	"github.com/zetahernandez/whisper-fastapi/internal/notify"
)

// ErrAlreadyRecording is returned when a start races against a live session.
var ErrAlreadyRecording = errors.New("a recording is already in progress")

// StartSession runs one full recording cycle: spawn the capture process,
// persist its pid to the lock, block until it exits, then hand the artifact
// to the delivery pipeline.
type StartSession struct {
	Capture   audio.Capture
	Notifier  notify.Notifier
	Lock      *session.Lock
	Deliver   *Deliver
	AudioPath string

	// OnStarted is called once the capture process is live and the lock is
	// held, before blocking on the capture process.
	OnStarted func(*session.State)
}

// Execute blocks until the capture process exits (via the stop path's signal
// or on its own), then delivers the transcript. Returns the transcript text.
func (s *StartSession) Execute(ctx context.Context) (string, error) {
	proc, err := s.Capture.Start(s.AudioPath)
	if err != nil {
		return "", fmt.Errorf("starting capture: %w", err)
	}

	st := &session.State{
		PID:       proc.Pid,
		SessionID: uuid.NewString(),
		StartedAt: time.Now(),
		AudioPath: s.AudioPath,
	}

	// Exclusive create decides the winner when two invocations race on
	// start; the loser tears down its own capture process.
	if err := s.Lock.Acquire(st); err != nil {
		_ = proc.Kill()
		_, _ = proc.Wait()
		if errors.Is(err, session.ErrLocked) {
			return "", ErrAlreadyRecording
		}
		return "", err
	}

	if err := s.Notifier.Notify("Dictation", "Recording started"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not show notification: %v\n", err)
	}

	if s.OnStarted != nil {
		s.OnStarted(st)
	}

	// Wait for the capture process to exit. A nonzero exit after SIGINT is
	// normal for ffmpeg; the artifact is finalized either way.
	_, _ = proc.Wait()

	return s.Deliver.Execute(ctx, st)
}
