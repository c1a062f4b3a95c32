package usecases

import (
	"context"
	"errors"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
)

// Toggle implements the single-entry-point contract: stop the live session
// if one exists, otherwise start a new one.
type Toggle struct {
	Start *StartSession
	Stop  *StopSession
}

// ToggleResult reports which path an invocation took.
type ToggleResult struct {
	// Stopped is set when a live session was signalled and the invocation
	// exited without recording.
	Stopped *session.State
	// Transcript is set when a full record-and-deliver cycle ran.
	Transcript string
}

func (t *Toggle) Execute(ctx context.Context) (*ToggleResult, error) {
	st, err := t.Stop.Execute()
	if err == nil {
		return &ToggleResult{Stopped: st}, nil
	}
	if !errors.Is(err, ErrNotRecording) {
		return nil, err
	}

	// No live session (or a stale lock that was just cleaned up): record.
	text, err := t.Start.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Transcript: text}, nil
}
