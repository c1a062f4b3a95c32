package usecases

import (
	"errors"
	"fmt"
	"os"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
)

// ErrNotRecording is returned when no live session exists. A stale lock
// (recorded pid no longer running) counts as not recording and is cleaned up.
var ErrNotRecording = errors.New("no active recording session")

// StopSession signals the tracked capture process and releases the lock.
// The blocked recording invocation notices the capture exit and proceeds
// with transcription and delivery on its own.
type StopSession struct {
	Lock *session.Lock
}

func (s *StopSession) Execute() (*session.State, error) {
	st, err := s.Lock.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotRecording
		}
		return nil, err
	}

	if !session.Alive(st.PID) {
		// Stale lock left behind by a killed invocation.
		if err := s.Lock.Release(); err != nil {
			return nil, err
		}
		return nil, ErrNotRecording
	}

	if err := session.Interrupt(st.PID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not stop recording process: %v\n", err)
	}

	// The stop path owns lock removal; the recording invocation's final
	// cleanup is idempotent.
	if err := s.Lock.Release(); err != nil {
		return nil, err
	}

	return st, nil
}
