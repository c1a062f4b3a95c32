package usecases

import (
	"errors"
	"os"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
)

// Status inspects the lock without touching it.
type Status struct {
	Lock *session.Lock
}

// StatusResult describes the current session state. State is set whenever a
// lock file exists; Active additionally requires the recorded pid to be live.
type StatusResult struct {
	Active bool
	State  *session.State
}

func (s *Status) Execute() (*StatusResult, error) {
	st, err := s.Lock.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &StatusResult{}, nil
		}
		return nil, err
	}
	return &StatusResult{
		Active: session.Alive(st.PID),
		State:  st,
	}, nil
}
