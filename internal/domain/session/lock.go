package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrLocked is returned by Acquire when another session already holds the lock.
var ErrLocked = errors.New("a recording session is already active")

// Lock is the single-session mutex: a JSON file holding the State of the
// active session. Acquire uses an exclusive create so that two invocations
// racing on start cannot both win.
type Lock struct {
	Path string
}

// Acquire creates the lock file with the given state. Returns ErrLocked if
// the file already exists.
func (l *Lock) Acquire(st *State) error {
	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrLocked
		}
		return fmt.Errorf("creating lock file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		os.Remove(l.Path)
		return fmt.Errorf("writing lock file: %w", err)
	}
	return nil
}

// Read returns the persisted state, or os.ErrNotExist if no lock is held.
func (l *Lock) Read() (*State, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return &st, nil
}

// Release removes the lock file. Idempotent: releasing an already-released
// lock is not an error, so both the stop path and the recording invocation's
// final cleanup may call it.
func (l *Lock) Release() error {
	if err := os.Remove(l.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing lock file: %w", err)
	}
	return nil
}

// Held reports whether the lock file exists.
func (l *Lock) Held() bool {
	_, err := os.Stat(l.Path)
	return err == nil
}
