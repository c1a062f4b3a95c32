package session

import "time"

// State describes the currently active recording session. It is persisted to
// the lock file as JSON; the file's existence is the single source of truth
// for "a recording is active".
type State struct {
	PID       int       `json:"pid"`
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
	AudioPath string    `json:"audio_path"`
}
