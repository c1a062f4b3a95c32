package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zetahernandez/whisper-fastapi/internal/clipboard"
	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
	"github.com/zetahernandez/whisper-fastapi/internal/notify"
	"github.com/zetahernandez/whisper-fastapi/internal/transcribe"
)

// Transcriber uploads an audio artifact with a hint and returns the
// transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, hint string) (string, error)
}

// Deliver runs the post-recording pipeline: capture the hint from the
// clipboard, upload the artifact, and put the transcript on the clipboard
// and into a notification. Releasing the lock is the unconditional final
// step regardless of upload outcome.
type Deliver struct {
	Transcriber Transcriber
	Clipboard   clipboard.Clipboard
	Notifier    notify.Notifier
	Lock        *session.Lock
	Paste       bool

	// OnTranscribing is called once the upload is about to begin.
	OnTranscribing func()
}

func (d *Deliver) Execute(ctx context.Context, st *session.State) (string, error) {
	defer d.Lock.Release()

	if d.OnTranscribing != nil {
		d.OnTranscribing()
	}

	// The hint is best-effort: a host without clipboard tooling still
	// transcribes, just without context.
	hint, err := d.Clipboard.ReadHint()
	if err != nil {
		if !errors.Is(err, clipboard.ErrUnavailable) {
			fmt.Fprintf(os.Stderr, "warning: could not read clipboard hint: %v\n", err)
		}
		hint = ""
	}

	text, err := d.Transcriber.Transcribe(ctx, st.AudioPath, hint)
	if err != nil {
		// Server rejections and transport failures are surfaced as errors,
		// never copied to the clipboard as if they were transcripts.
		var apiErr *transcribe.APIError
		if errors.As(err, &apiErr) {
			d.notify(fmt.Sprintf("Transcription failed (HTTP %d)", apiErr.StatusCode), snippet(apiErr.Body, 200))
		} else {
			d.notify("Transcription failed", snippet(err.Error(), 200))
		}
		return "", err
	}

	if err := d.Clipboard.Write(text); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write transcript to clipboard: %v\n", err)
	}

	if d.Paste {
		if err := clipboard.SimulatePaste(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not simulate paste: %v\n", err)
		}
	}

	d.notify("Transcription", snippet(text, 200))

	return text, nil
}

func (d *Deliver) notify(title, message string) {
	if err := d.Notifier.Notify(title, message); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not show notification: %v\n", err)
	}
}

func snippet(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
