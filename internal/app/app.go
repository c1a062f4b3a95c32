package app

import (
	"path/filepath"
	"time"

	"github.com/zetahernandez/whisper-fastapi/config"
	"github.com/zetahernandez/whisper-fastapi/internal/audio"
	"github.com/zetahernandez/whisper-fastapi/internal/clipboard"
	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
	"github.com/zetahernandez/whisper-fastapi/internal/domain/session/usecases"
	"github.com/zetahernandez/whisper-fastapi/internal/notify"
	"github.com/zetahernandez/whisper-fastapi/internal/platform"
	"github.com/zetahernandez/whisper-fastapi/internal/transcribe"
)

type App struct {
	Toggle *usecases.Toggle
	Start  *usecases.StartSession
	Stop   *usecases.StopSession
	Status *usecases.Status

	Host    platform.Kind
	Capture audio.Capture
}

func New(cfg *config.Config) (*App, error) {
	host := platform.DetectHost()

	capture := audio.New(host, cfg.InputDevice)
	clip := clipboard.New(host)
	notifier := notify.New(cfg.Notifications)

	transcriber, err := transcribe.New(transcribe.Options{
		Endpoint:           cfg.Endpoint,
		Token:              cfg.Token,
		Language:           cfg.Language,
		GPTRefine:          cfg.GPTRefine,
		Timeout:            time.Duration(cfg.RequestTimeout) * time.Second,
		EnableHTTP2:        cfg.EnableHTTP2,
		InsecureSkipVerify: !cfg.VerifySSL,
	})
	if err != nil {
		return nil, err
	}

	lock := &session.Lock{Path: filepath.Join(cfg.StateDir, "session.json")}

	deliver := &usecases.Deliver{
		Transcriber: transcriber,
		Clipboard:   clip,
		Notifier:    notifier,
		Lock:        lock,
		Paste:       cfg.Paste,
	}

	start := &usecases.StartSession{
		Capture:   capture,
		Notifier:  notifier,
		Lock:      lock,
		Deliver:   deliver,
		AudioPath: filepath.Join(cfg.StateDir, "input.ogg"),
	}

	stop := &usecases.StopSession{Lock: lock}

	return &App{
		Toggle:  &usecases.Toggle{Start: start, Stop: stop},
		Start:   start,
		Stop:    stop,
		Status:  &usecases.Status{Lock: lock},
		Host:    host,
		Capture: capture,
	}, nil
}
