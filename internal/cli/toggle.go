package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
	"github.com/zetahernandez/whisper-fastapi/internal/output"
)

func NewToggleCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Start a recording session, or stop the live one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(deps)
		},
	}
}

func runToggle(deps *Dependencies) error {
	formatter := output.NewFormatter(os.Stdout)

	deps.App.Start.OnStarted = func(st *session.State) {
		formatter.RecordingStarted(st.PID)
	}
	deps.App.Start.Deliver.OnTranscribing = formatter.Transcribing

	res, err := deps.App.Toggle.Execute(context.Background())
	if err != nil {
		return err
	}

	if res.Stopped != nil {
		// The blocked recording invocation handles transcription and
		// delivery once its capture process exits.
		formatter.RecordingStopped(time.Since(res.Stopped.StartedAt))
		return nil
	}

	formatter.TranscriptDelivered(res.Transcript)
	return nil
}
