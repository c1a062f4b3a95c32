package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session"
	"github.com/zetahernandez/whisper-fastapi/internal/domain/session/usecases"
	"github.com/zetahernandez/whisper-fastapi/internal/output"
)

func NewStartCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a recording session",
		Long:  "Start recording from the microphone. Blocks until 'dictate stop' (or a second\n'dictate') signals the capture process, then transcribes and delivers the result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			deps.App.Start.OnStarted = func(st *session.State) {
				formatter.RecordingStarted(st.PID)
			}
			deps.App.Start.Deliver.OnTranscribing = formatter.Transcribing

			text, err := deps.App.Start.Execute(context.Background())
			if err != nil {
				if errors.Is(err, usecases.ErrAlreadyRecording) {
					return fmt.Errorf("a recording is already in progress. Run 'dictate stop' first")
				}
				return err
			}

			formatter.TranscriptDelivered(text)
			return nil
		},
	}
}
