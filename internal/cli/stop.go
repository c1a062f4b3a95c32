package cli

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/internal/domain/session/usecases"
	"github.com/zetahernandez/whisper-fastapi/internal/output"
)

func NewStopCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the live recording session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			st, err := deps.App.Stop.Execute()
			if err != nil {
				if errors.Is(err, usecases.ErrNotRecording) {
					formatter.Info("No recording in progress")
					return nil
				}
				return err
			}

			formatter.RecordingStopped(time.Since(st.StartedAt))
			return nil
		},
	}
}
