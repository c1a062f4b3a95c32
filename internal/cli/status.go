package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/internal/output"
)

func NewStatusCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a recording session is live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			res, err := deps.App.Status.Execute()
			if err != nil {
				return err
			}

			switch {
			case res.Active:
				formatter.StatusActive(res.State.PID, time.Since(res.State.StartedAt))
			case res.State != nil:
				formatter.StatusStale(res.State.PID)
			default:
				formatter.StatusIdle()
			}
			return nil
		},
	}
}
