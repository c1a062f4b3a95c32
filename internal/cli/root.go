package cli

import (
	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/config"
	"github.com/zetahernandez/whisper-fastapi/internal/app"
	"github.com/zetahernandez/whisper-fastapi/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dictate",
		Short: "Record the microphone, transcribe it, deliver to the clipboard",
		Long: "Push-to-toggle dictation: invoking 'dictate' starts a recording session;\n" +
			"invoking it again stops the session, uploads the audio to a whisper-fastapi\n" +
			"server, and copies the transcript to the clipboard. Bind it to a hotkey.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(deps)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewToggleCmd(deps))
	rootCmd.AddCommand(NewStartCmd(deps))
	rootCmd.AddCommand(NewStopCmd(deps))
	rootCmd.AddCommand(NewStatusCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
