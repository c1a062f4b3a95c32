package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/zetahernandez/whisper-fastapi/internal/audio"
	"github.com/zetahernandez/whisper-fastapi/internal/output"
	"github.com/zetahernandez/whisper-fastapi/internal/platform"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if deps.App.Host == platform.Unsupported {
				f.SetupCheck("Platform", false, "unsupported host; recording is unavailable")
				ok = false
			} else {
				f.SetupCheck("Platform", true, deps.App.Host.String())
			}

			if err := audio.CheckFFmpeg(); err != nil {
				f.SetupCheck("ffmpeg", false, "not found. Install it with your package manager")
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, "installed ("+deps.App.Capture.Name()+" backend)")
			}

			if name, found := clipboardTool(deps.App.Host); name != "" {
				if found {
					f.SetupCheck("Clipboard", true, name+" available")
				} else {
					f.SetupCheck("Clipboard", false, name+" not found; transcripts cannot be delivered to the clipboard")
					ok = false
				}
			} else {
				f.SetupCheck("Clipboard", false, "no clipboard mechanism for this host; hint capture and delivery are disabled")
			}

			f.SetupCheck("Endpoint", true, deps.Config.Endpoint)

			if deps.Config.Token != "" {
				f.SetupCheck("Token", true, "configured")
			} else {
				f.SetupCheck("Token", true, "not set (local servers usually accept anonymous uploads)")
			}

			f.SetupCheck("State directory", true, deps.Config.StateDir)

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

// clipboardTool names the external tool the detected host relies on and
// whether it is present. An empty name means no mechanism exists at all.
func clipboardTool(kind platform.Kind) (string, bool) {
	switch kind {
	case platform.LinuxWayland:
		_, err := exec.LookPath("wl-paste")
		return "wl-clipboard", err == nil
	case platform.LinuxX11:
		if _, err := exec.LookPath("xsel"); err == nil {
			return "xsel", true
		}
		_, err := exec.LookPath("xclip")
		return "xclip", err == nil
	case platform.Darwin:
		_, err := exec.LookPath("pbcopy")
		return "pbcopy", err == nil
	default:
		return "", false
	}
}
