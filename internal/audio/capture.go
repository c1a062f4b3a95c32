package audio

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/zetahernandez/whisper-fastapi/internal/platform"
)

// Capture launches a platform-specific microphone capture process writing
// opus-encoded mono 16kHz audio into an Ogg container at the given path.
// The process is returned so the caller can track and wait on it.
type Capture interface {
	Name() string
	Start(outputPath string) (*os.Process, error)
}

// CheckFFmpeg verifies that ffmpeg is available on PATH.
func CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found on PATH")
	}
	return nil
}

// New selects the capture backend for the detected host. The returned Capture
// for an unsupported host fails on Start with a descriptive error, so the
// rest of the tool (stop, status, doctor) keeps working.
func New(kind platform.Kind, device string) Capture {
	switch kind {
	case platform.Darwin:
		if device == "" {
			device = ":default"
		}
		return &FFmpegCapture{InputFormat: "avfoundation", Device: device}
	case platform.LinuxWayland, platform.LinuxX11:
		if device == "" {
			device = "default"
		}
		return &FFmpegCapture{InputFormat: "pulse", Device: device}
	case platform.LinuxHeadless:
		if device == "" {
			device = "default"
		}
		return &FFmpegCapture{InputFormat: "alsa", Device: device}
	default:
		return unsupportedCapture{kind: kind}
	}
}

// FFmpegCapture records the microphone via an ffmpeg subprocess.
type FFmpegCapture struct {
	InputFormat string // avfoundation, pulse or alsa
	Device      string
}

func (c *FFmpegCapture) Name() string {
	return "ffmpeg (" + c.InputFormat + ")"
}

// Start launches ffmpeg in the background and returns its process handle.
// ffmpeg encodes directly to opus/ogg, so the artifact on disk is exactly
// what gets uploaded later.
func (c *FFmpegCapture) Start(outputPath string) (*os.Process, error) {
	if err := CheckFFmpeg(); err != nil {
		return nil, err
	}

	cmd := exec.Command("ffmpeg",
		"-hide_banner",
		"-f", c.InputFormat,
		"-i", c.Device,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libopus",
		"-b:a", "24k",
		"-y",
		outputPath,
	)

	// Keep ffmpeg diagnostics next to the recording
	logPath := outputPath + ".ffmpeg.log"
	logFile, err := os.Create(logPath)
	if err == nil {
		cmd.Stderr = logFile
	}

	if err := cmd.Start(); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("starting capture: %w", err)
	}
	if logFile != nil {
		// The child holds its own copy of the descriptor.
		logFile.Close()
	}

	return cmd.Process, nil
}

type unsupportedCapture struct {
	kind platform.Kind
}

func (u unsupportedCapture) Name() string {
	return "none"
}

func (u unsupportedCapture) Start(string) (*os.Process, error) {
	return nil, fmt.Errorf("audio capture is not supported on %s", u.kind)
}
