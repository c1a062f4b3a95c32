package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/zetahernandez/whisper-fastapi/internal/platform"
)

// ErrUnavailable is returned when no clipboard mechanism exists on this host.
var ErrUnavailable = errors.New("no clipboard mechanism available on this host")

// Clipboard reads the transcription hint (the current selection or clipboard
// content) and writes the delivered transcript back. Implementations are
// host-specific; callers treat read failures as "no hint" rather than fatal.
type Clipboard interface {
	ReadHint() (string, error)
	Write(text string) error
}

// New selects the clipboard mechanism for the detected host.
func New(kind platform.Kind) Clipboard {
	switch kind {
	case platform.LinuxWayland:
		return waylandClipboard{}
	case platform.LinuxX11:
		return x11Clipboard{}
	case platform.Darwin:
		return systemClipboard{}
	default:
		return unavailableClipboard{}
	}
}

// waylandClipboard uses wl-paste/wl-copy. The primary selection is preferred
// as the hint so that text the user just highlighted biases the transcription.
type waylandClipboard struct{}

func (waylandClipboard) ReadHint() (string, error) {
	out, err := exec.Command("wl-paste", "--no-newline", "--primary").Output()
	if err != nil {
		// Primary selection may be empty; fall back to the clipboard.
		out, err = exec.Command("wl-paste", "--no-newline").Output()
		if err != nil {
			return "", err
		}
	}
	return string(out), nil
}

func (waylandClipboard) Write(text string) error {
	cmd := exec.Command("wl-copy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// x11Clipboard reads the primary selection via xsel and writes through the
// portable clipboard binding (xclip/xsel under the hood).
type x11Clipboard struct{}

func (x11Clipboard) ReadHint() (string, error) {
	out, err := exec.Command("xsel", "-o").Output()
	if err != nil {
		return clipboard.ReadAll()
	}
	return string(out), nil
}

func (x11Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// systemClipboard uses the portable binding (pbpaste/pbcopy on macOS).
type systemClipboard struct{}

func (systemClipboard) ReadHint() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

type unavailableClipboard struct{}

func (unavailableClipboard) ReadHint() (string, error) {
	return "", ErrUnavailable
}

func (unavailableClipboard) Write(string) error {
	return ErrUnavailable
}
