package platform

import (
	"os"
	"runtime"
)

// Kind identifies the host capability class. All platform-specific tooling
// (audio capture backend, clipboard mechanism, paste support) is selected
// from this value once at startup.
type Kind int

const (
	Unsupported Kind = iota
	Darwin
	LinuxWayland
	LinuxX11
	LinuxHeadless
)

func (k Kind) String() string {
	switch k {
	case Darwin:
		return "macOS"
	case LinuxWayland:
		return "Linux (Wayland)"
	case LinuxX11:
		return "Linux (X11)"
	case LinuxHeadless:
		return "Linux (headless)"
	default:
		return "unsupported"
	}
}

// Detect classifies a host from its OS and environment. On Linux the display
// server type decides which clipboard tooling is usable.
func Detect(goos string, getenv func(string) string) Kind {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		if getenv("WAYLAND_DISPLAY") != "" {
			return LinuxWayland
		}
		if getenv("DISPLAY") != "" {
			return LinuxX11
		}
		return LinuxHeadless
	default:
		return Unsupported
	}
}

// DetectHost classifies the current host.
func DetectHost() Kind {
	return Detect(runtime.GOOS, os.Getenv)
}
