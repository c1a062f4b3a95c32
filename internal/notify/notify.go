package notify

import "github.com/gen2brain/beeep"

// Notifier emits desktop notifications. Delivery is best-effort; the caller
// logs failures as warnings and carries on.
type Notifier interface {
	Notify(title, message string) error
}

// New returns the desktop notifier, or a no-op one when notifications are
// disabled in the configuration.
func New(enabled bool) Notifier {
	if !enabled {
		return noopNotifier{}
	}
	return desktopNotifier{}
}

type desktopNotifier struct{}

func (desktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

type noopNotifier struct{}

func (noopNotifier) Notify(title, message string) error {
	return nil
}
