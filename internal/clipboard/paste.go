package clipboard

import (
	"runtime"
	"time"

	"github.com/micmonay/keybd_event"
)

// SimulatePaste sends the paste chord (Ctrl+V, Cmd+V on macOS) so the
// transcript lands directly in the focused input. On Linux this needs uinput
// access and may fail; callers degrade to clipboard-only delivery.
func SimulatePaste() error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}

	kb.SetKeys(keybd_event.VK_V)
	if runtime.GOOS == "darwin" {
		kb.HasSuper(true)
	} else {
		kb.HasCTRL(true)
	}

	// Give the clipboard write a moment to settle before the chord fires.
	time.Sleep(80 * time.Millisecond)
	return kb.Launching()
}
