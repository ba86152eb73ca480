package host

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/viewadapt/pkg/display"
)

// Terminal is an Environment backed by the controlling terminal. Dimensions
// are measured in character cells rather than pixels; the breakpoint tables
// are unit-agnostic, so the classification pipeline works unchanged. The
// pixel ratio of a terminal is always 1.
//
// On unix builds, resize events come from SIGWINCH and visibility events
// from SIGCONT (delivered when the process returns to the foreground).
// Other platforms get a query-only host with no events.
type Terminal struct {
	out *os.File
	ls  listeners

	stop      chan struct{}
	closeOnce sync.Once
}

// NewTerminal creates a Terminal host bound to stdout and starts its
// signal watcher. Call Close to release the watcher.
func NewTerminal() *Terminal {
	t := &Terminal{
		out:  os.Stdout,
		stop: make(chan struct{}),
	}
	t.watchSignals()
	return t
}

// Close stops the signal watcher. It is idempotent.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.stop) })
}

func (t *Terminal) Metrics() (display.Dimensions, bool) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return display.Dimensions{}, false
	}
	return display.Dimensions{Width: w, Height: h, PixelRatio: 1}, true
}

func (t *Terminal) Screen() (int, int, bool) { return 0, 0, false }

func (t *Terminal) DeviceMemoryGB() (float64, bool) { return systemMemoryGB() }

func (t *Terminal) GPURenderer() (string, bool) { return "", false }

func (t *Terminal) NetworkKind() (string, bool) { return "", false }

func (t *Terminal) TouchPoints() (int, bool) { return 0, false }

func (t *Terminal) SupportsOrientation() (bool, bool) { return false, false }

func (t *Terminal) SpeechInput() (bool, bool) { return false, false }

func (t *Terminal) InstallableApp() (bool, bool) { return false, false }

func (t *Terminal) Subscribe(ev Event, fn func()) (cancel func()) {
	return t.ls.add(ev, fn)
}
