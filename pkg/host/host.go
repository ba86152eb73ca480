// Package host abstracts the display environment the engine runs against.
// An Environment answers metric and capability queries and emits change
// events. Every capability query is individually optional: the second
// return value reports whether the host can answer it at all, and callers
// fall back to documented defaults when it cannot. This keeps the engine
// testable without a real host and deterministic in headless contexts.
package host

import "github.com/Dicklesworthstone/viewadapt/pkg/display"

// Event identifies an environment change signal.
type Event int

const (
	// Resize fires when the viewport dimensions change.
	Resize Event = iota
	// OrientationChange fires when the host rotates. Real hosts are known
	// to report stale dimensions for a short time after this event.
	OrientationChange
	// VisibilityChange fires when the application is foregrounded or
	// backgrounded.
	VisibilityChange
	// MediaChange fires when a host-level media condition flips.
	MediaChange
)

func (e Event) String() string {
	switch e {
	case Resize:
		return "resize"
	case OrientationChange:
		return "orientation-change"
	case VisibilityChange:
		return "visibility-change"
	case MediaChange:
		return "media-change"
	default:
		return "unknown"
	}
}

// Environment is the capability surface of a display host. Implementations
// must be safe for queries from the consumer goroutine and must invoke
// subscribed callbacks from at most one goroutine at a time.
type Environment interface {
	// Metrics returns the current viewport dimensions and pixel ratio.
	Metrics() (display.Dimensions, bool)

	// Screen returns the physical screen size in pixels, which can be
	// larger than the viewport.
	Screen() (width, height int, ok bool)

	// DeviceMemoryGB returns the host's memory estimate.
	DeviceMemoryGB() (float64, bool)

	// GPURenderer returns the GPU renderer identifier string.
	GPURenderer() (string, bool)

	// NetworkKind returns the effective network type classification
	// (for example "4g", "3g", "2g", "slow-2g").
	NetworkKind() (string, bool)

	// TouchPoints returns the number of supported touch points.
	TouchPoints() (int, bool)

	// SupportsOrientation reports whether the host exposes an
	// orientation API.
	SupportsOrientation() (bool, bool)

	// SpeechInput reports whether the host supports speech input.
	SpeechInput() (bool, bool)

	// InstallableApp reports whether the host supports app installation.
	InstallableApp() (bool, bool)

	// Subscribe registers fn for an event and returns a cancel function
	// that removes exactly that registration. Cancel is idempotent.
	Subscribe(ev Event, fn func()) (cancel func())
}
