// Package responsive owns the adaptive configuration engine: it watches a
// host environment, reconciles its bursty change signals into a stable
// stream of configuration updates, and fans those out to subscribers.
// Downstream UI and rendering layers consult the resulting Config to pick
// layout and rendering quality.
package responsive

import (
	"time"

	"github.com/Dicklesworthstone/viewadapt/pkg/capability"
	"github.com/Dicklesworthstone/viewadapt/pkg/display"
	"github.com/Dicklesworthstone/viewadapt/pkg/profile"
)

// Config is the externally visible aggregate the engine publishes. It is
// a value type: all fields are comparable, equality is structural, and
// subscribers always receive their own copy.
type Config struct {
	Viewport     display.Category
	Orientation  display.Orientation
	Capabilities capability.DeviceCapabilities
	Performance  profile.Performance
	Layout       profile.Layout
}

// Equal reports structural equality.
func (c Config) Equal(other Config) bool { return c == other }

// State is the engine's internal layout state, exposed read-only for
// consumers that care about raw dimensions or the transition flag.
type State struct {
	Viewport    display.Category
	Orientation display.Orientation
	Dimensions  display.Dimensions

	// IsTransitioning is set on every state-changing update and cleared
	// automatically once the configured quiet window elapses without
	// another update.
	IsTransitioning bool
	LastTransition  time.Time
}
