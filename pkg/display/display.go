// Package display classifies raw pixel dimensions into coarse viewport
// categories and orientations. All functions are pure and total: every
// input maps to exactly one category, nothing is rejected.
package display

import "strings"

// Viewport breakpoints in pixels. Each category covers an inclusive lower
// bound up to an exclusive upper bound; Large is unbounded above. Together
// the three ranges partition [0, inf) with no gaps or overlaps.
const (
	// BreakpointMedium is the width at which the UI leaves the compact
	// single-column layout (mobile semantics below it).
	BreakpointMedium = 768

	// BreakpointLarge is the width at which full desktop layouts with a
	// persistent sidebar become available.
	BreakpointLarge = 1024
)

// Category is a coarse viewport bucket derived from pixel width.
type Category int

const (
	Small Category = iota // phones, narrow panes
	Medium                // tablets, split views
	Large                 // desktops, wide displays
)

func (c Category) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// ParseCategory maps a category name to a Category. It accepts both the
// canonical names and the device-class aliases used in override flags
// (mobile/tablet/desktop). The second return value reports whether the
// name was recognized.
func ParseCategory(name string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small", "mobile", "phone":
		return Small, true
	case "medium", "tablet":
		return Medium, true
	case "large", "desktop":
		return Large, true
	default:
		return Medium, false
	}
}

// Orientation describes how the viewport is turned.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Dimensions is a raw viewport measurement.
type Dimensions struct {
	Width      int
	Height     int
	PixelRatio float64
}

// ClassifyViewport buckets a pixel width into a Category. Negative widths
// classify as Small rather than erroring; the caller never has to handle
// a failure from a pure lookup.
func ClassifyViewport(width int) Category {
	switch {
	case width >= BreakpointLarge:
		return Large
	case width >= BreakpointMedium:
		return Medium
	default:
		return Small
	}
}

// ClassifyOrientation reports Landscape only when width strictly exceeds
// height. Square viewports count as Portrait.
func ClassifyOrientation(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}
