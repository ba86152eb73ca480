// Package profile maps classified device facts to concrete settings: a
// rendering performance profile per device tier and a UI layout profile
// per viewport category. Both resolvers are pure table lookups and never
// fail; an unexpected input falls back to the medium row.
package profile

import (
	"github.com/Dicklesworthstone/viewadapt/pkg/capability"
	"github.com/Dicklesworthstone/viewadapt/pkg/display"
)

// ShadowQuality is the shadow rendering level.
type ShadowQuality int

const (
	ShadowDisabled ShadowQuality = iota
	ShadowLow
	ShadowMedium
	ShadowHigh
)

func (s ShadowQuality) String() string {
	switch s {
	case ShadowHigh:
		return "high"
	case ShadowMedium:
		return "medium"
	case ShadowLow:
		return "low"
	default:
		return "disabled"
	}
}

// NavStyle is the primary navigation arrangement.
type NavStyle int

const (
	NavTabs NavStyle = iota
	NavHamburger
	NavSidebar
)

func (n NavStyle) String() string {
	switch n {
	case NavHamburger:
		return "hamburger"
	case NavSidebar:
		return "sidebar"
	default:
		return "tabs"
	}
}

// Performance holds the rendering-quality knobs derived from device tier.
type Performance struct {
	PixelRatio     float64
	Shadow         ShadowQuality
	ParticleBudget int
	Antialiasing   bool
	PostProcessing bool
	MaxLOD         int
}

// Layout holds the UI-arrangement settings derived from viewport class.
type Layout struct {
	ShowSidebar      bool
	FullScreenModals bool
	GesturesEnabled  bool
	TouchTargetPx    int
	Navigation       NavStyle
}

// ResolvePerformance maps a device tier to its performance row. The pixel
// ratio is always capped by the capability snapshot's maximum, so the
// profile can never ask the renderer for more resolution than the device
// reports.
func ResolvePerformance(tier capability.Tier, pixelRatioCap float64) Performance {
	if pixelRatioCap <= 0 {
		pixelRatioCap = 1
	}

	switch tier {
	case capability.TierHigh:
		return Performance{
			PixelRatio:     pixelRatioCap,
			Shadow:         ShadowHigh,
			ParticleBudget: 1000,
			Antialiasing:   true,
			PostProcessing: true,
			MaxLOD:         3,
		}
	case capability.TierLow:
		return Performance{
			PixelRatio:     min(pixelRatioCap, 1),
			Shadow:         ShadowDisabled,
			ParticleBudget: 200,
			MaxLOD:         1,
		}
	default:
		return Performance{
			PixelRatio:     min(pixelRatioCap, 1.5),
			Shadow:         ShadowMedium,
			ParticleBudget: 500,
			Antialiasing:   true,
			MaxLOD:         2,
		}
	}
}

// ResolveLayout maps a viewport category to its layout row. Orientation is
// threaded through for future breakpoints but does not currently change
// the table.
func ResolveLayout(cat display.Category, _ display.Orientation) Layout {
	switch cat {
	case display.Small:
		return Layout{
			FullScreenModals: true,
			GesturesEnabled:  true,
			TouchTargetPx:    44,
			Navigation:       NavHamburger,
		}
	case display.Large:
		return Layout{
			ShowSidebar:   true,
			TouchTargetPx: 32,
			Navigation:    NavSidebar,
		}
	default:
		return Layout{
			ShowSidebar:     true,
			GesturesEnabled: true,
			TouchTargetPx:   40,
			Navigation:      NavTabs,
		}
	}
}
