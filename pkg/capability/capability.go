// Package capability inspects the host environment once and produces an
// immutable snapshot of what the device can do. Probing is best-effort
// and never fails: every signal is optional, and a missing signal falls
// back to a documented conservative default.
package capability

import (
	"strings"

	"github.com/Dicklesworthstone/viewadapt/pkg/host"
)

// Tier is the heuristic rendering/memory class of a device.
type Tier int

const (
	TierMedium Tier = iota // the never-fails fallback
	TierHigh
	TierLow
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierLow:
		return "low"
	default:
		return "medium"
	}
}

// NetworkSpeed is a coarse network classification.
type NetworkSpeed int

const (
	NetworkMedium NetworkSpeed = iota
	NetworkFast
	NetworkSlow
)

func (n NetworkSpeed) String() string {
	switch n {
	case NetworkFast:
		return "fast"
	case NetworkSlow:
		return "slow"
	default:
		return "medium"
	}
}

// DeviceCapabilities is an immutable snapshot of one probe. A new probe
// produces a fresh value; snapshots are never mutated in place, so a
// reader holding one can never observe a partial update.
type DeviceCapabilities struct {
	Tier                     Tier
	MaxPixelRatio            float64
	SupportsAdvancedGraphics bool
	MaxTextureSize           int
	EstimatedMemoryGB        float64
	TouchSupport             bool
	OrientationSupport       bool
	NetworkSpeed             NetworkSpeed
	HasVoiceSupport          bool
	SupportsInstallablePWA   bool
}

// Defaults is the snapshot produced when no signal at all is available,
// e.g. in a headless or server context. Returning exactly this value in
// those contexts is what keeps server- and client-side derivations of
// the initial configuration from diverging.
func Defaults() DeviceCapabilities {
	return DeviceCapabilities{
		Tier:              TierMedium,
		MaxPixelRatio:     1,
		MaxTextureSize:    2048,
		EstimatedMemoryGB: 4,
		NetworkSpeed:      NetworkMedium,
	}
}

// GPU renderer substrings, matched case-insensitively. Curated from the
// identifiers common hosts report; unknown identifiers simply contribute
// nothing to the tier decision.
var (
	highEndGPUs = []string{
		"apple m", "apple a1", "nvidia", "geforce", "rtx", "quadro",
		"radeon pro", "radeon rx", "adreno 7", "mali-g7", "mali-g9",
	}
	lowEndGPUs = []string{
		"intel hd", "intel(r) hd", "gma", "adreno 3", "adreno 4",
		"mali-4", "mali-t6", "powervr", "swiftshader", "llvmpipe",
		"software", "videocore",
	}
)

func matchesAny(renderer string, list []string) bool {
	r := strings.ToLower(renderer)
	for _, s := range list {
		if strings.Contains(r, s) {
			return true
		}
	}
	return false
}

// Probe inspects env and returns a fresh capability snapshot. A nil env
// yields exactly Defaults().
func Probe(env host.Environment) DeviceCapabilities {
	if env == nil {
		return Defaults()
	}

	caps := Defaults()

	pixelRatio := 1.0
	haveMetrics := false
	if dims, ok := env.Metrics(); ok && dims.PixelRatio > 0 {
		pixelRatio = dims.PixelRatio
		haveMetrics = true
	}
	caps.MaxPixelRatio = pixelRatio

	memory, haveMemory := env.DeviceMemoryGB()
	if !haveMemory {
		memory, haveMemory = estimateMemory(env, pixelRatio, haveMetrics)
	}
	if haveMemory {
		caps.EstimatedMemoryGB = memory
	}

	gpu, haveGPU := env.GPURenderer()

	caps.Tier = classifyTier(caps.EstimatedMemoryGB, pixelRatio, gpu, haveGPU)

	// Advanced graphics need a known renderer that is not in the low-end
	// list; with no GPU signal at all we stay conservative.
	caps.SupportsAdvancedGraphics = haveGPU && !matchesAny(gpu, lowEndGPUs)

	// The texture heuristic only applies when some tier-determining signal
	// existed. A fully silent environment must keep the default snapshot
	// bit for bit, or server- and client-side derivations diverge.
	if haveMetrics || haveMemory || haveGPU {
		switch caps.Tier {
		case TierHigh:
			caps.MaxTextureSize = 8192
		case TierLow:
			caps.MaxTextureSize = 2048
		default:
			caps.MaxTextureSize = 4096
		}
	}

	if kind, ok := env.NetworkKind(); ok {
		caps.NetworkSpeed = classifyNetwork(kind)
	}
	if points, ok := env.TouchPoints(); ok {
		caps.TouchSupport = points > 0
	}
	if v, ok := env.SupportsOrientation(); ok {
		caps.OrientationSupport = v
	}
	if v, ok := env.SpeechInput(); ok {
		caps.HasVoiceSupport = v
	}
	if v, ok := env.InstallableApp(); ok {
		caps.SupportsInstallablePWA = v
	}

	return caps
}

// classifyTier applies the tier heuristic in priority order. It is
// deliberately best-effort: ambiguity resolves to medium, never to an
// error.
func classifyTier(memoryGB, pixelRatio float64, gpu string, haveGPU bool) Tier {
	if memoryGB >= 8 || pixelRatio >= 2 || (haveGPU && matchesAny(gpu, highEndGPUs)) {
		return TierHigh
	}
	if memoryGB <= 2 || (haveGPU && matchesAny(gpu, lowEndGPUs)) {
		return TierLow
	}
	return TierMedium
}

// estimateMemory derives a coarse memory band from pixel ratio and
// physical screen area when no direct memory signal exists. The bands
// are intentionally wide; this only has to be good enough for tiering.
func estimateMemory(env host.Environment, pixelRatio float64, haveMetrics bool) (float64, bool) {
	w, h, haveScreen := env.Screen()
	if !haveScreen && !haveMetrics {
		return 0, false
	}

	area := 0
	if haveScreen {
		area = w * h
	} else if dims, ok := env.Metrics(); ok {
		area = dims.Width * dims.Height
	}

	switch {
	case pixelRatio >= 2 && area >= 2_000_000:
		return 6, true
	case pixelRatio >= 2 || area >= 1_000_000:
		return 4, true
	default:
		return 2, true
	}
}

func classifyNetwork(kind string) NetworkSpeed {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "4g", "5g", "wifi", "ethernet", "fast":
		return NetworkFast
	case "2g", "slow-2g", "slow":
		return NetworkSlow
	default:
		return NetworkMedium
	}
}
