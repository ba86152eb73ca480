package responsive

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings are the engine's timing knobs. They load from an optional YAML
// file with environment variables taking precedence, so deployments can
// tune the windows without a config file at all.
type Settings struct {
	// DebounceWindow coalesces resize bursts before relayout.
	DebounceWindow time.Duration `yaml:"debounce_window" env:"VIEWADAPT_DEBOUNCE_WINDOW"`

	// ThrottleWindow limits how often visibility changes re-probe the
	// device.
	ThrottleWindow time.Duration `yaml:"throttle_window" env:"VIEWADAPT_THROTTLE_WINDOW"`

	// TransitionDuration is how long the transition flag stays set after
	// the last state-changing update.
	TransitionDuration time.Duration `yaml:"transition_duration" env:"VIEWADAPT_TRANSITION_DURATION"`

	// OrientationSettle is the delay between an orientation-change signal
	// and the relayout that reads the new dimensions. Real hosts report
	// stale dimensions for a short time after rotating, so re-reading
	// immediately would classify against the old geometry.
	OrientationSettle time.Duration `yaml:"orientation_settle" env:"VIEWADAPT_ORIENTATION_SETTLE"`
}

// DefaultSettings returns the stock timing windows.
func DefaultSettings() Settings {
	return Settings{
		DebounceWindow:     150 * time.Millisecond,
		ThrottleWindow:     time.Second,
		TransitionDuration: 300 * time.Millisecond,
		OrientationSettle:  100 * time.Millisecond,
	}
}

// LoadSettings builds Settings from defaults, then the YAML file at path
// (skipped when path is empty), then environment variable overrides.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}

	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("failed to parse settings from environment: %w", err)
	}

	return s.normalized(), nil
}

// normalized replaces non-positive windows with their defaults so a
// partially filled file cannot zero out a timer.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.DebounceWindow <= 0 {
		s.DebounceWindow = def.DebounceWindow
	}
	if s.ThrottleWindow <= 0 {
		s.ThrottleWindow = def.ThrottleWindow
	}
	if s.TransitionDuration <= 0 {
		s.TransitionDuration = def.TransitionDuration
	}
	if s.OrientationSettle <= 0 {
		s.OrientationSettle = def.OrientationSettle
	}
	return s
}
