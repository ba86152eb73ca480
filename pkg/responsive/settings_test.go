package responsive

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings(\"\") failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestLoadSettings_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "debounce_window: 250ms\ntransition_duration: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.DebounceWindow != 250*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want 250ms", s.DebounceWindow)
	}
	if s.TransitionDuration != time.Second {
		t.Errorf("TransitionDuration = %v, want 1s", s.TransitionDuration)
	}
	// Unspecified fields keep their defaults.
	if s.ThrottleWindow != DefaultSettings().ThrottleWindow {
		t.Errorf("ThrottleWindow = %v, want default", s.ThrottleWindow)
	}
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("debounce_window: 250ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIEWADAPT_DEBOUNCE_WINDOW", "75ms")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.DebounceWindow != 75*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want env override 75ms", s.DebounceWindow)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}

func TestSettings_NormalizedFillsZeroes(t *testing.T) {
	s := Settings{DebounceWindow: -1}.normalized()
	if s != DefaultSettings() {
		t.Errorf("normalized zero settings = %+v, want defaults", s)
	}
}
