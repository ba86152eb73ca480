package host

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const desktopProfile = `
viewport:
  width: 1440
  height: 900
  pixel_ratio: 2
screen:
  width: 2880
  height: 1800
device_memory_gb: 16
gpu_renderer: "Apple M3"
network: "wifi"
touch_points: 0
`

func writeProfile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProfileHost_Queries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	writeProfile(t, path, desktopProfile)

	p, err := NewProfileHost(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfileHost failed: %v", err)
	}
	defer p.Close()

	dims, ok := p.Metrics()
	if !ok || dims.Width != 1440 || dims.Height != 900 || dims.PixelRatio != 2 {
		t.Errorf("Metrics = (%+v, %v)", dims, ok)
	}
	if w, h, ok := p.Screen(); !ok || w != 2880 || h != 1800 {
		t.Errorf("Screen = (%d, %d, %v)", w, h, ok)
	}
	if mem, ok := p.DeviceMemoryGB(); !ok || mem != 16 {
		t.Errorf("DeviceMemoryGB = (%g, %v)", mem, ok)
	}
	if gpu, ok := p.GPURenderer(); !ok || gpu != "Apple M3" {
		t.Errorf("GPURenderer = (%q, %v)", gpu, ok)
	}
	if n, ok := p.TouchPoints(); !ok || n != 0 {
		t.Errorf("TouchPoints = (%d, %v)", n, ok)
	}
	// Keys absent from the file read as no signal.
	if _, ok := p.SpeechInput(); ok {
		t.Error("SpeechInput should be absent")
	}
}

func TestProfileHost_MissingFile(t *testing.T) {
	if _, err := NewProfileHost(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop()); err == nil {
		t.Error("expected an error for a missing profile")
	}
}

func TestProfileHost_ReloadFiresEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	writeProfile(t, path, desktopProfile)

	p, err := NewProfileHost(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfileHost failed: %v", err)
	}
	defer p.Close()

	resized := make(chan struct{}, 4)
	rotated := make(chan struct{}, 4)
	p.Subscribe(Resize, func() { resized <- struct{}{} })
	p.Subscribe(OrientationChange, func() { rotated <- struct{}{} })

	// Swap width and height: both a resize and an orientation flip.
	writeProfile(t, path, `
viewport:
  width: 900
  height: 1440
  pixel_ratio: 2
`)

	select {
	case <-resized:
	case <-time.After(5 * time.Second):
		t.Fatal("resize event never fired after profile edit")
	}
	select {
	case <-rotated:
	case <-time.After(5 * time.Second):
		t.Fatal("orientation event never fired after profile edit")
	}

	dims, ok := p.Metrics()
	if !ok || dims.Width != 900 || dims.Height != 1440 {
		t.Errorf("Metrics after reload = (%+v, %v)", dims, ok)
	}
}

func TestProfileHost_BadReloadKeepsLastGood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	writeProfile(t, path, desktopProfile)

	p, err := NewProfileHost(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfileHost failed: %v", err)
	}
	defer p.Close()

	writeProfile(t, path, "viewport: [not, a, mapping]")

	// Give the watcher time to attempt the reload.
	time.Sleep(500 * time.Millisecond)

	dims, ok := p.Metrics()
	if !ok || dims.Width != 1440 {
		t.Errorf("Metrics after bad reload = (%+v, %v), want last good profile", dims, ok)
	}
}
