package host

import (
	"sync"

	"github.com/Dicklesworthstone/viewadapt/pkg/display"
)

// Scripted is an Environment driven entirely by the caller: tests and
// simulations set the signals they care about and fire events manually.
// Unset signals report absent, so a zero Scripted behaves like Headless.
type Scripted struct {
	mu sync.Mutex
	ls listeners

	dims    *display.Dimensions
	screenW *int
	screenH *int
	memory  *float64
	gpu     *string
	network *string
	touch   *int
	orient  *bool
	speech  *bool
	install *bool
}

// SetMetrics sets the viewport dimensions returned by Metrics.
func (s *Scripted) SetMetrics(d display.Dimensions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dims = &d
}

// SetScreen sets the physical screen size.
func (s *Scripted) SetScreen(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screenW, s.screenH = &w, &h
}

// SetDeviceMemoryGB sets the memory estimate signal.
func (s *Scripted) SetDeviceMemoryGB(gb float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory = &gb
}

// SetGPURenderer sets the GPU renderer identifier signal.
func (s *Scripted) SetGPURenderer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gpu = &id
}

// SetNetworkKind sets the effective network type signal.
func (s *Scripted) SetNetworkKind(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.network = &kind
}

// SetTouchPoints sets the touch point count signal.
func (s *Scripted) SetTouchPoints(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch = &n
}

// SetSupportsOrientation sets the orientation API signal.
func (s *Scripted) SetSupportsOrientation(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orient = &v
}

// SetSpeechInput sets the speech input signal.
func (s *Scripted) SetSpeechInput(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speech = &v
}

// SetInstallableApp sets the app install capability signal.
func (s *Scripted) SetInstallableApp(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.install = &v
}

// Fire delivers an event to every subscriber, synchronously.
func (s *Scripted) Fire(ev Event) {
	s.ls.fire(ev)
}

func (s *Scripted) Metrics() (display.Dimensions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dims == nil {
		return display.Dimensions{}, false
	}
	return *s.dims, true
}

func (s *Scripted) Screen() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screenW == nil || s.screenH == nil {
		return 0, 0, false
	}
	return *s.screenW, *s.screenH, true
}

func (s *Scripted) DeviceMemoryGB() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.memory == nil {
		return 0, false
	}
	return *s.memory, true
}

func (s *Scripted) GPURenderer() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gpu == nil {
		return "", false
	}
	return *s.gpu, true
}

func (s *Scripted) NetworkKind() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.network == nil {
		return "", false
	}
	return *s.network, true
}

func (s *Scripted) TouchPoints() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touch == nil {
		return 0, false
	}
	return *s.touch, true
}

func (s *Scripted) SupportsOrientation() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orient == nil {
		return false, false
	}
	return *s.orient, true
}

func (s *Scripted) SpeechInput() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.speech == nil {
		return false, false
	}
	return *s.speech, true
}

func (s *Scripted) InstallableApp() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.install == nil {
		return false, false
	}
	return *s.install, true
}

func (s *Scripted) Subscribe(ev Event, fn func()) (cancel func()) {
	return s.ls.add(ev, fn)
}
