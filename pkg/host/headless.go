package host

import "github.com/Dicklesworthstone/viewadapt/pkg/display"

// Headless is an Environment with no signals at all. Every query reports
// absent and Subscribe never fires. Probing it yields exactly the default
// capability snapshot, which is what keeps server-side and client-side
// derivations of the initial configuration identical.
type Headless struct{}

func (Headless) Metrics() (display.Dimensions, bool) { return display.Dimensions{}, false }
func (Headless) Screen() (int, int, bool)            { return 0, 0, false }
func (Headless) DeviceMemoryGB() (float64, bool)     { return 0, false }
func (Headless) GPURenderer() (string, bool)         { return "", false }
func (Headless) NetworkKind() (string, bool)         { return "", false }
func (Headless) TouchPoints() (int, bool)            { return 0, false }
func (Headless) SupportsOrientation() (bool, bool)   { return false, false }
func (Headless) SpeechInput() (bool, bool)           { return false, false }
func (Headless) InstallableApp() (bool, bool)        { return false, false }

func (Headless) Subscribe(Event, func()) (cancel func()) { return func() {} }
