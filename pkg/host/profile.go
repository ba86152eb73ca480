package host

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/viewadapt/pkg/display"
	"github.com/Dicklesworthstone/viewadapt/pkg/ratelimit"
)

// profileDoc is the on-disk shape of a device profile. Optional signals
// are pointers so an omitted key reads as "no signal" rather than a zero.
type profileDoc struct {
	Viewport *struct {
		Width      int     `yaml:"width"`
		Height     int     `yaml:"height"`
		PixelRatio float64 `yaml:"pixel_ratio"`
	} `yaml:"viewport"`
	Screen *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"screen"`
	DeviceMemoryGB *float64 `yaml:"device_memory_gb"`
	GPURenderer    *string  `yaml:"gpu_renderer"`
	Network        *string  `yaml:"network"`
	TouchPoints    *int     `yaml:"touch_points"`
	OrientationAPI *bool    `yaml:"orientation_api"`
	SpeechInput    *bool    `yaml:"speech_input"`
	InstallableApp *bool    `yaml:"installable_app"`
	Visible        *bool    `yaml:"visible"`
}

// ProfileHost is an Environment backed by a YAML device profile on disk.
// Edits to the file are picked up via fsnotify and translated into the
// corresponding change events, which makes it useful both for demos
// (simulate a rotation by editing two numbers) and for integration tests.
type ProfileHost struct {
	path string
	log  zerolog.Logger
	ls   listeners

	mu  sync.Mutex
	doc profileDoc

	watcher  *fsnotify.Watcher
	debounce *ratelimit.Debouncer
	stop     chan struct{}
	once     sync.Once
}

// NewProfileHost loads the profile at path and starts watching it for
// changes. The logger may be a zerolog.Nop().
func NewProfileHost(path string, log zerolog.Logger) (*ProfileHost, error) {
	doc, err := loadProfile(path)
	if err != nil {
		return nil, err
	}

	p := &ProfileHost{
		path:     path,
		log:      log,
		doc:      doc,
		debounce: ratelimit.NewDebouncer(0),
		stop:     make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create profile watcher: %w", err)
	}
	// Watch the directory, not the file: editors that save via rename
	// replace the inode and a file watch would go stale.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch profile directory: %w", err)
	}
	p.watcher = watcher

	go p.watch()
	return p, nil
}

func loadProfile(path string) (profileDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profileDoc{}, fmt.Errorf("failed to read device profile: %w", err)
	}
	var doc profileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return profileDoc{}, fmt.Errorf("failed to parse device profile %s: %w", path, err)
	}
	return doc, nil
}

func (p *ProfileHost) watch() {
	for {
		select {
		case ev, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(p.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p.debounce.Trigger(p.reload)
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.log.Warn().Err(err).Msg("profile watcher error")
		case <-p.stop:
			return
		}
	}
}

// reload re-reads the profile and fires an event per changed axis.
func (p *ProfileHost) reload() {
	doc, err := loadProfile(p.path)
	if err != nil {
		// Keep serving the last good profile.
		p.log.Warn().Err(err).Msg("profile reload failed")
		return
	}

	p.mu.Lock()
	old := p.doc
	p.doc = doc
	p.mu.Unlock()

	oldDims, oldOK := dimsOf(old)
	newDims, newOK := dimsOf(doc)

	if oldOK != newOK || oldDims != newDims {
		p.ls.fire(Resize)
		if display.ClassifyOrientation(oldDims.Width, oldDims.Height) !=
			display.ClassifyOrientation(newDims.Width, newDims.Height) {
			p.ls.fire(OrientationChange)
		}
	}
	if boolSignal(old.Visible) != boolSignal(doc.Visible) {
		p.ls.fire(VisibilityChange)
	}
	if capabilitySignature(old) != capabilitySignature(doc) {
		p.ls.fire(MediaChange)
	}
}

func dimsOf(doc profileDoc) (display.Dimensions, bool) {
	if doc.Viewport == nil || doc.Viewport.Width <= 0 || doc.Viewport.Height <= 0 {
		return display.Dimensions{}, false
	}
	ratio := doc.Viewport.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return display.Dimensions{
		Width:      doc.Viewport.Width,
		Height:     doc.Viewport.Height,
		PixelRatio: ratio,
	}, true
}

// boolSignal folds a tri-state pointer into a comparable value; hosts with
// no visibility signal are treated as always visible.
func boolSignal(v *bool) bool { return v == nil || *v }

// capabilitySignature summarizes the non-viewport signals so reload can
// tell whether a MediaChange is worth firing.
func capabilitySignature(doc profileDoc) string {
	sig := ""
	if doc.DeviceMemoryGB != nil {
		sig += fmt.Sprintf("mem=%g;", *doc.DeviceMemoryGB)
	}
	if doc.GPURenderer != nil {
		sig += "gpu=" + *doc.GPURenderer + ";"
	}
	if doc.Network != nil {
		sig += "net=" + *doc.Network + ";"
	}
	if doc.TouchPoints != nil {
		sig += fmt.Sprintf("touch=%d;", *doc.TouchPoints)
	}
	if doc.Screen != nil {
		sig += fmt.Sprintf("screen=%dx%d;", doc.Screen.Width, doc.Screen.Height)
	}
	return sig
}

// Close stops the watcher and any pending reload. Idempotent.
func (p *ProfileHost) Close() {
	p.once.Do(func() {
		close(p.stop)
		p.debounce.Cancel()
		p.watcher.Close()
	})
}

func (p *ProfileHost) Metrics() (display.Dimensions, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dimsOf(p.doc)
}

func (p *ProfileHost) Screen() (int, int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.Screen == nil {
		return 0, 0, false
	}
	return p.doc.Screen.Width, p.doc.Screen.Height, true
}

func (p *ProfileHost) DeviceMemoryGB() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.DeviceMemoryGB == nil {
		return 0, false
	}
	return *p.doc.DeviceMemoryGB, true
}

func (p *ProfileHost) GPURenderer() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.GPURenderer == nil {
		return "", false
	}
	return *p.doc.GPURenderer, true
}

func (p *ProfileHost) NetworkKind() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.Network == nil {
		return "", false
	}
	return *p.doc.Network, true
}

func (p *ProfileHost) TouchPoints() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.TouchPoints == nil {
		return 0, false
	}
	return *p.doc.TouchPoints, true
}

func (p *ProfileHost) SupportsOrientation() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.OrientationAPI == nil {
		return false, false
	}
	return *p.doc.OrientationAPI, true
}

func (p *ProfileHost) SpeechInput() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.SpeechInput == nil {
		return false, false
	}
	return *p.doc.SpeechInput, true
}

func (p *ProfileHost) InstallableApp() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc.InstallableApp == nil {
		return false, false
	}
	return *p.doc.InstallableApp, true
}

func (p *ProfileHost) Subscribe(ev Event, fn func()) (cancel func()) {
	return p.ls.add(ev, fn)
}
