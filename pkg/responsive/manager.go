package responsive

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dicklesworthstone/viewadapt/pkg/capability"
	"github.com/Dicklesworthstone/viewadapt/pkg/display"
	"github.com/Dicklesworthstone/viewadapt/pkg/host"
	"github.com/Dicklesworthstone/viewadapt/pkg/profile"
	"github.com/Dicklesworthstone/viewadapt/pkg/ratelimit"
)

// Default dimensions used when the environment cannot report any. These
// are fixed so a headless context always derives the same initial
// configuration as any other headless context.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

type subscriber struct {
	id int
	fn func(Config)
}

// Manager is the stateful orchestrator. It wires itself to the host's
// change signals at construction, rate-limits them, recomputes the
// configuration through the pure classification and mapping tables, and
// notifies subscribers only when the configuration actually changed.
//
// All mutation happens under one mutex; timer callbacks and environment
// listeners fire on their own goroutines, and the lock is what renders
// the single-consumer model safely in Go.
type Manager struct {
	env      host.Environment
	settings Settings
	log      zerolog.Logger

	debounce *ratelimit.Debouncer
	throttle *ratelimit.Throttler

	mu        sync.Mutex
	state     State
	config    Config
	subs      []subscriber
	nextSubID int
	destroyed bool

	envCancels      []func()
	transitionTimer *time.Timer
	settleTimer     *time.Timer
	cleanup         []func()
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithSettings overrides the default timing windows.
func WithSettings(s Settings) Option {
	return func(m *Manager) { m.settings = s.normalized() }
}

// WithLogger sets the logger used for subscriber faults and teardown.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithCleanup registers fn to run during Destroy, after the environment
// listeners are removed. Used to tie a host's lifetime to the manager's.
func WithCleanup(fn func()) Option {
	return func(m *Manager) { m.cleanup = append(m.cleanup, fn) }
}

// New creates a Manager bound to env, seeds its initial state and
// configuration through the same classification path as any later
// update, and subscribes to the environment's change signals. A nil env
// behaves as a headless host.
func New(env host.Environment, opts ...Option) *Manager {
	if env == nil {
		env = host.Headless{}
	}

	m := &Manager{
		env:      env,
		settings: DefaultSettings(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.debounce = ratelimit.NewDebouncer(m.settings.DebounceWindow)
	m.throttle = ratelimit.NewThrottler(m.settings.ThrottleWindow)

	dims := m.readDimensions()
	caps := capability.Probe(env)
	viewport := display.ClassifyViewport(dims.Width)
	orientation := display.ClassifyOrientation(dims.Width, dims.Height)

	m.state = State{
		Viewport:    viewport,
		Orientation: orientation,
		Dimensions:  dims,
	}
	m.config = Config{
		Viewport:     viewport,
		Orientation:  orientation,
		Capabilities: caps,
		Performance:  profile.ResolvePerformance(caps.Tier, caps.MaxPixelRatio),
		Layout:       profile.ResolveLayout(viewport, orientation),
	}

	m.envCancels = []func(){
		env.Subscribe(host.Resize, func() {
			m.debounce.Trigger(func() { m.UpdateLayout() })
		}),
		env.Subscribe(host.OrientationChange, func() {
			m.HandleOrientationChange()
		}),
		env.Subscribe(host.VisibilityChange, func() {
			m.throttle.Trigger(m.OptimizeForDevice)
		}),
		env.Subscribe(host.MediaChange, func() {
			m.UpdateLayout()
		}),
	}

	return m
}

// readDimensions queries the environment and falls back to the fixed
// defaults when it cannot answer.
func (m *Manager) readDimensions() display.Dimensions {
	if dims, ok := m.env.Metrics(); ok && dims.Width > 0 && dims.Height > 0 {
		if dims.PixelRatio <= 0 {
			dims.PixelRatio = 1
		}
		return dims
	}
	return display.Dimensions{Width: DefaultWidth, Height: DefaultHeight, PixelRatio: 1}
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// State returns a copy of the current layout state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to be called with every published configuration.
// The returned function removes exactly this registration and is safe to
// call more than once. Subscriptions made after Destroy are inert.
func (m *Manager) Subscribe(fn func(Config)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed {
		return func() {}
	}

	m.nextSubID++
	id := m.nextSubID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, sub := range m.subs {
				if sub.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// UpdateLayout re-reads the environment, reclassifies, and publishes a new
// configuration if anything changed. The optional explicit category
// overrides the width-derived viewport, which keeps tests and external
// callers deterministic; dimensions and orientation still come from the
// environment.
//
// The update is suppressed entirely when none of the three axes
// (viewport, orientation, raw dimensions) moved, and even a state-changing
// update stays silent when the derived configuration is structurally
// identical to the previous one.
func (m *Manager) UpdateLayout(explicit ...display.Category) {
	m.update(explicit, false)
}

// ForceUpdate re-runs UpdateLayout bypassing the no-change suppression:
// state is rebuilt and subscribers are notified unconditionally. Used for
// explicit external re-synchronization.
func (m *Manager) ForceUpdate() {
	m.update(nil, true)
}

func (m *Manager) update(explicit []display.Category, force bool) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}

	dims := m.readDimensions()
	viewport := display.ClassifyViewport(dims.Width)
	if len(explicit) > 0 {
		viewport = explicit[0]
	}
	orientation := display.ClassifyOrientation(dims.Width, dims.Height)

	changed := viewport != m.state.Viewport ||
		orientation != m.state.Orientation ||
		dims != m.state.Dimensions
	if !changed && !force {
		m.mu.Unlock()
		return
	}

	m.state = State{
		Viewport:        viewport,
		Orientation:     orientation,
		Dimensions:      dims,
		IsTransitioning: true,
		LastTransition:  time.Now(),
	}

	prev := m.config
	m.config = Config{
		Viewport:     viewport,
		Orientation:  orientation,
		Capabilities: prev.Capabilities,
		Performance:  prev.Performance,
		Layout:       profile.ResolveLayout(viewport, orientation),
	}
	cfg := m.config

	m.scheduleTransitionClearLocked()

	publish := force || !cfg.Equal(prev)
	subs := m.subscribersLocked()
	m.mu.Unlock()

	if publish {
		m.notify(subs, cfg)
	}
}

// HandleOrientationChange schedules a relayout after the settle window
// instead of relaying out immediately: the dimensions reported right
// after a rotation are frequently still the pre-rotation ones. A second
// orientation change within the window supersedes the first.
func (m *Manager) HandleOrientationChange() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed {
		return
	}
	if m.settleTimer != nil {
		m.settleTimer.Stop()
	}
	m.settleTimer = time.AfterFunc(m.settings.OrientationSettle, func() {
		m.UpdateLayout()
	})
}

// OptimizeForDevice re-probes the device and re-derives the performance
// profile, leaving viewport and orientation untouched. It always
// notifies: external triggers such as app-foreground resume use this
// path precisely to push a fresh snapshot at consumers.
func (m *Manager) OptimizeForDevice() {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}

	caps := capability.Probe(m.env)
	m.config.Capabilities = caps
	m.config.Performance = profile.ResolvePerformance(caps.Tier, caps.MaxPixelRatio)
	cfg := m.config
	subs := m.subscribersLocked()
	m.mu.Unlock()

	m.notify(subs, cfg)
}

// Destroy removes every environment listener, cancels pending timers, and
// clears the subscriber set. It is idempotent, and no notification is
// delivered after it returns even if the environment keeps firing.
func (m *Manager) Destroy() {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	m.destroyed = true

	cancels := m.envCancels
	m.envCancels = nil
	cleanup := m.cleanup
	m.cleanup = nil
	m.subs = nil

	if m.transitionTimer != nil {
		m.transitionTimer.Stop()
		m.transitionTimer = nil
	}
	if m.settleTimer != nil {
		m.settleTimer.Stop()
		m.settleTimer = nil
	}
	m.mu.Unlock()

	m.debounce.Cancel()
	m.throttle.Cancel()

	for _, cancel := range cancels {
		cancel()
	}
	for _, fn := range cleanup {
		fn()
	}
}

func (m *Manager) subscribersLocked() []subscriber {
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	return subs
}

// notify delivers cfg to each subscriber in registration order. A panic
// inside one callback is logged and must not starve the callbacks after
// it; independent consumers are isolated from each other's faults.
func (m *Manager) notify(subs []subscriber, cfg Config) {
	for _, sub := range subs {
		if m.isDestroyed() {
			return
		}
		m.invoke(sub, cfg)
	}
}

func (m *Manager) invoke(sub subscriber, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().
				Int("subscriber", sub.id).
				Interface("panic", r).
				Msg("subscriber callback panicked")
		}
	}()
	sub.fn(cfg)
}

func (m *Manager) isDestroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// scheduleTransitionClearLocked arms the quiet-window timer that drops
// the transition flag. A newer update re-arms it, so the flag stays set
// across a storm of updates and clears once the storm ends.
func (m *Manager) scheduleTransitionClearLocked() {
	if m.transitionTimer != nil {
		m.transitionTimer.Stop()
	}
	armed := m.state.LastTransition
	m.transitionTimer = time.AfterFunc(m.settings.TransitionDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.destroyed || !m.state.LastTransition.Equal(armed) {
			return
		}
		m.state.IsTransitioning = false
	})
}
