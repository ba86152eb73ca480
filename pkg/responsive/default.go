package responsive

import (
	"sync"

	"github.com/Dicklesworthstone/viewadapt/pkg/host"
)

// One logical engine per running application is a deployment convention,
// not a language-level global: the primary API is an injected *Manager.
// Default exists for applications that want the convention handled for
// them, with explicit teardown via ResetDefault.
var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Default returns the process-wide manager, creating a terminal-backed
// one on first use. The terminal host is closed when the manager is torn
// down through ResetDefault.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager == nil {
		term := host.NewTerminal()
		defaultManager = New(term, WithCleanup(term.Close))
	}
	return defaultManager
}

// SetDefault replaces the process-wide manager. The previous one, if any,
// is destroyed. Passing nil just tears the current one down.
func SetDefault(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager != nil && defaultManager != m {
		defaultManager.Destroy()
	}
	defaultManager = m
}

// ResetDefault destroys the process-wide manager, if one was created.
func ResetDefault() {
	SetDefault(nil)
}
