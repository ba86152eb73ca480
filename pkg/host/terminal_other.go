//go:build !unix

package host

// No resize signal is available here; the host is query-only.
func (t *Terminal) watchSignals() {}
