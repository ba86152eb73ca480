//go:build !linux

package host

func systemMemoryGB() (float64, bool) { return 0, false }
