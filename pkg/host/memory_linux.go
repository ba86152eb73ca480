//go:build linux

package host

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// systemMemoryGB reads MemTotal from /proc/meminfo. Absence of the file or
// a malformed line simply reports no signal; the probe has its own default.
func systemMemoryGB() (float64, bool) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || kb <= 0 {
			return 0, false
		}
		return kb / (1024 * 1024), true
	}
	return 0, false
}
