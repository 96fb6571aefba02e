// Package sysinfo reports process-level resource usage.
package sysinfo

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessRSSKilobytes returns the current process resident set size in
// kilobytes.
func ProcessRSSKilobytes() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("looking up own process: %w", err)
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("reading memory info: %w", err)
	}
	return mi.RSS / 1024, nil
}
