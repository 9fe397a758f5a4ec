//go:build !windows

package inventory

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

// probeCPUProcfs combines the model name from /proc/cpuinfo with core
// counts and clock from the system stats library.
func probeCPUProcfs(tr *Trace) (CPU, error) {
	c := CPU{}

	if data, err := os.ReadFile("/proc/cpuinfo"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "model name") {
				if parts := strings.SplitN(line, ":", 2); len(parts) == 2 {
					c.Model = strings.TrimSpace(parts[1])
				}
				break
			}
		}
	}

	if n, err := cpu.Counts(false); err == nil {
		c.Cores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		c.Threads = n
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		c.MaxClockGHz = infos[0].Mhz / 1000
	}

	if c.Model == "" && c.Cores == 0 && c.Threads == 0 {
		return CPU{}, errEmpty
	}
	return c, nil
}
