//go:build windows

package inventory

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32Processor struct {
	Name                      *string
	NumberOfCores             *uint32
	NumberOfLogicalProcessors *uint32
	MaxClockSpeed             *uint32 // MHz
}

// probeCPUWMI queries the management interface's processor record.
func probeCPUWMI(tr *Trace) (CPU, error) {
	var rows []win32Processor
	q := "SELECT Name, NumberOfCores, NumberOfLogicalProcessors, MaxClockSpeed FROM Win32_Processor"
	if err := wmi.Query(q, &rows); err != nil {
		return CPU{}, fmt.Errorf("Win32_Processor: %w", err)
	}
	if len(rows) == 0 {
		return CPU{}, errEmpty
	}

	p := rows[0]
	c := CPU{
		Model:   strings.TrimSpace(deref(p.Name)),
		Cores:   int(deref(p.NumberOfCores)),
		Threads: int(deref(p.NumberOfLogicalProcessors)),
	}
	if mhz := deref(p.MaxClockSpeed); mhz > 0 {
		c.MaxClockGHz = float64(mhz) / 1000
	}
	if c.Model == "" && c.Cores == 0 && c.Threads == 0 {
		return CPU{}, errEmpty
	}
	return c, nil
}
