//go:build windows

package inventory

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32PhysicalMemory struct {
	Manufacturer         *string
	Capacity             *uint64
	ConfiguredClockSpeed *uint32
	Speed                *uint32
	PartNumber           *string
}

// probeModulesWMI enumerates physical memory records. The configured
// clock speed is preferred over the rated speed, and placeholder
// manufacturer strings collapse to NA.
func probeModulesWMI(tr *Trace) ([]MemoryModule, error) {
	var rows []win32PhysicalMemory
	q := "SELECT Manufacturer, Capacity, ConfiguredClockSpeed, Speed, PartNumber FROM Win32_PhysicalMemory"
	if err := wmi.Query(q, &rows); err != nil {
		return nil, fmt.Errorf("Win32_PhysicalMemory: %w", err)
	}
	if len(rows) == 0 {
		return nil, errEmpty
	}

	modules := make([]MemoryModule, 0, len(rows))
	for i, row := range rows {
		mod := MemoryModule{
			Index:        i + 1,
			Manufacturer: cleanModuleVendor(deref(row.Manufacturer)),
			Capacity:     NA,
			Speed:        NA,
			PartNumber:   NA,
		}
		if size := deref(row.Capacity); size > 0 {
			mod.Capacity = BytesToGB(int64(size))
		}
		speed := deref(row.ConfiguredClockSpeed)
		if speed == 0 {
			speed = deref(row.Speed)
		}
		if speed > 0 {
			mod.Speed = fmt.Sprintf("%d MHz", speed)
		}
		if part := strings.TrimSpace(deref(row.PartNumber)); part != "" {
			mod.PartNumber = part
		}
		modules = append(modules, mod)
	}
	return modules, nil
}
