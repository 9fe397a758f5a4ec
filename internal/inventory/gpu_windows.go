//go:build windows

package inventory

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

// displayClassKey is the device class for display adapters; each adapter
// instance is a four-digit subkey carrying the driver's dedicated VRAM as
// a 64-bit value. This is the low-level source — the management
// interface's own AdapterRAM field is 32-bit and caps at 4 GB.
const displayClassKey = `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

type win32VideoController struct {
	Name       *string
	AdapterRAM *uint32
}

// probeGPUComposite gathers the three independent sources and merges
// them. The management-interface list drives enumeration; when it fails
// entirely, vendor readings win over low-level readings.
func probeGPUComposite(tr *Trace) ([]GPU, error) {
	exact := queryVendorVRAM(tr)
	lowLevel := queryAdapterEnumVRAM(tr)

	adapters, err := queryVideoControllers(tr)
	if err != nil {
		tr.Addf(TraceGPU, "wmi: %v", err)
		if len(exact) > 0 {
			return readingsToGPUs(exact), nil
		}
		if len(lowLevel) > 0 {
			return readingsToGPUs(lowLevel), nil
		}
		return nil, fmt.Errorf("all GPU sources failed: %w", err)
	}

	gpus := mergeGPUAdapters(adapters, exact, lowLevel, tr)
	if len(gpus) == 0 {
		if len(exact) > 0 {
			return readingsToGPUs(exact), nil
		}
		gpus = readingsToGPUs(lowLevel)
	}
	if len(gpus) == 0 {
		return nil, errEmpty
	}
	return gpus, nil
}

func queryVideoControllers(tr *Trace) ([]videoAdapter, error) {
	var rows []win32VideoController
	q := "SELECT Name, AdapterRAM FROM Win32_VideoController"
	if err := wmi.Query(q, &rows); err != nil {
		return nil, fmt.Errorf("Win32_VideoController: %w", err)
	}

	var adapters []videoAdapter
	for _, row := range rows {
		adapters = append(adapters, videoAdapter{
			Name:       strings.TrimSpace(deref(row.Name)),
			AdapterRAM: uint64(deref(row.AdapterRAM)),
		})
	}
	return adapters, nil
}

// queryVendorVRAM asks the NVIDIA management tool for exact VRAM per
// device. Absence of the tool just means no exact readings.
func queryVendorVRAM(tr *Trace) []gpuReading {
	out, err := runCommand("nvidia-smi", "--query-gpu=name,memory.total", "--format=csv,noheader,nounits")
	if err != nil {
		tr.Addf(TraceGPU, "vendor: not available: %v", err)
		return nil
	}
	readings := ParseVendorGPUCSV(out)
	for i, r := range readings {
		tr.Addf(TraceGPU, "vendor[%d]: model=%q bytes=%d", i, r.Model, r.Bytes)
	}
	return readings
}

// queryAdapterEnumVRAM walks the display-class adapter instances in the
// registry, collecting driver description and dedicated memory size.
func queryAdapterEnumVRAM(tr *Trace) []gpuReading {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, displayClassKey, registry.READ)
	if err != nil {
		tr.Addf(TraceGPU, "adapter-enum: open class key: %v", err)
		return nil
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		tr.Addf(TraceGPU, "adapter-enum: list instances: %v", err)
		return nil
	}

	var readings []gpuReading
	for _, name := range subkeys {
		if len(name) != 4 || strings.Trim(name, "0123456789") != "" {
			continue // adapter instances are "0000", "0001", ...
		}
		sub, err := registry.OpenKey(key, name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		desc, _, descErr := sub.GetStringValue("DriverDesc")
		bytes, _, memErr := sub.GetIntegerValue("HardwareInformation.qwMemorySize")
		sub.Close()
		if descErr != nil || memErr != nil || desc == "" {
			continue
		}
		tr.Addf(TraceGPU, "adapter-enum[%s]: model=%q bytes=%d", name, desc, bytes)
		readings = append(readings, gpuReading{Model: strings.TrimSpace(desc), Bytes: bytes})
	}
	return readings
}
