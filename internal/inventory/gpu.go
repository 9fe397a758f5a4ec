package inventory

import (
	"regexp"
	"strconv"
	"strings"
)

// videoAdapter is one display adapter as listed by the management
// interface. AdapterRAM is the interface's approximate VRAM field,
// zero when unreported (it is a 32-bit field and caps out at 4 GB,
// which is why the exact sources are preferred).
type videoAdapter struct {
	Name       string
	AdapterRAM uint64
}

// gpuReading is a (model, VRAM bytes) pair from one detection source.
type gpuReading struct {
	Model string
	Bytes uint64
}

// namesOverlap reports whether either adapter name contains the other.
// Bidirectional containment can over-match on short model fragments;
// this mirrors how the sources themselves abbreviate names and is a
// known precision limitation.
func namesOverlap(a, b string) bool {
	return a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a))
}

func findReading(readings []gpuReading, name string) (gpuReading, bool) {
	for _, r := range readings {
		if namesOverlap(r.Model, name) {
			return r, true
		}
	}
	return gpuReading{}, false
}

// mergeGPUAdapters resolves VRAM for each listed adapter: an exact
// vendor-library reading wins, then a low-level enumeration reading,
// then the interface's own approximate field, then NA. Generic virtual
// display adapters are excluded.
func mergeGPUAdapters(adapters []videoAdapter, exact, lowLevel []gpuReading, tr *Trace) []GPU {
	var gpus []GPU
	for _, a := range adapters {
		if a.Name == "" || strings.Contains(a.Name, "Microsoft") {
			continue
		}
		vram := NA
		source := "none"
		if r, ok := findReading(exact, a.Name); ok {
			vram = BytesToGB(int64(r.Bytes))
			source = "vendor"
		} else if r, ok := findReading(lowLevel, a.Name); ok {
			vram = BytesToGB(int64(r.Bytes))
			source = "adapter-enum"
		} else if a.AdapterRAM > 0 {
			vram = BytesToGB(int64(a.AdapterRAM))
			source = "approx"
		}
		tr.Addf(TraceGPU, "merge: name=%q adapterRAM=%d chosen=%s -> %s", a.Name, a.AdapterRAM, source, vram)
		gpus = append(gpus, GPU{Model: a.Name, VRAM: vram})
	}
	return gpus
}

func readingsToGPUs(readings []gpuReading) []GPU {
	var gpus []GPU
	for _, r := range readings {
		gpus = append(gpus, GPU{Model: r.Model, VRAM: BytesToGB(int64(r.Bytes))})
	}
	return gpus
}

// ParseVendorGPUCSV parses `nvidia-smi --query-gpu=name,memory.total
// --format=csv,noheader,nounits` output: one "name, MiB" line per device.
// Exported for testing.
func ParseVendorGPUCSV(output string) []gpuReading {
	var readings []gpuReading
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ",")
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		mib, err := strconv.ParseUint(strings.TrimSpace(line[idx+1:]), 10, 64)
		if err != nil || name == "" {
			continue
		}
		readings = append(readings, gpuReading{Model: name, Bytes: mib << 20})
	}
	return readings
}

var displayClassLine = regexp.MustCompile(`(?i)\b(vga|3d|display)\b`)

// ParseDeviceListGPUs extracts display-class devices from `lspci` output.
// VRAM is not determined on this path. Exported for testing.
func ParseDeviceListGPUs(output string) []GPU {
	var gpus []GPU
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" || !displayClassLine.MatchString(line) {
			continue
		}
		// "01:00.0 VGA compatible controller: NVIDIA Corporation ..."
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}
		model := strings.TrimSpace(parts[2])
		if model == "" {
			continue
		}
		gpus = append(gpus, GPU{Model: model, VRAM: NA})
	}
	return gpus
}
