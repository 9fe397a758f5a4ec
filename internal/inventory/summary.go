package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PrimaryGPU picks the adapter with the most VRAM as parsed from its
// display string. Ties keep the earliest entry; an empty list yields the
// NA sentinel.
func PrimaryGPU(gpus []GPU) GPU {
	if len(gpus) == 0 {
		return GPU{Model: NA, VRAM: NA}
	}
	best := gpus[0]
	for _, g := range gpus[1:] {
		if ExtractGB(g.VRAM) > ExtractGB(best.VRAM) {
			best = g
		}
	}
	return best
}

var firstInt = regexp.MustCompile(`\d+`)

// SummarizeRAM reduces memory detail to one line: total, module count,
// and — only when every module's capacity and speed were individually
// determined and uniform — the per-module size and speed.
func SummarizeRAM(m Memory) string {
	parts := []string{"Total: " + BytesToGB(int64(m.TotalBytes))}

	if count := len(m.Modules); count > 0 {
		if per := uniformCapacityGB(m.Modules); per > 0 {
			parts = append(parts, fmt.Sprintf("(%dx%.0f GB)", count, per))
		} else {
			parts = append(parts, fmt.Sprintf("(%d modules)", count))
		}
	}
	if mhz := uniformSpeedMHz(m.Modules); mhz > 0 {
		parts = append(parts, fmt.Sprintf("@ %d MHz", mhz))
	}
	return strings.Join(parts, " ")
}

// uniformCapacityGB returns the shared per-module capacity, or 0 when any
// module's capacity is undetermined or the sizes differ.
func uniformCapacityGB(modules []MemoryModule) float64 {
	var per float64
	for i, mod := range modules {
		gb := ExtractGB(mod.Capacity)
		if gb <= 0 {
			return 0
		}
		if i == 0 {
			per = gb
		} else if gb != per {
			return 0
		}
	}
	return per
}

// uniformSpeedMHz returns the shared module speed, or 0 when any module's
// speed is undetermined or the speeds differ.
func uniformSpeedMHz(modules []MemoryModule) int {
	if len(modules) == 0 {
		return 0
	}
	var speed int
	for i, mod := range modules {
		m := firstInt.FindString(mod.Speed)
		if m == "" {
			return 0
		}
		v, err := strconv.Atoi(m)
		if err != nil || v == 0 {
			return 0
		}
		if i == 0 {
			speed = v
		} else if v != speed {
			return 0
		}
	}
	return speed
}

// SummarizeStorage renders per-kind counts and capacity totals, omitting
// kinds with zero members. An empty or entirely unclassified list yields
// the NA sentinel.
func SummarizeStorage(disks []Disk) string {
	if len(disks) == 0 {
		return NA
	}
	var parts []string
	for _, kind := range []DiskKind{KindSSD, KindHDD} {
		count := 0
		total := 0.0
		for _, d := range disks {
			if d.Kind == kind {
				count++
				total += ExtractGB(d.Size)
			}
		}
		if count > 0 {
			parts = append(parts, fmt.Sprintf("%dx %s (%.1f GB)", count, kind, total))
		}
	}
	if len(parts) == 0 {
		return NA
	}
	return strings.Join(parts, ", ")
}

// CoresString renders the physical core count, NA when undetermined.
func (c CPU) CoresString() string {
	if c.Cores <= 0 {
		return NA
	}
	return strconv.Itoa(c.Cores)
}

// ThreadsString renders the logical thread count, NA when undetermined.
func (c CPU) ThreadsString() string {
	if c.Threads <= 0 {
		return NA
	}
	return strconv.Itoa(c.Threads)
}

// ClockString renders the max clock as "X.YZ GHz", NA when undetermined.
func (c CPU) ClockString() string {
	if c.MaxClockGHz <= 0 {
		return NA
	}
	return fmt.Sprintf("%.2f GHz", c.MaxClockGHz)
}

// ModelString renders the model name, NA when undetermined.
func (c CPU) ModelString() string {
	if c.Model == "" {
		return NA
	}
	return c.Model
}

// CPULine is the condensed one-line CPU description used by the share card.
func CPULine(c CPU) string {
	return fmt.Sprintf("%s  |  %sC/%sT  |  %s",
		CleanCPUModel(c.Model), c.CoresString(), c.ThreadsString(), c.ClockString())
}

// GPULine is the condensed one-line GPU description used by the share card.
func GPULine(g GPU) string {
	return fmt.Sprintf("%s  |  %s VRAM", g.Model, g.VRAM)
}
