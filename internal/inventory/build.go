package inventory

import (
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Options controls per-class provenance tracing.
type Options struct {
	DebugBoard bool
	DebugGPU   bool
}

// probes is the set of per-class provider chains for one OS family,
// selected once at startup by platformProbes.
type probes struct {
	board   []provider[Board]
	cpu     []provider[CPU]
	modules []provider[[]MemoryModule]
	gpus    []provider[[]GPU]
	disks   []provider[[]Disk]
}

// Build runs every provider chain and assembles the snapshot. It never
// returns an error: a class whose chain fails entirely degrades to an
// empty list or NA scalars without affecting the other classes.
func Build(opts Options) (Snapshot, *Trace) {
	start := time.Now()
	tr := NewTrace(opts.DebugBoard, opts.DebugGPU)
	pr := platformProbes()

	snap := Snapshot{GeneratedAt: start}
	snap.OS = detectOS()
	snap.Board = runChain(TraceBoard, tr, pr.board)
	snap.CPU = runChain("cpu", tr, pr.cpu)
	if snap.CPU.Model == "" {
		snap.CPU.Model = fallbackCPUModel()
	}
	snap.Memory = detectMemory(tr, pr.modules)
	snap.GPUs = runChain(TraceGPU, tr, pr.gpus)
	snap.Disks = runChain("disk", tr, pr.disks)

	slog.Debug("snapshot built",
		"board", snap.Board.Name(),
		"gpus", len(snap.GPUs),
		"disks", len(snap.Disks),
		"duration", time.Since(start))
	return snap, tr
}

// detectMemory always takes the installed total from the system memory
// API; only the per-module detail goes through a provider chain.
func detectMemory(tr *Trace, chain []provider[[]MemoryModule]) Memory {
	m := Memory{}
	if vm, err := mem.VirtualMemory(); err == nil {
		m.TotalBytes = vm.Total
	} else {
		slog.Debug("virtual memory query failed", "error", err)
	}
	m.Modules = runChain("memory", tr, chain)
	return m
}

func detectOS() OSInfo {
	info, err := host.Info()
	if err != nil {
		slog.Debug("host info query failed", "error", err)
		return OSInfo{Name: titleOS(runtime.GOOS)}
	}
	return OSInfo{Name: titleOS(info.Platform), Version: info.PlatformVersion}
}

func titleOS(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fallbackCPUModel supplies a generic processor identifier when no
// provider yielded a model name.
func fallbackCPUModel() string {
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		return infos[0].ModelName
	}
	return normalizeArch(runtime.GOARCH)
}

func normalizeArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// deref returns the pointed-to value or the zero value for nil, which is
// how optional management-interface fields are flattened.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
