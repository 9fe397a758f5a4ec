// Package inventory probes the host's hardware (board, CPU, RAM, GPU,
// storage) through ordered chains of OS-specific providers and assembles
// the results into a single Snapshot.
package inventory

import "time"

// NA is the canonical placeholder for a value no provider could determine.
// Consumers must treat it the same as an absent field.
const NA = "N/A"

// Snapshot is the complete hardware inventory produced by one run.
// It is immutable once built; each call to Build returns a fresh value.
type Snapshot struct {
	Board  Board  `json:"board"`
	OS     OSInfo `json:"os"`
	CPU    CPU    `json:"cpu"`
	Memory Memory `json:"memory"`
	GPUs   []GPU  `json:"gpus"`
	Disks  []Disk `json:"disks"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Board identifies the motherboard.
type Board struct {
	Vendor string `json:"vendor"` // short brand name, e.g. "ASUS"
	Model  string `json:"model"`
}

// Name returns the display form "{vendor} {model}", or NA when neither
// field was determined.
func (b Board) Name() string {
	s := joinNonEmpty(b.Vendor, b.Model)
	if s == "" {
		return NA
	}
	return s
}

// OSInfo holds the OS identification strings.
type OSInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (o OSInfo) String() string {
	s := joinNonEmpty(o.Name, o.Version)
	if s == "" {
		return NA
	}
	return s
}

// CPU describes the processor. Zero Cores/Threads/MaxClockGHz mean the
// field could not be determined.
type CPU struct {
	Model       string  `json:"model"`
	Cores       int     `json:"cores,omitempty"`
	Threads     int     `json:"threads,omitempty"`
	MaxClockGHz float64 `json:"max_clock_ghz,omitempty"`
}

// Memory aggregates total installed RAM with optional per-module detail.
// The total always comes from the system memory API; module detail comes
// from whichever provider succeeded and may be empty.
type Memory struct {
	TotalBytes uint64         `json:"total_bytes"`
	Modules    []MemoryModule `json:"modules"`
}

// MemoryModule is one physical RAM stick. Capacity and Speed are display
// strings ("16.0 GB", "3200 MHz") because the fallback providers only
// yield free text; undetermined fields carry NA.
type MemoryModule struct {
	Index        int    `json:"index"` // 1-based enumeration order
	Manufacturer string `json:"manufacturer"`
	Capacity     string `json:"capacity"`
	Speed        string `json:"speed"`
	PartNumber   string `json:"part_number"`
}

// GPU is one graphics adapter. VRAM is a display string ("8.0 GB" or NA);
// list order follows the first successful provider's enumeration order.
type GPU struct {
	Model string `json:"model"`
	VRAM  string `json:"vram"`
}

// DiskKind classifies a physical disk.
type DiskKind string

const (
	KindHDD     DiskKind = "HDD"
	KindSSD     DiskKind = "SSD"
	KindUnknown DiskKind = NA
)

// Disk is one physical storage device. Size is a display string as
// reported by the winning provider.
type Disk struct {
	Model string   `json:"model"`
	Size  string   `json:"size"`
	Kind  DiskKind `json:"kind"`
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
