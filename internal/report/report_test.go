package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rigspec-io/rigspec/internal/config"
	"github.com/rigspec-io/rigspec/internal/inventory"
)

func sampleSnapshot() inventory.Snapshot {
	return inventory.Snapshot{
		Board: inventory.Board{Vendor: "MSI", Model: "PRO B650-P WIFI"},
		OS:    inventory.OSInfo{Name: "Windows 11 Pro", Version: "10.0.22631"},
		CPU: inventory.CPU{
			Model:       "AMD Ryzen 7 7800X3D 8-Core Processor",
			Cores:       8,
			Threads:     16,
			MaxClockGHz: 4.2,
		},
		Memory: inventory.Memory{
			TotalBytes: 32 << 30,
			Modules: []inventory.MemoryModule{
				{Index: 1, Manufacturer: "Corsair", Capacity: "16.0 GB", Speed: "6000 MHz", PartNumber: "CMK32GX5M2B6000C36"},
				{Index: 2, Manufacturer: "Corsair", Capacity: "16.0 GB", Speed: "6000 MHz", PartNumber: "CMK32GX5M2B6000C36"},
			},
		},
		GPUs: []inventory.GPU{
			{Model: "NVIDIA GeForce RTX 4080", VRAM: "16.0 GB"},
		},
		Disks: []inventory.Disk{
			{Model: "Samsung SSD 980 PRO 1TB", Size: "931.5 GB", Kind: inventory.KindSSD},
		},
		GeneratedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Title = "Test Rig"

	if err := WriteHTML(&buf, cfg, sampleSnapshot(), nil); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Test Rig Specifications</title>",
		"MSI PRO B650-P WIFI",
		"Windows 11 Pro",
		"AMD Ryzen 7 7800X3D 8-Core Processor",
		"Total: 32.0 GB",
		"CMK32GX5M2B6000C36",
		"NVIDIA GeForce RTX 4080",
		"Samsung SSD 980 PRO 1TB",
		"Generated on 2025-06-01 12:30:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// No trace entries: the debug sections must not render.
	if strings.Contains(out, "Debug: Motherboard Sources") || strings.Contains(out, "Debug: GPU Sources") {
		t.Error("debug sections rendered without trace entries")
	}
}

func TestWriteHTMLWithTrace(t *testing.T) {
	tr := inventory.NewTrace(true, true)
	tr.Addf(inventory.TraceBoard, "registry: ok")
	tr.Addf(inventory.TraceGPU, "nvidia-smi: exit status 1")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, config.Default(), sampleSnapshot(), tr); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Debug: Motherboard Sources") || !strings.Contains(out, "registry: ok") {
		t.Error("board trace section missing")
	}
	if !strings.Contains(out, "Debug: GPU Sources") || !strings.Contains(out, "nvidia-smi: exit status 1") {
		t.Error("GPU trace section missing")
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	snap := sampleSnapshot()
	snap.CPU.Model = `<script>alert("x")</script>`

	var buf bytes.Buffer
	if err := WriteHTML(&buf, config.Default(), snap, nil); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Error("device strings must be HTML-escaped")
	}
}

func TestWriteCard(t *testing.T) {
	cfg := config.Default()
	cfg.BackgroundImage = "" // no background file in the test environment
	cfg.ImageSize = [2]int{600, 338}

	path := filepath.Join(t.TempDir(), "card.png")
	if err := WriteCard(path, cfg, sampleSnapshot()); err != nil {
		t.Fatalf("WriteCard failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("card not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("card is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 338 {
		t.Errorf("unexpected card size %v", img.Bounds())
	}
}

func TestWriteCardDefaultsBadSize(t *testing.T) {
	cfg := config.Default()
	cfg.BackgroundImage = ""
	cfg.ImageSize = [2]int{0, -10}

	path := filepath.Join(t.TempDir(), "card.png")
	if err := WriteCard(path, cfg, sampleSnapshot()); err != nil {
		t.Fatalf("WriteCard failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 675 {
		t.Errorf("expected fallback 1200x675, got %v", img.Bounds())
	}
}
