package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestMergeOverridesOnlyPresentKeys(t *testing.T) {
	cfg := Default()
	user := `{"title": "Battlestation", "accent_color": "#ff0080", "image_size": [1920, 1080]}`
	if err := Merge(&cfg, []byte(user)); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if cfg.Title != "Battlestation" {
		t.Errorf("title not overridden: %q", cfg.Title)
	}
	if cfg.ImageSize != [2]int{1920, 1080} {
		t.Errorf("image_size not overridden: %v", cfg.ImageSize)
	}
	if cfg.AccentColor != (RGB{0xff, 0x00, 0x80}) {
		t.Errorf("accent_color not overridden: %+v", cfg.AccentColor)
	}
	// Absent keys keep their defaults.
	if cfg.BackgroundFit != "cover" {
		t.Errorf("background_fit lost its default: %q", cfg.BackgroundFit)
	}
	if cfg.FontSizes["title"] != 56 {
		t.Errorf("font_sizes lost its default: %v", cfg.FontSizes)
	}
}

func TestRGBUnmarshal(t *testing.T) {
	var c RGB
	if err := json.Unmarshal([]byte(`[0, 255, 157]`), &c); err != nil {
		t.Fatalf("array form failed: %v", err)
	}
	if c != (RGB{0, 255, 157}) {
		t.Errorf("array form: %+v", c)
	}

	if err := json.Unmarshal([]byte(`"#00ccff"`), &c); err != nil {
		t.Fatalf("hex form failed: %v", err)
	}
	if c != (RGB{0x00, 0xcc, 0xff}) {
		t.Errorf("hex form: %+v", c)
	}

	// Out-of-range components clamp instead of wrapping.
	if err := json.Unmarshal([]byte(`[300, -5, 128]`), &c); err != nil {
		t.Fatalf("clamping form failed: %v", err)
	}
	if c != (RGB{255, 0, 128}) {
		t.Errorf("clamped form: %+v", c)
	}

	for _, bad := range []string{`"#12"`, `"red"`, `[1, 2]`, `true`} {
		if err := json.Unmarshal([]byte(bad), &c); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}

func TestRGBMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(RGB{26, 26, 26})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[26,26,26]" {
		t.Errorf("marshal = %s", data)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(path, []byte(`{"title": "From File"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "From File" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.BackgroundColor != (RGB{26, 26, 26}) {
		t.Errorf("defaults not preserved: %+v", cfg.BackgroundColor)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	// A missing explicit path falls back to defaults without writing a file.
	path := filepath.Join(t.TempDir(), "nope.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "Gaming PC" {
		t.Errorf("expected defaults, got title %q", cfg.Title)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("explicit path must not be created")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"title": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed file")
	}
}

func TestDebugFlags(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugBoard, "")
	t.Setenv(EnvDebugGPU, "")
	if DebugBoard() || DebugGPU() {
		t.Error("debug flags should default off")
	}

	t.Setenv(EnvDebugBoard, "1")
	if !DebugBoard() {
		t.Error("RIGSPEC_DEBUG_BOARD=1 should enable board tracing")
	}
	if DebugGPU() {
		t.Error("board flag must not enable GPU tracing")
	}

	t.Setenv(EnvDebugBoard, "")
	t.Setenv(EnvDebug, "yes")
	if !DebugBoard() || !DebugGPU() {
		t.Error("generic flag should enable both classes")
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		if !truthy(v) {
			t.Errorf("truthy(%q) = false", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off", "nah"} {
		if truthy(v) {
			t.Errorf("truthy(%q) = true", v)
		}
	}
}
