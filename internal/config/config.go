// Package config handles rigspec configuration: a JSON file merged over
// built-in defaults, plus environment flags for detection tracing.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultFileName is looked for next to the executable, then in the
// working directory.
const DefaultFileName = "rigspec.config.json"

// RGB is a color that unmarshals from either an [r,g,b] array or a
// "#rrggbb" string.
type RGB struct {
	R, G, B uint8
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// UnmarshalJSON accepts [r,g,b] arrays and "#rrggbb" strings; anything
// else is an error so a typo doesn't silently turn a color black.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) < 3 {
			return fmt.Errorf("color array needs 3 components, got %d", len(arr))
		}
		c.R, c.G, c.B = clamp8(arr[0]), clamp8(arr[1]), clamp8(arr[2])
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m := hexColor.FindStringSubmatch(strings.TrimSpace(s))
		if m == nil {
			return fmt.Errorf("invalid color %q", s)
		}
		var r, g, b uint8
		fmt.Sscanf(m[1], "%02x%02x%02x", &r, &g, &b)
		c.R, c.G, c.B = r, g, b
		return nil
	}
	return fmt.Errorf("color must be [r,g,b] or \"#rrggbb\"")
}

// MarshalJSON writes the array form used by the default config file.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

// Color converts to an opaque image/color value.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Overlay tints the card background.
type Overlay struct {
	Color   RGB     `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Config holds report and share-card settings.
type Config struct {
	Title             string            `json:"title"`
	ImageSize         [2]int            `json:"image_size"`
	BackgroundImage   string            `json:"background_image"`
	BackgroundFit     string            `json:"background_fit"` // cover | contain | stretch
	BackgroundOverlay Overlay           `json:"background_overlay"`
	BackgroundColor   RGB               `json:"background_color"`
	AccentColor       RGB               `json:"accent_color"`
	SubColor          RGB               `json:"sub_color"`
	TextColor         RGB               `json:"text_color"`
	DimColor          RGB               `json:"dim_color"`
	FontPaths         map[string]string `json:"font_paths"`
	FontSizes         map[string]int    `json:"font_sizes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:             "Gaming PC",
		ImageSize:         [2]int{1200, 675},
		BackgroundImage:   "bg.jpg",
		BackgroundFit:     "cover",
		BackgroundOverlay: Overlay{Color: RGB{0, 0, 0}, Opacity: 0.4},
		BackgroundColor:   RGB{26, 26, 26},
		AccentColor:       RGB{0, 255, 157},
		SubColor:          RGB{0, 204, 255},
		TextColor:         RGB{240, 240, 240},
		DimColor:          RGB{160, 160, 160},
		FontPaths:         map[string]string{"title": "", "h2": "", "body": "", "small": ""},
		FontSizes:         map[string]int{"title": 56, "h2": 36, "body": 28, "small": 24},
	}
}

// Load reads the config file from the candidate paths and merges it over
// the defaults: keys present in the file override, everything else keeps
// its default. When no file exists, the defaults are written to the first
// candidate path (best effort) and returned.
func Load(path string) (Config, error) {
	cfg := Default()

	candidates := []string{path}
	if path == "" {
		candidates = defaultCandidates()
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := Merge(&cfg, data); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		return cfg, nil
	}

	if path == "" && len(candidates) > 0 {
		writeDefault(candidates[0], cfg)
	}
	return cfg, nil
}

// Merge unmarshals user JSON over an already-populated config, giving
// key-wise override semantics. Exported for testing.
func Merge(cfg *Config, data []byte) error {
	return json.Unmarshal(data, cfg)
}

func defaultCandidates() []string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DefaultFileName))
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultFileName))
	}
	return candidates
}

func writeDefault(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

// Debug env vars. The generic flag enables both classes.
const (
	EnvDebug      = "RIGSPEC_DEBUG"
	EnvDebugBoard = "RIGSPEC_DEBUG_BOARD"
	EnvDebugGPU   = "RIGSPEC_DEBUG_GPU"
)

// DebugBoard reports whether board-detection tracing is enabled.
func DebugBoard() bool {
	return truthy(os.Getenv(EnvDebugBoard)) || truthy(os.Getenv(EnvDebug))
}

// DebugGPU reports whether GPU-detection tracing is enabled.
func DebugGPU() bool {
	return truthy(os.Getenv(EnvDebugGPU)) || truthy(os.Getenv(EnvDebug))
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
