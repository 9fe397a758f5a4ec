package report

import (
	"image"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rigspec-io/rigspec/internal/config"
	"github.com/rigspec-io/rigspec/internal/inventory"
)

// WriteCard renders the condensed share card as a PNG.
func WriteCard(path string, cfg config.Config, snap inventory.Snapshot) error {
	w, h := cfg.ImageSize[0], cfg.ImageSize[1]
	if w <= 0 || h <= 0 {
		w, h = 1200, 675
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(cfg.BackgroundColor.Color())
	dc.Clear()

	if cfg.BackgroundImage != "" {
		if img, err := gg.LoadImage(cfg.BackgroundImage); err == nil {
			drawFitted(dc, img, w, h, cfg.BackgroundFit)
		}
	}
	if op := clamp01(cfg.BackgroundOverlay.Opacity); op > 0 {
		c := cfg.BackgroundOverlay.Color
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(255*op))
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}

	titleFace := loadFace(cfg.FontPaths["title"], float64(fontSize(cfg, "title", 56)))
	h2Face := loadFace(cfg.FontPaths["h2"], float64(fontSize(cfg, "h2", 36)))
	bodyFace := loadFace(cfg.FontPaths["body"], float64(fontSize(cfg, "body", 28)))
	smallFace := loadFace(cfg.FontPaths["small"], float64(fontSize(cfg, "small", 24)))

	x, y := 60.0, 50.0
	dc.SetFontFace(titleFace)
	dc.SetColor(cfg.AccentColor.Color())
	dc.DrawStringAnchored(cfg.Title, x, y, 0, 1)
	y += 80

	sections := []struct {
		heading string
		line    string
	}{
		{"GPU", inventory.GPULine(inventory.PrimaryGPU(snap.GPUs))},
		{"CPU", inventory.CPULine(snap.CPU)},
		{"RAM", inventory.SummarizeRAM(snap.Memory)},
		{"Motherboard", snap.Board.Name()},
		{"Storage", inventory.SummarizeStorage(snap.Disks)},
	}
	for _, s := range sections {
		dc.SetFontFace(h2Face)
		dc.SetColor(cfg.SubColor.Color())
		dc.DrawStringAnchored(s.heading, x, y, 0, 1)
		y += 48
		dc.SetFontFace(bodyFace)
		dc.SetColor(cfg.TextColor.Color())
		dc.DrawStringAnchored(s.line, x, y, 0, 1)
		y += 50
	}

	footer := snap.OS.String() + "  •  Generated " + snap.GeneratedAt.Format("2006-01-02 15:04")
	dc.SetFontFace(smallFace)
	dc.SetColor(cfg.DimColor.Color())
	dc.DrawStringAnchored(footer, x, float64(h)-60, 0, 1)

	return dc.SavePNG(path)
}

// drawFitted places the background image using the configured fit mode:
// stretch distorts to fill, contain letterboxes, cover (default) scales
// up and center-crops against the canvas bounds.
func drawFitted(dc *gg.Context, img image.Image, w, h int, fit string) {
	sw := float64(img.Bounds().Dx())
	sh := float64(img.Bounds().Dy())
	if sw == 0 || sh == 0 {
		return
	}
	fw, fh := float64(w), float64(h)

	var sx, sy float64
	switch fit {
	case "stretch":
		sx, sy = fw/sw, fh/sh
	case "contain":
		s := minf(fw/sw, fh/sh)
		sx, sy = s, s
	default: // cover
		s := maxf(fw/sw, fh/sh)
		sx, sy = s, s
	}

	dc.Push()
	dc.Translate((fw-sw*sx)/2, (fh-sh*sy)/2)
	dc.Scale(sx, sy)
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}

// loadFace loads the configured TTF, then the platform fallback font,
// then the bundled Go font.
func loadFace(path string, points float64) font.Face {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if face, err := gg.LoadFontFace(path, points); err == nil {
				return face
			}
		}
	}
	if runtime.GOOS == "windows" {
		arial := filepath.Join(`C:\Windows\Fonts`, "arial.ttf")
		if face, err := gg.LoadFontFace(arial, points); err == nil {
			return face
		}
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: points})
}

func fontSize(cfg config.Config, key string, def int) int {
	if v := cfg.FontSizes[key]; v > 0 {
		return v
	}
	return def
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
