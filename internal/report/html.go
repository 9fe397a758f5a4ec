// Package report renders a finished hardware snapshot as a styled HTML
// page and a PNG share card. It only consumes the snapshot and the
// summary strings; detection never depends on it.
package report

import (
	"html/template"
	"io"

	"github.com/rigspec-io/rigspec/internal/config"
	"github.com/rigspec-io/rigspec/internal/inventory"
)

type htmlData struct {
	Title      string
	Snapshot   inventory.Snapshot
	TotalRAM   string
	Generated  string
	BoardTrace []inventory.TraceEntry
	GPUTrace   []inventory.TraceEntry
}

// WriteHTML renders the full report. Trace sections only appear when the
// corresponding debug flag produced entries.
func WriteHTML(w io.Writer, cfg config.Config, snap inventory.Snapshot, tr *inventory.Trace) error {
	data := htmlData{
		Title:      cfg.Title,
		Snapshot:   snap,
		TotalRAM:   inventory.BytesToGB(int64(snap.Memory.TotalBytes)),
		Generated:  snap.GeneratedAt.Format("2006-01-02 15:04:05"),
		BoardTrace: tr.Class(inventory.TraceBoard),
		GPUTrace:   tr.Class(inventory.TraceGPU),
	}
	return htmlTemplate.Execute(w, data)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}} Specifications</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 40px;
            background-color: #1a1a1a;
            color: #ffffff;
        }
        .container { max-width: 1000px; margin: 0 auto; }
        .section {
            background-color: #2d2d2d;
            padding: 20px;
            margin-bottom: 20px;
            border-radius: 8px;
        }
        h1 { color: #00ff9d; text-align: center; }
        h2 { color: #00ccff; border-bottom: 2px solid #3d3d3d; }
        table { width: 100%; border-collapse: collapse; margin-top: 10px; }
        td, th { padding: 12px; text-align: left; border-bottom: 1px solid #3d3d3d; }
        th { background-color: #333333; }
        .footer { text-align: center; margin-top: 30px; color: #888; }
        .num { color: #888; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎮 {{.Title}} Specifications 🖥️</h1>
        <div class="section">
            <h2>System Information</h2>
            <table>
                <tr><td>Motherboard</td><td>{{.Snapshot.Board.Name}}</td></tr>
                <tr><td>OS</td><td>{{.Snapshot.OS}}</td></tr>
            </table>
        </div>

        <div class="section">
            <h2>Processor (CPU)</h2>
            <table>
                <tr><td>Model</td><td>{{.Snapshot.CPU.ModelString}}</td></tr>
                <tr><td>Cores</td><td>{{.Snapshot.CPU.CoresString}}</td></tr>
                <tr><td>Threads</td><td>{{.Snapshot.CPU.ThreadsString}}</td></tr>
                <tr><td>Max Clock</td><td>{{.Snapshot.CPU.ClockString}}</td></tr>
            </table>
        </div>

        <div class="section">
            <h2>Memory (RAM) - Total: {{.TotalRAM}}</h2>
            <table>
                <tr><th>Module</th><th>Manufacturer</th><th>Capacity</th><th>Speed</th><th>Part Number</th></tr>
                {{range .Snapshot.Memory.Modules}}<tr><td>{{.Index}}</td><td>{{.Manufacturer}}</td><td>{{.Capacity}}</td><td>{{.Speed}}</td><td>{{.PartNumber}}</td></tr>
                {{end}}
            </table>
        </div>

        <div class="section">
            <h2>Graphics Card (GPU)</h2>
            <table>
                <tr><th>Model</th><th>VRAM</th></tr>
                {{range .Snapshot.GPUs}}<tr><td>{{.Model}}</td><td>{{.VRAM}}</td></tr>
                {{end}}
            </table>
        </div>

        <div class="section">
            <h2>Storage Devices</h2>
            <table>
                <tr><th>Model</th><th>Size</th><th>Type</th></tr>
                {{range .Snapshot.Disks}}<tr><td>{{.Model}}</td><td>{{.Size}}</td><td>{{.Kind}}</td></tr>
                {{end}}
            </table>
        </div>

        {{if .BoardTrace}}<div class="section">
            <h2>Debug: Motherboard Sources</h2>
            <table>
                {{range $i, $e := .BoardTrace}}<tr><td class="num">{{$i}}</td><td>{{$e.Message}}</td></tr>
                {{end}}
            </table>
        </div>{{end}}

        {{if .GPUTrace}}<div class="section">
            <h2>Debug: GPU Sources</h2>
            <table>
                {{range $i, $e := .GPUTrace}}<tr><td class="num">{{$i}}</td><td>{{$e.Message}}</td></tr>
                {{end}}
            </table>
        </div>{{end}}

        <div class="footer">
            Generated on {{.Generated}}
        </div>
    </div>
</body>
</html>
`))
