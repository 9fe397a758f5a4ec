package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/rigspec-io/rigspec/internal/config"
	"github.com/rigspec-io/rigspec/internal/inventory"
	"github.com/rigspec-io/rigspec/internal/report"
)

// runReport is the default action: probe, render, open.
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	start := time.Now()
	snap, trace := inventory.Build(inventory.Options{
		DebugBoard: config.DebugBoard(),
		DebugGPU:   config.DebugGPU(),
	})
	slog.Info("hardware probe complete",
		"board", snap.Board.Name(),
		"cpu", snap.CPU.ModelString(),
		"gpus", len(snap.GPUs),
		"disks", len(snap.Disks),
		"duration", time.Since(start).Round(time.Millisecond))

	f, err := os.Create(flagOutHTML)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteHTML(f, cfg, snap, trace); err != nil {
		f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("report written", "path", flagOutHTML)

	if !flagNoCard {
		if err := report.WriteCard(flagOutCard, cfg, snap); err != nil {
			// The card is a nice-to-have; a missing font or bad path
			// should not fail the run.
			slog.Warn("share card generation failed", "error", err)
		} else {
			slog.Info("share card written", "path", flagOutCard)
		}
	}

	if !flagNoOpen {
		if err := browser.OpenFile(flagOutHTML); err != nil {
			slog.Warn("could not open browser", "error", err)
		}
	}
	return nil
}
