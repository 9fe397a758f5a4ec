package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rigspec-io/rigspec/internal/config"
	"github.com/rigspec-io/rigspec/internal/inventory"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Probe the hardware and print the snapshot as JSON",
	Long: `Probe the hardware and print the raw snapshot as JSON, without
rendering or opening anything. Useful for piping into other tools and for
checking what each provider chain detected.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	snap, _ := inventory.Build(inventory.Options{
		DebugBoard: config.DebugBoard(),
		DebugGPU:   config.DebugGPU(),
	})

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	fmt.Fprintf(os.Stderr, "%s | %s RAM | %d GPU(s) | %d disk(s)\n",
		snap.Board.Name(),
		humanize.IBytes(snap.Memory.TotalBytes),
		len(snap.GPUs),
		len(snap.Disks))
	return nil
}
