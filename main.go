// rigspec — hardware spec report generator
//
// A single binary that probes the local machine's hardware (motherboard,
// CPU, RAM, GPU, storage) and renders the results as a styled HTML report
// plus a PNG share card.
//
// Usage:
//
//	rigspec                      # probe, write report + card, open report
//	rigspec --no-open            # probe and write files only
//	rigspec snapshot             # print the snapshot as JSON
//	RIGSPEC_DEBUG_GPU=1 rigspec  # include GPU provenance in the report
package main

import "github.com/rigspec-io/rigspec/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
