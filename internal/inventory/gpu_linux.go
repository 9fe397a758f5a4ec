//go:build !windows

package inventory

// probeGPUDeviceList filters the PCI device listing down to display-class
// devices. VRAM is not determined on this path.
func probeGPUDeviceList(tr *Trace) ([]GPU, error) {
	out, err := runCommand("lspci")
	if err != nil {
		return nil, err
	}
	gpus := ParseDeviceListGPUs(out)
	for i, g := range gpus {
		tr.Addf(TraceGPU, "device-list[%d]: model=%q", i, g.Model)
	}
	if len(gpus) == 0 {
		return nil, errEmpty
	}
	return gpus, nil
}
