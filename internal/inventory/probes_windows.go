//go:build windows

package inventory

// platformProbes returns the Windows provider chains.
func platformProbes() probes {
	return probes{
		board: []provider[Board]{
			{name: "registry", probe: probeBoardRegistry},
			{name: "wmi-baseboard", probe: probeBoardWMI},
		},
		cpu: []provider[CPU]{
			{name: "wmi-processor", probe: probeCPUWMI},
		},
		modules: []provider[[]MemoryModule]{
			{name: "wmi-physical-memory", probe: probeModulesWMI},
		},
		gpus: []provider[[]GPU]{
			{name: "composite", probe: probeGPUComposite},
		},
		disks: []provider[[]Disk]{
			{name: "storage-cim", probe: probeDisksStorageCIM},
			{name: "powershell", probe: probeDisksPowerShell},
			{name: "wmi-diskdrive", probe: probeDisksWMI},
		},
	}
}
