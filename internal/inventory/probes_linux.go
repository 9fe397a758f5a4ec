//go:build !windows

package inventory

// platformProbes returns the unix provider chains.
func platformProbes() probes {
	return probes{
		board: []provider[Board]{
			{name: "dmi-sysfs", probe: probeBoardDMI},
		},
		cpu: []provider[CPU]{
			{name: "procfs", probe: probeCPUProcfs},
		},
		modules: []provider[[]MemoryModule]{
			{name: "dmidecode", probe: probeModulesDmidecode},
		},
		gpus: []provider[[]GPU]{
			{name: "device-list", probe: probeGPUDeviceList},
		},
		disks: []provider[[]Disk]{
			{name: "lsblk", probe: probeDisksLsblk},
		},
	}
}
