//go:build !windows

package inventory

// probeDisksLsblk lists block devices column-wise; the rotational flag
// column classifies each device (0 = SSD).
func probeDisksLsblk(tr *Trace) ([]Disk, error) {
	out, err := runCommand("lsblk", "-d", "-o", "NAME,MODEL,SIZE,ROTA")
	if err != nil {
		return nil, err
	}
	disks := ParseBlockDevices(out)
	if len(disks) == 0 {
		return nil, errEmpty
	}
	return disks, nil
}
