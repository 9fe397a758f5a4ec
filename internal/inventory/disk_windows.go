//go:build windows

package inventory

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

const storageNamespace = `root\Microsoft\Windows\Storage`

type msftPhysicalDisk struct {
	FriendlyName *string
	Model        *string
	Size         *uint64
	MediaType    *uint16
	SpindleSpeed *uint32
}

// probeDisksStorageCIM queries the modern storage subsystem, which has an
// explicit media-type code; the spindle-speed heuristic covers records
// without one.
func probeDisksStorageCIM(tr *Trace) ([]Disk, error) {
	var rows []msftPhysicalDisk
	q := "SELECT FriendlyName, Model, Size, MediaType, SpindleSpeed FROM MSFT_PhysicalDisk"
	if err := wmi.QueryNamespace(q, &rows, storageNamespace); err != nil {
		return nil, fmt.Errorf("MSFT_PhysicalDisk: %w", err)
	}
	if len(rows) == 0 {
		return nil, errEmpty
	}

	disks := make([]Disk, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(deref(row.FriendlyName))
		if name == "" {
			name = strings.TrimSpace(deref(row.Model))
		}
		if name == "" {
			name = NA
		}

		size := NA
		if n := deref(row.Size); n > 0 {
			size = BytesToGB(int64(n))
		}

		kind := KindUnknown
		if row.MediaType != nil {
			kind = mediaTypeKind(*row.MediaType)
		}
		if kind == KindUnknown && row.SpindleSpeed != nil {
			kind = spindleKind(*row.SpindleSpeed)
		}

		disks = append(disks, Disk{Model: name, Size: size, Kind: kind})
	}
	return disks, nil
}

// probeDisksPowerShell shells out to the storage management cmdlet, which
// reports the media type as text.
func probeDisksPowerShell(tr *Trace) ([]Disk, error) {
	out, err := runCommand("powershell", "-NoProfile", "-NonInteractive", "-Command",
		"Get-PhysicalDisk | Select-Object FriendlyName, MediaType, Size | ConvertTo-Json -Compress")
	if err != nil {
		return nil, err
	}
	disks := ParsePhysicalDiskJSON(out)
	if len(disks) == 0 {
		return nil, errEmpty
	}
	return disks, nil
}

type win32DiskDrive struct {
	Model        *string
	Size         *uint64
	PNPDeviceID  *string
	SerialNumber *string
}

// probeDisksWMI is the legacy enumeration; with no media-type field the
// kind comes from NVMe/SSD token heuristics on the device strings.
func probeDisksWMI(tr *Trace) ([]Disk, error) {
	var rows []win32DiskDrive
	q := "SELECT Model, Size, PNPDeviceID, SerialNumber FROM Win32_DiskDrive"
	if err := wmi.Query(q, &rows); err != nil {
		return nil, fmt.Errorf("Win32_DiskDrive: %w", err)
	}

	var disks []Disk
	for _, row := range rows {
		size := deref(row.Size)
		if size == 0 {
			continue
		}
		model := strings.TrimSpace(deref(row.Model))
		kind := classifyDiskTokens(model, deref(row.PNPDeviceID), deref(row.SerialNumber))
		if model == "" {
			model = NA
		}
		disks = append(disks, Disk{Model: model, Size: BytesToGB(int64(size)), Kind: kind})
	}
	if len(disks) == 0 {
		return nil, errEmpty
	}
	return disks, nil
}
