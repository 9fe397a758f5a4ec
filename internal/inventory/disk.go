package inventory

import (
	"encoding/json"
	"strings"
)

// mediaTypeKind maps the storage subsystem's numeric media-type code.
// 3 = HDD, 4 = SSD, 5 = storage-class memory (treated as SSD).
func mediaTypeKind(mediaType uint16) DiskKind {
	switch mediaType {
	case 3:
		return KindHDD
	case 4, 5:
		return KindSSD
	}
	return KindUnknown
}

// spindleKind is the fallback hint when no media-type code is available:
// a reported spindle speed of zero means no moving platters.
func spindleKind(rpm uint32) DiskKind {
	if rpm > 0 {
		return KindHDD
	}
	return KindSSD
}

// textMediaKind maps the textual media-type field of the storage
// management command.
func textMediaKind(mediaType string) DiskKind {
	switch strings.ToUpper(strings.TrimSpace(mediaType)) {
	case "SSD", "SCM":
		return KindSSD
	case "HDD":
		return KindHDD
	}
	return KindUnknown
}

// classifyDiskTokens guesses the disk kind from device-path, model, and
// serial strings: an NVMe token anywhere, or an SSD token in the model,
// implies SSD; everything else is assumed spinning.
func classifyDiskTokens(model, pnpID, serial string) DiskKind {
	m := strings.ToUpper(model)
	if strings.Contains(strings.ToUpper(pnpID), "NVME") ||
		strings.Contains(m, "NVME") ||
		strings.Contains(strings.ToUpper(serial), "NVME") {
		return KindSSD
	}
	if strings.Contains(m, "SSD") {
		return KindSSD
	}
	return KindHDD
}

// physicalDiskRecord matches the JSON emitted by
// `Get-PhysicalDisk | Select-Object FriendlyName, MediaType, Size | ConvertTo-Json`.
type physicalDiskRecord struct {
	FriendlyName string      `json:"FriendlyName"`
	MediaType    string      `json:"MediaType"`
	Size         json.Number `json:"Size"`
}

// ParsePhysicalDiskJSON parses the storage management command's JSON,
// which is a bare object for a single disk and an array otherwise.
// Exported for testing.
func ParsePhysicalDiskJSON(output string) []Disk {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}

	var records []physicalDiskRecord
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		var single physicalDiskRecord
		if err := json.Unmarshal([]byte(output), &single); err != nil {
			return nil
		}
		records = []physicalDiskRecord{single}
	}

	var disks []Disk
	for _, r := range records {
		name := strings.TrimSpace(r.FriendlyName)
		if name == "" {
			name = NA
		}
		size := NA
		if n, err := r.Size.Int64(); err == nil {
			size = BytesToGB(n)
		}
		disks = append(disks, Disk{Model: name, Size: size, Kind: textMediaKind(r.MediaType)})
	}
	return disks
}

// ParseBlockDevices parses `lsblk -d -o NAME,MODEL,SIZE,ROTA` output
// column-wise: the last column is the rotational flag (0 = SSD), the one
// before it the size, and everything between the device name and those
// two is the model. Exported for testing.
func ParseBlockDevices(output string) []Disk {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}

	var disks []Disk
	for _, line := range lines[1:] { // skip header
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		kind := KindHDD
		if fields[len(fields)-1] == "0" {
			kind = KindSSD
		}
		disks = append(disks, Disk{
			Model: strings.Join(fields[1:len(fields)-2], " "),
			Size:  fields[len(fields)-2],
			Kind:  kind,
		})
	}
	return disks
}
