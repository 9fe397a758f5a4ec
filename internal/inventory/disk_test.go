package inventory

import "testing"

func TestMediaTypeKind(t *testing.T) {
	cases := []struct {
		code uint16
		want DiskKind
	}{
		{3, KindHDD},
		{4, KindSSD},
		{5, KindSSD}, // storage-class memory
		{0, KindUnknown},
		{7, KindUnknown},
	}
	for _, c := range cases {
		if got := mediaTypeKind(c.code); got != c.want {
			t.Errorf("mediaTypeKind(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestSpindleKind(t *testing.T) {
	if got := spindleKind(7200); got != KindHDD {
		t.Errorf("spindleKind(7200) = %q, want %q", got, KindHDD)
	}
	if got := spindleKind(0); got != KindSSD {
		t.Errorf("spindleKind(0) = %q, want %q", got, KindSSD)
	}
}

func TestClassifyDiskTokens(t *testing.T) {
	cases := []struct {
		model, pnpID, serial string
		want                 DiskKind
	}{
		{"Samsung SSD 980 PRO 1TB", `SCSI\DISK&VEN_NVME`, "", KindSSD},
		{"WDC WD40EZAZ-00SF3B0", `SCSI\DISK&VEN_WDC`, "", KindHDD},
		{"KINGSTON SA400S37480G SSD", "", "", KindSSD},
		{"Generic Disk", "", "0000_NVME_0001", KindSSD},
		{"Generic Disk", "", "", KindHDD},
	}
	for _, c := range cases {
		if got := classifyDiskTokens(c.model, c.pnpID, c.serial); got != c.want {
			t.Errorf("classifyDiskTokens(%q, %q, %q) = %q, want %q",
				c.model, c.pnpID, c.serial, got, c.want)
		}
	}
}

func TestParsePhysicalDiskJSONArray(t *testing.T) {
	out := `[
  {"FriendlyName": "Samsung SSD 980 PRO 1TB", "MediaType": "SSD", "Size": 1000204886016},
  {"FriendlyName": "WDC WD40EZAZ", "MediaType": "HDD", "Size": 4000787030016}
]`
	disks := ParsePhysicalDiskJSON(out)
	if len(disks) != 2 {
		t.Fatalf("expected 2 disks, got %d", len(disks))
	}
	if disks[0].Model != "Samsung SSD 980 PRO 1TB" || disks[0].Kind != KindSSD {
		t.Errorf("unexpected first disk %+v", disks[0])
	}
	if disks[0].Size != "931.5 GB" {
		t.Errorf("expected 931.5 GB, got %q", disks[0].Size)
	}
	if disks[1].Kind != KindHDD {
		t.Errorf("expected HDD, got %q", disks[1].Kind)
	}
}

func TestParsePhysicalDiskJSONSingleObject(t *testing.T) {
	// ConvertTo-Json emits a bare object when there is exactly one disk.
	out := `{"FriendlyName": "CT500P3SSD8", "MediaType": "SSD", "Size": 500107862016}`
	disks := ParsePhysicalDiskJSON(out)
	if len(disks) != 1 {
		t.Fatalf("expected 1 disk, got %d", len(disks))
	}
	if disks[0].Model != "CT500P3SSD8" || disks[0].Kind != KindSSD {
		t.Errorf("unexpected disk %+v", disks[0])
	}
}

func TestParsePhysicalDiskJSONBad(t *testing.T) {
	if got := ParsePhysicalDiskJSON(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := ParsePhysicalDiskJSON("Get-PhysicalDisk : not recognized"); got != nil {
		t.Errorf("expected nil for error output, got %v", got)
	}
}

func TestParseBlockDevices(t *testing.T) {
	out := `NAME MODEL                  SIZE ROTA
sda  WDC WD40EZAZ-00SF3B0   3.6T    1
nvme0n1 Samsung SSD 980 PRO 1TB 931.5G    0
`
	disks := ParseBlockDevices(out)
	if len(disks) != 2 {
		t.Fatalf("expected 2 disks, got %d", len(disks))
	}
	if disks[0].Model != "WDC WD40EZAZ-00SF3B0" || disks[0].Size != "3.6T" || disks[0].Kind != KindHDD {
		t.Errorf("unexpected first disk %+v", disks[0])
	}
	// Multi-word model joins every column between the name and the size.
	if disks[1].Model != "Samsung SSD 980 PRO 1TB" || disks[1].Kind != KindSSD {
		t.Errorf("unexpected second disk %+v", disks[1])
	}
}

func TestParseBlockDevicesEmpty(t *testing.T) {
	if got := ParseBlockDevices(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := ParseBlockDevices("NAME MODEL SIZE ROTA\n"); got != nil {
		t.Errorf("expected nil for header-only input, got %v", got)
	}
}
