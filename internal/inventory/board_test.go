package inventory

import "testing"

func TestPickBoardProduct(t *testing.T) {
	cases := []struct {
		baseboard string
		system    string
		want      string
	}{
		// Placeholder baseboard falls back to the system product name.
		{"TO BE FILLED BY O.E.M.", "ROG STRIX B550", "ROG STRIX B550"},
		{"Default string", "PRO Z790-A", "PRO Z790-A"},
		{"", "XPS 8960", "XPS 8960"},
		// Real baseboard product wins over the system name.
		{"ROG STRIX B550-F GAMING", "System Product Name", "ROG STRIX B550-F GAMING"},
		// Trailing chipset tag is stripped.
		{"PRO B650-P WIFI (MS-7E49)", "", "PRO B650-P WIFI"},
		{"TO BE FILLED BY O.E.M.", "MAG B550 (MS-7C56)", "MAG B550"},
		// Both empty.
		{"", "", ""},
	}
	for _, c := range cases {
		if got := pickBoardProduct(c.baseboard, c.system); got != c.want {
			t.Errorf("pickBoardProduct(%q, %q) = %q, want %q", c.baseboard, c.system, got, c.want)
		}
	}
}

func TestIsBoardPlaceholder(t *testing.T) {
	for _, s := range []string{
		"TO BE FILLED BY O.E.M.",
		"to be filled by o.e.m.",
		"  Default String  ",
		"UNKNOWN",
		"N/A",
		"System Product Name",
		"Not Specified",
	} {
		if !isBoardPlaceholder(s) {
			t.Errorf("isBoardPlaceholder(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"ROG STRIX B550", "", "X570 AORUS ELITE"} {
		if isBoardPlaceholder(s) {
			t.Errorf("isBoardPlaceholder(%q) = true, want false", s)
		}
	}
}

func TestStripChipsetTag(t *testing.T) {
	if got := stripChipsetTag("MAG X670E TOMAHAWK WIFI (MS-7E12)"); got != "MAG X670E TOMAHAWK WIFI" {
		t.Errorf("stripChipsetTag = %q", got)
	}
	// Only a trailing tag is stripped.
	if got := stripChipsetTag("(MS-7E12) MAG X670E"); got != "(MS-7E12) MAG X670E" {
		t.Errorf("stripChipsetTag removed a non-trailing tag: %q", got)
	}
}

func TestBoardName(t *testing.T) {
	if got := (Board{Vendor: "ASUS", Model: "ROG STRIX B550"}).Name(); got != "ASUS ROG STRIX B550" {
		t.Errorf("Name() = %q", got)
	}
	if got := (Board{}).Name(); got != NA {
		t.Errorf("empty board Name() = %q, want %q", got, NA)
	}
	if got := (Board{Vendor: "MSI"}).Name(); got != "MSI" {
		t.Errorf("vendor-only Name() = %q", got)
	}
}
