package inventory

import (
	"fmt"
	"regexp"
	"strings"
)

// vendorAliases maps substrings of raw manufacturer strings to canonical
// short brand names. Matching is case-insensitive and ordered: the first
// hit wins, so more specific tokens come first.
var vendorAliases = []struct {
	token string
	brand string
}{
	{"MICRO-STAR", "MSI"},
	{"GIGABYTE", "Gigabyte"},
	{"ASROCK", "ASRock"},
	{"ASUSTEK", "ASUS"},
	{"ASUS", "ASUS"},
	{"LENOVO", "Lenovo"},
	{"HEWLETT-PACKARD", "HP"},
	{"DELL", "Dell"},
}

// ShortVendor maps a raw manufacturer string to a canonical short brand
// name. Unmatched input is returned trimmed; empty input yields NA.
// Total function: never fails.
func ShortVendor(raw string) string {
	s := strings.TrimSpace(raw)
	u := strings.ToUpper(s)
	if strings.HasPrefix(u, "MSI") || strings.HasPrefix(u, "MS-") {
		return "MSI"
	}
	if strings.HasPrefix(u, "HP") {
		return "HP"
	}
	for _, a := range vendorAliases {
		if strings.Contains(u, a.token) {
			return a.brand
		}
	}
	if s == "" {
		return NA
	}
	return s
}

const bytesPerGB = float64(1 << 30)

// BytesToGB formats a byte count as "X.Y GB". Negative input clamps to
// zero (some providers report signed overflow), and magnitudes below
// 0.05 GB render as "0.0 GB" to avoid a "-0.0" artifact.
func BytesToGB(n int64) string {
	if n < 0 {
		n = 0
	}
	gb := float64(n) / bytesPerGB
	if gb < 0.05 {
		gb = 0
	}
	return fmt.Sprintf("%.1f GB", gb)
}

var gbPattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*GB`)

// ExtractGB finds the first decimal number preceding a "GB" token in free
// text. Returns 0 when there is no match, which lets heterogeneous size
// strings be ranked and summed without special-casing NA.
func ExtractGB(text string) float64 {
	m := gbPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	var v float64
	fmt.Sscanf(m[1], "%f", &v)
	return v
}

var (
	igpuSuffix = regexp.MustCompile(`(?i)with Radeon Graphics`)
	multiSpace = regexp.MustCompile(`\s{2,}`)
)

// CleanCPUModel strips trademark markers, the literal word "CPU", and the
// integrated-graphics suffix some AMD parts carry, collapsing the
// whitespace left behind. Empty input yields NA.
func CleanCPUModel(name string) string {
	if name == "" {
		return NA
	}
	s := strings.NewReplacer("(R)", "", "(TM)", "", "CPU", "").Replace(name)
	s = igpuSuffix.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
