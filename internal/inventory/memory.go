package inventory

import "strings"

// memoryVendorPlaceholders are manufacturer strings SPD tables carry when
// the module vendor never encoded a real name.
var memoryVendorPlaceholders = map[string]struct{}{
	"UNKNOWN":       {},
	"N/A":           {},
	"UNDEFINED":     {},
	"NOT SPECIFIED": {},
	"INVALID":       {},
}

// cleanModuleVendor trims a module manufacturer and collapses known
// placeholders to NA.
func cleanModuleVendor(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NA
	}
	if _, ok := memoryVendorPlaceholders[strings.ToUpper(s)]; ok {
		return NA
	}
	return s
}

// ParseMemoryTable parses `dmidecode --type 17` text output into module
// records. Fields between consecutive "Memory Device" section markers are
// grouped into one record; empty slots report "No Module Installed" for
// their size and are kept only if another field was populated.
// Exported for testing.
func ParseMemoryTable(output string) []MemoryModule {
	var modules []MemoryModule

	current := MemoryModule{}
	captured := false
	flush := func() {
		if captured {
			modules = append(modules, current)
		}
		current = MemoryModule{}
		captured = false
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, "Memory Device"):
			flush()
		case strings.Contains(line, "Size:") && !strings.Contains(line, "No Module Installed"):
			current.Capacity = fieldValue(line)
			captured = true
		case strings.Contains(line, "Speed:"):
			// Matches both "Speed:" and "Configured Memory Speed:"; the
			// configured line comes later and wins.
			current.Speed = fieldValue(line)
			captured = true
		case strings.Contains(line, "Part Number:"):
			current.PartNumber = fieldValue(line)
			captured = true
		case strings.Contains(line, "Manufacturer:"):
			current.Manufacturer = fieldValue(line)
			captured = true
		}
	}
	flush()

	for i := range modules {
		modules[i].Index = i + 1
		modules[i].Manufacturer = cleanModuleVendor(modules[i].Manufacturer)
		if modules[i].Capacity == "" {
			modules[i].Capacity = NA
		}
		if modules[i].Speed == "" {
			modules[i].Speed = NA
		}
		if modules[i].PartNumber == "" {
			modules[i].PartNumber = NA
		}
	}
	return modules
}

func fieldValue(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
