package inventory

import (
	"regexp"
	"strings"
)

// boardPlaceholders are the vendor-default strings firmware tables ship
// with when the OEM never programmed a real product name.
var boardPlaceholders = map[string]struct{}{
	"TO BE FILLED BY O.E.M.": {},
	"SYSTEM PRODUCT NAME":    {},
	"DEFAULT STRING":         {},
	"NOT SPECIFIED":          {},
	"UNKNOWN":                {},
	"N/A":                    {},
}

func isBoardPlaceholder(s string) bool {
	_, ok := boardPlaceholders[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// chipsetTag matches a trailing parenthetical chipset code like " (MS-7E49)".
var chipsetTag = regexp.MustCompile(`(?i)\s*\(MS-[0-9A-F]+\)$`)

// stripChipsetTag removes a trailing chipset code from a board product name.
func stripChipsetTag(product string) string {
	return chipsetTag.ReplaceAllString(product, "")
}

// pickBoardProduct prefers the baseboard product name, falling back to the
// system-level product name when the baseboard value is empty or a known
// placeholder, then strips any trailing chipset tag.
func pickBoardProduct(baseboard, system string) string {
	p := strings.TrimSpace(baseboard)
	if p == "" || isBoardPlaceholder(p) {
		p = strings.TrimSpace(system)
	}
	return stripChipsetTag(p)
}
