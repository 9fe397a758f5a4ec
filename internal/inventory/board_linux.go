//go:build !windows

package inventory

import (
	"fmt"
	"os"
	"strings"
)

const dmiPath = "/sys/devices/virtual/dmi/id"

// probeBoardDMI reads the firmware table fields the kernel exposes
// under sysfs.
func probeBoardDMI(tr *Trace) (Board, error) {
	vendor, err := readDMIField("board_vendor")
	if err != nil {
		return Board{}, err
	}
	name, err := readDMIField("board_name")
	if err != nil {
		return Board{}, err
	}
	if vendor == "" && name == "" {
		return Board{}, errEmpty
	}
	tr.Addf(TraceBoard, "dmi: board_vendor=%q board_name=%q", vendor, name)
	return Board{Vendor: ShortVendor(vendor), Model: stripChipsetTag(name)}, nil
}

func readDMIField(name string) (string, error) {
	data, err := os.ReadFile(dmiPath + "/" + name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
