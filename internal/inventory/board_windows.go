//go:build windows

package inventory

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

const biosKeyPath = `HARDWARE\DESCRIPTION\System\BIOS`

// probeBoardRegistry reads the firmware table values the BIOS exposes
// under the system registry, preferring the baseboard product and falling
// back to the system product name when the OEM left a placeholder.
func probeBoardRegistry(tr *Trace) (Board, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, biosKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return Board{}, fmt.Errorf("open %s: %w", biosKeyPath, err)
	}
	defer key.Close()

	manufacturer, _, _ := key.GetStringValue("BaseBoardManufacturer")
	product, _, _ := key.GetStringValue("BaseBoardProduct")
	sysManufacturer, _, _ := key.GetStringValue("SystemManufacturer")
	sysProduct, _, _ := key.GetStringValue("SystemProductName")

	manufacturer = strings.TrimSpace(manufacturer)
	product = strings.TrimSpace(product)
	if manufacturer == "" && product == "" {
		return Board{}, errEmpty
	}

	pretty := pickBoardProduct(product, sysProduct)
	vendor := ShortVendor(manufacturer)
	tr.Addf(TraceBoard, "registry: manufacturer=%q product=%q system=(%q %q) pretty=%q vendor=%q",
		manufacturer, product,
		strings.TrimSpace(sysManufacturer), strings.TrimSpace(sysProduct),
		pretty, vendor)
	return Board{Vendor: vendor, Model: pretty}, nil
}

type win32BaseBoard struct {
	Manufacturer *string
	Product      *string
	Version      *string
}

// probeBoardWMI queries the management interface's baseboard record.
func probeBoardWMI(tr *Trace) (Board, error) {
	var rows []win32BaseBoard
	q := "SELECT Manufacturer, Product, Version FROM Win32_BaseBoard"
	if err := wmi.Query(q, &rows); err != nil {
		return Board{}, fmt.Errorf("Win32_BaseBoard: %w", err)
	}
	if len(rows) == 0 {
		return Board{}, errEmpty
	}

	manufacturer := strings.TrimSpace(deref(rows[0].Manufacturer))
	product := strings.TrimSpace(deref(rows[0].Product))
	if manufacturer == "" && product == "" {
		return Board{}, errEmpty
	}
	tr.Addf(TraceBoard, "wmi: manufacturer=%q product=%q version=%q",
		manufacturer, product, strings.TrimSpace(deref(rows[0].Version)))
	return Board{Vendor: ShortVendor(manufacturer), Model: product}, nil
}
