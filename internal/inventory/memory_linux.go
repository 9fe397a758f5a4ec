//go:build !windows

package inventory

// probeModulesDmidecode parses the firmware memory table. Needs root;
// a permission failure just falls through the chain.
func probeModulesDmidecode(tr *Trace) ([]MemoryModule, error) {
	out, err := runCommand("dmidecode", "--type", "17")
	if err != nil {
		return nil, err
	}
	modules := ParseMemoryTable(out)
	if len(modules) == 0 {
		return nil, errEmpty
	}
	return modules, nil
}
