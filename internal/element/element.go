// Package element carries a small, fixed periodic-table lookup used only
// for diagnostic output (atom symbols in log lines). Grounded on goHF's
// own Mendeleev table (molecule.go), trimmed to the symbol column -- the
// evaluation engine never needs atomic mass.
package element

// Symbols is indexed by atomic number, Symbols[0] is the unused
// placeholder so Symbols[Z] is the symbol for atomic number Z.
var Symbols = []string{
	"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

// Symbol returns the element symbol for atomic number z, or "?" if z is
// out of the table's range.
func Symbol(z int) string {
	if z < 0 || z >= len(Symbols) || Symbols[z] == "" {
		return "?"
	}
	return Symbols[z]
}
