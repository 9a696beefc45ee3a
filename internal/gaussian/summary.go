package gaussian

import (
	"fmt"
	"strings"

	"github.com/mirzaeva/goqube/internal/element"
)

// Summary dumps a one-shot, human-readable description of the basis:
// shell count, per-shell type/atom/MO-offset, primitive count. Intended
// for an embedding program's own logging, the way goHF dumps its
// molecule and matrices via OutputLogger/PrintMat. Calling Summary
// forces normalization if it hasn't run yet.
func (b *Basis) Summary() string {
	b.Normalize()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Gaussian basis: %d atoms, %d shells, %d MOs\n",
		b.NumAtoms(), len(b.shells), b.numMOs)
	for s, shell := range b.shells {
		start, end := b.PrimitiveRange(s)
		atomZ := 0
		if shell.AtomIndex < b.NumAtoms() {
			atomZ = b.Atoms[shell.AtomIndex].Z
		}
		fmt.Fprintf(&sb, "  shell %d: atom %d (%s) type %s moOffset %d primitives %d\n",
			s, shell.AtomIndex, element.Symbol(atomZ), shell.Type, b.moOffset[s], end-start)
	}
	return sb.String()
}
