// Package slater is the capability-shape placeholder for the
// Slater-type-orbital engine. The STO kernels and their MOPAC aux
// loader are a parallel concern with their own analytical kernels and
// are explicitly out of scope for this engine (spec SS1); this package
// exists only so the loader facade's polymorphism over basis kinds
// (spec SS9) has a second concrete type to dispatch to.
package slater

import "github.com/mirzaeva/goqube/internal/molecule"

// Basis is an empty Slater basis container. It carries a Molecule so a
// parser could in principle populate atoms, but holds no shells: every
// computation reports itself unavailable rather than guessing at STO
// semantics this engine doesn't implement.
type Basis struct {
	molecule.Molecule
}

// New returns an empty Slater basis.
func New() *Basis {
	return &Basis{}
}

// NumMOs is always zero: no STO shells are ever recorded.
func (b *Basis) NumMOs() int {
	return 0
}

// Clone returns an independent deep copy.
func (b *Basis) Clone() *Basis {
	return &Basis{Molecule: b.Molecule.Clone()}
}
