package goqube

import "github.com/mirzaeva/goqube/internal/molecule"

// Physical constants (spec SS6), carried as immutable process-wide
// values -- no dynamic initialization.
const (
	BohrToAngstrom = molecule.BohrToAngstrom
	AngstromToBohr = molecule.AngstromToBohr
)

// Atom is one nucleus: an atomic number and a position in Angstrom.
type Atom = molecule.Atom

// Molecule is an ordered sequence of Atoms, addressed by zero-based
// index.
type Molecule = molecule.Molecule
