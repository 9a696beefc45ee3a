package goqube

import (
	"github.com/mirzaeva/goqube/internal/loader"
	"github.com/mirzaeva/goqube/internal/slater"
)

// Basis is the capability set shared by Gaussian and Slater basis
// sets: Clone, NumMOs, ComputeMO, ComputeDensity (spec SS9). The loader
// facade returns this abstraction so callers never need to know which
// concrete kind they loaded.
type Basis = loader.Basis

// SlaterBasis is the capability-shape placeholder for the
// Slater-type-orbital engine (spec SS1: out of scope). Its ComputeMO
// and ComputeDensity always fail with a diagnostic.
type SlaterBasis = slater.Basis

// GaussianParser drives the construction API against a fresh
// GaussianBasis; it is the contract FCHK, GAMESS-UK, and Molden
// parsers meet (spec SS6). Those parsers are external collaborators,
// out of scope for this module.
type GaussianParser = loader.GaussianParser

// SlaterParser is the MOPAC aux analogue of GaussianParser.
type SlaterParser = loader.SlaterParser

// MatchBasisSet returns a sibling file of path whose extension
// indicates a recognized format, or "" if none match (spec SS4.6).
func MatchBasisSet(path string) string {
	return loader.MatchBasisSet(path)
}

// LoadBasisSet dispatches on path's suffix class, invokes the
// corresponding parser, and returns a populated Basis -- or nil if the
// suffix is unrecognized or the parser failed (spec SS4.6, SS7). A nil
// parser for the matched format leaves the returned basis empty.
func LoadBasisSet(path string, gaussianParser GaussianParser, slaterParser SlaterParser) Basis {
	return loader.LoadBasisSet(path, gaussianParser, slaterParser)
}
