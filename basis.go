package goqube

import "github.com/mirzaeva/goqube/internal/gaussian"

// AngularType enumerates the shell kinds a basis function can carry
// (spec SS6): S, SP, P, D, D5, F, F7, G, G9, H, H11, I, I13. Only S, P,
// D, and D5 are evaluated by the kernels; higher shells are recognized
// but left at zero (spec SS1 Non-goals).
type AngularType = gaussian.AngularType

// Angular-type enumeration (spec SS6).
const (
	S   = gaussian.S
	SP  = gaussian.SP
	P   = gaussian.P
	D   = gaussian.D
	D5  = gaussian.D5
	F   = gaussian.F
	F7  = gaussian.F7
	G   = gaussian.G
	G9  = gaussian.G9
	H   = gaussian.H
	H11 = gaussian.H11
	I   = gaussian.I
	I13 = gaussian.I13
)

// GaussianBasis is the authoritative in-memory form of a contracted
// Gaussian basis (spec SS3, SS4.2, SS4.3).
type GaussianBasis = gaussian.Basis

// NewGaussianBasis returns an empty Gaussian basis ready for a parser
// to populate via AddAtom/AddBasis/AddGTO/AddMOs/SetDensityMatrix.
func NewGaussianBasis() *GaussianBasis {
	return gaussian.New()
}
