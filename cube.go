package goqube

import "github.com/mirzaeva/goqube/internal/cube"

// CubeType tags what a Cube's samples represent.
type CubeType = cube.Type

// Cube type tags (spec SS3, SS6).
const (
	Undefined       = cube.Undefined
	MO              = cube.MO
	ElectronDensity = cube.ElectronDensity
)

// Cube is a regular 3-D grid: origin, spacing, extents, a linear array
// of N scalar samples, a tag identifying what the samples represent,
// and a read/write lock guarding the sample array (spec SS3, SS4.1).
type Cube = cube.Cube

// NewCube allocates a cube of dims[0]*dims[1]*dims[2] zero samples at
// the given origin and axis spacing, in Angstrom.
func NewCube(origin, spacing [3]float64, dims [3]int) *Cube {
	return cube.New(origin, spacing, dims)
}
