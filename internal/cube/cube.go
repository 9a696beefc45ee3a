// cube.go -- this file is part of the goqube project.
//
//	goqube is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/

// Package cube implements the regular 3-D grid the evaluator writes
// into.
//
// Grounded on goHF's own row-major flattening convention for dense
// matrices (helper.go's flatten/PrintMat) generalized from a 2-D N x N
// matrix to a 3-D dim_x*dim_y*dim_z array, and on
// onuse-worldgenerator_go's physics/threaded_physics.go for the
// reader/writer lock discipline around one shared buffer -- here a
// single sync.RWMutex rather than double buffering, since the evaluator
// is the cube's sole writer for the duration of one dispatch.
package cube

import "sync"

// Type tags what a cube's samples represent.
type Type int

const (
	Undefined Type = iota
	MO
	ElectronDensity
)

func (t Type) String() string {
	switch t {
	case MO:
		return "MO"
	case ElectronDensity:
		return "ElectronDensity"
	default:
		return "Undefined"
	}
}

// Cube is a regular grid: an origin and axis spacing in Angstrom, the
// dimensions along each axis, and a linear row-major sample array.
type Cube struct {
	Origin  [3]float64
	Spacing [3]float64
	Dims    [3]int

	mu     sync.RWMutex
	values []float64
	tag    Type
}

// New allocates a cube of dims[0]*dims[1]*dims[2] zero samples.
func New(origin, spacing [3]float64, dims [3]int) *Cube {
	return &Cube{
		Origin:  origin,
		Spacing: spacing,
		Dims:    dims,
		values:  make([]float64, dims[0]*dims[1]*dims[2]),
	}
}

// Size is the number of samples, N = dim_x*dim_y*dim_z.
func (c *Cube) Size() int {
	return len(c.values)
}

// Position returns the Angstrom coordinates of sample i, decomposing i
// row-major over (dim_x, dim_y, dim_z).
func (c *Cube) Position(i int) [3]float64 {
	dy, dz := c.Dims[1], c.Dims[2]
	iz := i % dz
	iy := (i / dz) % dy
	ix := i / (dy * dz)
	return [3]float64{
		c.Origin[0] + c.Spacing[0]*float64(ix),
		c.Origin[1] + c.Spacing[1]*float64(iy),
		c.Origin[2] + c.Spacing[2]*float64(iz),
	}
}

// SetValue writes sample i. Callers guarantee no two goroutines ever
// target the same index concurrently (spec's single-writer-per-index
// contract), so this performs no per-sample synchronization beyond
// whatever outer lock the caller is holding.
func (c *Cube) SetValue(i int, v float64) {
	c.values[i] = v
}

// Value reads sample i. Intended for readers holding the lock for read.
func (c *Cube) Value(i int) float64 {
	return c.values[i]
}

// SetCubeType tags the cube with what its samples represent.
func (c *Cube) SetCubeType(t Type) {
	c.tag = t
}

// CubeType reports the current tag.
func (c *Cube) CubeType() Type {
	return c.tag
}

// Lock returns the read/write lock guarding the sample array. The
// evaluator holds it for write for the duration of a computation;
// readers (e.g. renderers) block until that completes.
func (c *Cube) Lock() *sync.RWMutex {
	return &c.mu
}
