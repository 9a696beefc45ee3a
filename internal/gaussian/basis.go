// basis.go -- this file is part of the goqube project.
//
//	goqube is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/

// Package gaussian is the authoritative in-memory form of a contracted
// Gaussian basis: shells, primitives, normalized coefficients, the MO
// coefficient matrix, and optionally a density matrix.
//
// Grounded on goHF's own normalization and matrix handling (RHF.go,
// helper.go use gonum.org/v1/gonum/mat for exactly this kind of square
// coefficient matrix), restructured around the primitive-major,
// component-inner normalized-coefficient layout spec.md SS4.3 specifies
// for cache-friendly per-point evaluation.
package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mirzaeva/goqube/internal/diag"
	"github.com/mirzaeva/goqube/internal/molecule"
)

// Normalization constants, tabulated in spec.md SS4.3. These are the
// authoritative values; they are not re-derived at runtime.
const (
	normS = 0.71270547
	normP = 1.425410941
	normD = 1.645922781
	normDoff = 2.850821881
)

// isSmallThreshold gates the S-shell evaluation shortcut (spec SS4.4).
const isSmallThreshold = 1e-20

// Basis is the Gaussian basis-set container. It embeds Molecule, the
// way goHF's own Molecule carries per-atom Basis data, but keeps shells,
// primitives, and the MO/density matrices as engine-owned state instead
// of living on the Atom.
type Basis struct {
	molecule.Molecule

	shells         []Shell
	firstPrimitive []int
	exponents      []float64
	coeffs         []float64

	numMOs int

	moMatrix   *mat.Dense
	hasDensity bool
	density    *mat.SymDense

	normalized   bool
	moOffset     []int
	normOffset   []int
	normCoeff    []float64
	primitiveEnd []int // sentinel-terminated, length len(shells)+1 once normalized
}

// New returns an empty basis.
func New() *Basis {
	return &Basis{}
}

// AddAtom forwards to the embedded Molecule (spec SS4.2.1).
func (b *Basis) AddAtom(pos [3]float64, z int) int {
	b.normalized = false
	return b.Molecule.AddAtom(pos, z)
}

// AddBasis appends a shell on the given atom and returns its index.
// Unknown types contribute zero MOs but the shell is still recorded
// (spec SS4.2.2).
func (b *Basis) AddBasis(atomIndex int, t AngularType) int {
	b.numMOs += ComponentsPerShell(t)
	b.shells = append(b.shells, Shell{AtomIndex: atomIndex, Type: t})
	b.normalized = false
	return len(b.shells) - 1
}

// AddGTO appends one primitive to the most recently added shell. The
// shellIndex parameter is accepted for interface symmetry with the
// original C++ API but unused -- primitives always belong to the last
// shell (spec SS4.2.3).
func (b *Basis) AddGTO(_ int, c, alpha float64) int {
	if len(b.firstPrimitive) < len(b.shells) {
		b.firstPrimitive = append(b.firstPrimitive, len(b.exponents))
	}
	b.exponents = append(b.exponents, alpha)
	b.coeffs = append(b.coeffs, c)
	b.normalized = false
	return len(b.exponents) - 1
}

// AddMOs overwrites the MO matrix from a flat, column-major array (spec
// SS4.2.4). Columns beyond len(coeffs)/numMOs remain zero.
func (b *Basis) AddMOs(coeffs []float64) {
	b.normalized = false
	b.moMatrix = mat.NewDense(b.numMOs, b.numMOs, nil)
	if b.numMOs == 0 {
		return
	}
	columns := len(coeffs) / b.numMOs
	for j := 0; j < columns; j++ {
		for i := 0; i < b.numMOs; i++ {
			b.moMatrix.Set(i, j, coeffs[i+j*b.numMOs])
		}
	}
}

// SetDensityMatrix copies a symmetric matrix of side numMOs (spec
// SS4.2.5). flat is row-major, numMOs*numMOs long.
func (b *Basis) SetDensityMatrix(flat []float64) {
	b.normalized = false
	b.density = mat.NewSymDense(b.numMOs, append([]float64(nil), flat...))
	b.hasDensity = true
}

// HasDensity reports whether a density matrix has been installed.
func (b *Basis) HasDensity() bool {
	return b.hasDensity
}

// NumMOs returns the component-count sum (spec SS3: this reflects
// component count, not shell count).
func (b *Basis) NumMOs() int {
	return b.numMOs
}

// NumShells returns the shell count.
func (b *Basis) NumShells() int {
	return len(b.shells)
}

// IsNormalized reports whether the normalized-coefficient cache is
// still valid.
func (b *Basis) IsNormalized() bool {
	return b.normalized
}

// ShellType reports the angular type of shell s.
func (b *Basis) ShellType(s int) AngularType {
	return b.shells[s].Type
}

// ShellAtomIndex reports which atom shell s belongs to.
func (b *Basis) ShellAtomIndex(s int) int {
	return b.shells[s].AtomIndex
}

// ShellMOOffset reports shell s's first MO/AO column, valid only after
// Normalize has run.
func (b *Basis) ShellMOOffset(s int) int {
	return b.moOffset[s]
}

// PrimitiveRange reports the [start, end) primitive indices for shell
// s, valid only after Normalize has run.
func (b *Basis) PrimitiveRange(s int) (start, end int) {
	if s == 0 {
		return 0, b.primitiveEnd[0]
	}
	return b.primitiveEnd[s-1], b.primitiveEnd[s]
}

// Exponent returns the raw exponent of primitive i.
func (b *Basis) Exponent(i int) float64 {
	return b.exponents[i]
}

// NormCoeffOffset reports shell s's first position in the flat
// NormCoeff array, valid only after Normalize has run.
func (b *Basis) NormCoeffOffset(s int) int {
	return b.normOffset[s]
}

// NormCoeffAt returns normalized coefficient idx.
func (b *Basis) NormCoeffAt(idx int) float64 {
	return b.normCoeff[idx]
}

// MOCoeff returns the MO matrix entry at (row, col).
func (b *Basis) MOCoeff(row, col int) float64 {
	return b.moMatrix.At(row, col)
}

// DensityAt returns the density matrix entry at (i, j).
func (b *Basis) DensityAt(i, j int) float64 {
	return b.density.At(i, j)
}

// IsSmall reports whether val is within the evaluator's "skip this
// contribution" shortcut threshold (spec SS4.4).
func IsSmall(val float64) bool {
	return val > -isSmallThreshold && val < isSmallThreshold
}

// Normalize runs the one-time normalization pass if the cached
// coefficients are stale, and is a no-op otherwise (spec SS4.3,
// idempotence property spec SS8.2).
func (b *Basis) Normalize() {
	if b.normalized {
		return
	}

	n := len(b.shells)
	b.moOffset = make([]int, n)
	b.normOffset = make([]int, n)
	b.normCoeff = b.normCoeff[:0]
	b.primitiveEnd = make([]int, n+1)

	indexMO := 0
	for s, shell := range b.shells {
		start := b.firstPrimitive[s]
		end := len(b.exponents)
		if s+1 < n {
			end = b.firstPrimitive[s+1]
		}
		if end == start {
			diag.Error(fmt.Sprintf("shell %d: empty shell (no primitives) rejected from evaluation", s))
		}
		b.primitiveEnd[s] = end

		b.moOffset[s] = indexMO
		b.normOffset[s] = len(b.normCoeff)
		indexMO += ComponentsPerShell(shell.Type)

		switch shell.Type {
		case S:
			for j := start; j < end; j++ {
				c, a := b.coeffs[j], b.exponents[j]
				b.normCoeff = append(b.normCoeff, c*math.Pow(a, 0.75)*normS)
			}
		case P:
			for j := start; j < end; j++ {
				c, a := b.coeffs[j], b.exponents[j]
				v := c * math.Pow(a, 1.25) * normP
				b.normCoeff = append(b.normCoeff, v, v, v)
			}
		case D:
			for j := start; j < end; j++ {
				c, a := b.coeffs[j], b.exponents[j]
				dDiag := c * math.Pow(a, 1.75) * normD
				dOff := c * math.Pow(a, 1.75) * normDoff
				b.normCoeff = append(b.normCoeff, dDiag, dDiag, dDiag, dOff, dOff, dOff)
			}
		case D5:
			for j := start; j < end; j++ {
				c, a := b.coeffs[j], b.exponents[j]
				a7 := math.Pow(a, 7.0)
				d0 := c * math.Pow(2048*a7/(9*math.Pi*math.Pi*math.Pi), 0.25)
				d1 := c * math.Pow(2048*a7/(math.Pi*math.Pi*math.Pi), 0.25)
				d2p := c * math.Pow(128*a7/(math.Pi*math.Pi*math.Pi), 0.25)
				d2n := c * math.Pow(2048*a7/(math.Pi*math.Pi*math.Pi), 0.25)
				b.normCoeff = append(b.normCoeff, d0, d1, d1, d2p, d2n)
			}
		default:
			diag.Warn(fmt.Sprintf("shell %d: unhandled angular type %s, contributes zero", s, shell.Type))
		}
	}
	b.primitiveEnd[n] = len(b.exponents)
	b.normalized = true
}

// Clone produces an independent deep copy, including the MO and density
// matrices (spec SS6). In-flight computations are never copied: Clone
// is only safe to call between dispatch and completion if the caller
// has already synchronized with that completion.
func (b *Basis) Clone() *Basis {
	out := &Basis{
		Molecule:   b.Molecule.Clone(),
		shells:     append([]Shell(nil), b.shells...),
		firstPrimitive: append([]int(nil), b.firstPrimitive...),
		exponents:  append([]float64(nil), b.exponents...),
		coeffs:     append([]float64(nil), b.coeffs...),
		numMOs:     b.numMOs,
		hasDensity: b.hasDensity,
		normalized: b.normalized,
	}
	if b.moMatrix != nil {
		out.moMatrix = mat.DenseCopyOf(b.moMatrix)
	}
	if b.density != nil {
		out.density = mat.NewSymDense(b.density.SymmetricDim(), nil)
		out.density.CopySym(b.density)
	}
	if b.normalized {
		out.moOffset = append([]int(nil), b.moOffset...)
		out.normOffset = append([]int(nil), b.normOffset...)
		out.normCoeff = append([]float64(nil), b.normCoeff...)
		out.primitiveEnd = append([]int(nil), b.primitiveEnd...)
	}
	return out
}
