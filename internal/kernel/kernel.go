// kernel.go -- this file is part of the goqube project.
//
//	goqube is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/

// Package kernel implements the pure, per-shell analytical contributions
// to psi_k(r) and to a basis-value column, for each supported angular
// type (spec SS4.4).
//
// Grounded on goHF's own row-access-into-a-coefficient-matrix idiom
// (RHF.go's mat.Dense.RawRowView / At over an MO-like matrix); the
// accumulate-then-combine shape of pointS/pointP/pointD/pointD5 mirrors
// goHF's HF.go integral loops (Overlap, Kinetic), which also walk a
// shell's primitives with a running sum before applying the outer
// geometric factor.
package kernel

import (
	"math"

	"github.com/mirzaeva/goqube/internal/gaussian"
)

// Source is the read-only view into a basis that the kernels need.
// gaussian.Basis implements it directly; kernels never call any of
// gaussian.Basis's mutating builders.
type Source interface {
	ShellType(s int) gaussian.AngularType
	PrimitiveRange(s int) (start, end int)
	Exponent(i int) float64
	NormCoeffOffset(s int) int
	NormCoeffAt(idx int) float64
	ShellMOOffset(s int) int
	MOCoeff(row, col int) float64
	DensityAt(i, j int) float64
}

const isSmallThreshold = 1e-20

func isSmall(v float64) bool {
	return v > -isSmallThreshold && v < isSmallThreshold
}

// PointMO returns shell s's contribution to psi_moIndex(r), given the
// displacement from the shell's atom (delta) and its squared norm
// (dr2), both in Bohr. Unsupported angular types contribute zero.
func PointMO(b Source, s int, delta [3]float64, dr2 float64, moIndex int) float64 {
	switch b.ShellType(s) {
	case gaussian.S:
		return pointS(b, s, dr2, moIndex)
	case gaussian.P:
		return pointP(b, s, delta, dr2, moIndex)
	case gaussian.D:
		return pointD(b, s, delta, dr2, moIndex)
	case gaussian.D5:
		return pointD5(b, s, delta, dr2, moIndex)
	default:
		return 0
	}
}

func pointS(b Source, s int, dr2 float64, moIndex int) float64 {
	base := b.ShellMOOffset(s)
	coeff := b.MOCoeff(base, moIndex)
	if isSmall(coeff) {
		return 0
	}
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var tmp float64
	for i := start; i < end; i++ {
		tmp += b.NormCoeffAt(cIndex) * math.Exp(-b.Exponent(i)*dr2)
		cIndex++
	}
	return tmp * coeff
}

func pointP(b Source, s int, delta [3]float64, dr2 float64, moIndex int) float64 {
	base := b.ShellMOOffset(s)
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var x, y, z float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		x += b.NormCoeffAt(cIndex) * delta[0] * g
		cIndex++
		y += b.NormCoeffAt(cIndex) * delta[1] * g
		cIndex++
		z += b.NormCoeffAt(cIndex) * delta[2] * g
		cIndex++
	}
	px := b.MOCoeff(base, moIndex)
	py := b.MOCoeff(base+1, moIndex)
	pz := b.MOCoeff(base+2, moIndex)
	return px*x + py*y + pz*z
}

func pointD(b Source, s int, delta [3]float64, dr2 float64, moIndex int) float64 {
	base := b.ShellMOOffset(s)
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var xx, yy, zz, xy, xz, yz float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		xx += b.NormCoeffAt(cIndex) * g
		cIndex++
		yy += b.NormCoeffAt(cIndex) * g
		cIndex++
		zz += b.NormCoeffAt(cIndex) * g
		cIndex++
		xy += b.NormCoeffAt(cIndex) * g
		cIndex++
		xz += b.NormCoeffAt(cIndex) * g
		cIndex++
		yz += b.NormCoeffAt(cIndex) * g
		cIndex++
	}
	dxx := b.MOCoeff(base, moIndex) * delta[0] * delta[0]
	dyy := b.MOCoeff(base+1, moIndex) * delta[1] * delta[1]
	dzz := b.MOCoeff(base+2, moIndex) * delta[2] * delta[2]
	dxy := b.MOCoeff(base+3, moIndex) * delta[0] * delta[1]
	dxz := b.MOCoeff(base+4, moIndex) * delta[0] * delta[2]
	dyz := b.MOCoeff(base+5, moIndex) * delta[1] * delta[2]
	return dxx*xx + dyy*yy + dzz*zz + dxy*xy + dxz*xz + dyz*yz
}

func pointD5(b Source, s int, delta [3]float64, dr2 float64, moIndex int) float64 {
	base := b.ShellMOOffset(s)
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var d0, d1p, d1n, d2p, d2n float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		d0 += b.NormCoeffAt(cIndex) * g
		cIndex++
		d1p += b.NormCoeffAt(cIndex) * g
		cIndex++
		d1n += b.NormCoeffAt(cIndex) * g
		cIndex++
		d2p += b.NormCoeffAt(cIndex) * g
		cIndex++
		d2n += b.NormCoeffAt(cIndex) * g
		cIndex++
	}
	xx := delta[0] * delta[0]
	yy := delta[1] * delta[1]
	xz := delta[0] * delta[2]
	yz := delta[1] * delta[2]
	xy := delta[0] * delta[1]

	D0 := b.MOCoeff(base, moIndex) * (delta[2]*delta[2] - dr2)
	D1p := b.MOCoeff(base+1, moIndex) * xz
	D1n := b.MOCoeff(base+2, moIndex) * yz
	D2p := b.MOCoeff(base+3, moIndex) * (xx - yy)
	D2n := b.MOCoeff(base+4, moIndex) * xy

	return D0*d0 + D1p*d1p + D1n*d1n + D2p*d2p + D2n*d2n
}

// PointBasis writes shell s's component values at this point into out,
// at indices [ShellMOOffset(s), ShellMOOffset(s)+components), without
// applying any MO coefficient. Unsupported angular types write nothing
// (their slots stay zero, as reserved by the normalization pass).
func PointBasis(b Source, s int, delta [3]float64, dr2 float64, out []float64) {
	switch b.ShellType(s) {
	case gaussian.S:
		basisS(b, s, dr2, out)
	case gaussian.P:
		basisP(b, s, delta, dr2, out)
	case gaussian.D:
		basisD(b, s, delta, dr2, out)
	case gaussian.D5:
		basisD5(b, s, delta, dr2, out)
	}
}

func basisS(b Source, s int, dr2 float64, out []float64) {
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var tmp float64
	for i := start; i < end; i++ {
		tmp += b.NormCoeffAt(cIndex) * math.Exp(-b.Exponent(i)*dr2)
		cIndex++
	}
	out[b.ShellMOOffset(s)] = tmp
}

func basisP(b Source, s int, delta [3]float64, dr2 float64, out []float64) {
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var x, y, z float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		x += b.NormCoeffAt(cIndex) * g
		cIndex++
		y += b.NormCoeffAt(cIndex) * g
		cIndex++
		z += b.NormCoeffAt(cIndex) * g
		cIndex++
	}
	base := b.ShellMOOffset(s)
	out[base] = x * delta[0]
	out[base+1] = y * delta[1]
	out[base+2] = z * delta[2]
}

func basisD(b Source, s int, delta [3]float64, dr2 float64, out []float64) {
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var xx, yy, zz, xy, xz, yz float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		xx += b.NormCoeffAt(cIndex) * g
		cIndex++
		yy += b.NormCoeffAt(cIndex) * g
		cIndex++
		zz += b.NormCoeffAt(cIndex) * g
		cIndex++
		xy += b.NormCoeffAt(cIndex) * g
		cIndex++
		xz += b.NormCoeffAt(cIndex) * g
		cIndex++
		yz += b.NormCoeffAt(cIndex) * g
		cIndex++
	}
	base := b.ShellMOOffset(s)
	out[base] = delta[0] * delta[0] * xx
	out[base+1] = delta[1] * delta[1] * yy
	out[base+2] = delta[2] * delta[2] * zz
	out[base+3] = delta[0] * delta[1] * xy
	out[base+4] = delta[0] * delta[2] * xz
	out[base+5] = delta[1] * delta[2] * yz
}

func basisD5(b Source, s int, delta [3]float64, dr2 float64, out []float64) {
	start, end := b.PrimitiveRange(s)
	cIndex := b.NormCoeffOffset(s)
	var d0, d1p, d1n, d2p, d2n float64
	for i := start; i < end; i++ {
		g := math.Exp(-b.Exponent(i) * dr2)
		d0 += b.NormCoeffAt(cIndex) * g
		cIndex++
		d1p += b.NormCoeffAt(cIndex) * g
		cIndex++
		d1n += b.NormCoeffAt(cIndex) * g
		cIndex++
		d2p += b.NormCoeffAt(cIndex) * g
		cIndex++
		d2n += b.NormCoeffAt(cIndex) * g
		cIndex++
	}
	xx := delta[0] * delta[0]
	yy := delta[1] * delta[1]
	xz := delta[0] * delta[2]
	yz := delta[1] * delta[2]
	xy := delta[0] * delta[1]

	base := b.ShellMOOffset(s)
	out[base] = (delta[2]*delta[2] - dr2) * d0
	out[base+1] = xz * d1p
	out[base+2] = yz * d1n
	out[base+3] = (xx - yy) * d2p
	out[base+4] = xy * d2n
}

// Density computes rho from a density matrix and a basis-value column,
// using only the lower triangle of D and exploiting symmetry (spec
// SS4.4):
//
//	rho = sum_i D_ii V_i^2 + 2 * sum_{i<j} D_ij V_i V_j
func Density(b Source, values []float64) float64 {
	var rho float64
	n := len(values)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			rho += 2.0 * b.DensityAt(i, j) * values[i] * values[j]
		}
		rho += b.DensityAt(i, i) * values[i] * values[i]
	}
	return rho
}
