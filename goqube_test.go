package goqube

import (
	"math"
	"testing"
)

// A single oxygen atom with one S-type shell, evaluated on a tiny cube --
// the simplest end-to-end path through the public API.
func TestComputeMOSingleAtomSingleSShell(t *testing.T) {
	b := NewGaussianBasis()
	b.AddAtom([3]float64{0, 0, 0}, 8)
	b.AddBasis(0, S)
	b.AddGTO(0, 1.0, 0.5)
	b.AddMOs([]float64{1})

	cu := NewCube([3]float64{-1, -1, -1}, [3]float64{1, 1, 1}, [3]int{3, 3, 3})
	done := make(chan struct{})
	if !ComputeMO(b, cu, 1, DefaultEvalOptions(), func() { close(done) }) {
		t.Fatal("ComputeMO rejected a valid single-shell basis")
	}
	<-done

	if cu.CubeType() != MO {
		t.Fatalf("CubeType() = %v, want MO", cu.CubeType())
	}
	// The nucleus itself must carry the largest S-shell amplitude.
	centerIndex := cu.Size() / 2
	center := cu.Value(centerIndex)
	for i := 0; i < cu.Size(); i++ {
		if cu.Value(i) > center {
			t.Fatalf("sample %d (%v) exceeds the on-nucleus value (%v)", i, cu.Value(i), center)
		}
	}
}

// An atom away from the grid origin pins the Angstrom-to-Bohr
// conversion of its position, not just of the sample point.
func TestComputeMOOffOriginAtom(t *testing.T) {
	const alpha = 0.5
	const normS = 0.71270547
	const bohrToAngstrom = 0.529177249

	b := NewGaussianBasis()
	b.AddAtom([3]float64{1, 0, 0}, 8) // 1 Angstrom from the grid origin
	b.AddBasis(0, S)
	b.AddGTO(0, 1.0, alpha)
	b.AddMOs([]float64{1})

	cu := NewCube([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{1, 1, 1})
	done := make(chan struct{})
	if !ComputeMO(b, cu, 1, DefaultEvalOptions(), func() { close(done) }) {
		t.Fatal("ComputeMO rejected a valid request")
	}
	<-done

	d := 1.0 / bohrToAngstrom // 1 Angstrom, in Bohr
	dr2 := d * d
	want := math.Pow(alpha, 0.75) * normS * math.Exp(-alpha*dr2)

	if got := cu.Value(0); math.Abs(got-want) > 1e-9 {
		t.Fatalf("off-origin atom value = %v, want %v (dr2 = %v Bohr^2)", got, want, dr2)
	}
}

func TestLoadBasisSetUnknownSuffix(t *testing.T) {
	if b := LoadBasisSet("molecule.xyz", nil, nil); b != nil {
		t.Fatal("LoadBasisSet(unrecognized suffix) returned a non-nil basis")
	}
}
