package evaluator

import (
	"math"
	"testing"

	"github.com/mirzaeva/goqube/internal/cube"
	"github.com/mirzaeva/goqube/internal/gaussian"
)

func oneAtomOneSBasis() *gaussian.Basis {
	b := gaussian.New()
	b.AddAtom([3]float64{0, 0, 0}, 8)
	b.AddBasis(0, gaussian.S)
	b.AddGTO(0, 1.0, 0.5)
	b.AddMOs([]float64{1})
	return b
}

func smallCube() *cube.Cube {
	return cube.New([3]float64{-1, -1, -1}, [3]float64{1, 1, 1}, [3]int{3, 3, 3})
}

func waitFor(done <-chan struct{}) {
	<-done
}

func TestComputeMOOutOfRangeRejectsWithoutLocking(t *testing.T) {
	b := oneAtomOneSBasis()
	cu := smallCube()

	if ok := ComputeMO(b, cu, 0, DefaultOptions(), nil); ok {
		t.Fatal("ComputeMO(state=0) = true, want false")
	}
	if ok := ComputeMO(b, cu, 2, DefaultOptions(), nil); ok {
		t.Fatal("ComputeMO(state=2) = true, want false (basis only has 1 MO)")
	}

	lock := cu.Lock()
	if !lock.TryLock() {
		t.Fatal("cube lock is held after a rejected ComputeMO call")
	}
	lock.Unlock()
}

func TestComputeMOEmptyBasisRejected(t *testing.T) {
	b := gaussian.New()
	cu := smallCube()
	if ok := ComputeMO(b, cu, 1, DefaultOptions(), nil); ok {
		t.Fatal("ComputeMO on a basis with no shells = true, want false")
	}
}

func TestComputeDensityWithoutMatrixRejected(t *testing.T) {
	b := oneAtomOneSBasis()
	cu := smallCube()
	if ok := ComputeDensity(b, cu, DefaultOptions(), nil); ok {
		t.Fatal("ComputeDensity with no density matrix = true, want false")
	}
}

func TestComputeMOTagsCubeBeforeCompletion(t *testing.T) {
	b := oneAtomOneSBasis()
	cu := smallCube()
	done := make(chan struct{})

	ok := ComputeMO(b, cu, 1, DefaultOptions(), func() { close(done) })
	if !ok {
		t.Fatal("ComputeMO returned false for a valid request")
	}

	// The tag and the write lock must both be visible immediately, before
	// the dispatched goroutines have necessarily finished.
	if cu.CubeType() != cube.MO {
		t.Fatalf("cube tag = %v immediately after dispatch, want MO", cu.CubeType())
	}
	lock := cu.Lock()
	if lock.TryLock() {
		lock.Unlock()
		t.Fatal("cube lock was not held immediately after dispatch")
	}

	waitFor(done)
}

func TestComputeMODeterministicAcrossWorkerCounts(t *testing.T) {
	b := oneAtomOneSBasis()

	run := func(maxWorkers int) []float64 {
		cu := smallCube()
		done := make(chan struct{})
		if !ComputeMO(b, cu, 1, Options{MaxWorkers: maxWorkers}, func() { close(done) }) {
			t.Fatal("ComputeMO rejected a valid request")
		}
		waitFor(done)
		out := make([]float64, cu.Size())
		for i := range out {
			out[i] = cu.Value(i)
		}
		return out
	}

	serial := run(1)
	parallel := run(8)

	if len(serial) != len(parallel) {
		t.Fatalf("length mismatch: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if math.Abs(serial[i]-parallel[i]) > 1e-12 {
			t.Fatalf("sample %d diverged: serial=%v parallel=%v", i, serial[i], parallel[i])
		}
	}
}

func TestComputeMOZeroCoefficientGivesZeroField(t *testing.T) {
	b := gaussian.New()
	b.AddAtom([3]float64{0, 0, 0}, 8)
	b.AddBasis(0, gaussian.S)
	b.AddGTO(0, 1.0, 0.5)
	b.AddMOs([]float64{0})

	cu := smallCube()
	done := make(chan struct{})
	if !ComputeMO(b, cu, 1, DefaultOptions(), func() { close(done) }) {
		t.Fatal("ComputeMO rejected a valid request")
	}
	waitFor(done)

	for i := 0; i < cu.Size(); i++ {
		if cu.Value(i) != 0 {
			t.Fatalf("sample %d = %v, want 0 for a zero MO coefficient", i, cu.Value(i))
		}
	}
}

func TestComputeMOPShellAntisymmetricAcrossCube(t *testing.T) {
	b := gaussian.New()
	b.AddAtom([3]float64{0, 0, 0}, 6)
	b.AddBasis(0, gaussian.P)
	b.AddGTO(0, 1.0, 0.4)
	b.AddMOs([]float64{1, 1, 1})

	cu := cube.New([3]float64{-1, -1, -1}, [3]float64{1, 1, 1}, [3]int{3, 3, 3})
	done := make(chan struct{})
	if !ComputeMO(b, cu, 1, DefaultOptions(), func() { close(done) }) {
		t.Fatal("ComputeMO rejected a valid request")
	}
	waitFor(done)

	// Samples at the grid's two opposite corners are mirror images
	// through the nucleus at the origin, so the P-shell contribution
	// there must be equal and opposite.
	first, last := cu.Value(0), cu.Value(cu.Size()-1)
	if math.Abs(first+last) > 1e-9 {
		t.Fatalf("opposite corners not antisymmetric: %v vs %v", first, last)
	}
}

func TestComputeMOOffOriginAtomConvertsToBohr(t *testing.T) {
	const alpha = 0.5
	const normS = 0.71270547
	const bohrToAngstrom = 0.529177249

	b := gaussian.New()
	b.AddAtom([3]float64{1, 0, 0}, 8) // 1 Angstrom from the grid origin
	b.AddBasis(0, gaussian.S)
	b.AddGTO(0, 1.0, alpha)
	b.AddMOs([]float64{1})

	// A single-point cube sampling r = (0,0,0) Angstrom, the grid's own
	// origin -- 1 Angstrom away from the atom along x.
	cu := cube.New([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{1, 1, 1})
	done := make(chan struct{})
	if !ComputeMO(b, cu, 1, DefaultOptions(), func() { close(done) }) {
		t.Fatal("ComputeMO rejected a valid request")
	}
	waitFor(done)

	// The displacement must be measured in Bohr, not Angstrom: 1
	// Angstrom = 1/bohrToAngstrom Bohr.
	d := 1.0 / bohrToAngstrom
	dr2 := d * d
	want := math.Pow(alpha, 0.75) * normS * math.Exp(-alpha*dr2)

	if got := cu.Value(0); math.Abs(got-want) > 1e-9 {
		t.Fatalf("off-origin atom value = %v, want %v (dr2 = %v Bohr^2)", got, want, dr2)
	}
}

func TestComputeDensityNonNegative(t *testing.T) {
	b := gaussian.New()
	b.AddAtom([3]float64{0, 0, 0}, 8)
	b.AddBasis(0, gaussian.S)
	b.AddGTO(0, 1.0, 0.5)
	b.AddMOs([]float64{1})
	b.SetDensityMatrix([]float64{2})

	cu := smallCube()
	done := make(chan struct{})
	if !ComputeDensity(b, cu, DefaultOptions(), func() { close(done) }) {
		t.Fatal("ComputeDensity rejected a valid request")
	}
	waitFor(done)

	for i := 0; i < cu.Size(); i++ {
		if cu.Value(i) < 0 {
			t.Fatalf("sample %d = %v, want >= 0 for a positive-diagonal density matrix", i, cu.Value(i))
		}
	}
}
