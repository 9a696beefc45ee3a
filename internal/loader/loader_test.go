package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mirzaeva/goqube/internal/gaussian"
	"github.com/mirzaeva/goqube/internal/slater"
)

func TestClassifySuffixPriority(t *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"water.fchk", FCHK},
		{"water.fch", FCHK},
		{"water.fck", FCHK},
		{"run.gukout", GamessUK},
		{"mol.aux", MopacAux},
		{"mol.molden", Molden},
		{"mol.mold", Molden},
		{"mol.xyz", Unknown},
		{"noextension", Unknown},
	}
	for _, c := range cases {
		if got := classify(c.name); got != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMatchBasisSetNamedFileFirst(t *testing.T) {
	dir := t.TempDir()
	fchk := filepath.Join(dir, "water.fchk")
	if err := os.WriteFile(fchk, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := MatchBasisSet(fchk); got != fchk {
		t.Fatalf("MatchBasisSet(%q) = %q, want the file itself", fchk, got)
	}
}

func TestMatchBasisSetFallsBackToSibling(t *testing.T) {
	dir := t.TempDir()
	xyz := filepath.Join(dir, "water.xyz")
	aux := filepath.Join(dir, "water.aux")
	if err := os.WriteFile(xyz, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(aux, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := MatchBasisSet(xyz); got != aux {
		t.Fatalf("MatchBasisSet(%q) = %q, want sibling %q", xyz, got, aux)
	}
}

func TestMatchBasisSetNoneFound(t *testing.T) {
	dir := t.TempDir()
	xyz := filepath.Join(dir, "water.xyz")
	if err := os.WriteFile(xyz, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := MatchBasisSet(xyz); got != "" {
		t.Fatalf("MatchBasisSet(%q) = %q, want \"\"", xyz, got)
	}
}

func TestLoadBasisSetDispatchesGaussian(t *testing.T) {
	called := false
	parser := func(path string, into *gaussian.Basis) error {
		called = true
		into.AddAtom([3]float64{0, 0, 0}, 8)
		return nil
	}
	b := LoadBasisSet("water.fchk", parser, nil)
	if !called {
		t.Fatal("gaussianParser was not invoked for a .fchk path")
	}
	if b == nil {
		t.Fatal("LoadBasisSet returned nil for a recognized Gaussian format")
	}
	if _, ok := b.(gaussianBasis); !ok {
		t.Fatalf("LoadBasisSet returned %T, want gaussianBasis", b)
	}
}

func TestLoadBasisSetDispatchesSlater(t *testing.T) {
	called := false
	parser := func(path string, into *slater.Basis) error {
		called = true
		return nil
	}
	b := LoadBasisSet("mol.aux", nil, parser)
	if !called {
		t.Fatal("slaterParser was not invoked for a .aux path")
	}
	if _, ok := b.(slaterBasis); !ok {
		t.Fatalf("LoadBasisSet returned %T, want slaterBasis", b)
	}
}

func TestLoadBasisSetUnrecognizedReturnsNil(t *testing.T) {
	if b := LoadBasisSet("mol.xyz", nil, nil); b != nil {
		t.Fatalf("LoadBasisSet(unrecognized) = %v, want nil", b)
	}
}

func TestLoadBasisSetParserFailureReturnsNil(t *testing.T) {
	parser := func(path string, into *gaussian.Basis) error {
		return os.ErrNotExist
	}
	if b := LoadBasisSet("mol.fchk", parser, nil); b != nil {
		t.Fatal("LoadBasisSet did not return nil when the parser failed")
	}
}
