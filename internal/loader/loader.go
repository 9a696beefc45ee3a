// loader.go -- this file is part of the goqube project.
//
//	goqube is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/

// Package loader is the single entry point that accepts a file path and
// returns a populated basis, Gaussian or Slater (spec SS4.6, SS9).
//
// The file-format parsers themselves -- Gaussian FCHK, GAMESS-US/UK
// logs, MOPAC aux, Molden -- are external collaborators specified only
// through their interface (spec SS1, SS6): a parser is any function
// that drives addAtom/addBasis/addGTO/addMOs/setDensityMatrix. This
// package owns only the suffix classification and dispatch, grounded on
// the original basissetloader.cpp's MatchBasisSet/LoadBasisSet (the
// exact suffix-priority order and the "named file first, then its
// siblings" search order are carried forward literally from there).
package loader

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/mirzaeva/goqube/internal/cube"
	"github.com/mirzaeva/goqube/internal/diag"
	"github.com/mirzaeva/goqube/internal/evaluator"
	"github.com/mirzaeva/goqube/internal/gaussian"
	"github.com/mirzaeva/goqube/internal/slater"
)

// Format classifies a recognized basis-set file by the program that
// produced it.
type Format int

const (
	Unknown Format = iota
	FCHK
	GamessUK
	MopacAux
	Molden
)

type suffixClass struct {
	format     Format
	substrings []string
}

// suffixClasses is checked in order; the first matching substring wins
// (spec SS4.6).
var suffixClasses = []suffixClass{
	{FCHK, []string{"fchk", "fch", "fck"}},
	{GamessUK, []string{"gukout"}},
	{MopacAux, []string{"aux"}},
	{Molden, []string{"molden", "mold", "molf"}},
}

func classify(name string) Format {
	suffix := strings.ToLower(completeSuffix(name))
	for _, class := range suffixClasses {
		if slices.ContainsFunc(class.substrings, func(sub string) bool {
			return strings.Contains(suffix, sub)
		}) {
			return class.format
		}
	}
	return Unknown
}

// completeSuffix mirrors Qt's QFileInfo::completeSuffix: everything
// after the first '.' in the base name, not just the last extension.
func completeSuffix(name string) string {
	base := filepath.Base(name)
	if i := strings.Index(base, "."); i >= 0 {
		return base[i+1:]
	}
	return ""
}

// Basis is the capability set shared by Gaussian and Slater basis sets
// (spec SS9): a sum type behind a thin interface, not inheritance with
// virtual mutators. The loader facade returns this abstraction.
type Basis interface {
	Clone() Basis
	NumMOs() int
	ComputeMO(cu *cube.Cube, state int, opts evaluator.Options, onDone func()) bool
	ComputeDensity(cu *cube.Cube, opts evaluator.Options, onDone func()) bool
}

type gaussianBasis struct {
	*gaussian.Basis
}

func (g gaussianBasis) Clone() Basis {
	return gaussianBasis{g.Basis.Clone()}
}

func (g gaussianBasis) ComputeMO(cu *cube.Cube, state int, opts evaluator.Options, onDone func()) bool {
	return evaluator.ComputeMO(g.Basis, cu, state, opts, onDone)
}

func (g gaussianBasis) ComputeDensity(cu *cube.Cube, opts evaluator.Options, onDone func()) bool {
	return evaluator.ComputeDensity(g.Basis, cu, opts, onDone)
}

type slaterBasis struct {
	*slater.Basis
}

func (s slaterBasis) Clone() Basis {
	return slaterBasis{s.Basis.Clone()}
}

// ComputeMO always fails: the STO kernel set is out of scope for this
// engine (spec SS1 Non-goals). The method exists so slaterBasis
// satisfies Basis.
func (s slaterBasis) ComputeMO(*cube.Cube, int, evaluator.Options, func()) bool {
	diag.Error("computeMO: Slater-type-orbital engine not implemented")
	return false
}

func (s slaterBasis) ComputeDensity(*cube.Cube, evaluator.Options, func()) bool {
	diag.Error("computeDensity: Slater-type-orbital engine not implemented")
	return false
}

// NewGaussian wraps a freshly parsed Gaussian basis as a Basis.
func NewGaussian(b *gaussian.Basis) Basis {
	return gaussianBasis{b}
}

// NewSlater wraps a freshly parsed Slater basis as a Basis.
func NewSlater(b *slater.Basis) Basis {
	return slaterBasis{b}
}

// GaussianParser is the contract a Gaussian file-format parser
// (FCHK/GAMESS-UK/Molden) meets: drive the construction API against a
// fresh basis and report success (spec SS6). Parsers live outside this
// package; LoadBasisSet only classifies and dispatches to one.
type GaussianParser func(path string, into *gaussian.Basis) error

// SlaterParser is the MOPAC aux analogue of GaussianParser.
type SlaterParser func(path string, into *slater.Basis) error

// MatchBasisSet returns a sibling file of path whose extension
// indicates a recognized format, trying path itself first and then its
// siblings in readable-file order, or "" if none match (spec SS4.6).
func MatchBasisSet(path string) string {
	if path == "" {
		return ""
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	candidates := []string{base}
	entries, err := os.ReadDir(dir)
	if err != nil {
		diag.Warn("matchBasisSet: cannot read directory " + dir + ": " + err.Error())
	} else {
		for _, e := range entries {
			if e.IsDir() || e.Name() == base {
				continue
			}
			if strings.HasPrefix(e.Name(), stem+".") {
				candidates = append(candidates, e.Name())
			}
		}
	}

	for _, name := range candidates {
		if classify(name) != Unknown {
			return filepath.Join(dir, name)
		}
	}
	return ""
}

// LoadBasisSet dispatches on path's suffix class and returns a
// populated, polymorphic Basis, or nil if the suffix isn't recognized
// or the parser failed (spec SS4.6, SS7). If the parser for the matched
// format is nil, no parsing happens and the returned basis is empty.
// gaussianParser/slaterParser
// are the injected construction hooks for the format in question; a
// real deployment wires FCHK/GUK/Molden/MOPAC parsers here, each
// driving the addAtom/addBasis/addGTO/addMOs construction API (spec
// SS6) against the returned basis.
func LoadBasisSet(path string, gaussianParser GaussianParser, slaterParser SlaterParser) Basis {
	switch classify(path) {
	case FCHK, GamessUK, Molden:
		g := gaussian.New()
		if gaussianParser != nil {
			if err := gaussianParser(path, g); err != nil {
				diag.Error("loadBasisSet: parser failed for " + path + ": " + err.Error())
				return nil
			}
		}
		return NewGaussian(g)
	case MopacAux:
		s := slater.New()
		if slaterParser != nil {
			if err := slaterParser(path, s); err != nil {
				diag.Error("loadBasisSet: parser failed for " + path + ": " + err.Error())
				return nil
			}
		}
		return NewSlater(s)
	default:
		return nil
	}
}
