package goqube

import "github.com/mirzaeva/goqube/internal/evaluator"

// EvalOptions configures the evaluator's parallel map (spec SS5).
type EvalOptions = evaluator.Options

// DefaultEvalOptions bounds concurrency at runtime.GOMAXPROCS(-1), the
// same default goHF's own worker pools use.
func DefaultEvalOptions() EvalOptions {
	return evaluator.DefaultOptions()
}

// EvalOptionsFromConfig folds a loaded ConfigOptions into EvalOptions:
// MaxWorkers overrides the default when set, and LogLevel is applied to
// the package-wide diagnostic threshold (spec SS2.3).
func EvalOptionsFromConfig(c ConfigOptions) EvalOptions {
	return evaluator.OptionsFromConfig(c)
}

// ComputeMO evaluates psi_state(r) at every point of cube, in parallel.
// It returns false without taking the cube's lock if state is out of
// [1, basis.NumMOs()] or the basis has no shells (spec SS4.5, SS7,
// SS8.9); otherwise it returns true immediately after dispatching the
// map, and onDone (if non-nil) fires exactly once after every worker's
// write is visible.
func ComputeMO(basis *GaussianBasis, cu *Cube, state int, opts EvalOptions, onDone func()) bool {
	return evaluator.ComputeMO(basis, cu, state, opts, onDone)
}

// ComputeDensity evaluates rho(r) at every point of cube, in parallel.
// It returns false if the basis has no shells or no density matrix has
// been installed (spec SS4.5, SS7).
func ComputeDensity(basis *GaussianBasis, cu *Cube, opts EvalOptions, onDone func()) bool {
	return evaluator.ComputeDensity(basis, cu, opts, onDone)
}
