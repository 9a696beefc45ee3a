// Package goqube evaluates quantum-chemical molecular-orbital and
// electron-density fields on three-dimensional grids from a parsed
// Gaussian basis set.
//
// The public surface re-exports the engine's internal packages: Atom
// and Molecule (atoms.go / internal/molecule), Cube (cube.go /
// internal/cube), GaussianBasis (basis.go / internal/gaussian), and the
// Evaluator entry points (evaluator.go / internal/evaluator). Two
// ambient pieces round it out: ConfigOptions (config.go /
// internal/config) loads EvalOptions from a TOML file, and
// ProgressReporter (progress.go / internal/progress) streams one JSON
// frame per finished dispatch over an optional websocket connection,
// set on EvalOptions.Progress. File-format parsers, the
// extension-to-parser loader, CLI glue, and on-disk cube I/O are out of
// scope for this module (spec SS1) -- internal/loader specifies the
// loader facade's interface only, for an embedding program to wire real
// parsers into.
package goqube
