// Package config loads the ambient Options an embedding program may
// want to configure from a file instead of code: worker count and log
// verbosity. goqube itself never reads this file on its own initiative
// (spec SS6: the engine owns no on-disk state) -- this is purely a
// convenience for callers, grounded on go-semp's param.go, which loads
// its semi-empirical parameters from TOML via BurntSushi/toml.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Options mirrors evaluator.Options plus the logging knob, as a plain
// struct so it round-trips through TOML without the evaluator package
// needing to know about file formats.
type Options struct {
	MaxWorkers int    `toml:"max_workers"`
	LogLevel   string `toml:"log_level"`
}

// Load reads and decodes Options from a TOML file, the way go-semp's
// LoadConfig reads the whole file then calls toml.Unmarshal. Unset
// fields keep Go's zero values; callers fold those onto their own
// defaults.
func Load(filename string) (Options, error) {
	var opts Options
	f, err := os.Open(filename)
	if err != nil {
		return opts, err
	}
	defer f.Close()

	cont, err := io.ReadAll(f)
	if err != nil {
		return opts, err
	}
	err = toml.Unmarshal(cont, &opts)
	return opts, err
}
