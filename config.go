package goqube

import "github.com/mirzaeva/goqube/internal/config"

// ConfigOptions is the on-disk counterpart of EvalOptions: a worker
// count and a log level, loadable from a TOML file (spec SS2.3, SS6).
// goqube never reads this file on its own initiative -- it is purely a
// convenience for embedding programs, fed into EvalOptionsFromConfig.
type ConfigOptions = config.Options

// LoadConfig reads and decodes ConfigOptions from a TOML file.
func LoadConfig(filename string) (ConfigOptions, error) {
	return config.Load(filename)
}
