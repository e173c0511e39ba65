/*
Package config holds the parameters of an evaluation run.

Parameters are read from a parameter file in TOML format:

    debug       = false   # print a report line for every sentence
    max_errors  = 10      # give up after this many malformed lines
    lenient     = false   # build best-effort trees for malformed lines
    workers     = 1       # number of line pairs evaluated in parallel
    trace_level = "Error" # Debug | Info | Error

Keys missing from the file keep their default values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.config'
func tracer() tracing.Trace {
	return tracing.Select("evalb.config")
}

// Params are the parameters of an evaluation run.
type Params struct {
	Debug      bool   `toml:"debug"`
	MaxErrors  int    `toml:"max_errors"`
	Lenient    bool   `toml:"lenient"`
	Workers    int    `toml:"workers"`
	TraceLevel string `toml:"trace_level"`
}

// Default returns the parameters used if no parameter file is given.
func Default() *Params {
	return &Params{
		MaxErrors:  10,
		Workers:    1,
		TraceLevel: "Error",
	}
}

// Load reads a parameter file.
func Load(path string) (*Params, error) {
	p := Default()
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return nil, fmt.Errorf("cannot read parameter file %s: %w", path, err)
	}
	if err := checkKeys(md); err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	tracer().Infof("loaded parameter file %s", path)
	return p, nil
}

// Decode reads parameters in TOML format from r.
func Decode(r io.Reader) (*Params, error) {
	p := Default()
	md, err := toml.NewDecoder(r).Decode(p)
	if err != nil {
		return nil, fmt.Errorf("cannot decode parameters: %w", err)
	}
	if err := checkKeys(md); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func checkKeys(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown parameters: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks parameters for sensible values.
func (p *Params) Validate() error {
	if p.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative, is %d", p.MaxErrors)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, is %d", p.Workers)
	}
	switch strings.ToLower(p.TraceLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("trace_level must be one of Debug, Info or Error, is %q", p.TraceLevel)
	}
	return nil
}

// Level returns the trace level as a tracing.TraceLevel.
func (p *Params) Level() tracing.TraceLevel {
	return tracing.TraceLevelFromString(p.TraceLevel)
}
