package main

import (
	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/fs"
	mcyaml "github.com/fwojciec/mediacsv/yaml"
)

// resolveConfig merges the config file named by cli.Config with the flags
// in cli and fills the remaining gaps with defaults. The returned config
// always has Range, Window and CRLF set.
func resolveConfig(cli *CLI) (*mediacsv.BatchConfig, error) {
	cfg := &mediacsv.BatchConfig{}
	if cli.Config != "" {
		loaded, err := mcyaml.LoadBatchConfig(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(cli.Inputs) > 0 {
		cfg.Inputs = cli.Inputs
	}
	if cli.Glob != "" {
		cfg.Glob = cli.Glob
	}
	if cli.Dir != "" {
		cfg.Dir = cli.Dir
	}
	if cli.Recursive {
		cfg.Recursive = true
	}
	if cli.Pattern != "" {
		cfg.Pattern = cli.Pattern
	}

	r := mediacsv.DefaultRange
	if cfg.Range != nil {
		r = *cfg.Range
	}
	if cli.From != 0 {
		r.From = cli.From
	}
	if cli.To != 0 {
		r.To = cli.To
	}
	cfg.Range = &r

	w := mediacsv.DefaultWindow
	if cfg.Window != nil {
		w = *cfg.Window
	}
	if cli.Before != 0 {
		w.Before = cli.Before
	}
	if cli.After != 0 {
		w.After = cli.After
	}
	cfg.Window = &w

	crlf := true
	if cfg.CRLF != nil {
		crlf = *cfg.CRLF
	}
	if cli.LF {
		crlf = false
	}
	cfg.CRLF = &crlf

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSource picks the input source by precedence: explicit inputs, then a
// glob, then a directory scan, then the numbered range.
func newSource(cfg *mediacsv.BatchConfig) mediacsv.InputSource {
	switch {
	case len(cfg.Inputs) > 0:
		return &fs.ListSource{Paths: cfg.Inputs}
	case cfg.Glob != "":
		return &fs.GlobSource{Pattern: cfg.Glob}
	case cfg.Dir != "":
		return &fs.DirSource{Dir: cfg.Dir, Recursive: cfg.Recursive}
	default:
		return &fs.RangeSource{Range: *cfg.Range, Pattern: cfg.Pattern}
	}
}
