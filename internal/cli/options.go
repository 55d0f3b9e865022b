// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"qsa/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs: BAM/SAM files or directories containing them.
	Inputs []string

	// Analysis parameters
	Start     int
	End       int // 0 = full range
	Threshold float64
	Checks    bool // true unless -no-checks

	// Output
	OutDir string
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: quasispecies diversity analysis of aligned sequencing reads

Version: %s

Usage: %s [options] <bam|sam|dir>...
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are the alignment files and/or directories.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noChecks bool

	fs.IntVar(&opt.Start, "start", 0, "window start; reads beginning before it are dropped [0]")
	fs.IntVar(&opt.End, "end", 0, "window end; reads running past it are dropped (0 = full range) [0]")
	fs.Float64Var(&opt.Threshold, "threshold", 0.65, "minimum normalized coverage for a position to be kept [0.65]")
	fs.BoolVar(&noChecks, "no-checks", false, "skip the reference-sequence consistency check [false]")
	fs.StringVar(&opt.OutDir, "out", "qsaout", "output directory, created if missing [qsaout]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress lines [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Inputs = fs.Args()
	opt.Checks = !noChecks

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("provide at least one BAM/SAM file or directory")
	}
	if opt.Start < 0 {
		return opt, errors.New("-start must be ≥ 0")
	}
	if opt.End != 0 && opt.End <= opt.Start {
		return opt, errors.New("-end must be greater than -start")
	}
	if opt.Threshold < 0 || opt.Threshold > 1 {
		return opt, errors.New("-threshold must be within [0, 1]")
	}
	return opt, nil
}
