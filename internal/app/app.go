// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"qsa-core/bamio"
	"qsa-core/diversity"
	"qsa-core/matrices"
	"qsa-core/sample"
	"qsa/internal/cli"
	"qsa/internal/discover"
	"qsa/internal/output"
	"qsa/internal/version"
)

// Exit codes, one per error kind so scripts can tell failures apart.
const (
	ExitOK         = 0
	ExitUsage      = 2
	ExitSource     = 3
	ExitDirectory  = 4
	ExitReference  = 5
	ExitNoRegion   = 6
	ExitDegenerate = 7
	ExitWrite      = 8
)

// Run executes the whole analysis and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("qsa")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return ExitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}
	if opts.Version {
		fmt.Fprintf(outw, "qsa version %s\n", version.Version)
		return ExitOK
	}

	paths, err := discover.Expand(opts.Inputs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return codeFor(err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "no BAM/SAM files found among the inputs")
		return ExitUsage
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}

	win := matrices.Window{Start: opts.Start, End: opts.End}
	samples := make([]*sample.Sample, 0, len(paths))
	for _, p := range paths {
		s, err := sample.FromPath(p, win, opts.Threshold)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return codeFor(err)
		}
		if !opts.Quiet {
			fmt.Fprintf(outw, "%s: %d confident positions, alpha %.6f\n",
				s.Name, s.Matrices.Len(), s.AlphaDiversity())
		}
		samples = append(samples, s)
	}

	agg, err := diversity.FromSamples(samples, opts.Checks)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return codeFor(err)
	}

	if err := writeAll(opts.OutDir, agg); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	if !opts.Quiet {
		fmt.Fprintf(outw, "wrote results for %d samples to %s\n", agg.Len(), opts.OutDir)
	}
	if e := outw.Flush(); e != nil && !output.IsBrokenPipe(e) {
		fmt.Fprintln(stderr, e)
		return ExitWrite
	}
	return ExitOK
}

// codeFor maps an error to its exit code by kind.
func codeFor(err error) int {
	switch {
	case errors.Is(err, bamio.ErrSourceNotFound), errors.Is(err, discover.ErrInputNotFound):
		return ExitSource
	case errors.Is(err, discover.ErrDirectoryNotFound):
		return ExitDirectory
	case errors.Is(err, diversity.ErrReferenceMismatch):
		return ExitReference
	case errors.Is(err, matrices.ErrNoConfidentRegion):
		return ExitNoRegion
	case errors.Is(err, matrices.ErrDegenerateCoverage):
		return ExitDegenerate
	}
	return 1
}

// writeAll emits every per-sample and cross-sample table into dir.
func writeAll(dir string, agg *diversity.Aggregator) error {
	for _, s := range agg.Samples() {
		if err := writeFile(filepath.Join(dir, s.Name+"-pfm.csv"), func(w io.Writer) error {
			return output.WritePFM(w, s.Matrices)
		}); err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, s.Name+"-efficiency.tsv"), func(w io.Writer) error {
			return output.WriteEfficiency(w, s.Matrices.Efficiency())
		}); err != nil {
			return err
		}
	}
	if err := writeFile(filepath.Join(dir, "alpha-diversity.tsv"), func(w io.Writer) error {
		return output.WriteAlpha(w, agg.Names(), agg.Alpha())
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "beta-diversity.tsv"), func(w io.Writer) error {
		return output.WriteBeta(w, agg.Names(), agg.Beta())
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "summary.json"), func(w io.Writer) error {
		return output.WriteSummary(w, agg)
	})
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
