// core/matrices/builder.go
package matrices

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// baseRow maps a nucleotide symbol to its PFM row, or -1 for symbols
// outside the A/C/G/T alphabet (N, IUPAC ambiguity codes, gaps). U is
// sequenced RNA and counts with T.
func baseRow(b byte) int {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't', 'U', 'u':
		return 3
	}
	return -1
}

// pfmCoverage drains src and accumulates the raw position-frequency matrix
// and the max-normalized coverage vector for win. A read is kept only when
// it lies entirely inside the window; partial clipping would bias the
// boundary columns.
func pfmCoverage(src RecordSource, win Window) ([][]uint64, []float64, error) {
	var records []Record
	for {
		rec, err := src.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record: %w", err)
		}
		records = append(records, rec)
	}

	start, end := win.Start, win.End
	if end <= start {
		end = start
		for _, rec := range records {
			if e := rec.Start + len(rec.Seq); e > end {
				end = e
			}
		}
	}
	width := end - start
	if width <= 0 {
		return nil, nil, ErrDegenerateCoverage
	}

	pfm := make([][]uint64, alphabetSize)
	for r := range pfm {
		pfm[r] = make([]uint64, width)
	}
	for _, rec := range records {
		if rec.Start < start || rec.Start+len(rec.Seq) > end {
			continue
		}
		fcol := rec.Start - start
		for i, b := range rec.Seq {
			row := baseRow(b)
			if row < 0 {
				continue
			}
			pfm[row][fcol+i]++
		}
	}

	coverage := make([]float64, width)
	for col := 0; col < width; col++ {
		var nt uint64
		for row := range pfm {
			nt += pfm[row][col]
		}
		coverage[col] = float64(nt)
	}
	max := floats.Max(coverage)
	if max == 0 {
		return nil, nil, ErrDegenerateCoverage
	}
	// Divide rather than multiply by the reciprocal: max/max must come out
	// as exactly 1.0.
	for col := range coverage {
		coverage[col] /= max
	}

	return pfm, coverage, nil
}
