// core/matrices/matrices.go
// Package matrices turns a stream of aligned reads into the per-position
// arrays used for quasispecies analysis: a position-frequency matrix, a
// normalized coverage profile trimmed to its confident region, a
// position-probability matrix, and a per-position efficiency score
// (normalized Shannon entropy).
package matrices

import (
	"gonum.org/v1/gonum/mat"
)

// alphabetSize is the number of PFM rows, one per nucleotide.
const alphabetSize = 4

// Bases gives the row order of the frequency and probability matrices.
var Bases = [alphabetSize]byte{'A', 'C', 'G', 'T'}

// Matrices bundles the derived arrays for one sample. All four share the
// same trimmed column count and are never mutated after New returns.
type Matrices struct {
	pfm        [][]uint64
	coverage   []float64
	ppm        *mat.Dense
	efficiency []float64
}

// New drains src completely and derives all matrices for the window.
// Derivation starts only after the source is exhausted: coverage
// normalization needs the global maximum over the whole window, so there is
// no per-record streaming beyond raw accumulation.
func New(src RecordSource, win Window, threshold float64) (*Matrices, error) {
	pfm, coverage, err := pfmCoverage(src, win)
	if err != nil {
		return nil, err
	}

	left, right, err := trimRange(coverage, threshold)
	if err != nil {
		return nil, err
	}
	trimmed := make([][]uint64, len(pfm))
	for r := range pfm {
		trimmed[r] = pfm[r][left : right+1 : right+1]
	}
	coverage = coverage[left : right+1 : right+1]

	ppm, err := probabilities(trimmed)
	if err != nil {
		return nil, err
	}

	return &Matrices{
		pfm:        trimmed,
		coverage:   coverage,
		ppm:        ppm,
		efficiency: efficiencies(ppm),
	}, nil
}

// PFM returns the trimmed position-frequency matrix, rows ordered A,C,G,T.
// Callers must treat it as read-only.
func (m *Matrices) PFM() [][]uint64 { return m.pfm }

// Coverage returns the trimmed, max-normalized coverage vector.
func (m *Matrices) Coverage() []float64 { return m.coverage }

// PPM returns the position-probability matrix; every column sums to 1.
func (m *Matrices) PPM() *mat.Dense { return m.ppm }

// Efficiency returns the per-position normalized entropy scores in [0,1]:
// 0 for a fully conserved position, 1 for a uniform A/C/G/T distribution.
func (m *Matrices) Efficiency() []float64 { return m.efficiency }

// Len is the trimmed column count shared by all four arrays.
func (m *Matrices) Len() int { return len(m.coverage) }
