// core/matrices/errors.go
package matrices

import "errors"

var (
	// ErrDegenerateCoverage reports a window with no usable nucleotide
	// observations: an all-zero coverage vector, or a surviving zero-sum
	// column that cannot be normalized into probabilities.
	ErrDegenerateCoverage = errors.New("matrices: degenerate coverage, no usable observations")

	// ErrNoConfidentRegion reports that no position exceeds the coverage
	// threshold, so there is nothing to trim down to.
	ErrNoConfidentRegion = errors.New("matrices: no position exceeds the coverage threshold")
)
