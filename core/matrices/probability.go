// core/matrices/probability.go
package matrices

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// probabilities normalizes each PFM column by its raw count sum, giving the
// per-position nucleotide distribution. A zero-sum column has no defined
// distribution; such columns can only survive trimming with a threshold
// of 0, and surface as ErrDegenerateCoverage instead of NaN.
func probabilities(pfm [][]uint64) (*mat.Dense, error) {
	width := len(pfm[0])
	ppm := mat.NewDense(alphabetSize, width, nil)
	for col := 0; col < width; col++ {
		var nt uint64
		for row := range pfm {
			nt += pfm[row][col]
		}
		if nt == 0 {
			return nil, fmt.Errorf("column %d has no observations: %w", col, ErrDegenerateCoverage)
		}
		for row := range pfm {
			ppm.Set(row, col, float64(pfm[row][col])/float64(nt))
		}
	}
	return ppm, nil
}
