// core/matrices/efficiency.go
package matrices

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxEntropy is log2 of the alphabet size; dividing by it maps Shannon
// entropy onto [0,1].
var maxEntropy = math.Log2(float64(alphabetSize))

// efficiencies scores each probability column with its normalized Shannon
// entropy. The p==0 term is skipped: 0*log2(0) is taken as 0.
func efficiencies(ppm *mat.Dense) []float64 {
	_, width := ppm.Dims()
	eff := make([]float64, width)
	col := make([]float64, alphabetSize)
	for i := 0; i < width; i++ {
		mat.Col(col, i, ppm)
		var h float64
		for _, p := range col {
			if p == 0 {
				continue
			}
			h -= p * math.Log2(p)
		}
		eff[i] = h / maxEntropy
	}
	return eff
}
