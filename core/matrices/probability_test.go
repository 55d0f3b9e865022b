// core/matrices/probability_test.go
package matrices

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func column(n int, counts [alphabetSize]uint64) [][]uint64 {
	pfm := make([][]uint64, alphabetSize)
	for r := range pfm {
		pfm[r] = make([]uint64, n)
		pfm[r][0] = counts[r]
	}
	return pfm
}

func TestProbabilityColumnSumsToOne(t *testing.T) {
	ppm, err := probabilities(column(1, [alphabetSize]uint64{3, 1, 0, 0}))
	require.NoError(t, err)

	require.Equal(t, 0.75, ppm.At(0, 0))
	require.Equal(t, 0.25, ppm.At(1, 0))
	require.Equal(t, 0.0, ppm.At(2, 0))
	require.Equal(t, 0.0, ppm.At(3, 0))
}

func TestProbabilityZeroColumnIsDegenerate(t *testing.T) {
	_, err := probabilities(column(1, [alphabetSize]uint64{}))
	require.ErrorIs(t, err, ErrDegenerateCoverage)
}

func TestEfficiencyUniformColumn(t *testing.T) {
	ppm := mat.NewDense(alphabetSize, 1, []float64{0.25, 0.25, 0.25, 0.25})
	eff := efficiencies(ppm)
	require.Equal(t, 1.0, eff[0])
}

func TestEfficiencyConservedColumn(t *testing.T) {
	ppm := mat.NewDense(alphabetSize, 1, []float64{0, 1, 0, 0})
	eff := efficiencies(ppm)
	require.Equal(t, 0.0, eff[0])
}

func TestEfficiencySkewedColumn(t *testing.T) {
	ppm, err := probabilities(column(1, [alphabetSize]uint64{3, 1, 0, 0}))
	require.NoError(t, err)

	eff := efficiencies(ppm)
	require.InDelta(t, 0.4056390622295665, eff[0], 1e-6)
}
