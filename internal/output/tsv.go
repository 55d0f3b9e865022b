// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// WriteEfficiency writes position<TAB>efficiency rows, positions numbered
// within the trimmed window. Line-plot input.
func WriteEfficiency(w io.Writer, eff []float64) error {
	for i, e := range eff {
		if _, err := fmt.Fprintf(w, "%d\t%g\n", i, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteAlpha writes sample<TAB>alpha_diversity rows in aggregation order.
// Bar-chart input.
func WriteAlpha(w io.Writer, names []string, alpha []float64) error {
	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%s\t%g\n", name, alpha[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteBeta writes the upper triangle of the beta matrix as
// sample_a<TAB>sample_b<TAB>distance rows. Pairwise-distance graph input.
func WriteBeta(w io.Writer, names []string, beta *mat.Dense) error {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%g\n", names[i], names[j], beta.At(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}
