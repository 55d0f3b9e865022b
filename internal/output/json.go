// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"qsa-core/diversity"
	"qsa/pkg/api"
)

// Summary converts an aggregator into the versioned API shape.
func Summary(agg *diversity.Aggregator) api.SummaryV1 {
	names := agg.Names()
	alpha := agg.Alpha()
	out := api.SummaryV1{Samples: make([]api.SampleV1, 0, len(names))}
	for i, s := range agg.Samples() {
		out.Samples = append(out.Samples, api.SampleV1{
			Name:      s.Name,
			Reference: s.Reference,
			Positions: s.Matrices.Len(),
			Alpha:     alpha[i],
		})
	}
	beta := agg.Beta()
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			out.Beta = append(out.Beta, api.BetaPairV1{
				A:        names[i],
				B:        names[j],
				Distance: beta.At(i, j),
			})
		}
	}
	return out
}

// WriteSummary emits the indented JSON summary for one run.
func WriteSummary(w io.Writer, agg *diversity.Aggregator) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summary(agg))
}
