// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON schema for one analysis run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Samples []SampleV1   `json:"samples"`
	Beta    []BetaPairV1 `json:"beta,omitempty"`
}

// SampleV1 describes one aggregated sample.
type SampleV1 struct {
	Name      string  `json:"name"`
	Reference string  `json:"reference,omitempty"`
	Positions int     `json:"positions"`
	Alpha     float64 `json:"alpha_diversity"`
}

// BetaPairV1 is one upper-triangle entry of the beta-diversity matrix.
type BetaPairV1 struct {
	A        string  `json:"sample_a"`
	B        string  `json:"sample_b"`
	Distance float64 `json:"distance"`
}
