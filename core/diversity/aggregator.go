// core/diversity/aggregator.go
// Package diversity aggregates per-sample alpha diversity into cross-sample
// summaries: an ordered alpha vector and a symmetric pairwise beta matrix.
package diversity

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"qsa-core/sample"
)

// ErrReferenceMismatch reports samples whose headers name different
// reference sequences; comparing their diversity would be meaningless.
var ErrReferenceMismatch = errors.New("diversity: samples aligned against different references")

// errDimensions guards the alpha/beta/samples lockstep invariant. It can
// only trip on aggregator misuse from a future refactor, never on input.
var errDimensions = errors.New("diversity: alpha/beta dimensions out of step")

// Aggregator owns an ordered sample collection with its alpha vector and
// beta matrix. The three structures move in lockstep: a failed operation
// leaves the aggregator exactly as it was.
type Aggregator struct {
	samples []*sample.Sample
	checks  bool
	alpha   []float64
	beta    *mat.Dense
}

// New returns an empty aggregator ready for Push.
func New(checks bool) *Aggregator {
	return &Aggregator{checks: checks, beta: &mat.Dense{}}
}

// FromSamples bulk-builds an aggregator, preserving input order. With
// checks on, every pair of non-empty reference tokens must agree; a
// headerless sample never blocks aggregation.
func FromSamples(samples []*sample.Sample, checks bool) (*Aggregator, error) {
	if checks {
		ref := ""
		for _, s := range samples {
			switch {
			case s.Reference == "":
			case ref == "":
				ref = s.Reference
			case s.Reference != ref:
				return nil, fmt.Errorf("%w: %q vs %q", ErrReferenceMismatch, ref, s.Reference)
			}
		}
	}

	a := New(checks)
	a.samples = append(a.samples, samples...)
	a.alpha = make([]float64, len(samples))
	for i, s := range samples {
		a.alpha[i] = s.AlphaDiversity()
	}
	if n := len(samples); n > 0 {
		a.beta = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a.beta.Set(i, j, math.Abs(a.alpha[i]-a.alpha[j]))
			}
		}
	}
	return a, nil
}

// Push appends one sample, extending the beta matrix by one row and one
// column: O(n) new cells against already-computed alpha scalars, so a
// sequence of pushes reproduces FromSamples exactly. All validation and
// arithmetic happens before any of the three structures is touched.
func (a *Aggregator) Push(s *sample.Sample) error {
	if err := a.validate(); err != nil {
		return err
	}
	if a.checks && s.Reference != "" {
		anyRef, matched := false, false
		for _, cur := range a.samples {
			if cur.Reference == "" {
				continue
			}
			anyRef = true
			if cur.Reference == s.Reference {
				matched = true
				break
			}
		}
		if anyRef && !matched {
			return fmt.Errorf("%w: %q", ErrReferenceMismatch, s.Reference)
		}
	}

	next := s.AlphaDiversity()
	n := len(a.alpha)
	grown := a.beta.Grow(1, 1).(*mat.Dense)
	for k, cur := range a.alpha {
		d := math.Abs(next - cur)
		grown.Set(k, n, d)
		grown.Set(n, k, d)
	}
	grown.Set(n, n, 0)

	a.beta = grown
	a.alpha = append(a.alpha, next)
	a.samples = append(a.samples, s)
	return nil
}

// validate re-checks the dimension invariant before every mutation.
func (a *Aggregator) validate() error {
	r, c := a.beta.Dims()
	if len(a.alpha) != r || len(a.alpha) != c || len(a.alpha) != len(a.samples) {
		return fmt.Errorf("%w: %d alpha, %dx%d beta, %d samples",
			errDimensions, len(a.alpha), r, c, len(a.samples))
	}
	return nil
}

// Alpha returns the per-sample alpha-diversity vector, index-aligned with
// Samples. Callers must treat it as read-only.
func (a *Aggregator) Alpha() []float64 { return a.alpha }

// Beta returns the symmetric |alpha_i - alpha_j| distance matrix with a
// zero diagonal.
func (a *Aggregator) Beta() *mat.Dense { return a.beta }

// Names lists the sample names in aggregation order.
func (a *Aggregator) Names() []string {
	names := make([]string, len(a.samples))
	for i, s := range a.samples {
		names[i] = s.Name
	}
	return names
}

// Samples returns the ordered sample collection.
func (a *Aggregator) Samples() []*sample.Sample { return a.samples }

// Len is the number of aggregated samples.
func (a *Aggregator) Len() int { return len(a.samples) }
