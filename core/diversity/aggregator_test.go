// core/diversity/aggregator_test.go
package diversity

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"qsa-core/matrices"
	"qsa-core/sample"
)

type sliceSource struct {
	recs []matrices.Record
	i    int
}

func (s *sliceSource) Read() (matrices.Record, error) {
	if s.i >= len(s.recs) {
		return matrices.Record{}, io.EOF
	}
	r := s.recs[s.i]
	s.i++
	return r, nil
}

// testSample builds a sample whose alpha diversity is diverse/width: the
// first `diverse` columns carry a uniform A/C/G/T split (efficiency 1),
// the rest are conserved (efficiency 0).
func testSample(t *testing.T, name, ref string, diverse, width int) *sample.Sample {
	t.Helper()
	recs := make([]matrices.Record, len(matrices.Bases))
	for i, b := range matrices.Bases {
		seq := make([]byte, width)
		for j := range seq {
			if j < diverse {
				seq[j] = b
			} else {
				seq[j] = 'A'
			}
		}
		recs[i] = matrices.Record{Start: 0, Seq: seq}
	}
	m, err := matrices.New(&sliceSource{recs: recs}, matrices.Window{End: width}, 0.5)
	require.NoError(t, err)
	return sample.New(name, ref, m)
}

func TestFromSamplesAlphaOrderAndValues(t *testing.T) {
	samples := []*sample.Sample{
		testSample(t, "s0", "refA", 0, 4),
		testSample(t, "s1", "refA", 2, 4),
		testSample(t, "s2", "refA", 4, 4),
	}
	agg, err := FromSamples(samples, true)
	require.NoError(t, err)

	require.Equal(t, []string{"s0", "s1", "s2"}, agg.Names())
	require.Equal(t, []float64{0, 0.5, 1}, agg.Alpha())
	require.Equal(t, 0.5, agg.Beta().At(0, 1))
	require.Equal(t, 1.0, agg.Beta().At(0, 2))
	require.Equal(t, 0.5, agg.Beta().At(1, 2))
}

func TestBetaSymmetricZeroDiagonal(t *testing.T) {
	agg, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "", 1, 4),
		testSample(t, "b", "", 3, 4),
		testSample(t, "c", "", 4, 4),
	}, true)
	require.NoError(t, err)

	n := agg.Len()
	for i := 0; i < n; i++ {
		require.Equal(t, 0.0, agg.Beta().At(i, i))
		for j := 0; j < n; j++ {
			require.Equal(t, agg.Beta().At(j, i), agg.Beta().At(i, j))
		}
	}
}

func TestBulkIncrementalEquivalence(t *testing.T) {
	samples := []*sample.Sample{
		testSample(t, "s0", "refA", 0, 4),
		testSample(t, "s1", "refA", 1, 4),
		testSample(t, "s2", "refA", 2, 4),
		testSample(t, "s3", "refA", 3, 4),
		testSample(t, "s4", "refA", 4, 4),
	}

	bulk, err := FromSamples(samples, true)
	require.NoError(t, err)

	inc := New(true)
	for _, s := range samples {
		require.NoError(t, inc.Push(s))
	}

	require.Equal(t, bulk.Alpha(), inc.Alpha())
	require.Equal(t, bulk.Names(), inc.Names())
	require.True(t, mat.Equal(bulk.Beta(), inc.Beta()),
		"incremental beta diverged from bulk beta")
}

func TestFromSamplesReferenceMismatch(t *testing.T) {
	_, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "refA", 1, 4),
		testSample(t, "b", "", 2, 4), // headerless samples are exempt
		testSample(t, "c", "refB", 3, 4),
	}, true)
	require.ErrorIs(t, err, ErrReferenceMismatch)
}

func TestFromSamplesChecksDisabled(t *testing.T) {
	_, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "refA", 1, 4),
		testSample(t, "b", "refB", 2, 4),
	}, false)
	require.NoError(t, err)
}

func TestPushMismatchLeavesStateUnchanged(t *testing.T) {
	agg, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "refA", 1, 4),
		testSample(t, "b", "refA", 2, 4),
	}, true)
	require.NoError(t, err)

	alphaBefore := append([]float64(nil), agg.Alpha()...)
	namesBefore := agg.Names()
	betaBefore := mat.DenseCopyOf(agg.Beta())

	err = agg.Push(testSample(t, "c", "refB", 3, 4))
	require.ErrorIs(t, err, ErrReferenceMismatch)

	require.Equal(t, alphaBefore, agg.Alpha())
	require.Equal(t, namesBefore, agg.Names())
	require.True(t, mat.Equal(betaBefore, agg.Beta()))
	require.Equal(t, 2, agg.Len())
}

func TestPushHeaderlessAlwaysAccepted(t *testing.T) {
	agg, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "refA", 1, 4),
	}, true)
	require.NoError(t, err)
	require.NoError(t, agg.Push(testSample(t, "b", "", 2, 4)))
	require.Equal(t, 2, agg.Len())
}

func TestPushIntoAggregatorWithoutReferences(t *testing.T) {
	// No existing sample carries a reference token, so the first tokened
	// sample cannot conflict with anything.
	agg, err := FromSamples([]*sample.Sample{
		testSample(t, "a", "", 1, 4),
	}, true)
	require.NoError(t, err)
	require.NoError(t, agg.Push(testSample(t, "b", "refA", 2, 4)))

	// From here on the token is binding again.
	err = agg.Push(testSample(t, "c", "refB", 3, 4))
	require.ErrorIs(t, err, ErrReferenceMismatch)
}

func TestPushIntoEmptyAggregator(t *testing.T) {
	agg := New(true)
	require.NoError(t, agg.Push(testSample(t, "a", "refA", 2, 4)))
	require.Equal(t, []float64{0.5}, agg.Alpha())
	r, c := agg.Beta().Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
	require.Equal(t, 0.0, agg.Beta().At(0, 0))
}
