// core/matrices/trim.go
package matrices

// trimRange finds the confident sub-window of coverage: the first and the
// last position strictly above threshold, as an inclusive index range.
func trimRange(coverage []float64, threshold float64) (left, right int, err error) {
	left = -1
	for i, c := range coverage {
		if c > threshold {
			left = i
			break
		}
	}
	if left < 0 {
		return 0, 0, ErrNoConfidentRegion
	}
	for i := len(coverage) - 1; i >= left; i-- {
		if coverage[i] > threshold {
			right = i
			break
		}
	}
	return left, right, nil
}
