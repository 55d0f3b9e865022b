// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"qsa-core/matrices"
)

// WritePFM writes the frequency matrix as CSV: an A,C,G,T header and one
// row per trimmed position.
func WritePFM(w io.Writer, m *matrices.Matrices) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(matrices.Bases))
	for i, b := range matrices.Bases {
		header[i] = string(b)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	pfm := m.PFM()
	row := make([]string, len(pfm))
	for col := 0; col < m.Len(); col++ {
		for r := range pfm {
			row[r] = strconv.FormatUint(pfm[r][col], 10)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
