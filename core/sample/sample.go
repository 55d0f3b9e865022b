// core/sample/sample.go
// Package sample binds one alignment file's derived matrices to the sample
// name and the reference identity from the file header.
package sample

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"

	"qsa-core/bamio"
	"qsa-core/matrices"
)

// Sample owns the matrices derived from one alignment file. It is built
// once and never mutated.
type Sample struct {
	Name      string
	Reference string // first reference name in the header, "" if headerless
	Matrices  *matrices.Matrices
}

// New wraps already-built matrices; for callers that source records from
// somewhere other than a file.
func New(name, reference string, m *matrices.Matrices) *Sample {
	return &Sample{Name: name, Reference: reference, Matrices: m}
}

// FromPath builds a fully derived sample from one BAM/SAM file. On any
// failure no partial sample is returned.
func FromPath(path string, win matrices.Window, threshold float64) (*Sample, error) {
	r, err := bamio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m, err := matrices.New(r, win, threshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return New(baseName(path), r.Reference(), m), nil
}

// AlphaDiversity is the sample's scalar diversity summary: the arithmetic
// mean of its efficiency vector.
func (s *Sample) AlphaDiversity() float64 {
	eff := s.Matrices.Efficiency()
	return floats.Sum(eff) / float64(len(eff))
}

func baseName(path string) string {
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}
