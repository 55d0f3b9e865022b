// core/bamio/reader.go
// Package bamio reads aligned records from BAM and SAM files and exposes
// them through the matrices.RecordSource interface, together with the
// reference-sequence name declared in the file header.
package bamio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"qsa-core/matrices"
)

// ErrSourceNotFound reports an alignment file that is missing or unreadable.
var ErrSourceNotFound = errors.New("bamio: alignment file not found")

// recordReader is the surface shared by bam.Reader and sam.Reader.
type recordReader interface {
	Read() (*sam.Record, error)
	Header() *sam.Header
}

// Reader yields aligned reads from one BAM or SAM file.
type Reader struct {
	rr recordReader
	fh *os.File
	br *bam.Reader // non-nil for BAM; owns the bgzf resources
}

// Open opens path as BAM or SAM, chosen by extension with a BGZF magic
// fallback for unrecognized extensions.
func Open(path string) (*Reader, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if isBAM(path, fh) {
		// Single decompression worker: the whole pipeline is sequential.
		br, err := bam.NewReader(fh, 1)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return &Reader{rr: br, fh: fh, br: br}, nil
	}
	sr, err := sam.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Reader{rr: sr, fh: fh}, nil
}

// isBAM decides the container format: by extension when recognized,
// otherwise by the BGZF magic number (BAM files are gzip-framed).
func isBAM(path string, fh *os.File) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bam":
		return true
	case ".sam":
		return false
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	return n == 2 && sig[0] == 0x1f && sig[1] == 0x8b
}

// Read returns the next aligned record, io.EOF after the last one. A
// record that fails to decode aborts the read; a corrupted alignment file
// is not recoverable.
func (r *Reader) Read() (matrices.Record, error) {
	rec, err := r.rr.Read()
	if err != nil {
		if err == io.EOF {
			return matrices.Record{}, io.EOF
		}
		return matrices.Record{}, fmt.Errorf("bamio: decode record: %w", err)
	}
	return matrices.Record{Start: rec.Pos, Seq: rec.Seq.Expand()}, nil
}

// Reference returns the name of the first reference sequence in the
// header, or "" when the header declares none.
func (r *Reader) Reference() string {
	refs := r.rr.Header().Refs()
	if len(refs) == 0 {
		return ""
	}
	return refs[0].Name()
}

// Close releases the underlying file and, for BAM, the bgzf reader.
func (r *Reader) Close() error {
	if r.br != nil {
		if err := r.br.Close(); err != nil {
			_ = r.fh.Close()
			return err
		}
	}
	return r.fh.Close()
}
