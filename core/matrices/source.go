// core/matrices/source.go
package matrices

// Record is one aligned read: a 0-based start coordinate on the reference
// and the read's nucleotide sequence.
type Record struct {
	Start int
	Seq   []byte
}

// RecordSource yields aligned reads one at a time. Read returns io.EOF
// after the last record.
type RecordSource interface {
	Read() (Record, error)
}

// Window is a half-open genomic coordinate range [Start, End). End <= Start
// means the range is unset and the builder sizes the window to the furthest
// read end it sees.
type Window struct {
	Start int
	End   int
}
