// internal/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token of the
// header; Seq keeps the letters exactly as written, case included.
type Record struct {
	ID  string
	Seq []byte
}

// Stream parses FASTA from r and calls emit for each record in file order.
// Records are not retained after emit returns. Cancellation via ctx is checked
// between records. An error from emit stops the stream and is returned as is;
// parse failures are wrapped.
func Stream(ctx context.Context, r io.Reader, emit func(Record) error) error {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(biofasta.NewReader(r, template))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		if err := emit(Record{ID: s.Name(), Seq: letterBytes(s.Seq)}); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta parse: %w", err)
	}
	return nil
}

// StreamPath opens path (see Open) and streams its records.
func StreamPath(ctx context.Context, path string, stdin io.Reader, emit func(Record) error) error {
	rc, err := Open(path, stdin)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Stream(ctx, rc, emit)
}

func letterBytes(l alphabet.Letters) []byte {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return b
}
