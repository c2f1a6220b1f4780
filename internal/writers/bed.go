// internal/writers/bed.go
package writers

import (
	"bufio"
	"io"
	"strconv"

	"github.com/JavierMenRev/softmask2BED/internal/softmask"
)

// BEDWriter writes one BED3 line per interval. The first write error is kept
// and every later call becomes a no-op returning that error.
type BEDWriter struct {
	w     *bufio.Writer
	buf   []byte
	lines int
	err   error
}

func NewBEDWriter(w io.Writer) *BEDWriter {
	return &BEDWriter{w: bufio.NewWriter(w), buf: make([]byte, 0, 64)}
}

// Write emits "<id>\t<start>\t<end>\n".
func (b *BEDWriter) Write(id string, iv softmask.Interval) error {
	if b.err != nil {
		return b.err
	}
	line := append(b.buf[:0], id...)
	line = append(line, '\t')
	line = strconv.AppendInt(line, int64(iv.Start), 10)
	line = append(line, '\t')
	line = strconv.AppendInt(line, int64(iv.End), 10)
	line = append(line, '\n')
	b.buf = line
	if _, err := b.w.Write(line); err != nil {
		b.err = err
		return err
	}
	b.lines++
	return nil
}

// WriteRecord writes every soft-masked run of seq under id, in order.
func (b *BEDWriter) WriteRecord(id string, seq []byte) error {
	return softmask.Each(seq, func(iv softmask.Interval) error {
		return b.Write(id, iv)
	})
}

// Lines returns the number of lines accepted so far.
func (b *BEDWriter) Lines() int { return b.lines }

// Flush pushes buffered lines to the underlying writer.
func (b *BEDWriter) Flush() error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Flush(); err != nil {
		b.err = err
		return err
	}
	return nil
}
