// internal/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// IsStdin reports whether path selects standard input ("" or "-").
func IsStdin(path string) bool { return path == "" || path == "-" }

// Open returns a reader over the FASTA text at path. "" and "-" select stdin,
// which is never closed. gzip and xz input is decompressed transparently,
// detected by magic number or by a .gz/.xz suffix.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if IsStdin(path) {
		return decompress(stdin, "", io.NopCloser(stdin))
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	rc, err := decompress(fh, path, fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func decompress(r io.Reader, name string, c io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	sig, _ := br.Peek(len(xzMagic))
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip input: %w", err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	case bytes.HasPrefix(sig, xzMagic) || strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open xz input: %w", err)
		}
		return &multiReadCloser{Reader: xr, closers: []io.Closer{c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}
