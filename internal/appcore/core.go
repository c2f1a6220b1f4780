// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JavierMenRev/softmask2BED/internal/fasta"
	"github.com/JavierMenRev/softmask2BED/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitCanceled = 130
)

// Options selects the input and output paths; "" means the standard stream.
type Options struct {
	Input  string
	Output string
}

// Run converts the FASTA at o.Input into BED at o.Output and returns the
// process exit code. Diagnostics go to stderr, prefixed with name.
//
// The input is opened before the output is created, so a bad input path never
// leaves an empty BED file behind. Lines written before a parse error stay.
func Run(ctx context.Context, name string, stdin io.Reader, stdout, stderr io.Writer, o Options) int {
	fail := func(err error) int {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return ExitFailure
	}

	in, err := fasta.Open(o.Input, stdin)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	out := stdout
	var outFile *os.File
	if o.Output != "" {
		if outFile, err = os.Create(o.Output); err != nil {
			return fail(fmt.Errorf("create output: %w", err))
		}
		defer func() { _ = outFile.Close() }()
		out = outFile
	}

	bw := writers.NewBEDWriter(out)
	serr := fasta.Stream(ctx, in, func(r fasta.Record) error {
		if err := bw.WriteRecord(r.ID, r.Seq); err != nil {
			return fmt.Errorf("write bed: %w", err)
		}
		return nil
	})
	ferr := bw.Flush()
	if ferr == nil && outFile != nil {
		ferr = outFile.Close()
	}

	switch {
	case writers.IsBrokenPipe(serr) || writers.IsBrokenPipe(ferr):
		return ExitOK
	case errors.Is(serr, context.Canceled):
		return ExitCanceled
	case serr != nil:
		return fail(serr)
	case ferr != nil:
		return fail(fmt.Errorf("write bed: %w", ferr))
	}
	return ExitOK
}
