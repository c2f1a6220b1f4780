// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JavierMenRev/softmask2BED/internal/appcore"
	"github.com/JavierMenRev/softmask2BED/internal/cli"
)

const name = "softmask2bed"

// RunContext parses argv and runs the conversion, returning the exit code.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	cmd := cli.NewCommand(name, stdout, stderr, func(ctx context.Context, o cli.Options) error {
		code = appcore.Run(ctx, name, stdin, stdout, stderr, appcore.Options{Input: o.Input, Output: o.Output})
		return nil
	})
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	var ue *cli.UsageError
	switch {
	case err == nil:
		return code
	case errors.As(err, &ue):
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, ue)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return appcore.ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return appcore.ExitFailure
	}
}

// Run is RunContext with a background context and the process stdin.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, os.Stdin, stdout, stderr)
}
