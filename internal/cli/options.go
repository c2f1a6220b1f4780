// internal/cli/options.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment defaults, e.g. SOFTMASK2BED_INPUT.
const EnvPrefix = "SOFTMASK2BED"

// Version is set at build time via ldflags.
var Version = "dev"

// Options holds the resolved paths. An empty path means the standard stream.
type Options struct {
	Input  string
	Output string
}

// UsageError marks a command-line mistake (unknown flag, stray argument).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewCommand builds the root command. run is called once with the resolved
// Options; help requests return before run is reached.
func NewCommand(name string, stdout, stderr io.Writer, run func(context.Context, Options) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   name + " [-I input.fa] [-O output.bed]",
		Short: "Convert soft-masked (lowercase) FASTA regions to BED intervals",
		Long: fmt.Sprintf(`%s: soft-masked FASTA to BED

Version: %s

Every maximal run of lowercase bases becomes one BED line
"<record_id>\t<start>\t<end>" with 0-based half-open coordinates.
gzip and xz input is detected automatically. A missing path or "-"
selects the standard stream. %s_INPUT and %s_OUTPUT set defaults.`,
			name, Version, EnvPrefix, EnvPrefix),
		Example: strings.Join([]string{
			"  " + name + " -I genome.fa -O masked.bed",
			"  zcat genome.fa.gz | " + name + " > masked.bed",
			"  " + name + " -I genome.fa.xz | sort -k1,1 -k2,2n",
		}, "\n"),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected argument %q (use -I for the input path)", args[0])}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), Options{
				Input:  normalizePath(v.GetString("input")),
				Output: normalizePath(v.GetString("output")),
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringP("input", "I", "", "input FASTA path (default: standard input)")
	fs.StringP("output", "O", "", "output BED path (default: standard output)")
	bindFlags(v, fs, "input", "output")
	return cmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, n := range names {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(n, fs.Lookup(n))
	}
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "-" {
		return ""
	}
	return p
}
