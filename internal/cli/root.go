package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Config   string // optional CUE config file
	Database string // optional history database
	Resume   string // run ID to continue instead of starting a new run

	// Algorithm is the default gcd algorithm from the config file.
	// The gcd command's --algorithm flag wins over it.
	Algorithm string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the numkit CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numkit",
		Short: "numkit - numeric toolkit",
		Long: `Numeric utilities: IEEE 754 bit patterns, greatest common divisors
and number-to-words transcription, with an optional SQLite history of
every computation.

Negative operands must follow "--", e.g. numkit gcd -- -10 35.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Config != "" {
				cfg, err := LoadConfig(opts.Config)
				if err != nil {
					return WrapExitError(ExitCommandError, ErrCodeConfig+": failed to load config", err)
				}
				cfg.Apply(opts, cmd.Flags())
			}

			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: invalid format %q: must be one of %v", ErrCodeInvalidOption, opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "CUE config file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "SQLite history database (records every computation when set)")
	cmd.PersistentFlags().StringVar(&opts.Resume, "resume", "", "append to an existing run in the history (requires --db)")

	// Add subcommands
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewGCDCommand(opts))
	cmd.AddCommand(NewWordsCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
