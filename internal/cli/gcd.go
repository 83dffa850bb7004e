package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/ir"
)

// GCDOptions holds flags for the gcd command.
type GCDOptions struct {
	*RootOptions
	Algorithm string // euclid | stein
	Timed     bool   // report elapsed time
}

// GCDResult holds the gcd command output.
type GCDResult struct {
	RunID     string   `json:"run_id"`
	Seq       int64    `json:"seq"`
	Algorithm string   `json:"algorithm"`
	Operands  []string `json:"operands"`
	GCD       string   `json:"gcd"`
	ElapsedNS int64    `json:"elapsed_ns,omitempty"`
}

// NewGCDCommand creates the gcd command.
func NewGCDCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GCDOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gcd <int> <int>...",
		Short: "Greatest common divisor of two or more integers",
		Long: `Compute the greatest common divisor of two or more integers.

Operands are reduced pairwise in rounds until one value is left.
Signs are ignored; gcd(0, 0) is 0.

Algorithms:
  euclid - subtractive Euclid (default)
  stein  - binary GCD

euclid subtracts the smaller operand from the larger one step at a time,
so operands of very different size are slow: gcd 1 9223372036854775807
takes about 2^63 steps and does not stop on Ctrl-C. Use --algorithm stein
for such inputs; it needs at most about 128 steps per pair.

A result of 2^63 (e.g. gcd -- -9223372036854775808 0) does not fit in a
64-bit integer and prints as -9223372036854775808.

Examples:
  numkit gcd 12 18
  numkit gcd --algorithm stein --timed 18 3 9 6
  numkit gcd -- -10 35 90 55 -105`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGCD(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Algorithm, "algorithm", "", "gcd algorithm (euclid|stein), default euclid")
	cmd.Flags().BoolVar(&opts.Timed, "timed", false, "report elapsed computation time")

	return cmd
}

func runGCD(opts *GCDOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	name := opts.Algorithm
	if name == "" {
		name = opts.RootOptions.Algorithm
	}
	alg := gcd.AlgorithmEuclid
	if name != "" {
		parsed, err := gcd.ParseAlgorithm(name)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidOption, "invalid algorithm", err)
		}
		alg = parsed
	}

	xs, err := parseInts(args)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidNumber, "invalid operand", err)
	}

	s, err := openSession(opts.RootOptions, cmd, alg)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer s.Close()

	rec, err := s.engine.Execute(commandContext(cmd), ir.Request{Kind: ir.KindGCD, Ints: xs})
	if err != nil {
		return formatter.FailRuntime(err)
	}

	result := GCDResult{
		RunID:     rec.RunID,
		Seq:       rec.Seq,
		Algorithm: rec.Algorithm,
		Operands:  rec.Input,
		GCD:       rec.Output[0],
	}
	if opts.Timed {
		result.ElapsedNS = rec.ElapsedNS
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	formatter.VerboseLog("gcd(%v) with %s", result.Operands, result.Algorithm)
	if opts.Timed {
		fmt.Fprintf(formatter.Writer, "%s (%s)\n", result.GCD, time.Duration(result.ElapsedNS))
		return nil
	}
	fmt.Fprintln(formatter.Writer, result.GCD)
	return nil
}

// parseInts parses every argument as a base-10 int.
func parseInts(args []string) ([]int, error) {
	xs := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		xs[i] = n
	}
	return xs, nil
}
