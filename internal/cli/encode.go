package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/ieee754"
	"github.com/roach88/numkit/internal/ir"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Split bool // show sign, exponent and mantissa separately
}

// EncodedValue is one encoded operand.
type EncodedValue struct {
	Input    string          `json:"input"`
	Bits     string          `json:"bits"`
	Category string          `json:"category"`
	Fields   *ieee754.Fields `json:"fields,omitempty"`
}

// EncodeResult holds the encode command output.
type EncodeResult struct {
	RunID  string         `json:"run_id"`
	Seq    int64          `json:"seq"`
	Values []EncodedValue `json:"values"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <float>...",
		Short: "Print IEEE 754 double bit patterns",
		Long: `Print the 64-bit IEEE 754 double precision pattern of each value,
most significant bit first: 1 sign bit, 11 exponent bits, 52 mantissa bits.

NaN, Inf and -Inf are accepted. Every NaN prints the same pattern.

With --split the fields are printed separately. JSON output then also
carries each value's category: Normal, Subnormal, PositiveZero,
NegativeZero, PositiveInfinity, NegativeInfinity or NaN.

Examples:
  numkit encode 255.255
  numkit encode --split 1 0.1 NaN
  numkit encode -- -0 -Inf`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Split, "split", false, "show sign, exponent and mantissa fields")

	return cmd
}

func runEncode(opts *EncodeOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	xs, err := parseFloats(args)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidNumber, "invalid operand", err)
	}

	s, err := openSession(opts.RootOptions, cmd, gcd.AlgorithmEuclid)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer s.Close()

	rec, err := s.engine.Execute(commandContext(cmd), ir.Request{Kind: ir.KindEncode, Floats: xs})
	if err != nil {
		return formatter.FailRuntime(err)
	}

	result := EncodeResult{
		RunID:  rec.RunID,
		Seq:    rec.Seq,
		Values: make([]EncodedValue, len(xs)),
	}
	for i, bits := range rec.Output {
		v := EncodedValue{
			Input:    rec.Input[i],
			Bits:     bits,
			Category: ieee754.Classify(xs[i]).String(),
		}
		if opts.Split {
			fields, err := ieee754.Split(bits)
			if err != nil {
				return formatter.Fail(ExitFailure, ErrCodeGeneric, "encoder produced a malformed pattern", err)
			}
			v.Fields = &fields
		}
		result.Values[i] = v
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	for _, v := range result.Values {
		formatter.VerboseLog("%s (%s)", v.Input, v.Category)
		if v.Fields != nil {
			fmt.Fprintln(w, v.Fields.String())
			continue
		}
		fmt.Fprintln(w, v.Bits)
	}
	return nil
}

// parseFloats parses every argument as a float64. "NaN", "Inf" and "-Inf"
// are accepted; values out of float64 range are not.
func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		xs[i] = x
	}
	return xs, nil
}
