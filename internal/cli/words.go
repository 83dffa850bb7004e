package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/ir"
)

// WordsResult holds the words command output.
type WordsResult struct {
	RunID string       `json:"run_id"`
	Seq   int64        `json:"seq"`
	Words []SpelledOut `json:"words"`
}

// SpelledOut pairs an operand with its transcription.
type SpelledOut struct {
	Input string `json:"input"`
	Words string `json:"words"`
}

// NewWordsCommand creates the words command.
func NewWordsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words <float>...",
		Short: "Spell out numbers symbol by symbol",
		Long: `Spell out the shortest decimal form of each value in English,
one word per symbol: digits, "minus", "plus", "point" and "exp".
Infinities and NaN print as PositiveInfinity, NegativeInfinity and NaN.

Examples:
  numkit words 845.33
  numkit words -- -29.0043 1.5e-7`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runWords(opts *RootOptions, args []string, cmd *cobra.Command) error {
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

	s, err := openSession(opts, cmd, gcd.AlgorithmEuclid)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer s.Close()

	rec, err := s.engine.Execute(commandContext(cmd), ir.Request{Kind: ir.KindWords, Floats: xs})
	if err != nil {
		return formatter.FailRuntime(err)
	}

	result := WordsResult{
		RunID: rec.RunID,
		Seq:   rec.Seq,
		Words: make([]SpelledOut, len(rec.Output)),
	}
	for i, w := range rec.Output {
		result.Words[i] = SpelledOut{Input: rec.Input[i], Words: w}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	for _, w := range result.Words {
		fmt.Fprintln(formatter.Writer, w.Words)
	}
	return nil
}
