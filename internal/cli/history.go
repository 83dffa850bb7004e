package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/numkit/internal/ir"
	"github.com/roach88/numkit/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	RunID    string // only records of this run
	Kind     string // only records of this kind
	Limit    int    // at most this many records
	Runs     bool   // list runs instead of records
	RecordID string // show and verify a single record
}

// HistoryRecord is one record as shown by the history command.
type HistoryRecord struct {
	ir.Record
	Verified bool `json:"verified"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded computations",
		Long: `List the computations recorded in a history database, ordered by
run and sequence number.

Every listed record is verified: its ID is recomputed from its content.

Examples:
  numkit history --db ./numkit.db
  numkit history --db ./numkit.db --runs
  numkit history --db ./numkit.db --run <run-id> --kind gcd
  numkit history --db ./numkit.db --id <record-id> --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run", "", "filter by run ID")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "filter by kind (encode|gcd|words)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of records (0 = all)")
	cmd.Flags().BoolVar(&opts.Runs, "runs", false, "list runs with record counts")
	cmd.Flags().StringVar(&opts.RecordID, "id", "", "show a single record")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOption, "history requires --db", nil)
	}

	var filter store.Filter
	if opts.Kind != "" {
		kind, err := ir.ParseKind(opts.Kind)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidOption, "invalid kind", err)
		}
		filter.Kind = kind
	}
	filter.RunID = opts.RunID
	filter.Limit = opts.Limit

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer st.Close()

	ctx := commandContext(cmd)

	switch {
	case opts.Runs:
		runs, err := st.ReadRuns(ctx)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to read runs", err)
		}
		return outputRuns(formatter, runs)

	case opts.RecordID != "":
		rec, err := st.ReadRecord(ctx, opts.RecordID)
		if errors.Is(err, store.ErrNotFound) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, "record not found", err)
		}
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to read record", err)
		}
		return outputRecords(formatter, []HistoryRecord{verify(rec)})
	}

	records, err := st.ReadRecords(ctx, filter)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to read records", err)
	}

	out := make([]HistoryRecord, len(records))
	for i, rec := range records {
		out[i] = verify(rec)
	}
	return outputRecords(formatter, out)
}

// verify recomputes the record's content-addressed ID.
func verify(rec ir.Record) HistoryRecord {
	id, err := ir.RecordID(rec)
	return HistoryRecord{Record: rec, Verified: err == nil && id == rec.ID}
}

func outputRuns(formatter *OutputFormatter, runs []store.RunSummary) error {
	if formatter.Format == "json" {
		return formatter.Success(runs)
	}

	w := formatter.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %d record(s), last seq %d\n", r.RunID, r.Records, r.LastSeq)
	}
	return nil
}

func outputRecords(formatter *OutputFormatter, records []HistoryRecord) error {
	if formatter.Format == "json" {
		return formatter.Success(records)
	}

	w := formatter.Writer
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	var lastRun string
	for _, rec := range records {
		if rec.RunID != lastRun {
			fmt.Fprintf(w, "Run %s\n", rec.RunID)
			lastRun = rec.RunID
		}

		name := string(rec.Kind)
		if rec.Algorithm != "" {
			name += "/" + rec.Algorithm
		}
		mark := "✓"
		if !rec.Verified {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s [%d] %s(%s) = %s\n",
			mark, rec.Seq, name, strings.Join(rec.Input, ", "), strings.Join(rec.Output, ", "))
		formatter.VerboseLog("    id=%s elapsed=%s", rec.ID, time.Duration(rec.ElapsedNS))
	}
	return nil
}
