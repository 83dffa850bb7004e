package store

import (
	"context"
	"fmt"

	"github.com/roach88/numkit/internal/ir"
)

// WriteRecord appends a record to the history.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - rewriting a record is
// silently ignored. A different record at an occupied (run_id, seq) is an
// error.
func (s *Store) WriteRecord(ctx context.Context, rec ir.Record) error {
	inputJSON, err := marshalStrings("input", rec.Input)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	outputJSON, err := marshalStrings("output", rec.Output)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO computations
		(id, run_id, seq, kind, algorithm, input, output, elapsed_ns, engine_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.RunID,
		rec.Seq,
		string(rec.Kind),
		rec.Algorithm,
		inputJSON,
		outputJSON,
		rec.ElapsedNS,
		ir.EngineVersion,
	)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}
