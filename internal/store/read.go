package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/numkit/internal/ir"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Filter narrows ReadRecords. Zero fields match everything.
type Filter struct {
	RunID string
	Kind  ir.Kind
	Limit int
}

// ReadRecords returns matching records ordered by run_id, seq, id.
func (s *Store) ReadRecords(ctx context.Context, f Filter) ([]ir.Record, error) {
	var where []string
	var args []any
	if f.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(f.Kind))
	}

	query := `
		SELECT id, run_id, seq, kind, algorithm, input, output, elapsed_ns
		FROM computations`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY run_id COLLATE BINARY ASC, seq ASC, id COLLATE BINARY ASC"
	if f.Limit > 0 {
		query += "\n\t\tLIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []ir.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// ReadRecord returns the record with the given ID, or ErrNotFound.
func (s *Store) ReadRecord(ctx context.Context, id string) (ir.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, seq, kind, algorithm, input, output, elapsed_ns
		FROM computations
		WHERE id = ?
	`, id)
	if err != nil {
		return ir.Record{}, fmt.Errorf("query record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return ir.Record{}, fmt.Errorf("query record: %w", err)
		}
		return ir.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return scanRecord(rows)
}

// RunSummary describes one run in the history.
type RunSummary struct {
	RunID   string `json:"run_id"`
	Records int    `json:"records"`
	LastSeq int64  `json:"last_seq"`
}

// ReadRuns lists every run with its record count, ordered by run ID.
// UUIDv7 run IDs therefore list oldest first.
func (s *Store) ReadRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, COUNT(*), MAX(seq)
		FROM computations
		GROUP BY run_id
		ORDER BY run_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Records, &r.LastSeq); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LastSeq returns the highest seq recorded for a run, or 0 if the run has
// no records. Used to resume a run's clock.
func (s *Store) LastSeq(ctx context.Context, runID string) (int64, error) {
	var seq sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(seq) FROM computations WHERE run_id = ?
	`, runID).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("query last seq: %w", err)
	}
	return seq.Int64, nil
}

func scanRecord(rows *sql.Rows) (ir.Record, error) {
	var rec ir.Record
	var kind, inputJSON, outputJSON string

	if err := rows.Scan(
		&rec.ID, &rec.RunID, &rec.Seq, &kind, &rec.Algorithm,
		&inputJSON, &outputJSON, &rec.ElapsedNS,
	); err != nil {
		return ir.Record{}, fmt.Errorf("scan record: %w", err)
	}
	rec.Kind = ir.Kind(kind)

	var err error
	if rec.Input, err = unmarshalStrings("input", inputJSON); err != nil {
		return ir.Record{}, err
	}
	if rec.Output, err = unmarshalStrings("output", outputJSON); err != nil {
		return ir.Record{}, err
	}
	return rec, nil
}
