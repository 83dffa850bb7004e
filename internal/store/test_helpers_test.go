package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/numkit/internal/ir"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord creates a gcd record with its content-addressed ID.
func createTestRecord(runID string, seq int64, input []string, output string) ir.Record {
	rec := ir.Record{
		RunID:     runID,
		Seq:       seq,
		Kind:      ir.KindGCD,
		Algorithm: "euclid",
		Input:     input,
		Output:    []string{output},
		ElapsedNS: 1000,
	}
	rec.ID = ir.MustRecordID(rec)
	return rec
}
