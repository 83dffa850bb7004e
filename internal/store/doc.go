// Package store provides SQLite-backed durable history for numkit
// computations.
//
// Every executed request is appended to the computations table as one
// record: run ID, seq, kind, algorithm, canonical-JSON input and output,
// and the measured duration.
//
// # Ordering
//
// All queries order by run_id, seq ASC, id ASC COLLATE BINARY. Results are
// identical across reads regardless of insertion timing.
//
// # Idempotency
//
// Record IDs are content-addressed (ir.RecordID). Writing the same record
// twice is a no-op.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - user_version tracks schema migrations
package store
