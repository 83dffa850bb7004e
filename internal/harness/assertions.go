package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/numkit/internal/store"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for i, event := range e.Trace {
			if event.Error != "" {
				fmt.Fprintf(&buf, "  [%d] %s %v -> %s\n", i+1, event.Kind, event.Input, event.Error)
				continue
			}
			fmt.Fprintf(&buf, "  [%d] %s %v -> %v\n", i+1, event.Kind, event.Input, event.Output)
		}
	}

	return buf.String()
}

// AssertionContext carries what store-backed assertions need.
type AssertionContext struct {
	Store *store.Store
	RunID string
	Ctx   context.Context
}

// EvaluateAssertions checks every assertion and returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, a)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, a)
		case AssertRecordCount:
			err = assertRecordCount(actx, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d (%s): %v", i, a.Type, err))
		}
	}
	return errs
}

// assertTraceOrder checks that successful cases of the given kinds appear
// in order. Other events may sit between them.
func assertTraceOrder(trace []TraceEvent, assertion Assertion) error {
	next := 0
	for _, event := range trace {
		if next == len(assertion.Kinds) {
			break
		}
		if event.Error == "" && event.Kind == assertion.Kinds[next] {
			next++
		}
	}

	if next < len(assertion.Kinds) {
		return &AssertionError{
			Type:     AssertTraceOrder,
			Expected: fmt.Sprintf("kinds in order: %v", assertion.Kinds),
			Actual:   fmt.Sprintf("matched %d of %d, stuck at %s", next, len(assertion.Kinds), assertion.Kinds[next]),
			Trace:    trace,
		}
	}
	return nil
}

// assertTraceCount checks the number of trace events of a kind, failed
// cases included.
func assertTraceCount(trace []TraceEvent, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if assertion.Kind == "" || event.Kind == assertion.Kind {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d events of %s", assertion.Count, kindLabel(assertion.Kind)),
			Actual:   fmt.Sprintf("%d events", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertRecordCount counts stored records of the run with parameterized SQL.
func assertRecordCount(actx *AssertionContext, assertion Assertion) error {
	if actx == nil || actx.Store == nil {
		return fmt.Errorf("record_count assertion requires a store")
	}

	query := "SELECT COUNT(*) FROM computations WHERE run_id = ?"
	args := []any{actx.RunID}
	if assertion.Kind != "" {
		query += " AND kind = ?"
		args = append(args, assertion.Kind)
	}

	rows, err := actx.Store.Query(actx.Ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query record count: %w", err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return fmt.Errorf("scan record count: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate record count: %w", err)
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertRecordCount,
			Expected: fmt.Sprintf("%d stored records of %s", assertion.Count, kindLabel(assertion.Kind)),
			Actual:   fmt.Sprintf("%d stored records", count),
		}
	}
	return nil
}

func kindLabel(kind string) string {
	if kind == "" {
		return "any kind"
	}
	return kind
}
