package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/numkit/internal/engine"
	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/store"
	"github.com/roach88/numkit/internal/testutil"
)

// Harness is the scenario execution context.
// Its engine runs with a deterministic clock and a fixed run ID.
type Harness struct {
	engine *engine.Engine
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// Execution flow:
// 1. Create fresh in-memory database
// 2. Build an engine with deterministic clock and run ID
// 3. Execute cases in order, checking outputs and error codes
// 4. Evaluate assertions against the trace and the store
//
// A returned error means the scenario could not be executed at all.
// Case mismatches and failed assertions are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario, nil)
}

// RunContext is Run with a context and a logger. A nil logger discards.
func RunContext(ctx context.Context, scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	alg := gcd.AlgorithmEuclid
	if scenario.Algorithm != "" {
		parsed, err := gcd.ParseAlgorithm(scenario.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		alg = parsed
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	clock := testutil.NewDeterministicClock()
	gen := testutil.NewFixedRunIDGenerator(scenario.RunID)

	eng := engine.New(gen,
		engine.WithRecorder(st),
		engine.WithClock(clock),
		engine.WithAlgorithm(alg),
		engine.WithLogger(logger),
	)
	h := &Harness{engine: eng, logger: logger}

	result := NewResult(h.engine.RunID())
	if err := h.executeCases(ctx, scenario.Cases, result); err != nil {
		return nil, fmt.Errorf("failed to execute cases: %w", err)
	}

	actx := &AssertionContext{
		Store: st,
		RunID: result.RunID,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeCases runs every case through the engine.
//
// Only infrastructure failures (store writes, cancellation) abort the run.
// Everything else becomes a trace event and, on mismatch, a result error.
func (h *Harness) executeCases(ctx context.Context, cases []Case, result *Result) error {
	for i, c := range cases {
		req := c.Request()
		rec, err := h.engine.Execute(ctx, req)

		if err != nil {
			code := engine.CodeOf(err)
			if code == "" || code == engine.ErrCodeRecordFailed {
				return fmt.Errorf("%s: %w", c.label(i), err)
			}
			result.AddErrorTrace(req, string(code))

			switch {
			case c.ExpectError == "":
				result.AddError(fmt.Sprintf("%s: unexpected error: %v", c.label(i), err))
			case c.ExpectError != string(code):
				result.AddError(fmt.Sprintf("%s: expected error %s, got %s", c.label(i), c.ExpectError, code))
			}

			h.logger.Debug("case failed", "case", i, "op", c.Op, "code", code, "expected", c.ExpectError)
			continue
		}

		result.AddRecordTrace(rec)

		if c.ExpectError != "" {
			result.AddError(fmt.Sprintf("%s: expected error %s, got output %v", c.label(i), c.ExpectError, rec.Output))
		} else if c.Expect != nil && !slices.Equal(c.Expect, rec.Output) {
			result.AddError(fmt.Sprintf("%s: expected output [%s], got [%s]",
				c.label(i), strings.Join(c.Expect, ", "), strings.Join(rec.Output, ", ")))
		}

		h.logger.Debug("case completed",
			"case", i,
			"op", c.Op,
			"seq", rec.Seq,
			"record_id", rec.ID,
		)
	}
	return nil
}
