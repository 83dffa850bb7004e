package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/ieee754"
	"github.com/roach88/numkit/internal/ir"
	"github.com/roach88/numkit/internal/words"
)

// Recorder persists records. Implemented by *store.Store.
type Recorder interface {
	WriteRecord(ctx context.Context, rec ir.Record) error
}

// Engine executes requests for a single run.
//
// Thread-safety: Execute may be called from several goroutines when the
// configured Sequencer is safe for concurrent use (the default is).
// Numbering and recording are serialized, so records are stored in seq order.
type Engine struct {
	recorder  Recorder
	clock     Sequencer
	runID     string
	algorithm gcd.Algorithm
	logger    *slog.Logger

	mu sync.Mutex
	// unused holds a seq taken for a record that was never stored.
	// It is handed out again before the clock advances.
	unused int64
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithRecorder writes every record to r.
func WithRecorder(r Recorder) EngineOption {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithClock replaces the default clock, e.g. with a clock resumed from the
// history or a deterministic test clock.
func WithClock(s Sequencer) EngineOption {
	return func(e *Engine) {
		e.clock = s
	}
}

// WithAlgorithm sets the gcd algorithm used when a request names none.
//
// Default: gcd.AlgorithmEuclid
func WithAlgorithm(a gcd.Algorithm) EngineOption {
	return func(e *Engine) {
		e.algorithm = a
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine for a new run whose ID comes from gen.
func New(gen RunIDGenerator, opts ...EngineOption) *Engine {
	e := &Engine{
		clock:     NewClock(),
		runID:     gen.Generate(),
		algorithm: gcd.AlgorithmEuclid,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RunID returns the ID stamped on every record of this engine.
func (e *Engine) RunID() string {
	return e.runID
}

// Execute runs one request and returns its record.
//
// Failed requests consume no sequence number and are not recorded. This
// includes requests whose record could not be stored: the next successful
// request takes the seq instead.
func (e *Engine) Execute(ctx context.Context, req ir.Request) (ir.Record, error) {
	if err := ctx.Err(); err != nil {
		return ir.Record{}, err
	}

	rec := ir.Record{
		RunID: e.runID,
		Kind:  req.Kind,
		Input: req.Operands(),
	}

	var err error
	switch req.Kind {
	case ir.KindEncode:
		rec.Output, rec.ElapsedNS, err = e.runEncode(req)
	case ir.KindWords:
		rec.Output, rec.ElapsedNS, err = e.runWords(req)
	case ir.KindGCD:
		rec.Algorithm, rec.Output, rec.ElapsedNS, err = e.runGCD(req)
	default:
		err = newRuntimeError(ErrCodeUnknownKind, e.runID, fmt.Sprintf("unknown request kind %q", req.Kind), nil)
	}
	if err != nil {
		e.logger.Debug("request failed", "run_id", e.runID, "kind", req.Kind, "error", err)
		return ir.Record{}, err
	}

	if err := e.record(ctx, &rec); err != nil {
		e.logger.Debug("record failed", "run_id", e.runID, "kind", req.Kind, "error", err)
		return ir.Record{}, err
	}

	e.logger.Debug("request executed",
		"run_id", e.runID,
		"seq", rec.Seq,
		"kind", rec.Kind,
		"operands", len(rec.Input),
		"elapsed", time.Duration(rec.ElapsedNS),
	)
	return rec, nil
}

// record numbers, identifies and stores rec. On failure the seq is kept
// for the next record.
func (e *Engine) record(ctx context.Context, rec *ir.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.unused != 0 {
		rec.Seq, e.unused = e.unused, 0
	} else {
		rec.Seq = e.clock.Next()
	}

	id, err := ir.RecordID(*rec)
	if err != nil {
		e.unused = rec.Seq
		return newRuntimeError(ErrCodeRecordFailed, e.runID, "failed to identify record", err)
	}
	rec.ID = id

	if e.recorder != nil {
		if err := e.recorder.WriteRecord(ctx, *rec); err != nil {
			e.unused = rec.Seq
			return newRuntimeError(ErrCodeRecordFailed, e.runID, "failed to store record", err)
		}
	}
	return nil
}

// ExecuteAll runs requests in order and stops at the first failure,
// returning the records produced so far.
func (e *Engine) ExecuteAll(ctx context.Context, reqs []ir.Request) ([]ir.Record, error) {
	records := make([]ir.Record, 0, len(reqs))
	for i, req := range reqs {
		rec, err := e.Execute(ctx, req)
		if err != nil {
			return records, fmt.Errorf("request %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (e *Engine) runEncode(req ir.Request) ([]string, int64, error) {
	if len(req.Floats) == 0 {
		return nil, 0, newRuntimeError(ErrCodeEmptyInput, e.runID, "encode needs at least one value", nil)
	}
	start := time.Now()
	out := ieee754.EncodeAll(req.Floats)
	return out, int64(time.Since(start)), nil
}

func (e *Engine) runWords(req ir.Request) ([]string, int64, error) {
	start := time.Now()
	out, err := words.Words(req.Floats)
	if err != nil {
		return nil, 0, newRuntimeError(ErrCodeEmptyInput, e.runID, "words needs at least one value", err)
	}
	return out, int64(time.Since(start)), nil
}

func (e *Engine) runGCD(req ir.Request) (string, []string, int64, error) {
	alg := e.algorithm
	if req.Algorithm != "" {
		parsed, err := gcd.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return "", nil, 0, newRuntimeError(ErrCodeUnknownAlgorithm, e.runID, "invalid gcd algorithm", err)
		}
		alg = parsed
	}

	result, elapsed, err := gcd.Timed(alg, req.Ints)
	if err != nil {
		return "", nil, 0, newRuntimeError(ErrCodeInvalidArity, e.runID, "gcd needs at least two operands", err)
	}
	return string(alg), []string{fmt.Sprint(result)}, int64(elapsed), nil
}
