package harness

import "github.com/roach88/numkit/internal/ir"

// TraceEvent is one executed case.
// Failed cases carry the error code and no seq.
type TraceEvent struct {
	Seq       int64    `json:"seq"`
	Kind      string   `json:"kind"`
	Algorithm string   `json:"algorithm,omitempty"`
	Input     []string `json:"input"`
	Output    []string `json:"output,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every case matched and every
	// assertion held.
	Pass bool `json:"pass"`

	// RunID is the run the records were written under.
	RunID string `json:"run_id"`

	// Trace contains every case in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID string) *Result {
	return &Result{
		Pass:   true,
		RunID:  runID,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddRecordTrace adds a successful case to the trace.
func (r *Result) AddRecordTrace(rec ir.Record) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:       rec.Seq,
		Kind:      string(rec.Kind),
		Algorithm: rec.Algorithm,
		Input:     rec.Input,
		Output:    rec.Output,
	})
}

// AddErrorTrace adds a failed case to the trace.
func (r *Result) AddErrorTrace(req ir.Request, code string) {
	r.Trace = append(r.Trace, TraceEvent{
		Kind:      string(req.Kind),
		Algorithm: req.Algorithm,
		Input:     req.Operands(),
		Error:     code,
	})
}
