package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numkit/internal/gcd"
	"github.com/roach88/numkit/internal/ir"
)

type memRecorder struct {
	records []ir.Record
	err     error
	// failures is the number of writes that fail with err before
	// writes succeed. Zero means every write fails when err is set.
	failures int
}

func (m *memRecorder) WriteRecord(_ context.Context, rec ir.Record) error {
	if m.err != nil {
		if m.failures == 0 {
			return m.err
		}
		err := m.err
		m.failures--
		if m.failures == 0 {
			m.err = nil
		}
		return err
	}
	m.records = append(m.records, rec)
	return nil
}

func newTestEngine(opts ...EngineOption) *Engine {
	return New(NewFixedGenerator("run-1"), opts...)
}

func TestEngine_Encode(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Execute(context.Background(), ir.Request{Kind: ir.KindEncode, Floats: []float64{255.255, -255.255}})
	require.NoError(t, err)

	assert.Equal(t, "run-1", rec.RunID)
	assert.Equal(t, int64(1), rec.Seq)
	assert.Equal(t, []string{"255.255", "-255.255"}, rec.Input)
	assert.Equal(t, []string{
		"0100000001101111111010000010100011110101110000101000111101011100",
		"1100000001101111111010000010100011110101110000101000111101011100",
	}, rec.Output)
	assert.Equal(t, ir.MustRecordID(rec), rec.ID)
}

func TestEngine_GCD(t *testing.T) {
	e := newTestEngine(WithAlgorithm(gcd.AlgorithmStein))
	ctx := context.Background()

	rec, err := e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{-10, 35, 90, 55, -105}})
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, rec.Output)
	assert.Equal(t, "stein", rec.Algorithm, "default algorithm applies")

	rec, err = e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Algorithm: "euclid", Ints: []int{18, 3, 9, 6}})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, rec.Output)
	assert.Equal(t, "euclid", rec.Algorithm)
	assert.Equal(t, int64(2), rec.Seq)
}

func TestEngine_Words(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Execute(context.Background(), ir.Request{Kind: ir.KindWords, Floats: []float64{845.33}})
	require.NoError(t, err)
	assert.Equal(t, []string{"eight four five point three three"}, rec.Output)
}

func TestEngine_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  ir.Request
		code RuntimeErrorCode
	}{
		{"gcd arity", ir.Request{Kind: ir.KindGCD, Ints: []int{7}}, ErrCodeInvalidArity},
		{"gcd algorithm", ir.Request{Kind: ir.KindGCD, Algorithm: "modulo", Ints: []int{7, 14}}, ErrCodeUnknownAlgorithm},
		{"encode empty", ir.Request{Kind: ir.KindEncode}, ErrCodeEmptyInput},
		{"words empty", ir.Request{Kind: ir.KindWords}, ErrCodeEmptyInput},
		{"unknown kind", ir.Request{Kind: "sqrt"}, ErrCodeUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			_, err := e.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, CodeOf(err))
			assert.Contains(t, err.Error(), "run=run-1")
		})
	}
}

func TestEngine_ArityErrorUnwraps(t *testing.T) {
	e := newTestEngine()
	_, err := e.Execute(context.Background(), ir.Request{Kind: ir.KindGCD})
	assert.ErrorIs(t, err, gcd.ErrInvalidArity)
}

func TestEngine_FailureConsumesNoSeq(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	_, err := e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{1}})
	require.Error(t, err)

	rec, err := e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{4, 6}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Seq)
}

func TestEngine_Recorder(t *testing.T) {
	rec := &memRecorder{}
	e := newTestEngine(WithRecorder(rec), WithClock(NewClockAt(10)))

	records, err := e.ExecuteAll(context.Background(), []ir.Request{
		{Kind: ir.KindEncode, Floats: []float64{1}},
		{Kind: ir.KindGCD, Ints: []int{12, 18}},
	})
	require.NoError(t, err)
	require.Len(t, rec.records, 2)
	assert.Equal(t, records, rec.records)
	assert.Equal(t, int64(11), rec.records[0].Seq)
	assert.Equal(t, int64(12), rec.records[1].Seq)
}

func TestEngine_RecorderFailure(t *testing.T) {
	boom := errors.New("disk full")
	e := newTestEngine(WithRecorder(&memRecorder{err: boom}))

	_, err := e.Execute(context.Background(), ir.Request{Kind: ir.KindGCD, Ints: []int{2, 4}})
	assert.Equal(t, ErrCodeRecordFailed, CodeOf(err))
	assert.ErrorIs(t, err, boom)
}

func TestEngine_RecorderFailureConsumesNoSeq(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full"), failures: 1}
	e := newTestEngine(WithRecorder(rec))
	ctx := context.Background()

	_, err := e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{2, 4}})
	require.Error(t, err)
	assert.Equal(t, ErrCodeRecordFailed, CodeOf(err))

	got, err := e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{3, 9}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Seq)
	assert.Equal(t, ir.MustRecordID(got), got.ID)

	got, err = e.Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{5, 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Seq)

	require.Len(t, rec.records, 2)
	assert.Equal(t, int64(1), rec.records[0].Seq)
}

func TestEngine_ExecuteAllStopsAtFailure(t *testing.T) {
	e := newTestEngine()
	records, err := e.ExecuteAll(context.Background(), []ir.Request{
		{Kind: ir.KindGCD, Ints: []int{2, 4}},
		{Kind: ir.KindGCD, Ints: []int{2}},
		{Kind: ir.KindGCD, Ints: []int{3, 9}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request 1")
	assert.Len(t, records, 1)
}

func TestEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine().Execute(ctx, ir.Request{Kind: ir.KindGCD, Ints: []int{2, 4}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixedGenerator(t *testing.T) {
	g := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}

func TestUUIDv7Generator(t *testing.T) {
	id := UUIDv7Generator{}.Generate()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, UUIDv7Generator{}.Generate())
}
