package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numkit/internal/testutil"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return s
}

func TestRun_Scenarios(t *testing.T) {
	for _, name := range []string{"gcd_basics", "encode_special", "words_mixed"} {
		t.Run(name, func(t *testing.T) {
			s := loadTestScenario(t, name)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Len(t, result.Trace, len(s.Cases))
		})
	}
}

func TestRun_Golden(t *testing.T) {
	for _, name := range []string{"gcd_basics", "encode_special", "words_mixed"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, loadTestScenario(t, name)))
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	s := loadTestScenario(t, "words_mixed")

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	a, err := MarshalTrace(s.Name, first)
	require.NoError(t, err)
	b, err := MarshalTrace(s.Name, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_DefaultRunID(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "default_run",
		Description: "no run_id",
		Cases:       []Case{{Op: "gcd", Ints: []int{4, 6}}},
	})
	require.NoError(t, err)
	assert.Equal(t, testutil.DefaultRunID, result.RunID)
}

func TestRun_FailedCasesConsumeNoSeq(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "seq_gaps",
		Description: "failures between successes",
		Cases: []Case{
			{Op: "gcd", Ints: []int{4, 6}},
			{Op: "gcd", Ints: []int{4}, ExpectError: "INVALID_ARITY"},
			{Op: "words", Floats: []float64{1}},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	assert.Equal(t, int64(1), result.Trace[0].Seq)
	assert.Equal(t, int64(0), result.Trace[1].Seq)
	assert.Equal(t, "INVALID_ARITY", result.Trace[1].Error)
	assert.Equal(t, int64(2), result.Trace[2].Seq)
}

func TestRun_OutputMismatch(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "mismatch",
		Description: "wrong expectation",
		Cases:       []Case{{Name: "wrong", Op: "gcd", Ints: []int{4, 6}, Expect: []string{"4"}}},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cases[0] (wrong)")
	assert.Contains(t, result.Errors[0], "expected output [4], got [2]")
}

func TestRun_UnexpectedError(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "unexpected",
		Description: "arity error nobody expected",
		Cases:       []Case{{Op: "gcd", Ints: []int{4}}},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected error")
}

func TestRun_WrongErrorCode(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "wrong_code",
		Description: "expects the wrong code",
		Cases:       []Case{{Op: "gcd", Ints: []int{4}, ExpectError: "EMPTY_INPUT"}},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "expected error EMPTY_INPUT, got INVALID_ARITY")
}

func TestRun_MissingExpectedError(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "missing_error",
		Description: "expects a failure that does not happen",
		Cases:       []Case{{Op: "gcd", Ints: []int{4, 6}, ExpectError: "INVALID_ARITY"}},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "expected error INVALID_ARITY, got output [2]")
}

func TestRun_UnknownScenarioAlgorithm(t *testing.T) {
	_, err := Run(&Scenario{
		Name:        "bad_algorithm",
		Description: "scenario default is invalid",
		Algorithm:   "modulo",
		Cases:       []Case{{Op: "gcd", Ints: []int{4, 6}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestRun_ScenarioAlgorithmDefault(t *testing.T) {
	result, err := Run(&Scenario{
		Name:        "binary_default",
		Description: "alias accepted as scenario default",
		Algorithm:   "binary",
		Cases:       []Case{{Op: "gcd", Ints: []int{48, 36}, Expect: []string{"12"}}},
	})
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "stein", result.Trace[0].Algorithm)
}
