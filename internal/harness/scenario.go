package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/numkit/internal/engine"
	"github.com/roach88/numkit/internal/ir"
)

// Scenario defines a suite of computations with expected results.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID is an optional fixed run ID.
	// If empty, defaults to testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Algorithm is the default gcd algorithm for cases that name none.
	Algorithm string `yaml:"algorithm,omitempty"`

	// Cases run in order.
	Cases []Case `yaml:"cases"`

	// Assertions validate the final trace and store.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one computation.
type Case struct {
	// Name is optional and only used in failure messages.
	Name string `yaml:"name,omitempty"`

	// Op is the request kind: encode, gcd or words.
	Op string `yaml:"op"`

	// Floats are the operands of encode and words cases.
	Floats []float64 `yaml:"floats,omitempty"`

	// Ints are the operands of gcd cases.
	Ints []int `yaml:"ints,omitempty"`

	// Algorithm overrides the scenario algorithm for this gcd case.
	Algorithm string `yaml:"algorithm,omitempty"`

	// Expect is the exact expected output. If nil, the output is not checked.
	Expect []string `yaml:"expect,omitempty"`

	// ExpectError is the expected engine error code (e.g. INVALID_ARITY).
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Request converts the case to an engine request.
func (c Case) Request() ir.Request {
	return ir.Request{
		Kind:      ir.Kind(c.Op),
		Algorithm: c.Algorithm,
		Floats:    c.Floats,
		Ints:      c.Ints,
	}
}

// label names the case in messages.
func (c Case) label(index int) string {
	if c.Name != "" {
		return fmt.Sprintf("cases[%d] (%s)", index, c.Name)
	}
	return fmt.Sprintf("cases[%d]", index)
}

// Assertion validates the trace or the store after all cases ran.
type Assertion struct {
	// Type is one of record_count, trace_order, trace_count.
	Type string `yaml:"type"`

	// Kind filters record_count and trace_count.
	Kind string `yaml:"kind,omitempty"`

	// Count is the expected number (record_count, trace_count).
	Count int `yaml:"count,omitempty"`

	// Kinds is the expected order (trace_order).
	Kinds []string `yaml:"kinds,omitempty"`
}

// Assertion type constants.
const (
	AssertRecordCount = "record_count"
	AssertTraceOrder  = "trace_order"
	AssertTraceCount  = "trace_count"
)

// validErrorCodes are the codes a case may expect.
var validErrorCodes = map[string]bool{
	string(engine.ErrCodeInvalidArity):     true,
	string(engine.ErrCodeEmptyInput):       true,
	string(engine.ErrCodeUnknownKind):      true,
	string(engine.ErrCodeUnknownAlgorithm): true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Operand counts are deliberately not checked here: a case may exercise
// the engine's own arity and empty-input errors.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Op == "" {
			return fmt.Errorf("%s: op is required", c.label(i))
		}
		if c.ExpectError != "" && c.Expect != nil {
			return fmt.Errorf("%s: expect and expect_error are mutually exclusive", c.label(i))
		}
		if c.ExpectError != "" && !validErrorCodes[c.ExpectError] {
			return fmt.Errorf("%s: unknown expect_error code %q", c.label(i), c.ExpectError)
		}
		switch ir.Kind(c.Op) {
		case ir.KindGCD:
			if len(c.Floats) > 0 {
				return fmt.Errorf("%s: gcd takes ints, not floats", c.label(i))
			}
		case ir.KindEncode, ir.KindWords:
			if len(c.Ints) > 0 {
				return fmt.Errorf("%s: %s takes floats, not ints", c.label(i), c.Op)
			}
			if c.Algorithm != "" {
				return fmt.Errorf("%s: algorithm only applies to gcd", c.label(i))
			}
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertRecordCount, AssertTraceCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertTraceOrder:
		if len(a.Kinds) == 0 {
			return fmt.Errorf("assertions[%d]: kinds list is required for trace_order", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
