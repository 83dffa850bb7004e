// Package harness runs numkit scenario suites.
//
// A scenario is a YAML file listing computations and the results they must
// produce. The harness executes each case through the engine, with a
// deterministic clock, a fixed run ID and a fresh in-memory store, then
// evaluates the scenario's assertions against the trace and the store.
//
// # Scenario Format
//
//	name: gcd_basics
//	description: "Pairwise reduction over several operands"
//	run_id: test-run-gcd          # optional, defaults to test-run-default
//	algorithm: stein              # optional default for gcd cases
//	cases:
//	  - op: gcd
//	    ints: [18, 3, 9, 6]
//	    expect: ["3"]
//	  - op: gcd
//	    ints: [42]
//	    expect_error: INVALID_ARITY
//	  - op: encode
//	    floats: [255.255, .nan, -.inf]
//	  - op: words
//	    floats: [-29.0043]
//	    expect: ["minus two nine point zero zero four three"]
//	assertions:
//	  - type: record_count
//	    kind: gcd
//	    count: 1
//	  - type: trace_order
//	    kinds: [gcd, encode, words]
//
// # Assertion Types
//
//   - record_count: the store holds exactly count records of kind (all kinds if empty)
//   - trace_order: successful cases ran in the given kind order (subsequence match)
//   - trace_count: exactly count trace events of kind, failures included
//
// # Golden Files
//
// RunWithGolden compares the canonical JSON trace with
// testdata/golden/<name>.golden. Elapsed times are left out of the
// snapshot, so traces are byte-identical across runs. Regenerate with:
//
//	go test ./internal/harness -update
package harness
