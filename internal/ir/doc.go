// Package ir defines the request and record types shared by the engine,
// the store and the harness, and the canonical JSON used to identify them.
//
// ir imports nothing internal. Other internal packages import ir.
//
// Key design constraints:
//   - No float types in canonical values. Float operands travel as their
//     shortest round-trip decimal text (FormatOperand)
//   - All JSON tags use snake_case
//   - Records are ordered by a logical clock (seq), never by wall time
package ir
