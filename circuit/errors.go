// File: errors.go
// Role: sentinel errors for circuit package operations: flat errors.New
// values, wrapped with call-site context via
// fmt.Errorf("circuit: ...: %w", err) rather than custom parametrised
// error types.
package circuit

import "errors"

var (
	// ErrMissingComponent indicates an ID lookup referenced a component that
	// does not exist in this Graph (removed, never created, or frozen into a
	// different Graph entirely).
	ErrMissingComponent = errors.New("circuit: missing component")

	// ErrDuplicateID indicates an attempt to register a second component
	// under an ID already present in this Graph.
	ErrDuplicateID = errors.New("circuit: duplicate component id")

	// ErrMalformedBranch indicates a Branch-construction attempt that would
	// close a cycle, double-drive an input slot, or reference an
	// out-of-range slot. Raised before any mutation.
	ErrMalformedBranch = errors.New("circuit: malformed branch")

	// ErrNotChangeable indicates a structural mutation (Destroy, SetIn,
	// ConnectOut, ...) was attempted on a component whose Changeable flag is
	// false (it has been absorbed into a CompositeGate).
	ErrNotChangeable = errors.New("circuit: component is not changeable")

	// ErrSlotOutOfRange indicates a slot index outside the valid
	// [0, NumInputs) or [0, NumOutputs) range for a component.
	ErrSlotOutOfRange = errors.New("circuit: slot index out of range")

	// ErrUnknownGateKind indicates PrimitiveGate construction referenced a
	// kind string with no registered combinational function, or an arity
	// outside that kind's registered bounds.
	ErrUnknownGateKind = errors.New("circuit: unknown gate kind")
)
