// Package circuit implements the signal graph: components (pins, primitive
// gates, branches, composite gates) linked by wires, propagating a
// two-valued logical signal through synchronous, event-driven calls.
//
// The graph is a DAG with back-references: a Component owns its input and
// output slots, a Branch is a directed wire between exactly two slots on
// two components. Propagation is depth-first and changed-only: setting an
// InputPin's level fans out through WakeUp calls and terminates in one pass
// because the graph is acyclic and two-valued.
//
// Why this shape:
//
//   - Single owning Graph per editor (or per frozen composite) — no shared
//     mutable aliasing; every structural mutation goes through Graph's
//     methods, never through direct map access.
//   - One interface (Component) sealed to this package via an unexported
//     method, so InputPin/OutputPin/PrimitiveGate/CompositeGate are the
//     only variants callers can ever hold.
//   - Branch is plain data plus behavior, not a Component: it never drives
//     anything on its own, it only forwards what its source already
//     computed.
//
// Errors:
//
//	ErrMissingComponent    - ID lookup on a removed/never-existing component.
//	ErrDuplicateID         - a second component registered under the same ID.
//	ErrMalformedBranch     - cycle-forming, double-driven, or out-of-range connection.
//	ErrNotChangeable       - structural mutation attempted on a frozen component.
//	ErrSlotOutOfRange      - slot index outside [0, NumInputs)/[0, NumOutputs).
package circuit
