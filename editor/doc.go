// Package editor implements the live circuit plus its undo/redo history,
// and the multi-editor registry that tracks several open editors at once.
//
// One Editor owns exactly one circuit.Graph, one circuit.GateRegistry, a
// catalog of selectable component templates (built-in gate kinds plus
// user-defined composite-gate templates registered via AddCreateCommand),
// two command.Command stacks (past/future), a FileInfo, and a status sink.
// All structural mutation of the graph is routed through Execute/Undo/Redo/
// Clear; nothing outside this package ever calls a command.Command's
// Execute/Unexecute directly.
//
// Why this shape:
//
//   - Editor implements command.GraphContext itself, so a Command binds
//     straight to the Editor that will run it (no separate context wrapper
//     type).
//   - Two plain command.Command slices back the past/future stacks rather
//     than a dedicated stack type: push/pop are one-liners and the history
//     depth is just len(past).
//   - Registry.Close consults a Confirmer before dropping a dirty editor,
//     keeping the "prompt to save?" policy a host concern while the
//     registry still owns the open-editor set.
//
// Errors:
//
//	ErrEmptyHistory - Undo/Redo called with nothing to reverse/replay,
//	                  surfaced only so callers can distinguish "nothing to
//	                  do" from a real fault.
package editor
