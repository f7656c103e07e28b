// Package action implements the parameterised operations a host drives the
// engine with: Create, Delete, Save, Open, Clear, Undo, Redo, and Help.
//
// Each action is a per-invocation value object: the host instantiates one
// (directly or via New), binds it to an editor with Context, lets the
// dialog collaborator fill its requirement.Set, and calls Execute. Once a
// context is bound, every exit path of Execute clears the requirement set
// and drops the editor context, so an action value can be refilled and reused — but two hosts
// never share one live action instance.
//
// Execution follows one fixed shape:
//
//  1. Validate that the requirement set is fulfilled; if not, report a
//     status and return without mutating anything.
//  2. Perform the domain effect (build and execute a command, invoke
//     persistence, delegate to the editor).
//  3. Report a status message: success, error, or "nothing to do".
//
// Domain errors (missing component, malformed branch, absent/corrupt/
// incompatible file, empty history) are caught here, surfaced through the
// editor's StatusBar, and never corrupt editor state; Execute returns nil
// for them. Anything unexpected (I/O failure mid-write, an unencodable
// command) is wrapped with a stack trace and returned for the outer host
// to log.
//
// Errors:
//
//	ErrNoContext - Execute called before Context bound an editor.
package action
