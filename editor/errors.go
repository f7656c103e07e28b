// File: errors.go
// Role: sentinel errors for the editor package, in the same flat
// errors.New + fmt.Errorf("editor: ...: %w", err) style as circuit/errors.go.
package editor

import "errors"

// ErrEmptyHistory indicates Undo was called with an empty past stack, or
// Redo with an empty future stack. It is not a fault: callers use it only
// to tell "nothing to do" apart from a genuine failure.
var ErrEmptyHistory = errors.New("editor: history is empty")

// ErrUnknownTemplate indicates a selectable component type name with no
// matching registered command.Command template.
var ErrUnknownTemplate = errors.New("editor: unknown component template")

// ErrUnknownEditor indicates Registry.Close (or another registry lookup)
// referenced an *Editor the registry never opened.
var ErrUnknownEditor = errors.New("editor: editor not found in registry")
