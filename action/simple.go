// File: simple.go
// Role: the parameterless actions — Clear, Undo, Redo, and Help. No
// requirement slots; each delegates straight to the bound editor and
// reports what happened.
package action

import (
	goerrors "errors"

	"github.com/katalvlaran/lvlogic/editor"
)

// Clear empties the bound editor: every component destroyed, both history
// stacks dropped.
type Clear struct {
	base
}

// NewClear returns a Clear action.
func NewClear() *Clear {
	return &Clear{base: newBase(KindClear, "Clear circuit")}
}

func (a *Clear) Execute() error {
	return a.run(func(e *editor.Editor) error {
		e.Clear()
		success(e, "Circuit cleared")
		return nil
	})
}

// Undo reverses the most recent command, or reports "nothing to undo".
type Undo struct {
	base
}

// NewUndo returns an Undo action.
func NewUndo() *Undo {
	return &Undo{base: newBase(KindUndo, "Undo")}
}

func (a *Undo) Execute() error {
	return a.run(func(e *editor.Editor) error {
		switch err := e.Undo(); {
		case goerrors.Is(err, editor.ErrEmptyHistory):
			info(e, "Nothing to undo")
			return nil
		case err != nil:
			return report(e, a.name, err)
		default:
			success(e, "Undone")
			return nil
		}
	})
}

// Redo re-applies the most recently undone command, or reports "nothing to
// redo".
type Redo struct {
	base
}

// NewRedo returns a Redo action.
func NewRedo() *Redo {
	return &Redo{base: newBase(KindRedo, "Redo")}
}

func (a *Redo) Execute() error {
	return a.run(func(e *editor.Editor) error {
		switch err := e.Redo(); {
		case goerrors.Is(err, editor.ErrEmptyHistory):
			info(e, "Nothing to redo")
			return nil
		case err != nil:
			return report(e, a.name, err)
		default:
			success(e, "Redone")
			return nil
		}
	})
}

// Help only reports a pointer at the host's own help surface; the actual
// title/message content is presentational and belongs to the UI
// collaborator.
type Help struct {
	base
}

// NewHelp returns a Help action.
func NewHelp() *Help {
	return &Help{base: newBase(KindHelp, "Help")}
}

func (a *Help) Execute() error {
	return a.run(func(e *editor.Editor) error {
		info(e, "Help is shown by the host application")
		return nil
	})
}
