// File: create.go
// Role: the two actions that mutate the circuit through the command
// pipeline — Create (execute a filled command template) and Delete (remove
// a component by ID).
package action

import (
	"github.com/katalvlaran/lvlogic/command"
	"github.com/katalvlaran/lvlogic/editor"
	"github.com/katalvlaran/lvlogic/requirement"
)

// Create executes one filled command.Command against the bound editor. The
// dialog collaborator obtains a template clone via Editor.Template, fills
// the clone's own requirement set (arity, branch endpoints, ...), and
// hands the result to this action's "command" slot.
type Create struct {
	base
}

// NewCreate returns a Create action with one object slot, "command".
func NewCreate() *Create {
	a := &Create{base: newBase(KindCreate, "Create component")}
	a.reqs.Declare(requirement.Slot{Key: "command", Kind: requirement.KindObject})
	return a
}

func (a *Create) Execute() error {
	return a.run(func(e *editor.Editor) error {
		v, _ := a.reqs.Get("command")
		cmd, ok := v.(command.Command)
		if !ok {
			return report(e, a.name, command.ErrRequirementUnfulfilled)
		}
		if err := e.Execute(cmd); err != nil {
			return report(e, a.name, err)
		}
		success(e, cmd.String())
		return nil
	})
}

// Delete removes the component named by its "id" slot, going through
// command.DeleteCommand so the removal lands on the undo stack.
type Delete struct {
	base
}

// NewDelete returns a Delete action with one non-empty string slot, "id".
func NewDelete() *Delete {
	a := &Delete{base: newBase(KindDelete, "Delete component")}
	a.reqs.Declare(requirement.Slot{Key: "id", Kind: requirement.KindString, Predicate: requirement.NonEmpty})
	return a
}

func (a *Delete) Execute() error {
	return a.run(func(e *editor.Editor) error {
		id, _ := a.reqs.GetString("id")
		cmd := command.NewDeleteCommand()
		if err := cmd.Requirements().Set("target", id); err != nil {
			return report(e, a.name, err)
		}
		if err := e.Execute(cmd); err != nil {
			return report(e, a.name, err)
		}
		success(e, "Deleted "+id)
		return nil
	})
}
