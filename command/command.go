// Package command implements the undoable create/delete operations that
// mutate a circuit.Graph, plus CreateGateCommand which bundles a recorded
// script of sub-commands into a reusable composite-gate template.
//
// Commands are modelled as plain data values copied before execution:
// "cloning" is just copying the struct and minting a fresh ID, so a
// template stays reusable without mutation sharing.
package command

import (
	"errors"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/requirement"
)

// ErrRequirementUnfulfilled indicates a Command was executed before every
// declared requirement slot was filled.
var ErrRequirementUnfulfilled = errors.New("command: requirements not fulfilled")

// GraphContext is the minimal surface a Command needs from its owning
// editor: the live circuit graph to mutate and the gate-kind registry to
// resolve PrimitiveGate kinds against. Defined here (not in package editor)
// so command never imports editor, keeping the dependency one-directional.
type GraphContext interface {
	Graph() *circuit.Graph
	GateRegistry() *circuit.GateRegistry
}

// Command is the undoable contract every editing step implements.
type Command interface {
	// Requirements returns the slots that must be filled before Execute.
	Requirements() *requirement.Set
	// Context binds this command to the editor it will mutate.
	Context(ctx GraphContext)
	// CanExecute reports whether every declared requirement is fulfilled.
	CanExecute() bool
	// Clone returns an independent copy of this command, ready to be
	// filled and executed again without mutating the original template.
	Clone() Command
	// Execute performs the edit against the bound GraphContext.
	Execute() error
	// Unexecute reverses exactly what the matching Execute did.
	Unexecute() error
	// String is the dialog title / human-readable status tag.
	String() string
}

