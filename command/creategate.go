package command

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/idgen"
	"github.com/katalvlaran/lvlogic/requirement"
)

// CreateGateCommand bundles a recorded construction script into a reusable
// composite-gate template. Its sub-commands are stored as
// Records rather than live Command values: each Execute reconstructs them
// fresh against a brand-new private Graph with its own inner idgen
// sequence, so two instantiations of the same template never share inner
// components. Only the counter naming the composites themselves is shared
// between clones (see Clone).
type CreateGateCommand struct {
	subCommands []Record
	description string
	reqs        *requirement.Set
	ctx         GraphContext

	instanceIDs *idgen.Counter
	built       *circuit.CompositeGate

	// builtID survives Unexecute so a redo re-registers the composite under
	// the same ID instead of minting the next one in the sequence.
	builtID string
}

// NewCreateGateCommand returns a CreateGateCommand that will, on Execute,
// replay subCommands against a fresh private Graph and freeze the result
// into one CompositeGate named by a sequential "<description>_<n>"-style ID
// sequence ("gate_<n>" for an empty description; see idPrefix).
func NewCreateGateCommand(subCommands []Record, description string) *CreateGateCommand {
	return &CreateGateCommand{
		subCommands: subCommands,
		description: description,
		reqs:        requirement.NewSet(),
		instanceIDs: idgen.NewCounter(idgen.SequentialGenerator(idPrefix(description))),
	}
}

func idPrefix(description string) string {
	if description == "" {
		return "gate_"
	}
	return description + "_"
}

func (g *CreateGateCommand) Requirements() *requirement.Set { return g.reqs }
func (g *CreateGateCommand) Context(ctx GraphContext)        { g.ctx = ctx }
func (g *CreateGateCommand) CanExecute() bool                { return g.reqs.Fulfilled() }
func (g *CreateGateCommand) String() string                  { return "Create gate: " + g.description }

// Clone returns a CreateGateCommand sharing the same recorded script and
// description, and the same *idgen.Counter for instance IDs (so repeated
// instantiations of one template are named "AND2_0", "AND2_1", ... rather
// than colliding).
func (g *CreateGateCommand) Clone() Command {
	return &CreateGateCommand{
		subCommands: g.subCommands,
		description: g.description,
		reqs:        g.reqs.Clone(),
		instanceIDs: g.instanceIDs,
	}
}

// Execute replays the recorded script against a fresh private Graph,
// freezes every inner component, wraps the result in a CompositeGate, and
// registers the composite as a first-class component of the bound editor.
func (g *CreateGateCommand) Execute() error {
	inner := circuit.NewGraph()
	innerIDs := idgen.NewCounter(nil)
	innerCtx := &innerGraphContext{graph: inner, registry: g.ctx.GateRegistry()}

	var inPins []*circuit.InputPin
	var outPins []*circuit.OutputPin

	for _, rec := range g.subCommands {
		sub, err := FromRecord(rec, innerIDs)
		if err != nil {
			return fmt.Errorf("command: create gate %q: %w", g.description, err)
		}
		sub.Context(innerCtx)
		if err := sub.Execute(); err != nil {
			return fmt.Errorf("command: create gate %q: %w", g.description, err)
		}
		cc, ok := sub.(*CreateCommand)
		if !ok {
			continue
		}
		switch rec.Op {
		case OpCreateInputPin:
			comp, _ := inner.Component(cc.createdID)
			if p, ok := comp.(*circuit.InputPin); ok {
				inPins = append(inPins, p)
			}
		case OpCreateOutputPin:
			comp, _ := inner.Component(cc.createdID)
			if p, ok := comp.(*circuit.OutputPin); ok {
				outPins = append(outPins, p)
			}
		}
	}

	circuit.FreezeAll(inner)

	if g.builtID == "" {
		g.builtID = g.instanceIDs.Next()
	}
	composite := circuit.NewCompositeGate(g.builtID, inPins, outPins, inner, g.description)
	if err := g.ctx.Graph().AddComponent(composite); err != nil {
		return err
	}
	g.built = composite
	return nil
}

// Unexecute removes the composite gate as a whole; the sub-commands that
// built its inner graph are never re-exposed to the outer editor's undo
// stack.
func (g *CreateGateCommand) Unexecute() error {
	if g.built == nil {
		return nil
	}
	if err := g.ctx.Graph().RemoveComponent(g.built.ID()); err != nil {
		return err
	}
	g.built = nil
	return nil
}

func (g *CreateGateCommand) toRecord() Record {
	return Record{Op: OpCreateGate, Description: g.description, SubCommands: g.subCommands}
}

// innerGraphContext binds a CreateGateCommand's private inner Graph as a
// GraphContext, reusing the outer editor's GateRegistry so primitive gates
// inside a composite resolve the same kinds the outer editor offers.
type innerGraphContext struct {
	graph    *circuit.Graph
	registry *circuit.GateRegistry
}

func (c *innerGraphContext) Graph() *circuit.Graph               { return c.graph }
func (c *innerGraphContext) GateRegistry() *circuit.GateRegistry { return c.registry }
