package command

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/idgen"
	"github.com/katalvlaran/lvlogic/requirement"
)

// createKind tags which primitive CreateCommand variant this is.
type createKind string

const (
	createInputPin      createKind = "InputPin"
	createOutputPin     createKind = "OutputPin"
	createPrimitiveGate createKind = "PrimitiveGate"
	createBranch        createKind = "Branch"
)

// CreateCommand allocates one fresh InputPin, OutputPin, PrimitiveGate, or
// Branch. A CreateCommand is a template: cloning it and executing
// the clone repeatedly ("create many AND gates without re-prompting") is
// the normal way a user drives one dialog-filled command more than once.
type CreateCommand struct {
	kind     createKind
	gateKind string
	ids      *idgen.Counter
	reqs     *requirement.Set
	ctx      GraphContext

	// presetID, when non-empty, is used instead of minting a new ID from
	// ids. Set by FromRecord when replaying a persisted or composite-gate
	// script, so later records that reference this one by ID still resolve.
	presetID string

	createdID       string
	createdBranchID string
}

// nextID returns the ID this command's Execute should use: the ID it
// minted the first time it ran (a re-executed command on the redo path
// must keep its identity, or later commands that reference it by ID stop
// resolving), then presetID, then a fresh one from ids.
func (c *CreateCommand) nextID() string {
	switch {
	case c.kind == createBranch && c.createdBranchID != "":
		return c.createdBranchID
	case c.kind != createBranch && c.createdID != "":
		return c.createdID
	case c.presetID != "":
		return c.presetID
	}
	return c.ids.Next()
}

// NewCreateInputPin returns a CreateCommand with no requirement slots: an
// InputPin needs nothing beyond a fresh ID.
func NewCreateInputPin(ids *idgen.Counter) *CreateCommand {
	return &CreateCommand{kind: createInputPin, ids: ids, reqs: requirement.NewSet()}
}

// NewCreateOutputPin returns a CreateCommand with no requirement slots.
func NewCreateOutputPin(ids *idgen.Counter) *CreateCommand {
	return &CreateCommand{kind: createOutputPin, ids: ids, reqs: requirement.NewSet()}
}

// NewCreatePrimitiveGate returns a CreateCommand for the given gate kind,
// requiring an "arity" slot (the input count the dialog must fill in).
func NewCreatePrimitiveGate(ids *idgen.Counter, gateKind string) *CreateCommand {
	cc := &CreateCommand{kind: createPrimitiveGate, gateKind: gateKind, ids: ids, reqs: requirement.NewSet()}
	cc.reqs.Declare(requirement.Slot{Key: "arity", Kind: requirement.KindObject})
	return cc
}

// NewCreateBranch returns a CreateCommand requiring "source", "outSlot",
// "sink", "inSlot" slots identifying the two endpoints to wire together.
func NewCreateBranch(ids *idgen.Counter) *CreateCommand {
	cc := &CreateCommand{kind: createBranch, ids: ids, reqs: requirement.NewSet()}
	cc.reqs.Declare(requirement.Slot{Key: "source", Kind: requirement.KindObject})
	cc.reqs.Declare(requirement.Slot{Key: "outSlot", Kind: requirement.KindObject})
	cc.reqs.Declare(requirement.Slot{Key: "sink", Kind: requirement.KindObject})
	cc.reqs.Declare(requirement.Slot{Key: "inSlot", Kind: requirement.KindObject})
	return cc
}

func (c *CreateCommand) Requirements() *requirement.Set { return c.reqs }
func (c *CreateCommand) Context(ctx GraphContext)        { c.ctx = ctx }
func (c *CreateCommand) CanExecute() bool                { return c.reqs.Fulfilled() }

func (c *CreateCommand) String() string {
	switch c.kind {
	case createPrimitiveGate:
		return fmt.Sprintf("Create %s gate", c.gateKind)
	case createBranch:
		return "Create branch"
	default:
		return "Create " + string(c.kind)
	}
}

// Clone returns an independent CreateCommand sharing this template's
// *idgen.Counter (so repeated executions advance one ID sequence instead of
// colliding) but carrying its own copy of the filled-in requirement values.
func (c *CreateCommand) Clone() Command {
	cp := *c
	cp.reqs = c.reqs.Clone()
	cp.createdID = ""
	cp.createdBranchID = ""
	return &cp
}

func (c *CreateCommand) Execute() error {
	switch c.kind {
	case createInputPin:
		id := c.nextID()
		if err := c.ctx.Graph().AddComponent(circuit.NewInputPin(id)); err != nil {
			return err
		}
		c.createdID = id
		return nil
	case createOutputPin:
		id := c.nextID()
		if err := c.ctx.Graph().AddComponent(circuit.NewOutputPin(id)); err != nil {
			return err
		}
		c.createdID = id
		return nil
	case createPrimitiveGate:
		arityVal, _ := c.reqs.Get("arity")
		arity, ok := arityVal.(int)
		if !ok {
			return fmt.Errorf("command: arity: %w", ErrRequirementUnfulfilled)
		}
		id := c.nextID()
		gate, err := circuit.NewPrimitiveGate(id, c.gateKind, arity, c.ctx.GateRegistry())
		if err != nil {
			return err
		}
		if err := c.ctx.Graph().AddComponent(gate); err != nil {
			return err
		}
		c.createdID = id
		return nil
	case createBranch:
		source, _ := c.reqs.Get("source")
		sink, _ := c.reqs.Get("sink")
		outSlot, _ := c.reqs.Get("outSlot")
		inSlot, _ := c.reqs.Get("inSlot")
		sourceID, ok1 := source.(string)
		sinkID, ok2 := sink.(string)
		out, ok3 := outSlot.(int)
		in, ok4 := inSlot.(int)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return fmt.Errorf("command: branch endpoints: %w", ErrRequirementUnfulfilled)
		}
		id := c.nextID()
		br, err := c.ctx.Graph().Connect(id, sourceID, out, sinkID, in)
		if err != nil {
			return err
		}
		c.createdBranchID = br.ID()
		return nil
	default:
		return fmt.Errorf("command: unknown create kind %q", c.kind)
	}
}

func (c *CreateCommand) Unexecute() error {
	if c.kind == createBranch {
		if c.createdBranchID == "" {
			return nil
		}
		return c.ctx.Graph().Disconnect(c.createdBranchID)
	}
	if c.createdID == "" {
		return nil
	}
	return c.ctx.Graph().RemoveComponent(c.createdID)
}

func (c *CreateCommand) toRecord() Record {
	rec := Record{}
	switch c.kind {
	case createInputPin:
		rec.Op = OpCreateInputPin
		rec.ID = c.createdID
	case createOutputPin:
		rec.Op = OpCreateOutputPin
		rec.ID = c.createdID
	case createPrimitiveGate:
		rec.Op = OpCreatePrimitiveGate
		rec.ID = c.createdID
		rec.GateKind = c.gateKind
		if v, ok := c.reqs.Get("arity"); ok {
			rec.Arity, _ = v.(int)
		}
	case createBranch:
		rec.Op = OpCreateBranch
		rec.ID = c.createdBranchID
		if v, ok := c.reqs.Get("source"); ok {
			rec.Source, _ = v.(string)
		}
		if v, ok := c.reqs.Get("sink"); ok {
			rec.Sink, _ = v.(string)
		}
		if v, ok := c.reqs.Get("outSlot"); ok {
			rec.OutSlot, _ = v.(int)
		}
		if v, ok := c.reqs.Get("inSlot"); ok {
			rec.InSlot, _ = v.(int)
		}
	}
	return rec
}
