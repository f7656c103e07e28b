package command

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/requirement"
)

// branchRecord is enough of a Branch's endpoints to recreate it.
type branchRecord struct {
	id       string
	sourceID string
	outSlot  int
	sinkID   string
	inSlot   int
}

func recordOf(br *circuit.Branch) branchRecord {
	src, outSlot := br.Source()
	sink, inSlot := br.Sink()
	return branchRecord{id: br.ID(), sourceID: src.ID(), outSlot: outSlot, sinkID: sink.ID(), inSlot: inSlot}
}

// DeleteCommand removes one component by ID, recording its incoming and
// outgoing branch endpoints so Unexecute can restore both the component and
// every branch that used to touch it. It does not record the
// component's own constructor arguments: the live Component value survives
// in memory (Destroy only severs its branches) and is simply re-registered.
type DeleteCommand struct {
	reqs *requirement.Set
	ctx  GraphContext

	comp      circuit.Component
	outgoing  []branchRecord
	incoming  []branchRecord
	executed  bool
}

// NewDeleteCommand returns a DeleteCommand requiring a "target" slot (the
// ID of the component to remove).
func NewDeleteCommand() *DeleteCommand {
	dc := &DeleteCommand{reqs: requirement.NewSet()}
	dc.reqs.Declare(requirement.Slot{Key: "target", Kind: requirement.KindString, Predicate: requirement.NonEmpty})
	return dc
}

func (d *DeleteCommand) Requirements() *requirement.Set { return d.reqs }
func (d *DeleteCommand) Context(ctx GraphContext)        { d.ctx = ctx }
func (d *DeleteCommand) CanExecute() bool                { return d.reqs.Fulfilled() }
func (d *DeleteCommand) String() string                  { return "Delete component" }

// Clone returns a fresh, not-yet-executed DeleteCommand carrying the same
// target but none of the recorded undo state (a DeleteCommand is only ever
// cloned to delete a different component with the same dialog).
func (d *DeleteCommand) Clone() Command {
	return &DeleteCommand{reqs: d.reqs.Clone()}
}

func (d *DeleteCommand) Execute() error {
	targetVal, _ := d.reqs.GetString("target")
	comp, err := d.ctx.Graph().Component(targetVal)
	if err != nil {
		return err
	}

	// A re-executed delete (redo) records the branch set afresh.
	d.outgoing = nil
	d.incoming = nil
	outBr, inBr := d.ctx.Graph().BranchesOf(targetVal)
	for _, br := range outBr {
		d.outgoing = append(d.outgoing, recordOf(br))
	}
	for _, br := range inBr {
		d.incoming = append(d.incoming, recordOf(br))
	}
	for _, br := range outBr {
		if err := d.ctx.Graph().Disconnect(br.ID()); err != nil {
			return err
		}
	}
	for _, br := range inBr {
		if err := d.ctx.Graph().Disconnect(br.ID()); err != nil {
			return err
		}
	}

	if err := d.ctx.Graph().RemoveComponent(targetVal); err != nil {
		return err
	}
	d.comp = comp
	d.executed = true
	return nil
}

func (d *DeleteCommand) Unexecute() error {
	if !d.executed {
		return nil
	}
	if err := d.ctx.Graph().AddComponent(d.comp); err != nil {
		return err
	}
	for _, rec := range d.outgoing {
		if _, err := d.ctx.Graph().Connect(rec.id, rec.sourceID, rec.outSlot, rec.sinkID, rec.inSlot); err != nil {
			return err
		}
	}
	for _, rec := range d.incoming {
		if _, err := d.ctx.Graph().Connect(rec.id, rec.sourceID, rec.outSlot, rec.sinkID, rec.inSlot); err != nil {
			return fmt.Errorf("command: unexecute delete: %w", err)
		}
	}
	return nil
}

func (d *DeleteCommand) toRecord() Record {
	target, _ := d.reqs.GetString("target")
	return Record{Op: OpDeleteComponent, Source: target}
}
