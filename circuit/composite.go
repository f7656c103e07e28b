// File: composite.go
// Role: CompositeGate, a gate whose behaviour is defined by a frozen inner
// sub-graph. Inputs are wrapped (WakeUp delegates into the corresponding
// inner InputPin); outputs are transparent (Active/ConnectOut delegate
// straight to the inner OutputPin, which may itself feed branches of the
// outer circuit).
package circuit

import (
	"fmt"
	"sync"
)

// CompositeGate packages a frozen inner Graph as a reusable primitive. Its
// own input slots are backed by inPins (declaration order); its output
// slots ARE outPins (declaration order) — there is no separate output
// storage, callers read/connect straight through to the inner OutputPin.
type CompositeGate struct {
	mu          sync.RWMutex
	id          string
	changeable  bool
	ins         []inSlot
	inPins      []*InputPin
	outPins     []*OutputPin
	inner       *Graph
	description string
}

// NewCompositeGate packages inner (already built and frozen via FreezeAll)
// as a CompositeGate exposing inPins/outPins, in declaration order, as its
// public interface.
func NewCompositeGate(id string, inPins []*InputPin, outPins []*OutputPin, inner *Graph, description string) *CompositeGate {
	return &CompositeGate{
		id:          id,
		changeable:  true,
		ins:         make([]inSlot, len(inPins)),
		inPins:      inPins,
		outPins:     outPins,
		inner:       inner,
		description: description,
	}
}

func (c *CompositeGate) ID() string          { return c.id }
func (c *CompositeGate) Kind() Kind          { return KindCompositeGate }
func (c *CompositeGate) Description() string { return c.description }
func (c *CompositeGate) NumInputs() int      { return len(c.inPins) }
func (c *CompositeGate) NumOutputs() int     { return len(c.outPins) }

// Inner exposes the private Graph backing this composite for read-only
// inspection; it must never be mutated directly.
func (c *CompositeGate) Inner() *Graph { return c.inner }

func (c *CompositeGate) Changeable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.changeable
}

// Active delegates straight to the inner OutputPin at slot.
func (c *CompositeGate) Active(slot int) (Signal, error) {
	if slot < 0 || slot >= len(c.outPins) {
		return Low, fmt.Errorf("circuit: %s: output slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	return c.outPins[slot].Active(0)
}

// ConnectOut registers an outgoing Branch directly on the inner OutputPin
// at slot, so the branch's true source is the inner pin (matching the data
// model: the OutputPin itself carries the outer circuit's branches). The
// inner pin is frozen, so the composite's own Changeable flag is the one
// checked here, not the inner pin's.
func (c *CompositeGate) ConnectOut(b *Branch, slot int) error {
	if !c.Changeable() {
		return fmt.Errorf("circuit: %s: %w", c.id, ErrNotChangeable)
	}
	if slot < 0 || slot >= len(c.outPins) {
		return fmt.Errorf("circuit: %s: output slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	op := c.outPins[slot]
	op.mu.Lock()
	op.outs[0].branches[b.id] = b
	op.mu.Unlock()
	return nil
}

func (c *CompositeGate) DisconnectOut(b *Branch, slot int) error {
	if slot < 0 || slot >= len(c.outPins) {
		return fmt.Errorf("circuit: %s: output slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	return c.outPins[slot].DisconnectOut(b, 0)
}

// SetIn installs the unique incoming Branch for one of the composite's own
// input slots (not forwarded to the inner graph: the inner InputPin has no
// input slots of its own, it is driven by WakeUp, not by a Branch).
func (c *CompositeGate) SetIn(b *Branch, slot int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.changeable {
		return fmt.Errorf("circuit: %s: %w", c.id, ErrNotChangeable)
	}
	if slot < 0 || slot >= len(c.ins) {
		return fmt.Errorf("circuit: %s: input slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	if c.ins[slot].branch != nil {
		return fmt.Errorf("circuit: %s: input slot %d already driven: %w", c.id, slot, ErrMalformedBranch)
	}
	c.ins[slot].branch = b
	return nil
}

func (c *CompositeGate) ClearIn(slot int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slot < 0 || slot >= len(c.ins) {
		return fmt.Errorf("circuit: %s: input slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	c.ins[slot].branch = nil
	return nil
}

// WakeUp delegates to the corresponding inner InputPin, forcing its level
// the way an external Set() would, so the inner graph re-propagates
// synchronously before WakeUp returns.
func (c *CompositeGate) WakeUp(level Signal, slot int, propagateChangeable bool) error {
	c.mu.Lock()
	if slot < 0 || slot >= len(c.ins) {
		c.mu.Unlock()
		return fmt.Errorf("circuit: %s: input slot %d: %w", c.id, slot, ErrSlotOutOfRange)
	}
	changed := c.ins[slot].level != level
	c.ins[slot].level = level
	inner := c.inPins[slot]
	c.mu.Unlock()

	if !changed && !propagateChangeable {
		return nil
	}
	return inner.forceSet(level, propagateChangeable)
}

// Destroy disconnects every branch attached to this composite (its own
// input slots, and each inner OutputPin's outgoing branches) and discards
// the inner graph as a whole; the sub-commands that built it are not
// re-exposed to the outer editor's undo stack.
func (c *CompositeGate) Destroy() error {
	if !c.Changeable() {
		return fmt.Errorf("circuit: %s: %w", c.id, ErrNotChangeable)
	}
	for _, op := range c.outPins {
		for _, br := range op.downstream(0) {
			br.tearDown()
		}
	}
	c.mu.Lock()
	for i := range c.ins {
		c.ins[i].branch = nil
	}
	c.mu.Unlock()
	return nil
}

func (c *CompositeGate) freeze() {
	c.mu.Lock()
	c.changeable = false
	c.mu.Unlock()
}

// FreezeAll marks every component currently registered in inner as
// non-changeable. Called once, after a CreateGateCommand has finished
// running its sub-commands against a private Graph, before that Graph is
// wrapped in a CompositeGate. Sweeping the registered-component set
// (rather than walking branch reachability) also freezes components with
// no branches at all, which a graph walk would miss.
func FreezeAll(inner *Graph) {
	for _, c := range inner.Components() {
		c.freeze()
	}
}
