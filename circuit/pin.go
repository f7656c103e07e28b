// File: pin.go
// Role: InputPin (source) and OutputPin (sink) Component variants.
package circuit

import "fmt"

// InputPin is a source component: zero input slots, one output slot, and a
// Set method that drives the graph from outside. It can only be Set while
// its owning composite (if any) is not frozen.
type InputPin struct {
	base
}

// NewInputPin constructs an InputPin at Low, with zero downstream branches.
func NewInputPin(id string) *InputPin {
	return &InputPin{base: newBase(id, 0, 1)}
}

func (p *InputPin) Kind() Kind { return KindInputPin }

// Set drives the pin's output slot 0 to level, propagating only if the
// level actually changed; setting the same level twice is a no-op the
// second time. Fails with ErrNotChangeable once absorbed into a composite.
func (p *InputPin) Set(level Signal) error {
	if !p.Changeable() {
		return fmt.Errorf("circuit: %s: %w", p.id, ErrNotChangeable)
	}
	return p.forceSet(level, false)
}

// forceSet is Set without the Changeable guard: used by CompositeGate.WakeUp
// to drive the inner InputPin that backs one of the composite's own input
// slots.
func (p *InputPin) forceSet(level Signal, propagateChangeable bool) error {
	p.mu.Lock()
	changed := p.outs[0].level != level
	p.outs[0].level = level
	p.mu.Unlock()

	if !changed && !propagateChangeable {
		return nil
	}
	if propagateChangeable {
		p.setChangeable(false)
	}
	for _, br := range p.downstream(0) {
		if err := br.propagate(level, propagateChangeable); err != nil {
			return err
		}
	}
	return nil
}

// WakeUp is unreachable in normal operation: InputPin has zero input slots,
// so nothing upstream ever calls it. Returning ErrSlotOutOfRange documents
// that rather than panicking on programmer error.
func (p *InputPin) WakeUp(_ Signal, slot int, _ bool) error {
	return fmt.Errorf("circuit: %s: input slot %d: %w", p.id, slot, ErrSlotOutOfRange)
}

// Destroy disconnects every downstream Branch. Must not be called while
// Changeable is false.
func (p *InputPin) Destroy() error {
	if !p.Changeable() {
		return fmt.Errorf("circuit: %s: %w", p.id, ErrNotChangeable)
	}
	for _, br := range p.downstream(0) {
		br.tearDown()
	}
	return nil
}

func (p *InputPin) freeze() { p.setChangeable(false) }

// OutputPin is a sink component: one input slot, one output slot. The
// output slot exists so an OutputPin that belongs to a CompositeGate can
// itself drive branches in whatever circuit the composite is embedded in.
type OutputPin struct {
	base
}

// NewOutputPin constructs an OutputPin at Low with no incoming branch.
func NewOutputPin(id string) *OutputPin {
	return &OutputPin{base: newBase(id, 1, 1)}
}

func (p *OutputPin) Kind() Kind { return KindOutputPin }

// WakeUp forwards the incoming level unchanged to the pin's own output
// slot, propagating only on actual change (or unconditionally, marking
// Changeable false, when propagateChangeable sweeps a freezing composite).
func (p *OutputPin) WakeUp(level Signal, slot int, propagateChangeable bool) error {
	if slot != 0 {
		return fmt.Errorf("circuit: %s: input slot %d: %w", p.id, slot, ErrSlotOutOfRange)
	}
	p.mu.Lock()
	p.ins[0].level = level
	changed := p.outs[0].level != level
	p.outs[0].level = level
	p.mu.Unlock()

	if !changed && !propagateChangeable {
		return nil
	}
	if propagateChangeable {
		p.setChangeable(false)
	}
	for _, br := range p.downstream(0) {
		if err := br.propagate(level, propagateChangeable); err != nil {
			return err
		}
	}
	return nil
}

// Destroy clears its incoming branch reference and disconnects every
// downstream Branch. Must not be called while Changeable is false.
func (p *OutputPin) Destroy() error {
	if !p.Changeable() {
		return fmt.Errorf("circuit: %s: %w", p.id, ErrNotChangeable)
	}
	for _, br := range p.downstream(0) {
		br.tearDown()
	}
	p.mu.Lock()
	p.ins[0].branch = nil
	p.mu.Unlock()
	return nil
}

func (p *OutputPin) freeze() { p.setChangeable(false) }
