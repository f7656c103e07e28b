// File: gate.go
// Role: PrimitiveGate (fixed-arity combinational function) and the
// GateRegistry that looks up combinational functions by kind string,
// so new gate kinds can be registered without touching Branch/WakeUp.
package circuit

import (
	"fmt"
	"sort"
	"sync"
)

// GateFunc computes a gate's output levels from its current input levels.
// Implementations must be pure and total for the declared arity.
type GateFunc func(ins []Signal) []Signal

// GateSpec describes one registered combinational-function kind: its arity
// bounds (MaxInputs == 0 means unbounded) and the function itself.
type GateSpec struct {
	Kind       string
	MinInputs  int
	MaxInputs  int // 0 = unbounded
	NumOutputs int
	Fn         GateFunc
}

func (s GateSpec) validateArity(n int) error {
	if n < s.MinInputs || (s.MaxInputs > 0 && n > s.MaxInputs) {
		return fmt.Errorf("circuit: gate kind %q: arity %d out of range [%d,%d]: %w",
			s.Kind, n, s.MinInputs, s.MaxInputs, ErrUnknownGateKind)
	}
	return nil
}

// GateRegistry maps gate kind strings ("AND", "OR", "NOT", ...) to their
// GateSpec. A fresh registry is pre-populated with the classic
// combinational kinds: AND, OR, NOT, NAND, NOR, XOR, XNOR.
type GateRegistry struct {
	mu    sync.RWMutex
	specs map[string]GateSpec
}

// NewGateRegistry returns a registry pre-loaded with the built-in kinds.
func NewGateRegistry() *GateRegistry {
	r := &GateRegistry{specs: make(map[string]GateSpec)}
	for _, s := range builtinGateSpecs() {
		r.specs[s.Kind] = s
	}
	return r
}

// Register adds or replaces a GateSpec under spec.Kind.
func (r *GateRegistry) Register(spec GateSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.Kind] = spec
}

// Spec looks up a registered GateSpec by kind.
func (r *GateRegistry) Spec(kind string) (GateSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[kind]
	if !ok {
		return GateSpec{}, fmt.Errorf("circuit: %q: %w", kind, ErrUnknownGateKind)
	}
	return s, nil
}

// Kinds returns the registered kind strings, sorted; used by the
// requirement layer to offer an enumerated create-dialog option list.
func (r *GateRegistry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.specs))
	for k := range r.specs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func builtinGateSpecs() []GateSpec {
	and := func(ins []Signal) []Signal {
		for _, in := range ins {
			if in == Low {
				return []Signal{Low}
			}
		}
		return []Signal{High}
	}
	or := func(ins []Signal) []Signal {
		for _, in := range ins {
			if in == High {
				return []Signal{High}
			}
		}
		return []Signal{Low}
	}
	not := func(ins []Signal) []Signal {
		return []Signal{FromBool(ins[0] == Low)}
	}
	nand := func(ins []Signal) []Signal { return []Signal{FromBool(and(ins)[0] == Low)} }
	nor := func(ins []Signal) []Signal { return []Signal{FromBool(or(ins)[0] == Low)} }
	xor := func(ins []Signal) []Signal {
		odd := false
		for _, in := range ins {
			if in == High {
				odd = !odd
			}
		}
		return []Signal{FromBool(odd)}
	}
	xnor := func(ins []Signal) []Signal { return []Signal{FromBool(xor(ins)[0] == Low)} }

	return []GateSpec{
		{Kind: "AND", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: and},
		{Kind: "OR", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: or},
		{Kind: "NOT", MinInputs: 1, MaxInputs: 1, NumOutputs: 1, Fn: not},
		{Kind: "NAND", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: nand},
		{Kind: "NOR", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: nor},
		{Kind: "XOR", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: xor},
		{Kind: "XNOR", MinInputs: 2, MaxInputs: 0, NumOutputs: 1, Fn: xnor},
	}
}

// PrimitiveGate is a fixed-arity combinational function over its inputs: it
// recomputes all outputs whenever any input arrives.
type PrimitiveGate struct {
	base
	gateKind string
	fn       GateFunc
}

// NewPrimitiveGate constructs a PrimitiveGate of the given kind and input
// arity, looking up its combinational function in registry.
func NewPrimitiveGate(id, kind string, arity int, registry *GateRegistry) (*PrimitiveGate, error) {
	spec, err := registry.Spec(kind)
	if err != nil {
		return nil, err
	}
	if err := spec.validateArity(arity); err != nil {
		return nil, err
	}
	g := &PrimitiveGate{
		base:     newBase(id, arity, spec.NumOutputs),
		gateKind: kind,
		fn:       spec.Fn,
	}
	// Prime the outputs from the all-Low default input state so Active()
	// reflects the gate's function before any upstream WakeUp arrives.
	ins := make([]Signal, arity)
	outs := g.fn(ins)
	for i, lvl := range outs {
		g.outs[i].level = lvl
	}
	return g, nil
}

func (g *PrimitiveGate) Kind() Kind       { return KindPrimitiveGate }
func (g *PrimitiveGate) GateKind() string { return g.gateKind }

// WakeUp sets the incoming slot and recomputes every output, forwarding to
// downstream branches on each output slot whose level actually changed.
func (g *PrimitiveGate) WakeUp(level Signal, slot int, propagateChangeable bool) error {
	g.mu.Lock()
	if slot < 0 || slot >= len(g.ins) {
		g.mu.Unlock()
		return fmt.Errorf("circuit: %s: input slot %d: %w", g.id, slot, ErrSlotOutOfRange)
	}
	g.ins[slot].level = level

	ins := make([]Signal, len(g.ins))
	for i := range g.ins {
		ins[i] = g.ins[i].level
	}
	newOuts := g.fn(ins)

	type change struct {
		slot  int
		level Signal
	}
	var changed []change
	for i, lvl := range newOuts {
		if g.outs[i].level != lvl || propagateChangeable {
			changed = append(changed, change{i, lvl})
		}
		g.outs[i].level = lvl
	}
	g.mu.Unlock()

	if propagateChangeable {
		g.setChangeable(false)
	}
	for _, c := range changed {
		for _, br := range g.downstream(c.slot) {
			if err := br.propagate(c.level, propagateChangeable); err != nil {
				return err
			}
		}
	}
	return nil
}

// Destroy clears every incoming branch reference and disconnects every
// downstream branch. Must not be called while Changeable is false.
func (g *PrimitiveGate) Destroy() error {
	if !g.Changeable() {
		return fmt.Errorf("circuit: %s: %w", g.id, ErrNotChangeable)
	}
	for slot := range g.outs {
		for _, br := range g.downstream(slot) {
			br.tearDown()
		}
	}
	g.mu.Lock()
	for i := range g.ins {
		g.ins[i].branch = nil
	}
	g.mu.Unlock()
	return nil
}

func (g *PrimitiveGate) freeze() { g.setChangeable(false) }
