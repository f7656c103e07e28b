// File: editor.go
// Role: Editor, the live circuit plus its undo/redo history. Owns exactly
// one circuit.Graph and implements command.GraphContext directly, so every
// Command binds straight to the Editor driving it.
package editor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/command"
	"github.com/katalvlaran/lvlogic/idgen"
)

// Option configures a new Editor: a small set of functional options
// resolved left-to-right at construction time rather than a config struct
// callers build by hand.
type Option func(*Editor)

// WithStatusBar attaches status to the Editor in place of the default
// NopStatusBar.
func WithStatusBar(status StatusBar) Option {
	return func(e *Editor) { e.status = status }
}

// WithGateRegistry swaps in a pre-populated circuit.GateRegistry (e.g. one
// with extra registered GateSpecs) in place of a fresh
// circuit.NewGateRegistry().
func WithGateRegistry(r *circuit.GateRegistry) Option {
	return func(e *Editor) { e.gates = r }
}

// Editor is one live circuit: its signal graph, its selectable component
// templates, its past/future command.Command history, its FileInfo, and
// its status sink. All structural graph mutation happens only
// through Execute/Undo/Redo/Clear.
type Editor struct {
	graph  *circuit.Graph
	gates  *circuit.GateRegistry
	info   *FileInfo
	status StatusBar

	mu      sync.Mutex
	past    []command.Command
	future  []command.Command
	// templates holds every selectable CreateCommand-shaped component
	// type: the built-in pin/gate/branch templates plus any composite-gate
	// template registered via AddCreateCommand. Never executed directly;
	// callers Clone() an entry before filling its requirements.
	templates map[string]command.Command
	order     []string
}

// NewEditor returns a fresh, empty Editor pre-loaded with the built-in
// component templates (InputPin, OutputPin, Branch, and one per registered
// GateRegistry kind).
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		graph:     circuit.NewGraph(),
		gates:     circuit.NewGateRegistry(),
		info:      &FileInfo{},
		status:    NopStatusBar{},
		templates: make(map[string]command.Command),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerBuiltinTemplates()
	return e
}

func (e *Editor) registerBuiltinTemplates() {
	e.addTemplate("InputPin", command.NewCreateInputPin(idgen.NewCounter(idgen.SequentialGenerator("I"))))
	e.addTemplate("OutputPin", command.NewCreateOutputPin(idgen.NewCounter(idgen.SequentialGenerator("O"))))
	e.addTemplate("Branch", command.NewCreateBranch(idgen.NewCounter(idgen.SequentialGenerator("b"))))
	for _, kind := range e.gates.Kinds() {
		e.addTemplate(kind, command.NewCreatePrimitiveGate(idgen.NewCounter(idgen.SequentialGenerator(kind)), kind))
	}
}

func (e *Editor) addTemplate(name string, cmd command.Command) {
	if _, exists := e.templates[name]; !exists {
		e.order = append(e.order, name)
	}
	e.templates[name] = cmd
}

// Graph returns the editor's live circuit.Graph. Implements
// command.GraphContext.
func (e *Editor) Graph() *circuit.Graph { return e.graph }

// GateRegistry returns the editor's circuit.GateRegistry. Implements
// command.GraphContext.
func (e *Editor) GateRegistry() *circuit.GateRegistry { return e.gates }

// FileInfo returns the editor's current filename + dirty bit.
func (e *Editor) FileInfo() *FileInfo { return e.info }

// Status reports through the editor's attached StatusBar.
func (e *Editor) Status() StatusBar { return e.status }

// Template returns a fresh clone of the named component template, bound
// to this editor and ready to have its requirements filled, or
// ErrUnknownTemplate if name was never registered.
func (e *Editor) Template(name string) (command.Command, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tpl, ok := e.templates[name]
	if !ok {
		return nil, fmt.Errorf("editor: %s: %w", name, ErrUnknownTemplate)
	}
	cmd := tpl.Clone()
	cmd.Context(e)
	return cmd, nil
}

// TemplateNames returns every registered template name, sorted, for the
// requirement layer to offer as a create-dialog enumeration.
func (e *Editor) TemplateNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]string(nil), e.order...)
	sort.Strings(out)
	return out
}

// AddCreateCommand registers a user-defined composite-gate template under
// name so it becomes selectable as a new component type. It does NOT
// execute cmd: opening a file as a component template must leave the live
// editor untouched.
func (e *Editor) AddCreateCommand(name string, cmd command.Command) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addTemplate(name, cmd)
}

// Execute runs cmd against this editor, pushes it onto the past stack, and
// clears the future stack. Requires cmd.CanExecute(); callers that
// skip this check get ErrRequirementUnfulfilled-shaped behaviour from the
// action layer instead, never a partial mutation.
func (e *Editor) Execute(cmd command.Command) error {
	if !cmd.CanExecute() {
		return fmt.Errorf("editor: execute %s: %w", cmd, command.ErrRequirementUnfulfilled)
	}
	cmd.Context(e)
	if err := cmd.Execute(); err != nil {
		return err
	}
	e.mu.Lock()
	e.past = append(e.past, cmd)
	e.future = nil
	e.mu.Unlock()
	e.info.MarkDirty()
	return nil
}

// Undo pops the most recent command off the past stack, unexecutes it, and
// pushes it onto the future stack. No-op on an empty past stack.
func (e *Editor) Undo() error {
	e.mu.Lock()
	if len(e.past) == 0 {
		e.mu.Unlock()
		return ErrEmptyHistory
	}
	cmd := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]
	e.mu.Unlock()

	if err := cmd.Unexecute(); err != nil {
		return err
	}
	e.mu.Lock()
	e.future = append(e.future, cmd)
	e.mu.Unlock()
	e.info.MarkDirty()
	return nil
}

// Redo pops the most recently undone command off the future stack and
// re-executes it, symmetric to Undo.
func (e *Editor) Redo() error {
	e.mu.Lock()
	if len(e.future) == 0 {
		e.mu.Unlock()
		return ErrEmptyHistory
	}
	cmd := e.future[len(e.future)-1]
	e.future = e.future[:len(e.future)-1]
	e.mu.Unlock()

	if err := cmd.Execute(); err != nil {
		return err
	}
	e.mu.Lock()
	e.past = append(e.past, cmd)
	e.mu.Unlock()
	e.info.MarkDirty()
	return nil
}

// Clear destroys every component in the graph and empties both history
// stacks.
func (e *Editor) Clear() {
	e.graph.Clear()
	e.mu.Lock()
	e.past = nil
	e.future = nil
	e.mu.Unlock()
	e.info.MarkDirty()
}

// PastLen and FutureLen expose the two stack depths without exposing the
// stacks themselves.
func (e *Editor) PastLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.past)
}

func (e *Editor) FutureLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.future)
}

// History returns a snapshot of the past-stack commands, oldest first, for
// persistence to walk when saving.
func (e *Editor) History() []command.Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]command.Command, len(e.past))
	copy(out, e.past)
	return out
}
