// File: action.go
// Role: the Action contract, the Kind enumeration, the shared base every
// concrete action embeds, and the status/error boundary they all report
// through.
package action

import (
	goerrors "errors"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/command"
	"github.com/katalvlaran/lvlogic/editor"
	"github.com/katalvlaran/lvlogic/persistence"
	"github.com/katalvlaran/lvlogic/requirement"
)

// ErrNoContext indicates Execute was called before Context bound an editor.
var ErrNoContext = goerrors.New("action: no editor context bound")

// Kind enumerates the fixed action set.
type Kind uint8

const (
	KindCreate Kind = iota
	KindDelete
	KindSave
	KindOpen
	KindClear
	KindUndo
	KindRedo
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "CREATE"
	case KindDelete:
		return "DELETE"
	case KindSave:
		return "SAVE"
	case KindOpen:
		return "OPEN"
	case KindClear:
		return "CLEAR"
	case KindUndo:
		return "UNDO"
	case KindRedo:
		return "REDO"
	case KindHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Action is one parameterised operation. The host binds it to an editor,
// has the dialog collaborator fill Requirements (after AdjustRequirements
// recomputed any enumerated options), then calls Execute.
type Action interface {
	// Kind reports which member of the fixed action set this is.
	Kind() Kind
	// Requirements returns the named, typed slots the dialog must fill.
	Requirements() *requirement.Set
	// Context binds the editor this invocation will operate on.
	Context(e *editor.Editor)
	// AdjustRequirements recomputes enumerated options (e.g. the files
	// currently on disk) just before the dialog renders the slots.
	AdjustRequirements() error
	// Execute validates, performs the domain effect, reports a status, and
	// resets the action for reuse. It returns non-nil only for unexpected
	// failures the host should log; domain errors are reported through the
	// editor's StatusBar and swallowed.
	Execute() error
	// String is the dialog title.
	String() string
}

// New returns a fresh action value of the given kind. dir is the user-data
// directory Save/Open operate under; the other kinds ignore it.
func New(kind Kind, dir string) Action {
	switch kind {
	case KindCreate:
		return NewCreate()
	case KindDelete:
		return NewDelete()
	case KindSave:
		return NewSave(dir)
	case KindOpen:
		return NewOpen(dir)
	case KindClear:
		return NewClear()
	case KindUndo:
		return NewUndo()
	case KindRedo:
		return NewRedo()
	default:
		return NewHelp()
	}
}

// base carries what every action shares: its kind, dialog title,
// requirement set, and the transient editor context.
type base struct {
	kind Kind
	name string
	reqs *requirement.Set
	ed   *editor.Editor
}

func newBase(kind Kind, name string) base {
	return base{kind: kind, name: name, reqs: requirement.NewSet()}
}

func (b *base) Kind() Kind                      { return b.kind }
func (b *base) String() string                  { return b.name }
func (b *base) Requirements() *requirement.Set  { return b.reqs }
func (b *base) Context(e *editor.Editor)        { b.ed = e }
func (b *base) AdjustRequirements() error       { return nil }

// finish resets the action for reuse: requirement values cleared, editor
// context dropped.
func (b *base) finish() {
	b.reqs.Clear()
	b.ed = nil
}

// run is the shared Execute skeleton: context check, fulfilment check with
// a status report, the action-specific effect, and the reset in finish.
func (b *base) run(effect func(e *editor.Editor) error) error {
	e := b.ed
	if e == nil {
		return ErrNoContext
	}
	defer b.finish()
	if !b.reqs.Fulfilled() {
		e.Status().Push(editor.Status{Level: editor.LevelError, Message: b.name + ": requirements not fulfilled"})
		return nil
	}
	return effect(e)
}

// report classifies err at the action boundary: a domain error becomes a
// StatusBar message and is swallowed; anything else is wrapped with a
// stack trace and returned for the host to log. DuplicateID is a
// programming error and deliberately not in the domain list.
func report(e *editor.Editor, name string, err error) error {
	for _, domain := range []error{
		circuit.ErrMissingComponent,
		circuit.ErrMalformedBranch,
		circuit.ErrNotChangeable,
		circuit.ErrSlotOutOfRange,
		circuit.ErrUnknownGateKind,
		command.ErrRequirementUnfulfilled,
		editor.ErrUnknownTemplate,
		persistence.ErrFileNotFound,
		persistence.ErrFileCorrupted,
		persistence.ErrIncompatibleFile,
	} {
		if goerrors.Is(err, domain) {
			e.Status().Push(editor.Status{Level: editor.LevelError, Message: name + ": " + err.Error()})
			return nil
		}
	}
	return errors.Wrap(err, "action: "+name)
}

// success pushes a LevelSuccess message.
func success(e *editor.Editor, msg string) {
	e.Status().Push(editor.Status{Level: editor.LevelSuccess, Message: msg})
}

// info pushes a LevelInfo message ("nothing to do" and friends).
func info(e *editor.Editor, msg string) {
	e.Status().Push(editor.Status{Level: editor.LevelInfo, Message: msg})
}
