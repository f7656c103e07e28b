package action_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlogic/action"
	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/editor"
	"github.com/katalvlaran/lvlogic/persistence"
)

// newEditor returns an Editor with a recording status bar, so tests can
// observe what each action reported.
func newEditor(t *testing.T) (*editor.Editor, *editor.MemoryStatusBar) {
	t.Helper()
	status := editor.NewMemoryStatusBar()
	return editor.NewEditor(editor.WithStatusBar(status)), status
}

// buildANDCircuit drives a full I0, I1 -> AND(2) -> O0 build through the
// Create action, one command per invocation, reusing a single action value.
func buildANDCircuit(t *testing.T, e *editor.Editor) {
	t.Helper()
	create := action.NewCreate()

	steps := []struct {
		template string
		fill     map[string]interface{}
	}{
		{template: "InputPin"},
		{template: "InputPin"},
		{template: "AND", fill: map[string]interface{}{"arity": 2}},
		{template: "OutputPin"},
		{template: "Branch", fill: map[string]interface{}{"source": "I0", "outSlot": 0, "sink": "AND0", "inSlot": 0}},
		{template: "Branch", fill: map[string]interface{}{"source": "I1", "outSlot": 0, "sink": "AND0", "inSlot": 1}},
		{template: "Branch", fill: map[string]interface{}{"source": "AND0", "outSlot": 0, "sink": "O0", "inSlot": 0}},
	}
	for _, step := range steps {
		cmd, err := e.Template(step.template)
		require.NoError(t, err)
		for key, val := range step.fill {
			require.NoError(t, cmd.Requirements().Set(key, val))
		}
		create.Context(e)
		require.NoError(t, create.Requirements().Set("command", cmd))
		require.NoError(t, create.Execute())
	}
	require.Len(t, e.Graph().Components(), 4)
	require.Equal(t, 7, e.PastLen())
}

func setPin(t *testing.T, e *editor.Editor, id string, level circuit.Signal) {
	t.Helper()
	c, err := e.Graph().Component(id)
	require.NoError(t, err)
	require.NoError(t, c.(*circuit.InputPin).Set(level))
}

func activeLevel(t *testing.T, e *editor.Editor, id string) circuit.Signal {
	t.Helper()
	c, err := e.Graph().Component(id)
	require.NoError(t, err)
	lvl, err := c.Active(0)
	require.NoError(t, err)
	return lvl
}

func TestCreateActionRequirementUnfulfilled(t *testing.T) {
	e, status := newEditor(t)
	create := action.NewCreate()
	create.Context(e)

	require.NoError(t, create.Execute())
	assert.Equal(t, editor.LevelError, status.Last().Level)
	assert.Contains(t, status.Last().Message, "requirements not fulfilled")
	assert.Len(t, e.Graph().Components(), 0)
	assert.Equal(t, 0, e.PastLen())
}

func TestExecuteWithoutContext(t *testing.T) {
	create := action.NewCreate()
	assert.ErrorIs(t, create.Execute(), action.ErrNoContext)
}

func TestActionResetsAfterExecute(t *testing.T) {
	e, _ := newEditor(t)
	create := action.NewCreate()
	create.Context(e)

	cmd, err := e.Template("InputPin")
	require.NoError(t, err)
	require.NoError(t, create.Requirements().Set("command", cmd))
	require.NoError(t, create.Execute())

	// Requirements cleared and context dropped: the same value is reusable
	// but must be re-bound and re-filled first.
	assert.False(t, create.Requirements().Fulfilled())
	assert.ErrorIs(t, create.Execute(), action.ErrNoContext)
}

func TestDeleteActionRemovesComponent(t *testing.T) {
	e, status := newEditor(t)
	buildANDCircuit(t, e)

	del := action.NewDelete()
	del.Context(e)
	require.NoError(t, del.Requirements().Set("id", "O0"))
	require.NoError(t, del.Execute())
	assert.Equal(t, editor.LevelSuccess, status.Last().Level)
	assert.Len(t, e.Graph().Components(), 3)

	// Deleting it again: the ID no longer resolves; reported, not returned.
	del.Context(e)
	require.NoError(t, del.Requirements().Set("id", "O0"))
	require.NoError(t, del.Execute())
	assert.Equal(t, editor.LevelError, status.Last().Level)
	assert.Len(t, e.Graph().Components(), 3)
}

func TestUndoRedoActionsReportNothingToDo(t *testing.T) {
	e, status := newEditor(t)

	undo := action.NewUndo()
	undo.Context(e)
	require.NoError(t, undo.Execute())
	assert.Equal(t, editor.LevelInfo, status.Last().Level)
	assert.Equal(t, "Nothing to undo", status.Last().Message)

	redo := action.NewRedo()
	redo.Context(e)
	require.NoError(t, redo.Execute())
	assert.Equal(t, "Nothing to redo", status.Last().Message)
}

func TestUndoRedoActionsRoundTrip(t *testing.T) {
	e, status := newEditor(t)
	buildANDCircuit(t, e)

	undo := action.NewUndo()
	for i := 0; i < 7; i++ {
		undo.Context(e)
		require.NoError(t, undo.Execute())
		require.Equal(t, editor.LevelSuccess, status.Last().Level)
	}
	assert.Len(t, e.Graph().Components(), 0)

	redo := action.NewRedo()
	for i := 0; i < 7; i++ {
		redo.Context(e)
		require.NoError(t, redo.Execute())
	}
	assert.Len(t, e.Graph().Components(), 4)
	assert.Equal(t, 7, e.PastLen())
}

// TestSaveClearOpenRoundTrip: saving, clearing, and re-opening a circuit
// restores the component set and its behaviour.
func TestSaveClearOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e, status := newEditor(t)
	buildANDCircuit(t, e)

	save := action.NewSave(dir)
	save.Context(e)
	require.NoError(t, save.Requirements().Set("filename", "and"))
	require.NoError(t, save.Execute())
	assert.Equal(t, editor.LevelSuccess, status.Last().Level)
	assert.Equal(t, "and.scad", e.FileInfo().Filename())
	assert.False(t, e.FileInfo().Dirty())

	clear := action.NewClear()
	clear.Context(e)
	require.NoError(t, clear.Execute())
	assert.Len(t, e.Graph().Components(), 0)

	open := action.NewOpen(dir)
	open.Context(e)
	require.NoError(t, open.AdjustRequirements())
	require.NoError(t, open.Requirements().Set("filename", "and.scad"))
	require.NoError(t, open.Requirements().Set("mode", action.ModeCircuit))
	require.NoError(t, open.Requirements().Set("gatename", "and"))
	require.NoError(t, open.Execute())
	assert.Equal(t, editor.LevelSuccess, status.Last().Level)

	require.Len(t, e.Graph().Components(), 4)
	assert.Equal(t, 7, e.PastLen())
	assert.Equal(t, "and.scad", e.FileInfo().Filename())
	assert.False(t, e.FileInfo().Dirty())

	setPin(t, e, "I0", circuit.High)
	setPin(t, e, "I1", circuit.High)
	assert.Equal(t, circuit.High, activeLevel(t, e, "O0"))
}

// TestOpenComponentMode: the saved circuit becomes a selectable composite
// gate in another editor, behaving like the primitive it packages.
func TestOpenComponentMode(t *testing.T) {
	dir := t.TempDir()
	src, _ := newEditor(t)
	buildANDCircuit(t, src)

	save := action.NewSave(dir)
	save.Context(src)
	require.NoError(t, save.Requirements().Set("filename", "and"))
	require.NoError(t, save.Execute())

	dst, status := newEditor(t)
	open := action.NewOpen(dir)
	open.Context(dst)
	require.NoError(t, open.AdjustRequirements())
	require.NoError(t, open.Requirements().Set("filename", "and.scad"))
	require.NoError(t, open.Requirements().Set("mode", action.ModeComponent))
	require.NoError(t, open.Requirements().Set("gatename", "AND2"))
	require.NoError(t, open.Execute())
	assert.Equal(t, editor.LevelSuccess, status.Last().Level)

	// The live editor is untouched; only the template catalog grew.
	assert.Len(t, dst.Graph().Components(), 0)
	assert.Equal(t, 0, dst.PastLen())
	assert.Contains(t, dst.TemplateNames(), "AND2")

	// Instantiate AND2 between two fresh pins and drive its truth table.
	create := action.NewCreate()
	for _, tpl := range []string{"InputPin", "InputPin", "AND2", "OutputPin"} {
		cmd, err := dst.Template(tpl)
		require.NoError(t, err)
		create.Context(dst)
		require.NoError(t, create.Requirements().Set("command", cmd))
		require.NoError(t, create.Execute())
	}
	comps := dst.Graph().Components()
	require.Len(t, comps, 4)

	var compositeID string
	for _, c := range comps {
		if c.Kind() == circuit.KindCompositeGate {
			compositeID = c.ID()
		}
	}
	require.NotEmpty(t, compositeID)

	for i, wire := range []struct {
		source string
		out    int
		sink   string
		in     int
	}{
		{"I0", 0, compositeID, 0},
		{"I1", 0, compositeID, 1},
		{compositeID, 0, "O0", 0},
	} {
		cmd, err := dst.Template("Branch")
		require.NoError(t, err)
		require.NoError(t, cmd.Requirements().Set("source", wire.source))
		require.NoError(t, cmd.Requirements().Set("outSlot", wire.out))
		require.NoError(t, cmd.Requirements().Set("sink", wire.sink))
		require.NoError(t, cmd.Requirements().Set("inSlot", wire.in))
		create.Context(dst)
		require.NoError(t, create.Requirements().Set("command", cmd))
		require.NoError(t, create.Execute(), "branch %d", i)
	}

	for _, tc := range []struct{ a, b, want circuit.Signal }{
		{circuit.Low, circuit.Low, circuit.Low},
		{circuit.Low, circuit.High, circuit.Low},
		{circuit.High, circuit.Low, circuit.Low},
		{circuit.High, circuit.High, circuit.High},
	} {
		setPin(t, dst, "I0", tc.a)
		setPin(t, dst, "I1", tc.b)
		assert.Equal(t, tc.want, activeLevel(t, dst, "O0"))
	}
}

// TestOpenRefusesIncompatibleVersion: a frame with a future version byte is
// reported and leaves the editor untouched.
func TestOpenRefusesIncompatibleVersion(t *testing.T) {
	dir := t.TempDir()
	frame := []byte{persistence.StartByte, 2, 0, 0, 0, 0, persistence.EndByte}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "future.scad"), frame, 0o644))

	e, status := newEditor(t)
	buildANDCircuit(t, e)

	open := action.NewOpen(dir)
	open.Context(e)
	require.NoError(t, open.AdjustRequirements())
	require.NoError(t, open.Requirements().Set("filename", "future.scad"))
	require.NoError(t, open.Requirements().Set("mode", action.ModeCircuit))
	require.NoError(t, open.Requirements().Set("gatename", "future"))
	require.NoError(t, open.Execute())

	assert.Equal(t, editor.LevelError, status.Last().Level)
	assert.Contains(t, status.Last().Message, "newer")
	assert.Len(t, e.Graph().Components(), 4)
	assert.Equal(t, 7, e.PastLen())
}

// TestOpenMissingFile: an absent target is reported, not returned.
func TestOpenMissingFile(t *testing.T) {
	dir := t.TempDir()
	e, status := newEditor(t)

	open := action.NewOpen(dir)
	open.Context(e)
	require.NoError(t, open.Requirements().Set("mode", action.ModeCircuit))
	require.NoError(t, open.Requirements().Set("gatename", "x"))
	// "filename" stays empty-optioned: no files on disk, so the slot can
	// never be fulfilled and Execute reports rather than reads.
	require.NoError(t, open.Execute())
	assert.Equal(t, editor.LevelError, status.Last().Level)
}

func TestHelpAction(t *testing.T) {
	e, status := newEditor(t)
	help := action.New(action.KindHelp, "")
	help.Context(e)
	require.NoError(t, help.Execute())
	assert.Equal(t, editor.LevelInfo, status.Last().Level)
}

func TestNewFactoryKinds(t *testing.T) {
	for _, kind := range []action.Kind{
		action.KindCreate, action.KindDelete, action.KindSave, action.KindOpen,
		action.KindClear, action.KindUndo, action.KindRedo, action.KindHelp,
	} {
		a := action.New(kind, t.TempDir())
		assert.Equal(t, kind, a.Kind(), kind.String())
	}
}
