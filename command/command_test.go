package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlogic/circuit"
	"github.com/katalvlaran/lvlogic/command"
	"github.com/katalvlaran/lvlogic/idgen"
)

type testCtx struct {
	g *circuit.Graph
	r *circuit.GateRegistry
}

func (t *testCtx) Graph() *circuit.Graph               { return t.g }
func (t *testCtx) GateRegistry() *circuit.GateRegistry { return t.r }

func newTestCtx() *testCtx {
	return &testCtx{g: circuit.NewGraph(), r: circuit.NewGateRegistry()}
}

func bind(cmd command.Command, ctx command.GraphContext) {
	cmd.Context(ctx)
}

func TestCreateAndDeleteRoundTrip(t *testing.T) {
	ctx := newTestCtx()
	ids := idgen.NewCounter(idgen.SequentialGenerator("i"))

	in := command.NewCreateInputPin(ids)
	bind(in, ctx)
	require.True(t, in.CanExecute())
	require.NoError(t, in.Execute())

	out := command.NewCreateOutputPin(ids)
	bind(out, ctx)
	require.NoError(t, out.Execute())

	branch := command.NewCreateBranch(ids)
	bind(branch, ctx)
	require.NoError(t, branch.Requirements().Set("source", "i0"))
	require.NoError(t, branch.Requirements().Set("outSlot", 0))
	require.NoError(t, branch.Requirements().Set("sink", "i1"))
	require.NoError(t, branch.Requirements().Set("inSlot", 0))
	require.True(t, branch.CanExecute())
	require.NoError(t, branch.Execute())

	assert.Len(t, ctx.g.Components(), 2)

	del := command.NewDeleteCommand()
	bind(del, ctx)
	require.NoError(t, del.Requirements().Set("target", "i1"))
	require.NoError(t, del.Execute())
	assert.Len(t, ctx.g.Components(), 1)

	require.NoError(t, del.Unexecute())
	assert.Len(t, ctx.g.Components(), 2)
	_, err := ctx.g.Component("i1")
	require.NoError(t, err)

	require.NoError(t, branch.Unexecute())
	require.NoError(t, out.Unexecute())
	require.NoError(t, in.Unexecute())
	assert.Len(t, ctx.g.Components(), 0)
}

func TestCreateCommandCloneSharesIDSequence(t *testing.T) {
	ctx := newTestCtx()
	ids := idgen.NewCounter(idgen.SequentialGenerator("g"))
	template := command.NewCreatePrimitiveGate(ids, "AND")
	require.NoError(t, template.Requirements().Set("arity", 2))

	first := template.Clone()
	bind(first, ctx)
	require.NoError(t, first.Execute())

	second := template.Clone()
	bind(second, ctx)
	require.NoError(t, second.Execute())

	comps := ctx.g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, "g0", comps[0].ID())
	assert.Equal(t, "g1", comps[1].ID())
}

func TestRequirementUnfulfilledRejectsCanExecute(t *testing.T) {
	ids := idgen.NewCounter(idgen.SequentialGenerator("g"))
	cmd := command.NewCreatePrimitiveGate(ids, "AND")
	assert.False(t, cmd.CanExecute())
}

// andGateScript is the recorded construction history for a two-input AND
// gate: two InputPins, one AND PrimitiveGate, one OutputPin, and three
// Branches wiring them — exactly what an editor's past stack would hold
// after a user builds this circuit interactively.
func andGateScript() []command.Record {
	return []command.Record{
		{Op: command.OpCreateInputPin, ID: "i0"},
		{Op: command.OpCreateInputPin, ID: "i1"},
		{Op: command.OpCreatePrimitiveGate, ID: "g0", GateKind: "AND", Arity: 2},
		{Op: command.OpCreateOutputPin, ID: "o0"},
		{Op: command.OpCreateBranch, ID: "b0", Source: "i0", OutSlot: 0, Sink: "g0", InSlot: 0},
		{Op: command.OpCreateBranch, ID: "b1", Source: "i1", OutSlot: 0, Sink: "g0", InSlot: 1},
		{Op: command.OpCreateBranch, ID: "b2", Source: "g0", OutSlot: 0, Sink: "o0", InSlot: 0},
	}
}

func TestCreateGateCommandBuildsComposite(t *testing.T) {
	ctx := newTestCtx()
	gateCmd := command.NewCreateGateCommand(andGateScript(), "AND2")
	bind(gateCmd, ctx)
	require.True(t, gateCmd.CanExecute())
	require.NoError(t, gateCmd.Execute())

	comps := ctx.g.Components()
	require.Len(t, comps, 1)
	composite := comps[0]
	assert.Equal(t, circuit.KindCompositeGate, composite.Kind())
	assert.Equal(t, 2, composite.NumInputs())
	assert.Equal(t, 1, composite.NumOutputs())

	for _, tc := range []struct{ a, b, want circuit.Signal }{
		{circuit.Low, circuit.Low, circuit.Low},
		{circuit.High, circuit.Low, circuit.Low},
		{circuit.Low, circuit.High, circuit.Low},
		{circuit.High, circuit.High, circuit.High},
	} {
		require.NoError(t, composite.WakeUp(tc.a, 0, false))
		require.NoError(t, composite.WakeUp(tc.b, 1, false))
		got, err := composite.Active(0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "a=%v b=%v", tc.a, tc.b)
	}

	require.NoError(t, gateCmd.Unexecute())
	assert.Len(t, ctx.g.Components(), 0)
}

func TestCreateGateCommandInstancesAreIndependent(t *testing.T) {
	ctx := newTestCtx()
	template := command.NewCreateGateCommand(andGateScript(), "AND2")

	first := template.Clone()
	bind(first, ctx)
	require.NoError(t, first.Execute())

	second := template.Clone()
	bind(second, ctx)
	require.NoError(t, second.Execute())

	comps := ctx.g.Components()
	require.Len(t, comps, 2)
	assert.NotEqual(t, comps[0].ID(), comps[1].ID())
}

func TestRecordRoundTripReplaysDeterministically(t *testing.T) {
	ctx := newTestCtx()
	ids := idgen.NewCounter(idgen.SequentialGenerator("p"))

	original := command.NewCreateInputPin(ids)
	bind(original, ctx)
	require.NoError(t, original.Execute())

	rec, err := command.ToRecord(original)
	require.NoError(t, err)
	assert.Equal(t, "p0", rec.ID)

	replayCtx := newTestCtx()
	replayed, err := command.FromRecord(rec, idgen.NewCounter(nil))
	require.NoError(t, err)
	bind(replayed, replayCtx)
	require.NoError(t, replayed.Execute())

	_, err = replayCtx.g.Component("p0")
	require.NoError(t, err)
}
