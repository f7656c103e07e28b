package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlogic/editor"
)

type denyConfirmer struct{}

func (denyConfirmer) ConfirmClose(*editor.Editor) bool { return false }

func TestRegistryCloseCleanEditorNeedsNoConfirmer(t *testing.T) {
	r := editor.NewRegistry()
	e := editor.NewEditor()
	r.Open(e)
	require.Len(t, r.Editors(), 1)

	closed, err := r.Close(e, nil)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Len(t, r.Editors(), 0)
}

func TestRegistryCloseDirtyEditorAsksConfirmer(t *testing.T) {
	r := editor.NewRegistry()
	e := editor.NewEditor()
	r.Open(e)
	e.FileInfo().MarkDirty()

	closed, err := r.Close(e, denyConfirmer{})
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Len(t, r.Editors(), 1)

	closed, err = r.Close(e, editor.AlwaysConfirm{})
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Len(t, r.Editors(), 0)
}

func TestRegistryCloseUnknownEditor(t *testing.T) {
	r := editor.NewRegistry()
	e := editor.NewEditor()
	_, err := r.Close(e, nil)
	assert.ErrorIs(t, err, editor.ErrUnknownEditor)
}
