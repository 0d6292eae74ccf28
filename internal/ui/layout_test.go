package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `
window:
  title: Build Studio
  width: 1280
  height: 800
nodes:
  - kind: viewport
    id: viewport3d
  - kind: panel
    id: sidebar
    class: panel
    children:
      - kind: label
        class: heading
        text: Build Sequence
      - kind: list
        id: build_step_list
      - kind: button
        id: btn_add_step
        text: Add Step
      - kind: field
        id: le_spotsize
      - kind: checkbox
        id: enable_heatbalance
        text: Heat Balance
`

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)
	assert.Equal(t, "Build Studio", l.Window.Title)
	assert.Equal(t, int32(1280), l.Window.Width)
	require.Len(t, l.Nodes, 2)
	assert.Equal(t, KindViewport, l.Nodes[0].Kind)
	assert.Len(t, l.Nodes[1].Children, 5)
}

func TestParseLayoutRejectsUnknownFields(t *testing.T) {
	_, err := ParseLayout([]byte("window:\n  titel: oops\nnodes:\n  - kind: panel\n"))
	assert.Error(t, err)
}

func TestParseLayoutRejectsUnknownKind(t *testing.T) {
	_, err := ParseLayout([]byte("nodes:\n  - kind: slider\n    id: s\n"))
	assert.Error(t, err)
}

func TestParseLayoutRejectsDuplicateIDs(t *testing.T) {
	_, err := ParseLayout([]byte("nodes:\n  - kind: panel\n    id: p\n  - kind: panel\n    id: p\n"))
	assert.Error(t, err)
}

func TestParseLayoutRejectsEmpty(t *testing.T) {
	_, err := ParseLayout([]byte("window:\n  title: x\n"))
	assert.Error(t, err)
	_, err = ParseLayout([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestEngineLookupAndHandlers(t *testing.T) {
	l, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)
	sheet, err := ParseCSS(`.panel { left: 900; top: 0; width: 380; height: 800; }`)
	require.NoError(t, err)

	e, err := NewEngine(sheet, l.Nodes, l.Window.Width, l.Window.Height)
	require.NoError(t, err)

	n, err := e.Lookup("btn_add_step")
	require.NoError(t, err)
	assert.Equal(t, KindButton, n.Kind)

	_, err = e.Lookup("btn_missing")
	assert.Error(t, err)

	require.NoError(t, e.OnClick("btn_add_step", func() {}))
	require.NoError(t, e.OnToggle("enable_heatbalance", func(bool) {}))
	require.NoError(t, e.OnSubmit("le_spotsize", func(string) {}))
	require.NoError(t, e.OnSelect("build_step_list", func(int) {}))
	assert.Error(t, e.OnClick("nope", func() {}))
}

func TestEngineLayoutBounds(t *testing.T) {
	l, err := ParseLayout([]byte(sampleLayout))
	require.NoError(t, err)
	sheet, err := ParseCSS(`
#sidebar { left: 900; top: 10; width: 380; height: 780; }
#build_step_list { left: 12; top: 40; width: 356; height: 300; }
`)
	require.NoError(t, err)

	e, err := NewEngine(sheet, l.Nodes, l.Window.Width, l.Window.Height)
	require.NoError(t, err)

	sidebar, err := e.Lookup("sidebar")
	require.NoError(t, err)
	assert.Equal(t, float32(900), sidebar.Bounds.X)
	assert.Equal(t, float32(10), sidebar.Bounds.Y)

	// Children are positioned relative to their parent.
	list, err := e.Lookup("build_step_list")
	require.NoError(t, err)
	assert.Equal(t, float32(912), list.Bounds.X)
	assert.Equal(t, float32(50), list.Bounds.Y)
	assert.Equal(t, float32(356), list.Bounds.Width)

	// Fresh lists start with no selection.
	assert.Equal(t, -1, list.Selected)
}

func TestSetItemsClampsSelection(t *testing.T) {
	n := NewNode(KindList, "", "steps", "")
	n.SetItems([]string{"a", "b", "c"})
	n.Selected = 2
	n.SetItems([]string{"a"})
	assert.Equal(t, 0, n.Selected)
	n.SetItems(nil)
	assert.Equal(t, -1, n.Selected)
}

func TestFormDialogResolvesRowIDs(t *testing.T) {
	sheet := &Stylesheet{}
	e, err := NewFormDialog(sheet, 1280, 800, "Edit Build Step", []FormRow{
		{Label: "Repetitions:", ID: "repetitions", Kind: KindField, Value: "1"},
		{Label: "Hatching", ID: "hatch_enabled", Kind: KindCheckbox, Checked: true},
	})
	require.NoError(t, err)

	reps, err := e.Lookup("repetitions")
	require.NoError(t, err)
	assert.Equal(t, "1", reps.Text)

	hatch, err := e.Lookup("hatch_enabled")
	require.NoError(t, err)
	assert.True(t, hatch.Checked)

	for _, id := range []string{DialogOK, DialogCancel, DialogMessage} {
		_, err := e.Lookup(id)
		assert.NoError(t, err, id)
	}

	// Dialog panel is centered.
	ok, err := e.Lookup(DialogOK)
	require.NoError(t, err)
	assert.Greater(t, ok.Bounds.X, float32(0))
}

func TestNoticeAndConfirm(t *testing.T) {
	sheet := &Stylesheet{}
	notice, err := NewNotice(sheet, 800, 600, "Please select a build step to edit.")
	require.NoError(t, err)
	_, err = notice.Lookup(DialogOK)
	assert.NoError(t, err)
	_, err = notice.Lookup(DialogCancel)
	assert.Error(t, err) // notices have no cancel button

	confirm, err := NewConfirm(sheet, 800, 600, "Delete this build step?")
	require.NoError(t, err)
	_, err = confirm.Lookup(DialogOK)
	assert.NoError(t, err)
	_, err = confirm.Lookup(DialogCancel)
	assert.NoError(t, err)
}
