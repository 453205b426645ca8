package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntryBoxAlignsWithNames(t *testing.T) {
	test.NewTempApp(t)

	for _, names := range [][]string{
		{"Temperature"},
		{"Temperature", "Operating System"},
		{"a", "b", "a", "c"},
	} {
		entries, labels, rows := BuildEntryBox(names)

		require.Len(t, entries, len(names))
		require.Len(t, labels, len(names))
		require.Len(t, rows, len(names))
		for i, name := range names {
			assert.Equal(t, name, labels[i].Text)
			require.Len(t, rows[i].Objects, 2)
			assert.Same(t, labels[i], rows[i].Objects[0])
			assert.Same(t, entries[i], rows[i].Objects[1])
		}
	}
}

func TestBuildEntryBoxEmpty(t *testing.T) {
	test.NewTempApp(t)

	entries, labels, rows := BuildEntryBox(nil)
	assert.Empty(t, entries)
	assert.Empty(t, labels)
	assert.Empty(t, rows)
}

func TestFormPanelLayoutAndTexts(t *testing.T) {
	test.NewTempApp(t)

	panel := NewFormPanel([]string{"Temperature", "Operating System"})
	objects := panel.GetContainer().Objects

	require.Len(t, objects, 4)
	assert.Same(t, panel.Rows()[0], objects[0])
	assert.Same(t, panel.Rows()[1], objects[1])
	assert.Same(t, panel.GenerateButton(), objects[2])
	assert.Same(t, panel.FindButton(), objects[3])
	assert.Equal(t, "Generate INI file", panel.GenerateButton().Text)
	assert.Equal(t, "Find INI file", panel.FindButton().Text)

	panel.Entries()[0].SetText("200")
	panel.Entries()[1].SetText("Linux")
	assert.Equal(t, []string{"200", "Linux"}, panel.Texts())
}

func TestFormPanelHandlers(t *testing.T) {
	test.NewTempApp(t)

	panel := NewFormPanel([]string{"Temperature"})
	test.Tap(panel.GenerateButton())

	var generated, found int
	panel.SetGenerateHandler(func() { generated++ })
	panel.SetFindHandler(func() { found++ })

	test.Tap(panel.GenerateButton())
	test.Tap(panel.FindButton())
	test.Tap(panel.FindButton())

	assert.Equal(t, 1, generated)
	assert.Equal(t, 2, found)
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Generated 2 values")
	sb.SetFileInfo("/tmp/x.ini")
	assert.Equal(t, "Generated 2 values", sb.GetStatus())
	assert.Equal(t, "INI file: /tmp/x.ini", sb.GetFileInfo())

	sb.Reset()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "No INI file selected", sb.GetFileInfo())
}

func TestFormPanelRowSpacing(t *testing.T) {
	test.NewTempApp(t)

	panel := NewFormPanel([]string{"Temperature", "Operating System"})
	panel.GetContainer().Resize(fyne.NewSize(300, 400))

	first, second := panel.Rows()[0], panel.Rows()[1]
	gap := second.Position().Y - (first.Position().Y + first.Size().Height)
	assert.InDelta(t, 10, gap, 0.001)

	button := panel.GenerateButton()
	gap = button.Position().Y - (second.Position().Y + second.Size().Height)
	assert.InDelta(t, 10, gap, 0.001)
}
