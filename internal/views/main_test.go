package views

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainViewWiresButtons(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, []string{"Temperature", "Operating System"})

	var generated, found bool
	view.SetGenerateHandler(func() { generated = true })
	view.SetFindFileHandler(func() { found = true })

	test.Tap(view.FormPanel().GenerateButton())
	test.Tap(view.FormPanel().FindButton())

	assert.True(t, generated)
	assert.True(t, found)
}

func TestMainViewEntryTexts(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, []string{"Temperature", "Operating System"})
	entries := view.FormPanel().Entries()
	require.Len(t, entries, 2)

	entries[0].SetText("200")
	entries[1].SetText("Linux")

	assert.Equal(t, []string{"200", "Linux"}, view.EntryTexts())
	assert.NotNil(t, w.Content())
}

func TestMainViewStatus(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, []string{"Temperature"})
	view.UpdateStatus("Generated 1 value")
	view.SetSelectedFile("/tmp/x.ini")

	assert.Equal(t, "Generated 1 value", view.StatusBar().GetStatus())
	assert.Equal(t, "INI file: /tmp/x.ini", view.StatusBar().GetFileInfo())
}

func TestMainViewBorderWidth(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	view := NewMainView(w, []string{"Temperature", "Operating System"})
	w.Resize(fyne.NewSize(350, 400))

	assert.Equal(t, fyne.NewPos(10, 10), view.GetContainer().Position())
}
