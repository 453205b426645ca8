package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// BuildEntryBox creates one entry, one label and one horizontal row per name.
// The three slices are index-aligned with names.
func BuildEntryBox(names []string) ([]*widget.Entry, []*widget.Label, []*fyne.Container) {
	n := len(names)
	entries := make([]*widget.Entry, n)
	labels := make([]*widget.Label, n)
	rows := make([]*fyne.Container, n)

	for i, name := range names {
		entries[i] = widget.NewEntry()
		labels[i] = widget.NewLabel(name)
		rows[i] = container.NewHBox(labels[i], entries[i])
	}

	return entries, labels, rows
}

// RowSpacing separates the stacked rows and buttons.
const RowSpacing float32 = 10

// FormPanel stacks the entry rows above the two form actions
type FormPanel struct {
	container      *fyne.Container
	entries        []*widget.Entry
	labels         []*widget.Label
	rows           []*fyne.Container
	generateButton *widget.Button
	findButton     *widget.Button

	generateHandler func()
	findHandler     func()
}

// NewFormPanel creates a form panel for the given field names
func NewFormPanel(names []string) *FormPanel {
	fp := &FormPanel{}
	fp.createComponents(names)
	fp.buildLayout()
	fp.setupEventHandlers()
	return fp
}

func (fp *FormPanel) createComponents(names []string) {
	fp.entries, fp.labels, fp.rows = BuildEntryBox(names)

	fp.generateButton = widget.NewButton("Generate INI file", nil)
	fp.generateButton.Importance = widget.HighImportance

	fp.findButton = widget.NewButton("Find INI file", nil)
}

func (fp *FormPanel) buildLayout() {
	display := container.New(layout.NewCustomPaddedVBoxLayout(RowSpacing))
	for _, row := range fp.rows {
		display.Add(row)
	}
	display.Add(fp.generateButton)
	display.Add(fp.findButton)

	fp.container = display
}

func (fp *FormPanel) setupEventHandlers() {
	fp.generateButton.OnTapped = func() {
		if fp.generateHandler != nil {
			fp.generateHandler()
		}
	}

	fp.findButton.OnTapped = func() {
		if fp.findHandler != nil {
			fp.findHandler()
		}
	}
}

// SetGenerateHandler sets the handler for the generate button
func (fp *FormPanel) SetGenerateHandler(handler func()) {
	fp.generateHandler = handler
}

// SetFindHandler sets the handler for the find file button
func (fp *FormPanel) SetFindHandler(handler func()) {
	fp.findHandler = handler
}

// Texts returns the current text of every entry in field order
func (fp *FormPanel) Texts() []string {
	texts := make([]string, len(fp.entries))
	for i, entry := range fp.entries {
		texts[i] = entry.Text
	}
	return texts
}

func (fp *FormPanel) Entries() []*widget.Entry {
	return fp.entries
}

func (fp *FormPanel) Labels() []*widget.Label {
	return fp.labels
}

func (fp *FormPanel) Rows() []*fyne.Container {
	return fp.rows
}

func (fp *FormPanel) GenerateButton() *widget.Button {
	return fp.generateButton
}

func (fp *FormPanel) FindButton() *widget.Button {
	return fp.findButton
}

// GetContainer returns the panel container
func (fp *FormPanel) GetContainer() *fyne.Container {
	return fp.container
}
