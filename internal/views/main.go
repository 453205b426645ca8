package views

import (
	"fmt"

	"ini-generator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
)

// BorderWidth is the gap between the window edge and its content.
const BorderWidth float32 = 10

// MainView is the generator window: entry rows, the two actions and a status bar
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	formPanel     *components.FormPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	generateHandler func()
	findFileHandler func()
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(window fyne.Window, fieldNames []string) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(fieldNames)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(fieldNames []string) {
	mv.formPanel = components.NewFormPanel(fieldNames)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.formPanel.GetContainer(),
	)

	padded := container.New(
		layout.NewCustomPaddedLayout(BorderWidth, BorderWidth, BorderWidth, BorderWidth),
		mv.mainContainer,
	)
	mv.window.SetContent(padded)
}

func (mv *MainView) setupEventHandlers() {
	mv.formPanel.SetGenerateHandler(func() {
		if mv.generateHandler != nil {
			mv.generateHandler()
		}
	})

	mv.formPanel.SetFindHandler(func() {
		if mv.findFileHandler != nil {
			mv.findFileHandler()
		}
	})
}

// SetGenerateHandler sets the handler for the "Generate INI file" button
func (mv *MainView) SetGenerateHandler(handler func()) {
	mv.generateHandler = handler
}

// SetFindFileHandler sets the handler for the "Find INI file" button
func (mv *MainView) SetFindFileHandler(handler func()) {
	mv.findFileHandler = handler
}

// EntryTexts returns the current entry values in field order
func (mv *MainView) EntryTexts() []string {
	return mv.formPanel.Texts()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetSelectedFile shows the chosen INI path in the status bar
func (mv *MainView) SetSelectedFile(path string) {
	mv.statusBar.SetFileInfo(path)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowFileOpen shows an open dialog limited to .ini files. The callback gets
// a nil reader and nil error when the user cancels.
func (mv *MainView) ShowFileOpen(callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	d.SetTitleText("Load ini file")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".ini"}))
	d.Show()
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// FormPanel exposes the form widgets
func (mv *MainView) FormPanel() *components.FormPanel {
	return mv.formPanel
}

// StatusBar exposes the status bar
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// String describes the view for logging
func (mv *MainView) String() string {
	return fmt.Sprintf("MainView{title=%q fields=%d}", mv.window.Title(), len(mv.formPanel.Entries()))
}
