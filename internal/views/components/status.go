package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the outcome of the last form action
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fileInfo    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.fileInfo = widget.NewLabel("No INI file selected")
	sb.fileInfo.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		widget.NewSeparator(),
		sb.statusLabel,
		sb.fileInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetFileInfo shows the selected INI path
func (sb *StatusBar) SetFileInfo(path string) {
	sb.fileInfo.SetText(fmt.Sprintf("INI file: %s", path))
}

// GetFileInfo returns the file info text
func (sb *StatusBar) GetFileInfo() string {
	return sb.fileInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.fileInfo.SetText("No INI file selected")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
