package controllers

import (
	"fmt"
	"sync"

	"ini-generator/internal/logger"
	"ini-generator/internal/services"

	"fyne.io/fyne/v2"
)

const controllerComponent = "MainController"

// FormView is the part of the main view the controller drives.
type FormView interface {
	SetGenerateHandler(handler func())
	SetFindFileHandler(handler func())
	EntryTexts() []string
	UpdateStatus(status string)
	SetSelectedFile(path string)
	ShowError(err error)
	ShowFileOpen(callback func(fyne.URIReadCloser, error))
}

// MainController connects the form buttons to the form service
type MainController struct {
	service *services.FormService
	logger  logger.Logger

	mu       sync.RWMutex
	mainView FormView
}

// NewMainController creates a new main controller
func NewMainController(service *services.FormService, log logger.Logger) *MainController {
	return &MainController{
		service: service,
		logger:  log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view FormView) {
	mc.mu.Lock()
	mc.mainView = view
	mc.mu.Unlock()

	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	view := mc.view()
	if view == nil {
		return
	}
	view.SetGenerateHandler(mc.Generate)
	view.SetFindFileHandler(mc.FindINIFile)
}

// Generate prints the current entry values. No file is written.
func (mc *MainController) Generate() {
	view := mc.view()
	if view == nil {
		mc.handleError(fmt.Errorf("main view not set"))
		return
	}

	values := view.EntryTexts()
	if err := mc.service.Generate(values); err != nil {
		mc.handleError(err)
		return
	}

	view.UpdateStatus(fmt.Sprintf("Generated %d values", len(values)))
}

// FindINIFile opens the file dialog; a chosen path is printed.
func (mc *MainController) FindINIFile() {
	view := mc.view()
	if view == nil {
		mc.handleError(fmt.Errorf("main view not set"))
		return
	}

	mc.logger.Debug(controllerComponent, "opening file dialog", nil)
	view.ShowFileOpen(mc.onFileChosen)
}

func (mc *MainController) onFileChosen(reader fyne.URIReadCloser, err error) {
	if err != nil {
		mc.handleError(fmt.Errorf("file dialog: %w", err))
		return
	}
	if reader == nil {
		mc.logger.Debug(controllerComponent, "file dialog cancelled", nil)
		return
	}
	defer reader.Close()

	path := reader.URI().Path()
	if err := mc.service.ReportPath(path); err != nil {
		mc.handleError(err)
		return
	}

	if view := mc.view(); view != nil {
		view.SetSelectedFile(path)
		view.UpdateStatus("INI file selected")
	}
}

func (mc *MainController) handleError(err error) {
	mc.logger.Error(controllerComponent, err, nil)

	if view := mc.view(); view != nil {
		view.ShowError(err)
	}
}

func (mc *MainController) view() FormView {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}

// Shutdown releases the view reference
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.mainView = nil

	mc.logger.Info(controllerComponent, "controller shut down", nil)
}
