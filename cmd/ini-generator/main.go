package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"ini-generator/internal/config"
	"ini-generator/internal/controllers"
	"ini-generator/internal/logger"
	"ini-generator/internal/models"
	"ini-generator/internal/services"
	"ini-generator/internal/shutdown"
	"ini-generator/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "INI Generator"
	AppID      = "com.printer.ini-generator"
	AppVersion = "1.0.0"

	appComponent = "Application"
)

// Application owns the fyne app, its single window and the MVC components
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	service    *services.FormService

	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	appLogger := logger.NewConsoleLogger(level)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)
	if fyneApp == nil || fyneApp.Driver() == nil {
		log.Fatal("Unable to initialize GUI toolkit")
	}

	application, err := NewApplication(fyneApp, cfg, appLogger, os.Stdout)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication builds the window and wires view, controller and service.
// Values and selected paths are printed to console.
func NewApplication(fyneApp fyne.App, cfg config.Config, appLogger logger.Logger, console io.Writer) (*Application, error) {
	window := fyneApp.NewWindow(cfg.Window.Title)
	if window == nil {
		return nil, errors.New("toolkit returned no window")
	}
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info(appComponent, "application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"fields":      cfg.Fields,
		"go_version":  runtime.Version(),
	})

	form := models.NewForm(cfg.Fields)
	service := services.NewFormService(form, console, cfg.INI.Section, appLogger)
	controller := controllers.NewMainController(service, appLogger)
	view := views.NewMainView(window, form.Names())
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		service:    service,
		shutdown:   shutdown.NewManager(appLogger),
	}
	application.shutdown.Register(controller)

	application.setupWindowEvents()

	appLogger.Debug(appComponent, "application initialized", map[string]interface{}{
		"view": view.String(),
	})

	return application, nil
}

// Run shows the window and blocks in the event loop until it is closed.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.requestClose)
	})

	a.logger.Info(appComponent, "starting application UI", nil)
	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info(appComponent, "application terminated", nil)
}

// setupWindowEvents makes closing the window end the event loop. There is no
// unsaved-changes prompt.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.requestClose)

	a.window.SetOnClosed(func() {
		a.logger.Debug(appComponent, "window closed", nil)
	})
}

func (a *Application) requestClose() {
	a.logger.Info(appComponent, "window close requested", nil)
	a.window.Close()
	a.fyneApp.Quit()
}
