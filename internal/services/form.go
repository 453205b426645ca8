package services

import (
	"fmt"
	"io"
	"sync"

	"ini-generator/internal/ini"
	"ini-generator/internal/logger"
	"ini-generator/internal/models"
)

const serviceComponent = "FormService"

// FormService turns form actions into console output.
type FormService struct {
	form    *models.Form
	console io.Writer
	section string
	logger  logger.Logger

	mu       sync.Mutex
	lastPath string
}

// NewFormService creates a service printing to console. An empty section
// falls back to the default INI section.
func NewFormService(form *models.Form, console io.Writer, section string, log logger.Logger) *FormService {
	return &FormService{
		form:    form,
		console: console,
		section: section,
		logger:  log,
	}
}

// Generate prints each value on its own line in field order. The rendered
// INI document is only logged; nothing is written to disk.
func (fs *FormService) Generate(values []string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, value := range values {
		if _, err := fmt.Fprintln(fs.console, value); err != nil {
			return fmt.Errorf("write value: %w", err)
		}
	}

	fs.logger.Info(serviceComponent, "form values generated", map[string]interface{}{
		"fields": len(values),
	})

	preview, err := ini.Render(fs.section, fs.form.Snapshot(values))
	if err != nil {
		fs.logger.Warning(serviceComponent, "ini preview unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	fs.logger.Debug(serviceComponent, "ini preview", map[string]interface{}{
		"ini": preview,
	})
	return nil
}

// ReportPath prints a path chosen in the file dialog.
func (fs *FormService) ReportPath(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fmt.Fprintln(fs.console, path); err != nil {
		return fmt.Errorf("write path: %w", err)
	}
	fs.lastPath = path

	fs.logger.Info(serviceComponent, "ini file selected", map[string]interface{}{
		"path": path,
	})
	return nil
}

// LastPath returns the most recently reported path, or "".
func (fs *FormService) LastPath() string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.lastPath
}
