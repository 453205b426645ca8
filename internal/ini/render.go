// Package ini renders form values as INI text without touching widgets or disk.
package ini

import (
	"bytes"
	"fmt"

	"ini-generator/internal/models"

	goini "gopkg.in/ini.v1"
)

// DefaultSection is used when no section name is configured.
const DefaultSection = "printer"

// Render returns the INI document for values under a single section, keys in
// field order. A repeated name keeps its last value.
func Render(section string, values []models.FieldValue) (string, error) {
	if section == "" {
		section = DefaultSection
	}

	file := goini.Empty()
	sec, err := file.NewSection(section)
	if err != nil {
		return "", fmt.Errorf("create section %q: %w", section, err)
	}

	for _, fv := range values {
		if sec.HasKey(fv.Name) {
			sec.Key(fv.Name).SetValue(fv.Value)
			continue
		}
		if _, err := sec.NewKey(fv.Name, fv.Value); err != nil {
			return "", fmt.Errorf("add key %q: %w", fv.Name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("write ini: %w", err)
	}
	return buf.String(), nil
}
