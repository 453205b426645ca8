package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ini-generator/internal/ini"
	"ini-generator/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	FormFile string       `mapstructure:"form_file"`
	Window   WindowConfig `mapstructure:"window"`
	INI      INIConfig    `mapstructure:"ini"`

	// Fields is resolved from FormFile or the built-in defaults.
	Fields []string `mapstructure:"-"`
}

// WindowConfig holds top-level window settings.
type WindowConfig struct {
	Title  string  `mapstructure:"title"`
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// INIConfig holds rendering settings.
type INIConfig struct {
	Section string `mapstructure:"section"`
}

// FormDefinition is the YAML document a form file contains.
type FormDefinition struct {
	Section string   `yaml:"section"`
	Fields  []string `yaml:"fields"`
}

// Load reads .env, an optional config file and INIGEN_* env overrides.
// Env keys flatten nesting with underscores, e.g. INIGEN_WINDOW_TITLE.
// Section precedence: env, then form file, then config file, then default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("form_file", "")
	v.SetDefault("window.title", "3D printer ini generator")
	v.SetDefault("window.width", 350)
	v.SetDefault("window.height", 400)
	v.SetDefault("ini.section", ini.DefaultSection)

	v.SetEnvPrefix("INIGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("INIGEN_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	c.Fields = append([]string(nil), models.DefaultFields...)
	if c.FormFile != "" {
		def, err := LoadFormFile(c.FormFile)
		if err != nil {
			return Config{}, err
		}
		c.Fields = def.Fields
		// INIGEN_INI_SECTION outranks the form file's section.
		if _, fromEnv := os.LookupEnv("INIGEN_INI_SECTION"); def.Section != "" && !fromEnv {
			c.INI.Section = def.Section
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFormFile parses a YAML form definition.
func LoadFormFile(path string) (FormDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormDefinition{}, fmt.Errorf("read form file: %w", err)
	}

	var def FormDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return FormDefinition{}, fmt.Errorf("parse form file %s: %w", path, err)
	}
	return def, nil
}

// Validate reports settings the window cannot be built from.
func (c Config) Validate() error {
	if len(c.Fields) == 0 {
		return errors.New("config: form has no fields")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}
