// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	Field     FieldConfig     `yaml:"field" toml:"field" json:"field"`
	Animation AnimationConfig `yaml:"animation" toml:"animation" json:"animation"`
	UI        UIConfig        `yaml:"ui" toml:"ui" json:"ui"`
}

// FieldConfig describes the search field. Numeric sizes of zero keep the
// variant's default.
type FieldConfig struct {
	Variant     string `yaml:"variant" toml:"variant" json:"variant"` // "swipe" or "tap"
	Placeholder string `yaml:"placeholder" toml:"placeholder" json:"placeholder"`
	Icon        string `yaml:"icon" toml:"icon" json:"icon"`
	Alignment   string `yaml:"alignment" toml:"alignment" json:"alignment"` // "top", "center" or "bottom"

	InitialWidth    float64 `yaml:"initial_width,omitempty" toml:"initial_width,omitempty" json:"initial_width,omitempty"`
	TargetWidth     float64 `yaml:"target_width,omitempty" toml:"target_width,omitempty" json:"target_width,omitempty"`
	InitialHeight   float64 `yaml:"initial_height,omitempty" toml:"initial_height,omitempty" json:"initial_height,omitempty"`
	TargetHeight    float64 `yaml:"target_height,omitempty" toml:"target_height,omitempty" json:"target_height,omitempty"`
	InitialFontSize float64 `yaml:"initial_font_size,omitempty" toml:"initial_font_size,omitempty" json:"initial_font_size,omitempty"`
	TargetFontSize  float64 `yaml:"target_font_size,omitempty" toml:"target_font_size,omitempty" json:"target_font_size,omitempty"`
	DragThreshold   float64 `yaml:"drag_threshold,omitempty" toml:"drag_threshold,omitempty" json:"drag_threshold,omitempty"`

	SingleLine            bool   `yaml:"single_line" toml:"single_line" json:"single_line"`
	MaxLines              int    `yaml:"max_lines,omitempty" toml:"max_lines,omitempty" json:"max_lines,omitempty"`
	CharLimit             int    `yaml:"char_limit,omitempty" toml:"char_limit,omitempty" json:"char_limit,omitempty"`
	ReadOnly              bool   `yaml:"read_only" toml:"read_only" json:"read_only"`
	Mask                  string `yaml:"mask,omitempty" toml:"mask,omitempty" json:"mask,omitempty"`
	ShowTextWhenCollapsed bool   `yaml:"show_text_when_collapsed" toml:"show_text_when_collapsed" json:"show_text_when_collapsed"`

	Colors ColorConfig `yaml:"colors" toml:"colors" json:"colors"`
}

// ColorConfig holds hex ("#8E8E93") or ANSI ("245") colours.
type ColorConfig struct {
	Background string `yaml:"background" toml:"background" json:"background"`
	Container  string `yaml:"container" toml:"container" json:"container"`
	Content    string `yaml:"content" toml:"content" json:"content"`
}

// AnimationConfig selects how the field moves between sizes.
type AnimationConfig struct {
	Kind     string `yaml:"kind" toml:"kind" json:"kind"` // "tween" or "spring"
	Duration string `yaml:"duration" toml:"duration" json:"duration"`
	Curve    string `yaml:"curve" toml:"curve" json:"curve"`

	// Spring settings, used when Kind is "spring".
	Frequency float64 `yaml:"frequency,omitempty" toml:"frequency,omitempty" json:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty" toml:"damping,omitempty" json:"damping,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	NotifyOnSearch bool   `yaml:"notify_on_search" toml:"notify_on_search" json:"notify_on_search"`
	ShowHelp       bool   `yaml:"show_help" toml:"show_help" json:"show_help"`
	ColorProfile   string `yaml:"color_profile" toml:"color_profile" json:"color_profile"` // "auto", "ascii", "ansi", "ansi256" or "truecolor"
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Variant:     VariantSwipe,
			Placeholder: "Search",
			Icon:        "🔍",
			Alignment:   "bottom",
			SingleLine:  true,
			Colors: ColorConfig{
				Background: "#F0F0F3",
				Container:  "#8E8E93",
				Content:    "#FFFFFF",
			},
		},
		Animation: AnimationConfig{
			Kind:      KindTween,
			Duration:  "400ms",
			Curve:     "ease-in-out",
			Frequency: 6,
			Damping:   1,
		},
		UI: UIConfig{
			ShowHelp:     true,
			ColorProfile: "auto",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "swipesearch")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path, picking the format from the
// extension. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := format.unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile writes the configuration to path in the format its extension
// names.
func SaveFile(cfg *Config, path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	data, err := format.marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
