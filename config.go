package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"calcterm/value"
)

// Config represents the application configuration
type Config struct {
	REPL       REPLConfig       `json:"repl" yaml:"repl"`
	Calculator CalculatorConfig `json:"calculator" yaml:"calculator"`
	Verbose    bool             `json:"verbose" yaml:"verbose"`
}

// REPLConfig contains REPL configuration
type REPLConfig struct {
	Prompt       string `json:"prompt" yaml:"prompt"`
	HistorySize  int    `json:"history_size" yaml:"history_size"`
	HistoryFile  string `json:"history_file" yaml:"history_file"`
	ShowWelcome  bool   `json:"show_welcome" yaml:"show_welcome"`
	EnableColors bool   `json:"enable_colors" yaml:"enable_colors"`
}

// CalculatorConfig contains the startup interpretation modes
type CalculatorConfig struct {
	Angle      string `json:"angle" yaml:"angle"`       // rad | deg
	Base       string `json:"base" yaml:"base"`         // dec | hex | bin
	Complex    string `json:"complex" yaml:"complex"`   // rect | polar
	Notation   string `json:"notation" yaml:"notation"` // infix | rpn
	Abbreviate bool   `json:"abbreviate" yaml:"abbreviate"`
	CacheSize  int    `json:"cache_size" yaml:"cache_size"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:       "> ",
			HistorySize:  1000,
			HistoryFile:  "/tmp/calcterm_history",
			ShowWelcome:  true,
			EnableColors: true,
		},
		Calculator: CalculatorConfig{
			Angle:    "rad",
			Base:     "dec",
			Complex:  "rect",
			Notation: "infix",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If no path provided, return default config
	if path == "" {
		return config, nil
	}

	// Expand ~ in path
	path = expandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return default config
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Determine file format by extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %v", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %v", err)
		}
	default:
		// Try YAML as default
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, path string) error {
	path = expandHome(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Modes resolves the configured mode names into a ModeState
func (c *Config) Modes() (value.ModeState, error) {
	modes := value.DefaultModes()

	switch strings.ToLower(c.Calculator.Angle) {
	case "", "rad", "radians":
		modes.Angle = value.AngleRadians
	case "deg", "degrees":
		modes.Angle = value.AngleDegrees
	default:
		return modes, fmt.Errorf("unknown angle mode %q (want rad or deg)", c.Calculator.Angle)
	}

	switch strings.ToLower(c.Calculator.Base) {
	case "", "dec", "decimal":
		modes.Base = value.BaseDecimal
	case "hex", "hexadecimal":
		modes.Base = value.BaseHexadecimal
	case "bin", "binary":
		modes.Base = value.BaseBinary
	default:
		return modes, fmt.Errorf("unknown base mode %q (want dec, hex or bin)", c.Calculator.Base)
	}

	switch strings.ToLower(c.Calculator.Complex) {
	case "", "rect", "rectangular":
		modes.Complex = value.ComplexRectangular
	case "polar":
		modes.Complex = value.ComplexPolar
	default:
		return modes, fmt.Errorf("unknown complex mode %q (want rect or polar)", c.Calculator.Complex)
	}

	switch strings.ToLower(c.Calculator.Notation) {
	case "", "infix":
		modes.Notation = value.NotationInfix
	case "rpn":
		modes.Notation = value.NotationRPN
	default:
		return modes, fmt.Errorf("unknown notation mode %q (want infix or rpn)", c.Calculator.Notation)
	}

	return modes, nil
}
