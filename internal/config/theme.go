package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is the color scheme used by every screen builder. Values are
// lipgloss-compatible color strings (ANSI names, numbers or hex).
type Theme struct {
	Border      string `yaml:"border"`
	TableText   string `yaml:"tableText"`
	TableHeader string `yaml:"tableHeader"`
	Background  string `yaml:"background"`

	FieldBorderFocused   string `yaml:"textFieldBorderFocused"`
	FieldBorderUnfocused string `yaml:"textFieldBorderUnfocused"`
	FieldBorderInvalid   string `yaml:"textFieldBorderInvalid"`

	ConfirmLight string `yaml:"confirmLight"`
	ConfirmDark  string `yaml:"confirmDark"`
	CancelLight  string `yaml:"cancelLight"`
	CancelDark   string `yaml:"cancelDark"`

	SelectedFg string `yaml:"selectedFg"`
	SelectedBg string `yaml:"selectedBg"`
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Border:      "cyan",
		TableText:   "12",
		TableHeader: "red",
		Background:  "#54757c",

		FieldBorderFocused:   "green",
		FieldBorderUnfocused: "#f0f0f0",
		FieldBorderInvalid:   "red",

		ConfirmLight: "12",
		ConfirmDark:  "blue",
		CancelLight:  "9",
		CancelDark:   "red",

		SelectedFg: "black",
		SelectedBg: "11",
	}
}

// LoadTheme returns the default theme merged with any overrides found in the
// theme file. A missing file is fine; a malformed one is an error so a broken
// override doesn't silently fall back.
func LoadTheme() (Theme, error) {
	theme := DefaultTheme()

	if ThemeFile == "" {
		return theme, nil
	}
	data, err := os.ReadFile(ThemeFile)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("failed to read theme file: %w", err)
	}

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("failed to parse %s: %w", ThemeFile, err)
	}
	return theme, nil
}
