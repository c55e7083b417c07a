package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialsPresence(t *testing.T) {
	full := Credentials{
		UserAgent:    "ua",
		ClientID:     "id",
		ClientSecret: "secret",
		Username:     "alice",
		Password:     "hunter2",
	}
	if !full.HasAppIdentity() || !full.HasLogin() {
		t.Error("Expected full credentials to report both parts present")
	}

	appOnly := Credentials{UserAgent: "ua", ClientID: "id", ClientSecret: "secret"}
	if !appOnly.HasAppIdentity() {
		t.Error("Expected app identity present")
	}
	if appOnly.HasLogin() {
		t.Error("Expected no login")
	}

	partial := Credentials{UserAgent: "ua", ClientID: "id"}
	if partial.HasAppIdentity() {
		t.Error("A partial app identity must not count as present")
	}
	half := Credentials{Username: "alice"}
	if half.HasLogin() {
		t.Error("A username without password must not count as a login")
	}
}

func withThemeFile(t *testing.T, content string) {
	t.Helper()
	original := ThemeFile
	t.Cleanup(func() { ThemeFile = original })

	if content == "" {
		ThemeFile = filepath.Join(t.TempDir(), "missing.yml")
		return
	}
	path := filepath.Join(t.TempDir(), "theme.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	ThemeFile = path
}

func TestLoadThemeDefaults(t *testing.T) {
	withThemeFile(t, "")

	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme != DefaultTheme() {
		t.Error("Missing theme file must yield the default theme")
	}
}

func TestLoadThemeOverride(t *testing.T) {
	withThemeFile(t, "border: magenta\ntableHeader: \"#ff00ff\"\n")

	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme.Border != "magenta" {
		t.Errorf("Expected overridden border, got %q", theme.Border)
	}
	if theme.TableHeader != "#ff00ff" {
		t.Errorf("Expected overridden header color, got %q", theme.TableHeader)
	}
	// Untouched keys keep their defaults.
	if theme.Background != DefaultTheme().Background {
		t.Errorf("Expected default background, got %q", theme.Background)
	}
}

func TestLoadThemeMalformed(t *testing.T) {
	withThemeFile(t, "border: [this is not\n")

	theme, err := LoadTheme()
	if err == nil {
		t.Fatal("Expected error for malformed theme file")
	}
	if theme != DefaultTheme() {
		t.Error("Malformed theme must fall back to defaults alongside the error")
	}
}
