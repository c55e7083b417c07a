package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.threaddit)
	ConfigDir string

	// ErrorLogFile receives error-level entries only
	ErrorLogFile string

	// CombinedLogFile receives everything from info level up
	CombinedLogFile string

	// ThemeFile is the optional color scheme override
	ThemeFile string
)

// Credentials is the material needed to talk to the Reddit API.
// UserAgent, ClientID and ClientSecret identify the registered script app;
// Username and Password identify the account and may be entered interactively.
type Credentials struct {
	UserAgent    string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// HasAppIdentity reports whether the script-app fields are all present.
// Without them no API client can be constructed at all.
func (c Credentials) HasAppIdentity() bool {
	return c.UserAgent != "" && c.ClientID != "" && c.ClientSecret != ""
}

// HasLogin reports whether a personal username/password pair is present.
func (c Credentials) HasLogin() bool {
	return c.Username != "" && c.Password != ""
}

// Initialize sets up the configuration directory and file paths.
// It creates ~/.threaddit/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".threaddit")
	ErrorLogFile = filepath.Join(ConfigDir, "errors.log")
	CombinedLogFile = filepath.Join(ConfigDir, "combined.log")
	ThemeFile = filepath.Join(ConfigDir, "theme.yml")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// LoadCredentials reads credentials from the environment, with a .env file
// overlay when one is present next to the binary or in the config directory.
// A missing .env is not an error; the plain environment still applies.
func LoadCredentials() Credentials {
	locations := []string{".env"}
	if ConfigDir != "" {
		locations = append(locations, filepath.Join(ConfigDir, ".env"))
	}
	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			break
		}
	}

	return Credentials{
		UserAgent:    os.Getenv("USER_AGENT"),
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		Username:     os.Getenv("REDDIT_USERNAME"),
		Password:     os.Getenv("REDDIT_PASSWORD"),
	}
}
