// Package tui is the interactive navigation state machine: it sequences
// login, the post list, the preview overlay and the subreddit/sort pickers,
// fetching through the retrieval gateway on every context change.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"threaddit/internal/auth"
	"threaddit/internal/config"
	"threaddit/internal/listing"
	"threaddit/internal/reddit"
)

// services is the real Backend: the credential validator plus the retrieval
// gateway.
type services struct {
	validator *auth.Validator
	gateway   *listing.Gateway
}

func (s services) Validate(ctx context.Context, candidate config.Credentials) auth.Result {
	return s.validator.Validate(ctx, candidate)
}

func (s services) Fetch(ctx context.Context, creds config.Credentials, subreddit string, sort reddit.Sort) (*listing.Result, error) {
	return s.gateway.Fetch(ctx, creds, subreddit, sort)
}

func (s services) Popular(ctx context.Context, creds config.Credentials) ([]string, error) {
	return s.gateway.Popular(ctx, creds)
}

// Run validates the process-level credentials and drives the full-screen
// program until the user exits.
func Run(creds config.Credentials, theme config.Theme, log *slog.Logger) error {
	backend := services{
		validator: auth.NewValidator(creds, log),
		gateway:   listing.NewGateway(log),
	}

	// Personal credentials from the environment are verified before the UI
	// opens; entering the post list with a dead login would fail on the very
	// first fetch anyway.
	loggedIn := false
	if creds.HasLogin() {
		log.Info("validating env credentials")
		result := backend.Validate(context.Background(), creds)
		if !result.Valid {
			return fmt.Errorf("invalid or missing env creds")
		}
		creds = result.Config
		loggedIn = true
		log.Info("env config loaded")
	}

	m := New(backend, creds, loggedIn, theme, log)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*Model); ok && fm.exitErr != nil {
		return fmt.Errorf("couldn't retrieve data correctly: %w", fm.exitErr)
	}
	return nil
}
