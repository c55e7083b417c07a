// Package auth confirms a set of Reddit credentials can actually authenticate
// by looking up the account's own profile once. Nothing here panics or returns
// an error to the caller: every failure degrades to an invalid result plus a
// logged diagnostic, because the UI's answer to all of them is the same retry
// prompt.
package auth

import (
	"context"
	"log/slog"

	"threaddit/internal/config"
	"threaddit/internal/reddit"
)

// Result is the outcome of one validation attempt. Config is only meaningful
// when Valid is true.
type Result struct {
	Valid  bool
	Config config.Credentials
}

// Verifier is the single remote lookup the validator performs.
type Verifier interface {
	AboutUser(ctx context.Context, username string) (reddit.Account, error)
}

// Validator checks candidate credentials against the process-level base
// configuration.
type Validator struct {
	base config.Credentials
	dial func(config.Credentials) (Verifier, error)
	log  *slog.Logger
}

// NewValidator builds a validator around the process-level credentials loaded
// at startup.
func NewValidator(base config.Credentials, log *slog.Logger) *Validator {
	return &Validator{
		base: base,
		dial: func(creds config.Credentials) (Verifier, error) {
			return reddit.NewClient(creds)
		},
		log: log,
	}
}

// NewValidatorWithVerifier swaps the client constructor for a fixed verifier.
// Used by tests.
func NewValidatorWithVerifier(base config.Credentials, v Verifier, log *slog.Logger) *Validator {
	return &Validator{
		base: base,
		dial: func(config.Credentials) (Verifier, error) { return v, nil },
		log:  log,
	}
}

// Validate merges the candidate into the process configuration and performs
// one authenticated lookup of the account's own profile, requiring the
// service's verified flag. App-identity fields are never taken from the
// candidate: an interactively entered username/password pair is merged into
// the existing configuration, which must already carry the app identity.
func (v *Validator) Validate(ctx context.Context, candidate config.Credentials) Result {
	merged := v.base
	if candidate.HasLogin() && !candidate.HasAppIdentity() {
		merged.Username = candidate.Username
		merged.Password = candidate.Password
	}

	if !merged.HasAppIdentity() {
		// No client can be constructed; don't even try the network.
		v.log.Error("credential validation skipped", "reason", "missing app identity")
		return Result{Valid: false}
	}

	client, err := v.dial(merged)
	if err != nil {
		v.log.Error("error while validating credentials", "error", err)
		return Result{Valid: false}
	}

	account, err := client.AboutUser(ctx, merged.Username)
	if err != nil {
		v.log.Error("error while validating credentials", "error", err)
		return Result{Valid: false}
	}
	if !account.Verified {
		v.log.Error("credential validation failed", "reason", "account not verified", "username", merged.Username)
		return Result{Valid: false}
	}

	return Result{Valid: true, Config: merged}
}
