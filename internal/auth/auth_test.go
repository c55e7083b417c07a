package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"threaddit/internal/config"
	"threaddit/internal/reddit"
)

type fakeVerifier struct {
	account reddit.Account
	err     error
	calls   int
	lookups []string
}

func (f *fakeVerifier) AboutUser(ctx context.Context, username string) (reddit.Account, error) {
	f.calls++
	f.lookups = append(f.lookups, username)
	return f.account, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func appIdentity() config.Credentials {
	return config.Credentials{
		UserAgent:    "threaddit test",
		ClientID:     "id",
		ClientSecret: "secret",
	}
}

func TestValidateMergesInteractiveLogin(t *testing.T) {
	verifier := &fakeVerifier{account: reddit.Account{Name: "alice", Verified: true}}
	v := NewValidatorWithVerifier(appIdentity(), verifier, testLogger())

	result := v.Validate(context.Background(), config.Credentials{
		Username: "alice",
		Password: "hunter2",
	})

	if !result.Valid {
		t.Fatal("Expected valid result")
	}
	if result.Config.Username != "alice" || result.Config.Password != "hunter2" {
		t.Error("Interactive login fields were not merged")
	}
	if result.Config.ClientID != "id" || result.Config.UserAgent != "threaddit test" {
		t.Error("App identity must come from the process configuration")
	}
	if verifier.calls != 1 {
		t.Errorf("Expected exactly one remote lookup, got %d", verifier.calls)
	}
	if verifier.lookups[0] != "alice" {
		t.Errorf("Expected lookup of alice, got %s", verifier.lookups[0])
	}
}

func TestValidateShortCircuitsWithoutAppIdentity(t *testing.T) {
	verifier := &fakeVerifier{account: reddit.Account{Verified: true}}
	v := NewValidatorWithVerifier(config.Credentials{}, verifier, testLogger())

	result := v.Validate(context.Background(), config.Credentials{
		Username: "alice",
		Password: "hunter2",
	})

	if result.Valid {
		t.Error("Expected invalid result without app identity")
	}
	if verifier.calls != 0 {
		t.Errorf("Expected no remote call without app identity, got %d", verifier.calls)
	}
}

func TestValidateLookupFailure(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("connection refused")}
	v := NewValidatorWithVerifier(appIdentity(), verifier, testLogger())

	result := v.Validate(context.Background(), config.Credentials{
		Username: "alice",
		Password: "hunter2",
	})
	if result.Valid {
		t.Error("Expected invalid result when the lookup fails")
	}
}

func TestValidateUnverifiedAccount(t *testing.T) {
	verifier := &fakeVerifier{account: reddit.Account{Name: "alice", Verified: false}}
	v := NewValidatorWithVerifier(appIdentity(), verifier, testLogger())

	result := v.Validate(context.Background(), config.Credentials{
		Username: "alice",
		Password: "hunter2",
	})
	if result.Valid {
		t.Error("Expected invalid result for an unverified account")
	}
}

func TestValidateKeepsEnvLogin(t *testing.T) {
	base := appIdentity()
	base.Username = "envuser"
	base.Password = "envpass"
	verifier := &fakeVerifier{account: reddit.Account{Name: "envuser", Verified: true}}
	v := NewValidatorWithVerifier(base, verifier, testLogger())

	// Candidate without a login pair leaves the env login in place.
	result := v.Validate(context.Background(), base)
	if !result.Valid {
		t.Fatal("Expected valid result")
	}
	if result.Config.Username != "envuser" {
		t.Errorf("Expected env username kept, got %s", result.Config.Username)
	}
}
