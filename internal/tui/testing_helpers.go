package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"threaddit/internal/auth"
	"threaddit/internal/config"
	"threaddit/internal/listing"
	"threaddit/internal/reddit"
)

// fakeBackend is a scriptable Backend for state machine tests.
type fakeBackend struct {
	validateResult auth.Result
	validateCalls  int

	fetchErr     error
	fetchCalls   []listing.Context
	posts        []reddit.Post
	popularNames []string
	popularErr   error
	popularCalls int
}

func (f *fakeBackend) Validate(ctx context.Context, candidate config.Credentials) auth.Result {
	f.validateCalls++
	return f.validateResult
}

func (f *fakeBackend) Fetch(ctx context.Context, creds config.Credentials, subreddit string, sort reddit.Sort) (*listing.Result, error) {
	f.fetchCalls = append(f.fetchCalls, listing.Context{Subreddit: subreddit, Sort: sort})
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return makeResult(subreddit, sort, f.posts), nil
}

func (f *fakeBackend) Popular(ctx context.Context, creds config.Credentials) ([]string, error) {
	f.popularCalls++
	return f.popularNames, f.popularErr
}

// makeResult builds a Result the way the gateway would.
func makeResult(subreddit string, sort reddit.Sort, posts []reddit.Post) *listing.Result {
	rows := [][]string{listing.Header()}
	for _, post := range posts {
		rows = append(rows, []string{
			listing.FormatScore(post.Score),
			post.Author,
			listing.DisplaySubreddit(post.Subreddit),
			listing.TruncateTitle(post.Title),
		})
	}
	return &listing.Result{Rows: rows, Posts: posts, Subreddit: subreddit, Sort: sort}
}

func testPosts() []reddit.Post {
	return []reddit.Post{
		{Title: "first post", Author: "alice", Subreddit: "golang", Score: 10, URL: "https://example.com/1"},
		{Title: "second post", Author: "bob", Subreddit: "news", Score: 2000, URL: "https://example.com/2"},
		{Title: "third post", Author: "carol", Subreddit: "all", Score: 5, URL: "https://example.com/3"},
	}
}

// newTestModel builds a model on the fake backend and delivers the bootstrap
// messages so tests start from a settled state.
func newTestModel(t *testing.T, backend *fakeBackend, loggedIn bool) *Model {
	t.Helper()

	creds := config.Credentials{
		UserAgent:    "threaddit test",
		ClientID:     "id",
		ClientSecret: "secret",
	}
	if loggedIn {
		creds.Username = "alice"
		creds.Password = "hunter2"
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(backend, creds, loggedIn, config.DefaultTheme(), log)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	deliver(t, &m, m.Init())
	return &m
}

// deliver executes a command tree and feeds the resulting messages back into
// the model, the way the bubbletea runtime would. Spinner ticks are dropped
// to avoid the self-perpetuating tick loop.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(t, m, c)
		}
	case spinner.TickMsg:
	case tea.QuitMsg:
	default:
		_, next := m.Update(msg)
		deliver(t, m, next)
	}
}

// press sends a single key through the model.
func press(t *testing.T, m *Model, key tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(key)
	deliver(t, m, cmd)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}
