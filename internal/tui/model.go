package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"threaddit/internal/auth"
	"threaddit/internal/config"
	"threaddit/internal/listing"
	"threaddit/internal/reddit"
)

// Mode represents the current screen of the navigation state machine.
type Mode int

const (
	ModeLogin Mode = iota
	ModeValidating
	ModeNotification
	ModeLoading
	ModePosts
	ModePreview
	ModeSubredditPicker
	ModeSortPicker
)

// Backend is everything the state machine needs from the outside world. The
// real implementation wraps the credential validator and the retrieval
// gateway; tests substitute fakes.
type Backend interface {
	Validate(ctx context.Context, candidate config.Credentials) auth.Result
	Fetch(ctx context.Context, creds config.Credentials, subreddit string, sort reddit.Sort) (*listing.Result, error)
	Popular(ctx context.Context, creds config.Credentials) ([]string, error)
}

// snapshot is one entry of the navigation stack: the listing a picker
// transition replaced, restored when the user backs out.
type snapshot struct {
	result *listing.Result
	ctx    listing.Context
	cursor int
}

// Model is the whole TUI state. Each mode owns only the widgets it shows;
// transitions swap the mode and rebuild widgets through the screen factory.
type Model struct {
	backend Backend
	log     *slog.Logger
	theme   config.Theme

	mode   Mode
	width  int
	height int

	// Validated credentials. Zero until the env config or an interactive
	// login passes validation.
	creds    config.Credentials
	loggedIn bool

	// Login form
	loginInputs  []textinput.Model
	loginFocus   int
	loginFlagged bool

	// Notification overlay
	noticeLabel string
	noticeHint  string
	noticeNext  Mode

	// Loading overlay
	spin        spinner.Model
	loadingText string

	// Post list
	current    *listing.Result
	curCtx     listing.Context
	postsTable table.Model
	stack      []snapshot

	// Preview overlay
	preview     viewport.Model
	previewPost *reddit.Post
	statusMsg   string

	// Pickers
	picker list.Model

	// Set when the bootstrap fetch fails; reported after the program exits.
	exitErr error
}

type validatedMsg struct {
	result auth.Result
}

type listingLoadedMsg struct {
	result *listing.Result
	ctx    listing.Context
	push   bool
	err    error
}

type popularLoadedMsg struct {
	names []string
	err   error
}

// New builds the model. loggedIn means the process-level credentials already
// passed validation, so the UI opens directly on the post list.
func New(backend Backend, creds config.Credentials, loggedIn bool, theme config.Theme, log *slog.Logger) Model {
	m := Model{
		backend:     backend,
		log:         log,
		theme:       theme,
		creds:       creds,
		loggedIn:    loggedIn,
		loginInputs: newLoginInputs(theme),
		spin:        newSpinner(theme),
		preview:     viewport.New(80, 20),
		loadingText: loadingMessage(),
	}
	if loggedIn {
		m.mode = ModeLoading
	} else {
		m.mode = ModeLogin
		m.loginInputs[0].Focus()
	}
	return m
}

// Init kicks off the bootstrap fetch when credentials are already valid.
func (m *Model) Init() tea.Cmd {
	if m.loggedIn {
		return tea.Batch(m.spin.Tick, m.fetchListing("all", reddit.SortDefault, false))
	}
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.mode == ModeLoading || m.mode == ModeValidating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case validatedMsg:
		return m, m.handleValidated(msg)

	case listingLoadedMsg:
		return m, m.handleListingLoaded(msg)

	case popularLoadedMsg:
		return m, m.handlePopularLoaded(msg)
	}

	return m, nil
}

func (m *Model) handleValidated(msg validatedMsg) tea.Cmd {
	if !msg.result.Valid {
		m.clearLogin(false)
		m.showNotice("Error", "Check your connection or credentials.", ModeLogin)
		return nil
	}

	m.creds = msg.result.Config
	m.loggedIn = true
	m.clearLogin(false)
	m.enterLoading()
	return tea.Batch(m.spin.Tick, m.fetchListing("all", reddit.SortDefault, false))
}

func (m *Model) handleListingLoaded(msg listingLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("something went wrong while fetching data", "error", msg.err)
		if m.current == nil {
			// Nothing on screen to fall back to; give up.
			m.exitErr = msg.err
			return tea.Quit
		}
		// Keep the previous screen fully intact. No dialog for this case.
		m.mode = ModePosts
		return nil
	}

	if msg.push && m.current != nil {
		m.stack = append(m.stack, snapshot{
			result: m.current,
			ctx:    m.curCtx,
			cursor: m.postsTable.Cursor(),
		})
	}

	m.showListing(msg.result, msg.ctx, 0)
	return nil
}

func (m *Model) handlePopularLoaded(msg popularLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("couldn't load subreddit list", "error", msg.err)
		m.mode = ModePosts
		return nil
	}

	names := append([]string{"r/all"}, msg.names...)
	m.picker = newPicker(m.theme, "Popular Subreddits", names, m.pickerWidth(), m.pickerHeight())
	m.mode = ModeSubredditPicker
	return nil
}

// showListing installs a fetched listing as the current post list.
func (m *Model) showListing(result *listing.Result, ctx listing.Context, cursor int) {
	m.current = result
	m.curCtx = ctx
	m.postsTable = newPostsTable(m.theme, result, m.tableWidth(), m.tableHeight())
	if cursor > 0 {
		m.postsTable.SetCursor(cursor)
	}
	m.mode = ModePosts
}

func (m *Model) enterLoading() {
	m.mode = ModeLoading
	m.loadingText = loadingMessage()
}

func (m *Model) showNotice(label, hint string, next Mode) {
	m.noticeLabel = label
	m.noticeHint = hint
	m.noticeNext = next
	m.mode = ModeNotification
}

func (m *Model) clearLogin(flagged bool) {
	for i := range m.loginInputs {
		m.loginInputs[i].Reset()
		m.loginInputs[i].Blur()
	}
	m.loginFlagged = flagged
	m.loginFocus = 0
}

func (m *Model) resize() {
	if m.current != nil {
		m.postsTable = newPostsTable(m.theme, m.current, m.tableWidth(), m.tableHeight())
	}
	m.preview.Width = m.previewWidth()
	m.preview.Height = m.previewHeight()
	if m.mode == ModeSubredditPicker || m.mode == ModeSortPicker {
		m.picker.SetSize(m.pickerWidth(), m.pickerHeight())
	}
}

// Context returns the current browsing position.
func (m *Model) Context() listing.Context {
	return m.curCtx
}

// Current returns the listing the post table is showing.
func (m *Model) Current() *listing.Result {
	return m.current
}

// Mode returns the active state.
func (m *Model) Mode() Mode {
	return m.mode
}
