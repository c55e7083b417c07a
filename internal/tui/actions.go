package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"threaddit/internal/config"
	"threaddit/internal/listing"
	"threaddit/internal/reddit"
)

// loadingMessages shows up under the spinner while a fetch is in flight.
var loadingMessages = []string{
	"Summoning the front page...",
	"Asking the hivemind...",
	"Counting the upvotes...",
	"Consulting the moderators...",
	"Herding the snoos...",
	"Refreshing the feed...",
}

func loadingMessage() string {
	return loadingMessages[rand.IntN(len(loadingMessages))]
}

// validateLogin runs the credential validator off the event loop. The
// validator itself never fails past its boundary, so the message always
// carries a result.
func (m *Model) validateLogin(username, password string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		result := backend.Validate(context.Background(), config.Credentials{
			Username: username,
			Password: password,
		})
		return validatedMsg{result: result}
	}
}

// fetchListing retrieves one page for the given context. push records the
// current listing on the navigation stack once the new one is ready, so a
// failed fetch never disturbs what is on screen.
func (m *Model) fetchListing(subreddit string, sort reddit.Sort, push bool) tea.Cmd {
	backend := m.backend
	creds := m.creds
	return func() tea.Msg {
		result, err := backend.Fetch(context.Background(), creds, subreddit, sort)
		return listingLoadedMsg{
			result: result,
			ctx:    listing.Context{Subreddit: subreddit, Sort: sort},
			push:   push,
			err:    err,
		}
	}
}

// fetchPopular retrieves the subreddit names for the picker.
func (m *Model) fetchPopular() tea.Cmd {
	backend := m.backend
	creds := m.creds
	return func() tea.Msg {
		names, err := backend.Popular(context.Background(), creds)
		return popularLoadedMsg{names: names, err: err}
	}
}

// selectSubreddit starts a fetch for the picked subreddit at the current sort.
func (m *Model) selectSubreddit(display string) tea.Cmd {
	subreddit := listing.StripSubredditPrefix(display)
	m.enterLoading()
	return tea.Batch(m.spin.Tick, m.fetchListing(subreddit, m.curCtx.Sort, true))
}

// selectSort starts a fetch for the current subreddit at the picked sort.
func (m *Model) selectSort(option string) tea.Cmd {
	sort, err := reddit.ParseSort(option)
	if err != nil {
		// The picker only offers the closed set, so this is a bug if it fires.
		m.log.Error("rejected sort option", "option", option, "error", err)
		m.mode = ModePosts
		return nil
	}
	m.enterLoading()
	return tea.Batch(m.spin.Tick, m.fetchListing(m.curCtx.Subreddit, sort, true))
}

// openPreview builds the preview overlay for the selected table row.
func (m *Model) openPreview() {
	if m.current == nil || len(m.current.Posts) == 0 {
		return
	}
	idx := m.postsTable.Cursor()
	if idx < 0 || idx >= len(m.current.Posts) {
		return
	}

	post := m.current.Posts[idx]
	m.previewPost = &post
	m.preview = newPreview(m.theme, m.previewWidth(), m.previewHeight())
	m.preview.SetContent(m.previewContent(post))
	m.preview.GotoTop()
	m.statusMsg = ""
	m.mode = ModePreview
}

// previewContent renders the full post detail: title, author and date, score,
// URL, then the body with the 500-rune cap.
func (m *Model) previewContent(post reddit.Post) string {
	var b strings.Builder

	b.WriteString(stylePreviewTitle.Render(post.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("by %s on %s\n",
		stylePreviewAuthor.Render(post.Author),
		post.CreatedAt().Format("Mon Jan 02 2006")))
	b.WriteString(fmt.Sprintf("Score: %s\n", stylePreviewScore.Render(listing.FormatScore(post.Score))))
	b.WriteString(fmt.Sprintf("URL: %s\n\n", stylePreviewURL.Render(post.URL)))
	b.WriteString(listing.TruncateBody(post.Selftext))

	return b.String()
}
