package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on the current mode.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// The global exit command works everywhere; there is no state to flush.
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case ModeLogin:
		return m.handleLoginKeys(msg)
	case ModeNotification:
		return m.handleNotificationKeys(msg)
	case ModeValidating, ModeLoading:
		// A call is in flight; the next command isn't processed until it
		// settles.
		return nil
	case ModePosts:
		return m.handlePostsKeys(msg)
	case ModePreview:
		return m.handlePreviewKeys(msg)
	case ModeSubredditPicker, ModeSortPicker:
		return m.handlePickerKeys(msg)
	}
	return nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit

	case "tab", "shift+tab", "down", "up":
		if msg.String() == "tab" || msg.String() == "down" {
			m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		} else {
			m.loginFocus = (m.loginFocus + len(m.loginInputs) - 1) % len(m.loginInputs)
		}
		var cmd tea.Cmd
		for i := range m.loginInputs {
			if i == m.loginFocus {
				cmd = m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return cmd

	case "enter":
		username := m.loginInputs[0].Value()
		password := m.loginInputs[1].Value()
		if username == "" || password == "" {
			// Both fields are required as a pair: clear and flag for re-entry.
			m.clearLogin(true)
			return m.loginInputs[0].Focus()
		}
		m.mode = ModeValidating
		m.loadingText = "Checking credentials..."
		return tea.Batch(m.spin.Tick, m.validateLogin(username, password))
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return cmd
}

func (m *Model) handleNotificationKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", " ":
		m.mode = m.noticeNext
		if m.mode == ModeLogin {
			return m.loginInputs[0].Focus()
		}
	}
	return nil
}

func (m *Model) handlePostsKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "e", "esc":
		return tea.Quit

	case " ":
		m.openPreview()
		return nil

	case "a":
		m.enterLoading()
		return tea.Batch(m.spin.Tick, m.fetchPopular())

	case "b":
		m.log.Info("switching sort", "subreddit", m.curCtx.Subreddit, "sort", string(m.curCtx.Sort))
		m.picker = newSortPicker(m.theme, m.pickerWidth(), m.pickerHeight())
		m.mode = ModeSortPicker
		return nil

	case "backspace":
		// Resolve back to the listing this one was opened on top of, if any.
		if n := len(m.stack); n > 0 {
			top := m.stack[n-1]
			m.stack = m.stack[:n-1]
			m.showListing(top.result, top.ctx, top.cursor)
		}
		return nil
	}

	var cmd tea.Cmd
	m.postsTable, cmd = m.postsTable.Update(msg)
	return cmd
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "backspace", "esc", "q":
		m.previewPost = nil
		m.statusMsg = ""
		m.mode = ModePosts
		return nil

	case "y":
		if m.previewPost != nil {
			if err := clipboard.WriteAll(m.previewPost.URL); err != nil {
				m.log.Error("failed to copy URL", "error", err)
				m.statusMsg = "Copy failed"
			} else {
				m.statusMsg = "URL copied"
			}
		}
		return nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return cmd
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) tea.Cmd {
	// While the list is filtering, every key belongs to it.
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "backspace", "esc":
		m.mode = ModePosts
		return nil

	case "enter":
		item, ok := m.picker.SelectedItem().(pickerItem)
		if !ok {
			return nil
		}
		if m.mode == ModeSubredditPicker {
			return m.selectSubreddit(string(item))
		}
		return m.selectSort(string(item))
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return cmd
}
