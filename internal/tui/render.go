package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed accent styles for the preview body. The themeable surface colors live
// in config.Theme; these match the original preview markup.
var (
	stylePreviewTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("red"))
	stylePreviewAuthor = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	stylePreviewScore  = lipgloss.NewStyle().Foreground(lipgloss.Color("blue"))
	stylePreviewURL    = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))

	styleBarKey  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	styleBarText = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
)

// View renders the active screen plus the bottom command bar.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch m.mode {
	case ModeLogin:
		body = m.renderLogin()
	case ModeValidating, ModeLoading:
		body = m.renderLoading()
	case ModeNotification:
		body = m.renderNotification()
	case ModePosts:
		body = m.renderPosts()
	case ModePreview:
		body = m.renderPreview()
	case ModeSubredditPicker, ModeSortPicker:
		body = m.renderPicker()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderCommandBar())
}

// renderPosts shows the labeled table for the current context.
func (m *Model) renderPosts() string {
	label := fmt.Sprintf("%s postings (sort: %s)",
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("green")).
			Render("/r/"+m.curCtx.Subreddit),
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border)).
			Render(string(m.curCtx.Sort)))

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(m.width - 2).
		Height(m.bodyHeight() - 3).
		Render(m.postsTable.View())

	return lipgloss.JoinVertical(lipgloss.Left, " "+label, box)
}

// renderPreview stacks the preview box over the screen center; the post list
// underneath is untouched and comes back on dismissal.
func (m *Model) renderPreview() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1).
		Width(m.previewWidth() + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(lipgloss.Color("blue")).Render(" Preview "),
			m.preview.View(),
		))

	hint := " [y] copy URL  [backspace] close"
	if m.statusMsg != "" {
		hint = " " + styleBarText.Render(m.statusMsg)
	}

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, box, hint))
}

func (m *Model) renderPicker() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(m.picker.View())

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderLogin() string {
	fieldBorder := m.theme.FieldBorderUnfocused
	if m.loginFlagged {
		fieldBorder = m.theme.FieldBorderInvalid
	}

	fields := make([]string, 0, len(m.loginInputs))
	labels := []string{"Username", "Password"}
	for i, input := range m.loginInputs {
		border := fieldBorder
		if i == m.loginFocus {
			border = m.theme.FieldBorderFocused
		}
		fields = append(fields, lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("blue")).Render(labels[i]),
				input.View(),
			)))
	}

	form := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("Threaddit Login"),
		lipgloss.NewStyle().Faint(true).Render("Press tab to switch fields, enter to submit."),
		"",
		fields[0],
		fields[1],
	)

	box := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Padding(1, 3).
		Render(form)

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderNotification() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.CancelDark)).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.CancelDark)).
				Render(m.noticeLabel),
			m.noticeHint,
			"",
			lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.ConfirmDark)).
				Foreground(lipgloss.Color("black")).
				Padding(0, 4).
				Render("okay"),
		))

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderLoading() string {
	text := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("green")).
		Render(m.loadingText)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
		m.spin.View()+" "+text)
}

// renderCommandBar shows the available actions for the machine state: only
// login and globals while a login is pending, the switch commands otherwise.
func (m *Model) renderCommandBar() string {
	var commands []string
	if m.loginPending() {
		commands = []string{
			styleBarKey.Render("[enter]") + styleBarText.Render(" Login"),
			styleBarKey.Render("[tab]") + styleBarText.Render(" Gain focus"),
		}
	} else {
		commands = []string{
			styleBarKey.Render("[a]") + styleBarText.Render(" Switch Subreddit"),
			styleBarKey.Render("[b]") + styleBarText.Render(" Switch Sorting"),
			styleBarKey.Render("[space]") + styleBarText.Render(" Preview"),
		}
	}
	commands = append(commands, styleBarKey.Render("[e]")+styleBarText.Render(" Exit"))

	return " " + strings.Join(commands, "  ")
}

// loginPending reports whether the machine is still before its first
// successful validation.
func (m *Model) loginPending() bool {
	return m.mode == ModeLogin || m.mode == ModeValidating ||
		(m.mode == ModeNotification && m.noticeNext == ModeLogin)
}

func (m *Model) bodyHeight() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *Model) tableWidth() int {
	return m.width - 4
}

func (m *Model) tableHeight() int {
	h := m.bodyHeight() - 5
	if h < 3 {
		return 3
	}
	return h
}

func (m *Model) previewWidth() int {
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) previewHeight() int {
	h := m.bodyHeight() - 8
	if h < 5 {
		return 5
	}
	return h
}

func (m *Model) pickerWidth() int {
	w := m.width / 3
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) pickerHeight() int {
	h := m.bodyHeight() - 4
	if h < 5 {
		return 5
	}
	return h
}
