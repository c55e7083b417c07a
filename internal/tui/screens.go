package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"threaddit/internal/config"
	"threaddit/internal/listing"
	"threaddit/internal/reddit"
)

// Stateless screen builders. Every visual surface is constructed here from
// the theme plus its content; the state machine only swaps the results in
// and out.

// newPostsTable builds the multi-column post table. The result's header row
// becomes the column titles; the remaining rows keep their index alignment
// with the underlying posts, so the table cursor maps 1:1 to a record.
func newPostsTable(theme config.Theme, result *listing.Result, width, height int) table.Model {
	header := result.Rows[0]

	titleWidth := width - (scoreColWidth + authorColWidth + subredditColWidth) - 8
	if titleWidth < 20 {
		titleWidth = 20
	}
	columns := []table.Column{
		{Title: header[0], Width: scoreColWidth},
		{Title: header[1], Width: authorColWidth},
		{Title: header[2], Width: subredditColWidth},
		{Title: header[3], Width: titleWidth},
	}

	rows := make([]table.Row, 0, len(result.Rows)-1)
	for _, row := range result.Rows[1:] {
		rows = append(rows, table.Row(row))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// The default keymap binds letters this screen uses as commands.
	t.KeyMap = table.KeyMap{
		LineUp:     key.NewBinding(key.WithKeys("up", "k")),
		LineDown:   key.NewBinding(key.WithKeys("down", "j")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		GotoTop:    key.NewBinding(key.WithKeys("home")),
		GotoBottom: key.NewBinding(key.WithKeys("end")),
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(theme.TableHeader))
	styles.Cell = styles.Cell.
		Foreground(lipgloss.Color(theme.TableText))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(false)
	t.SetStyles(styles)

	return t
}

const (
	scoreColWidth     = 8
	authorColWidth    = 20
	subredditColWidth = 22
)

// newLoginInputs builds the username/password pair. The password field is
// masked.
func newLoginInputs(theme config.Theme) []textinput.Model {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return []textinput.Model{username, password}
}

// pickerItem is a single-column selectable entry.
type pickerItem string

func (i pickerItem) Title() string       { return string(i) }
func (i pickerItem) Description() string { return "" }
func (i pickerItem) FilterValue() string { return string(i) }

// newPicker builds a single-column selectable list with fuzzy filtering.
func newPicker(theme config.Theme, title string, entries []string, width, height int) list.Model {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, pickerItem(entry))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(lipgloss.Color(theme.TableText))
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(theme.SelectedFg)).
		Background(lipgloss.Color(theme.SelectedBg)).
		BorderForeground(lipgloss.Color(theme.Border))

	l := list.New(items, delegate, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = l.Styles.Title.
		Foreground(lipgloss.Color(theme.TableHeader)).
		Bold(true)

	return l
}

// newSortPicker builds the picker over the closed set of sort options.
func newSortPicker(theme config.Theme, width, height int) list.Model {
	return newPicker(theme, "Sort", sortOptions(), width, height)
}

func sortOptions() []string {
	sorts := reddit.Sorts()
	options := make([]string, 0, len(sorts))
	for _, sort := range sorts {
		options = append(options, string(sort))
	}
	return options
}

// newPreview builds the scrollable message box for the post preview.
func newPreview(theme config.Theme, width, height int) viewport.Model {
	v := viewport.New(width, height)
	return v
}

// newSpinner builds the loading indicator.
func newSpinner(theme config.Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))
	return s
}
