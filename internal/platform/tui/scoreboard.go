package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const scoreLimit = 100

// boardChrome is the number of rows around the table: title, stats,
// variant strip, borders, seed hint and help.
const boardChrome = 10

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	variantOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	variantOffStyle = boardDimStyle.Padding(0, 1)
)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	variantOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	variantOffStyle = boardDimStyle.Padding(0, 1)
)

// boardKeys are the scoreboard bindings. Scrolling is left to the table's own keymap.
type boardKeys struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs of each registered variant.
type ScoreboardModel struct {
	variants []registry.GameInfo
	selected int
	store    *storage.Store

	scores []storage.ScoreEntry
	stats  storage.GameStats

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the first registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     newBoardKeys(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.reload()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Seed", Width: 12},
			{Title: "Played", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload fetches scores and stats for the selected variant.
// Storage errors leave the board empty.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = storage.GameStats{}
	if len(m.variants) == 0 || m.store == nil {
		m.table.SetRows(nil)
		return
	}

	id := m.variants[m.selected].ID
	if scores, err := m.store.TopScores(id, scoreLimit); err == nil {
		m.scores = scores
	}
	if stats, err := m.store.Stats(id); err == nil {
		m.stats = stats
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			strconv.FormatInt(s.Seed, 10),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the variant selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-boardChrome, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title += " - " + m.variants[m.selected].Title
	}

	lines := []string{
		centerText(boardTitleStyle.Render(title), m.width),
		centerText(boardDimStyle.Render(m.statsLine()), m.width),
		centerText(m.variantStrip(), m.width),
		"",
		centerText(boardFrameStyle.Render(m.body()), m.width),
		centerText(boardDimStyle.Render(m.seedHint()), m.width),
		boardDimStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("games %d  best %d  avg %.1f  max level %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
}

// variantStrip shows every variant with the selected one highlighted.
// On narrow terminals only the selected title is shown.
func (m ScoreboardModel) variantStrip() string {
	if len(m.variants) == 0 {
		return ""
	}
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.selected {
			parts[i] = variantOnStyle.Render(v.Title)
		} else {
			parts[i] = variantOffStyle.Render(v.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width {
		return "< " + m.variants[m.selected].Title + " >"
	}
	return strip
}

func (m ScoreboardModel) body() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).Render("No finished games yet.")
	}
	return m.table.View()
}

// seedHint names the piece seed of the highlighted run. A replay script with
// the same seed deals the same pieces.
func (m ScoreboardModel) seedHint() string {
	row := m.table.SelectedRow()
	if len(row) < 4 || len(m.scores) == 0 {
		return ""
	}
	return fmt.Sprintf("piece seed %s (replay script \"seed:\")", row[3])
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack is true when the player asked for the menu rather than to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
