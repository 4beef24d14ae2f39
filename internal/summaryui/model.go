// Package summaryui provides the Bubble Tea end-of-run summary view.
package summaryui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typereader/internal/stats"
)

const (
	tabOverview = iota
	tabChunks
	tabMisses
)

const (
	plotHeight    = 10
	defaultWindow = 1
	maxWindow     = 20
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model renders a finished run as tabs: overview, per-chunk table, missed characters.
type Model struct {
	summary stats.Summary
	window  int

	tabs      []string
	activeTab int
	overview  viewport.Model
	tables    map[int]*table.Model

	width  int
	height int
}

// NewModel constructs a summary view for s.
func NewModel(s stats.Summary) *Model {
	chunkTable := buildTable(chunkColumns(), chunkRows(s))
	missTable := buildTable(missColumns(), missRows(s))
	m := &Model{
		summary:  s,
		window:   defaultWindow,
		tabs:     []string{"Overview", "Chunks", "Misses"},
		overview: viewport.New(0, 0),
		tables: map[int]*table.Model{
			tabChunks: &chunkTable,
			tabMisses: &missTable,
		},
	}
	m.renderOverview()
	return m
}

// SetSize resizes the view to width x height cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateLayout()
	m.renderOverview()
}

// ActiveTab returns the title of the visible tab.
func (m *Model) ActiveTab() string {
	return m.tabs[m.activeTab]
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveTab(-1)
			return m, nil
		case "right", "l", "tab":
			m.moveTab(1)
			return m, nil
		case "=", "+":
			if m.window < maxWindow {
				m.window++
				m.renderOverview()
			}
			return m, nil
		case "-":
			if m.window > 1 {
				m.window--
				m.renderOverview()
			}
			return m, nil
		case "g", "home":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if t, ok := m.tables[m.activeTab]; ok {
			*t, cmd = t.Update(msg)
			return m, cmd
		}
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderTabs()
	footer := headerStyle.Render(m.helpLine())
	body := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer}, "\n")
	}
	headerHeight, bodyHeight := m.layoutHeights()
	return strings.Join([]string{
		fitLines(header, m.width, headerHeight),
		fitLines(body, m.width, bodyHeight),
		fitLines(footer, m.width, 1),
	}, "\n")
}

func (m *Model) helpLine() string {
	if m.activeTab == tabOverview {
		return fmt.Sprintf("Nav: left/right  Scroll: up/down  Smoothing: -/= (%d)  Quit: q", m.window)
	}
	return "Nav: left/right  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q"
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X"))
	if headerHeight < 1 {
		headerHeight = 1
	}
	bodyHeight = m.height - headerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	for _, t := range m.tables {
		t.SetWidth(m.width)
		t.SetHeight(maxInt(1, bodyHeight-1))
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	for idx, t := range m.tables {
		if idx == m.activeTab {
			t.Focus()
		} else {
			t.Blur()
		}
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabChunks:
		if len(m.summary.Chunks) == 0 {
			return "No chunks completed."
		}
		return tableMutedStyle.Render(m.tables[tabChunks].View())
	case tabMisses:
		if len(m.summary.Misses) == 0 {
			return "No missed characters. Clean run!"
		}
		return tableMutedStyle.Render(m.tables[tabMisses].View())
	}
	return m.overview.View()
}

func (m *Model) renderOverview() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.summary, m.window, width))
}

func renderOverview(s stats.Summary, window, width int) string {
	if len(s.Chunks) == 0 {
		return "No chunks completed."
	}
	cards := renderSummaryCards(s, width)
	var buf bytes.Buffer
	if err := stats.RenderCurvesWithSize(&buf, s, window, width, plotHeight, true); err != nil {
		return cards + "\n\n" + fmt.Sprintf("Failed to render curves: %v", err)
	}
	out := cards
	if top := stats.TopMisses(s.Misses, 5); len(top) > 0 {
		labels := make([]string, len(top))
		for i, ch := range top {
			labels[i] = stats.CharLabel(ch)
		}
		out += "\n" + headerStyle.Render("Most missed: "+strings.Join(labels, " "))
	}
	if buf.Len() > 0 {
		out += "\n\n" + buf.String()
	}
	return strings.TrimRight(out, "\n")
}

func renderSummaryCards(s stats.Summary, width int) string {
	cards := []string{
		metricCard("Chunks", fmt.Sprintf("%d", len(s.Chunks))),
		metricCard("Avg WPM", fmt.Sprintf("%.1f", s.AvgWPM)),
		metricCard("Best WPM", fmt.Sprintf("%d", s.BestWPM)),
		metricCard("Accuracy", fmt.Sprintf("%d%%", s.Accuracy)),
		metricCard("Mistakes", fmt.Sprintf("%d", s.TotalMistakes)),
		metricCard("Time", stats.FormatElapsed(s.TotalElapsedMs)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func chunkColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Words", Width: 6},
		{Title: "Chars", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "WPM", Width: 5},
		{Title: "Mistakes", Width: 9},
		{Title: "Accuracy", Width: 9},
	}
}

func chunkRows(s stats.Summary) []table.Row {
	rows := make([]table.Row, 0, len(s.Chunks))
	for _, c := range s.Chunks {
		rows = append(rows, table.Row(c.Cells()))
	}
	return rows
}

func missColumns() []table.Column {
	return []table.Column{
		{Title: "Char", Width: 8},
		{Title: "Misses", Width: 7},
		{Title: "Share", Width: 7},
	}
}

func missRows(s stats.Summary) []table.Row {
	rows := make([]table.Row, 0, len(s.Misses))
	for _, r := range s.Misses {
		rows = append(rows, table.Row{
			stats.CharLabel(r.Char),
			fmt.Sprintf("%d", r.Count),
			fmt.Sprintf("%.1f%%", r.Share*100),
		})
	}
	return rows
}

func buildTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, len(rows))),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
