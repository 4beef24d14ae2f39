// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typereader/internal/logger"
	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/session"
	"github.com/verte-zerg/typereader/internal/stats"
	"github.com/verte-zerg/typereader/internal/summaryui"
)

const tickInterval = time.Second

type phase int

const (
	phaseSetup phase = iota
	phaseTyping
	phaseChunkDone
	phaseSummary
)

// SourceMsg replaces the setup text, e.g. after the source file changed.
type SourceMsg struct {
	Text string
}

type tickMsg struct {
	id int
	at time.Time
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	log  logger.Logger
	now  func() time.Time
	rnd  *rand.Rand
	keys keyMap
	help help.Model

	width  int
	height int

	phase   phase
	setup   setupForm
	text    string
	run     *session.Run
	live    session.Live
	tickID  int
	cheer   string
	summary *summaryui.Model
	final   *stats.Summary
}

// NewModel constructs a typing TUI model. text pre-fills the setup form.
func NewModel(opts model.Options, text string, log logger.Logger) *Model {
	if log == nil {
		log = logger.Nop()
	}
	return &Model{
		log:   log,
		now:   time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:  defaultKeyMap(),
		help:  help.New(),
		setup: newSetupForm(opts, text),
	}
}

// Summary returns the summary of the last completed run.
func (m *Model) Summary() (stats.Summary, bool) {
	if m.final == nil {
		return stats.Summary{}, false
	}
	return *m.final, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setup.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.summary != nil {
			m.summary.SetSize(msg.Width, msg.Height-1)
		}
		return m, nil
	case SourceMsg:
		if m.phase != phaseSetup {
			m.log.Infof("source changed during a run; keeping current text")
			return m, nil
		}
		m.setup.setText(msg.Text)
		m.log.Debugf("setup text replaced (%d bytes)", len(msg.Text))
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseSetup:
			return m, m.updateSetup(msg)
		case phaseTyping:
			return m, m.updateTyping(msg)
		case phaseChunkDone:
			return m, m.updateChunkDone(msg)
		case phaseSummary:
			return m, m.updateSummary(msg)
		}
	}
	if m.phase == phaseSummary && m.summary != nil {
		_, cmd := m.summary.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSetup(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Start) {
		m.startRun(m.setup.text.Value())
		return nil
	}
	return m.setup.update(msg, m.keys)
}

func (m *Model) startRun(text string) {
	opts := m.setup.opts
	run := session.NewRun(text, opts)
	if run.Total() == 0 {
		m.setup.errMsg = "Nothing to type: paste some text first."
		return
	}
	m.text = text
	m.run = run
	m.final = nil
	m.summary = nil
	m.enterChunk()
	m.log.Infof("run started: %d chunks, options %+v", run.Total(), run.Options())
}

func (m *Model) enterChunk() {
	m.phase = phaseTyping
	m.live = session.Live{}
	m.tickID++
}

func (m *Model) updateTyping(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) {
		m.backToSetup()
		return nil
	}
	if msg.Paste || msg.Alt {
		return nil
	}
	var runes []rune
	switch msg.Type {
	case tea.KeySpace:
		runes = []rune{' '}
	case tea.KeyRunes:
		runes = msg.Runes
	default:
		return nil
	}

	cur := m.run.Current()
	var cmd tea.Cmd
	for _, r := range runes {
		wasIdle := cur.Phase() == session.PhaseIdle
		now := m.now()
		res := cur.Type(r, now)
		if wasIdle && res.Accepted {
			cmd = m.tickCmd()
		}
		if res.Completed {
			m.finishChunk(now)
			return nil
		}
	}
	return cmd
}

func (m *Model) finishChunk(now time.Time) {
	cur := m.run.Current()
	m.live = cur.Live(now)
	m.phase = phaseChunkDone
	m.cheer = pickEncouragement(m.rnd)
	m.tickID++
	if st, ok := cur.Stats(); ok {
		m.log.Debugf("chunk %d done: %d wpm, %d mistakes, %dms", m.run.Index()+1, st.WPM, st.Mistakes, st.ElapsedMs)
	}
}

func (m *Model) updateChunkDone(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToSetup()
	case key.Matches(msg, m.keys.Next):
		if m.run.Advance() {
			m.enterChunk()
			return nil
		}
		m.showSummary()
	}
	return nil
}

func (m *Model) showSummary() {
	summary := stats.Summarize(m.run.Results())
	m.final = &summary
	m.summary = summaryui.NewModel(summary)
	m.summary.SetSize(m.width, m.height-1)
	m.phase = phaseSummary
	m.log.Infof("run finished: %d chunks, %.1f avg wpm, %d mistakes", len(summary.Chunks), summary.AvgWPM, summary.TotalMistakes)
}

func (m *Model) updateSummary(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Restart):
		m.startRun(m.text)
		return nil
	case key.Matches(msg, m.keys.Back):
		m.backToSetup()
		return nil
	}
	_, cmd := m.summary.Update(msg)
	return cmd
}

func (m *Model) backToSetup() {
	m.phase = phaseSetup
	m.run = nil
	m.summary = nil
	m.tickID++
}

func (m *Model) tickCmd() tea.Cmd {
	id := m.tickID
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, at: t}
	})
}

// handleTick refreshes the live estimate. Ticks from an earlier chunk or
// after the chunk left the active phase are dropped, which stops the loop.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != m.tickID || m.phase != phaseTyping || m.run == nil {
		return nil
	}
	cur := m.run.Current()
	if cur.Phase() != session.PhaseActive {
		return nil
	}
	m.live = cur.Live(msg.at)
	return m.tickCmd()
}

// View implements tea.Model.
func (m *Model) View() string {
	var body, helpLine string
	switch m.phase {
	case phaseSetup:
		body = m.setup.view()
		if m.setup.onText {
			helpLine = m.help.ShortHelpView(m.keys.setupTextHelp())
		} else {
			helpLine = m.help.ShortHelpView(m.keys.setupOptionsHelp())
		}
	case phaseTyping:
		body = m.typingView(false)
		helpLine = m.help.ShortHelpView(m.keys.typingHelp())
	case phaseChunkDone:
		body = m.typingView(true)
		helpLine = m.help.ShortHelpView(m.keys.doneHelp(m.run.Index()+1 >= m.run.Total()))
	case phaseSummary:
		return m.summary.View() + "\n" + m.help.ShortHelpView(m.keys.summaryHelp())
	}
	if m.width == 0 || m.height == 0 {
		return body + "\n" + helpLine
	}
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return placed + "\n" + helpLine
}

func (m *Model) typingView(done bool) string {
	cur := m.run.Current()
	cursorIndex := -1
	if !done && cur.Cursor() < cur.Len() {
		cursorIndex = cur.Cursor()
	}
	styled := buildStyledRunes(cur.Target(), cur.Statuses(), cursorIndex)
	contentWidth := int(float64(m.width) * 0.70)
	if m.width == 0 {
		contentWidth = 0
	} else if contentWidth < 1 {
		contentWidth = 1
	}
	text := wrapStyledRunes(styled, contentWidth)
	if contentWidth > 0 {
		text = lipgloss.NewStyle().Width(contentWidth).Render(text)
	}

	lines := []string{m.renderProgress(), "", text, ""}
	if m.run.Options().ShowStats || done {
		lines = append(lines, m.renderStats())
	}
	if done {
		lines = append(lines, "", cheerStyle.Render(m.cheer))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderProgress() string {
	cur := m.run.Current()
	progress := 0
	if cur.Len() > 0 {
		progress = cur.Cursor() * 100 / cur.Len()
	}
	return footerStyle.Render(fmt.Sprintf("Chunk %d/%d  Progress %d%%", m.run.Index()+1, m.run.Total(), progress))
}

func (m *Model) renderStats() string {
	cur := m.run.Current()
	segments := []string{
		fmt.Sprintf("%d/%d", cur.Cursor(), cur.Len()),
		fmt.Sprintf("WPM: %d", m.live.WPM),
		fmt.Sprintf("Accuracy: %d%%", cur.Accuracy()),
		fmt.Sprintf("Mistakes: %d", cur.Mistakes()),
		fmt.Sprintf("Time: %s", stats.FormatElapsed(m.live.Elapsed.Milliseconds())),
	}
	return statsStyle.Render(strings.Join(segments, "  "))
}
