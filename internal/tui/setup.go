package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typereader/internal/model"
)

const (
	minChunkSize  = 10
	maxChunkSize  = 100
	chunkSizeStep = 10
	optionsWidth  = 34
)

const (
	optChunkSize = iota
	optShowStats
	optMistakes
	optCase
	optPunct
	optCount
)

// setupForm collects the source text and the options for a run.
type setupForm struct {
	opts     model.Options
	text     textarea.Model
	onText   bool
	selected int
	errMsg   string
}

func newSetupForm(opts model.Options, text string) setupForm {
	ta := textarea.New()
	ta.Placeholder = "Paste or type the text you want to read"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.Focus()
	return setupForm{opts: opts, text: ta, onText: true}
}

func (f *setupForm) resize(width, height int) {
	w := width - optionsWidth - 4
	if w < 20 {
		w = 20
	}
	h := height - 6
	if h < 3 {
		h = 3
	}
	f.text.SetWidth(w)
	f.text.SetHeight(h)
}

func (f *setupForm) setText(text string) {
	f.text.SetValue(text)
	f.errMsg = ""
}

func (f *setupForm) switchFocus() tea.Cmd {
	f.onText = !f.onText
	if f.onText {
		return f.text.Focus()
	}
	f.text.Blur()
	return nil
}

func (f *setupForm) update(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	if key.Matches(msg, keys.Focus) {
		return f.switchFocus()
	}
	if f.onText {
		f.errMsg = ""
		var cmd tea.Cmd
		f.text, cmd = f.text.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(msg, keys.Back):
		return f.switchFocus()
	case key.Matches(msg, keys.Up):
		f.selected = (f.selected + optCount - 1) % optCount
	case key.Matches(msg, keys.Down):
		f.selected = (f.selected + 1) % optCount
	case key.Matches(msg, keys.Less):
		if f.selected == optChunkSize {
			f.opts.ChunkSize = prevChunkSize(f.opts.ChunkSize)
		} else {
			f.toggle()
		}
	case key.Matches(msg, keys.More):
		if f.selected == optChunkSize {
			f.opts.ChunkSize = nextChunkSize(f.opts.ChunkSize)
		} else {
			f.toggle()
		}
	case key.Matches(msg, keys.Toggle):
		f.toggle()
	}
	return nil
}

func (f *setupForm) toggle() {
	switch f.selected {
	case optShowStats:
		f.opts.ShowStats = !f.opts.ShowStats
	case optMistakes:
		f.opts.MistakesAllowed = !f.opts.MistakesAllowed
	case optCase:
		f.opts.CaseSensitive = !f.opts.CaseSensitive
	case optPunct:
		f.opts.PunctuationRequired = !f.opts.PunctuationRequired
	}
}

func nextChunkSize(n int) int {
	if n < minChunkSize {
		return minChunkSize
	}
	next := (n/chunkSizeStep + 1) * chunkSizeStep
	if next > maxChunkSize {
		return maxChunkSize
	}
	return next
}

func prevChunkSize(n int) int {
	if n <= minChunkSize {
		return minChunkSize
	}
	if n > maxChunkSize {
		return maxChunkSize
	}
	if n%chunkSizeStep == 0 {
		return n - chunkSizeStep
	}
	return (n / chunkSizeStep) * chunkSizeStep
}

func (f *setupForm) view() string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Type"),
		titleAccentStyle.Render("Reader"),
	)
	rows := []string{title, ""}
	rows = append(rows, f.optionRow(optChunkSize, "Chunk size", fmt.Sprintf("‹ %d ›", f.opts.ChunkSize), "Words per chunk"))
	rows = append(rows, f.optionRow(optShowStats, "Show stats", onOff(f.opts.ShowStats), "Live WPM and accuracy"))
	rows = append(rows, f.optionRow(optMistakes, "Mistakes OK", onOff(f.opts.MistakesAllowed),
		pick(f.opts.MistakesAllowed, "Can move on from mistakes", "Cannot move on from mistakes")))
	rows = append(rows, f.optionRow(optCase, "Case sensitive", onOff(f.opts.CaseSensitive),
		pick(f.opts.CaseSensitive, "Capitalization required", "No need for capitalization")))
	rows = append(rows, f.optionRow(optPunct, "Punctuation", onOff(f.opts.PunctuationRequired),
		pick(f.opts.PunctuationRequired, "Punctuation required", "No need for punctuation")))
	if f.errMsg != "" {
		rows = append(rows, "", errorStyle.Render(f.errMsg))
	}
	panel := lipgloss.NewStyle().Width(optionsWidth).Render(strings.Join(rows, "\n"))
	border := blurredBorderStyle
	if f.onText {
		border = focusedBorderStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, border.Render(f.text.View()))
}

func (f *setupForm) optionRow(idx int, label, value, hint string) string {
	style := optionStyle
	marker := "  "
	if !f.onText && f.selected == idx {
		style = optionSelectedStyle
		marker = "› "
	}
	line := style.Render(fmt.Sprintf("%s%-15s %s", marker, label, value))
	return line + "\n" + hintStyle.Render("  "+hint)
}

func onOff(v bool) string {
	if v {
		return "[on]"
	}
	return "[off]"
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
