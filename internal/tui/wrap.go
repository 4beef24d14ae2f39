package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typereader/internal/session"
)

const wrongSpace = '·'

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes renders each target rune from its status. cursorIndex < 0 hides the cursor.
func buildStyledRunes(target []rune, statuses []session.Status, cursorIndex int) []styledRune {
	words := findWords(target)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(target))
	for i, r := range target {
		displayed := r
		style := pendingStyle
		switch statuses[i] {
		case session.StatusCorrect:
			style = correctStyle
		case session.StatusIncorrect:
			style = incorrectStyle
			if r == ' ' {
				displayed = wrongSpace
			}
		default:
			if r != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: r == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func findWords(target []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that keeps the line within width.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	flush := func(items []styledRune) {
		out.WriteString(renderStyledRunes(items))
		out.WriteRune('\n')
	}

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				flush(line[:lastSpaceIdx])
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
			} else {
				flush(line)
				line = line[:0]
			}
			lineWidth = 0
			lastSpaceIdx = -1
			for j, it := range line {
				lineWidth += it.width
				if it.isSpace {
					lastSpaceIdx = j
				}
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}
