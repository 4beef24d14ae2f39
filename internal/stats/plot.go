package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	axisLabelTop        = "max"
	axisLabelBottom     = "min"
	axisSeparator       = " │ "
	scaleNote           = "Scaled per series; see min/max below."
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// Dash patterns keep overlapping series apart without color.
var dashes = []struct {
	name   string
	period int
	on     int
}{
	{"solid", 1, 1},
	{"dashed", 6, 3},
	{"dotted", 4, 1},
}

var palette = []string{"\x1b[36m", "\x1b[35m", "\x1b[33m", "\x1b[32m"}

// canvas is a grid of braille cells, two dots wide and four dots tall each.
type canvas struct {
	width, height int
	cells         [][]uint8
}

func newCanvas(width, height int) *canvas {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return &canvas{width: width, height: height, cells: cells}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *canvas) set(x, y int) {
	cx, cy := x/2, y/4
	if x < 0 || y < 0 || cy >= c.height || cx >= c.width {
		return
	}
	c.cells[cy][cx] |= dotBits[x%2][y%4]
}

// line draws from (x0,y0) to (x1,y1) with Bresenham, skipping dots outside the dash pattern.
func (c *canvas) line(x0, y0, x1, y1, period, on int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if period <= 1 || x0%period < on {
			c.set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// PlotSeries renders a multi-line text plot for the provided series.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, false)
}

// PlotSeriesWithColor renders a multi-line text plot with optional forced color output.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	kept := series[:0:0]
	for _, s := range series {
		if len(s.Values) > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	canvases := make([]*canvas, len(kept))
	bounds := make([][2]float64, len(kept))
	for i, s := range kept {
		values := resample(s.Values, width)
		lo, hi := minMax(values)
		if hi-lo < 1e-9 {
			lo--
			hi++
		}
		bounds[i] = [2]float64{lo, hi}
		cv := newCanvas(width, height)
		dots := height * 4
		dash := dashes[i%len(dashes)]
		prevX, prevY := -1, -1
		for x, v := range values {
			y := int(math.Round((1 - (v-lo)/(hi-lo)) * float64(dots-1)))
			px := x * 2
			if prevX < 0 {
				cv.line(px, y, px, y, 1, 1)
			} else {
				cv.line(prevX, prevY, px, y, dash.period, dash.on)
			}
			prevX, prevY = px, y
		}
		canvases[i] = cv
	}

	useColor := shouldUseColor(w, forceColor)
	var b strings.Builder
	if title != "" {
		b.WriteString(title + "\n")
	}
	b.WriteString(scaleNote + "\n")
	for i, s := range kept {
		fmt.Fprintf(&b, "%s: min=%.2f max=%.2f\n", s.Name, bounds[i][0], bounds[i][1])
	}
	labelWidth := runewidth.StringWidth(axisLabelTop)
	for y := 0; y < height; y++ {
		label := ""
		switch y {
		case 0:
			label = axisLabelTop
		case height - 1:
			label = axisLabelBottom
		}
		fmt.Fprintf(&b, "%*s%s", labelWidth, label, axisSeparator)
		for x := 0; x < width; x++ {
			var mask uint8
			owner := -1
			for i, cv := range canvases {
				if m := cv.cells[y][x]; m != 0 {
					mask |= m
					if owner < 0 {
						owner = i
					}
				}
			}
			ch := rune(0x2800 + int(mask))
			if useColor && owner >= 0 {
				b.WriteString(palette[owner%len(palette)] + string(ch) + colorReset)
			} else {
				b.WriteRune(ch)
			}
		}
		b.WriteString("\n")
	}
	legend := make([]string, 0, len(kept))
	for i, s := range kept {
		label := fmt.Sprintf("%c %s (%s)", rune(0x2801), s.Name, dashes[i%len(dashes)].name)
		if useColor {
			label = palette[i%len(palette)] + label + colorReset
		}
		legend = append(legend, label)
	}
	b.WriteString("Legend: " + strings.Join(legend, "  ") + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// PlotWidthFor computes a plot width that fits within the total available width.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	plotWidth := totalWidth - runewidth.StringWidth(axisLabelTop) - runewidth.StringWidth(axisSeparator)
	if plotWidth < minPlotWidth {
		return minPlotWidth
	}
	return plotWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// resample stretches or averages values to exactly width points.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	n := len(values)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := (i + 1) * n / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := int(pos)
			if idx >= n-1 {
				out[i] = values[n-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 0) {
		return 0, 0
	}
	return lo, hi
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
