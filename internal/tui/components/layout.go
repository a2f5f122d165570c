package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/swipesearch/internal/tui/state"
	"github.com/hy4ri/swipesearch/internal/tui/ui"
)

// Rect is a cell rectangle relative to the field's top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is one laid-out frame of a search field. It is what View draws
// and what OnTextLayout receives.
type Layout struct {
	Phase state.Phase

	// Animated values at the time of layout.
	Width    float64
	Height   float64
	FontSize float64

	Pill     Rect
	Bordered bool
	ShowIcon bool
	// TextWidth is the number of cells available to text on each row.
	TextWidth int
	// Rows is the number of content rows inside the pill.
	Rows int

	// Lines are the visible text rows. LineStarts holds the rune offset of
	// each line within the displayed string.
	Lines      []string
	LineStarts []int

	ShowsPlaceholder bool
	ShowsText        bool

	Caret     bool
	CaretLine int
	CaretCol  int

	// Selection is the highlighted rune range, empty when collapsed.
	Selection state.Selection

	Bold bool
}

type layoutInput struct {
	state    state.FieldState
	value    string
	width    float64
	height   float64
	fontSize float64
	areaW    int
	areaH    int
	opts     *Options
}

const (
	iconLead  = 1
	iconGap   = 1
	trailPad  = 1
	minBorder = 3
)

func computeLayout(in layoutInput) Layout {
	o := in.opts
	l := Layout{
		Phase:    in.state.Phase(),
		Width:    in.width,
		Height:   in.height,
		FontSize: in.fontSize,
	}

	w := roundCells(in.width)
	h := roundCells(in.height)
	if in.areaW > 0 && w > in.areaW {
		w = in.areaW
	}
	if in.areaH > 0 && h > in.areaH {
		h = in.areaH
	}
	l.Pill = Rect{
		X: placeOffset(in.areaW-w, o.Alignment.Horizontal),
		Y: placeOffset(in.areaH-h, o.Alignment.Vertical),
		W: w,
		H: h,
	}

	innerW, rows := w, h
	if h >= minBorder && w >= 4 {
		l.Bordered = true
		innerW -= 2
		rows -= 2
	}
	l.Rows = rows

	iconW := runewidth.StringWidth(o.Icon)
	prefix := iconLead + iconW + iconGap
	if iconW > 0 && innerW >= prefix+trailPad+1 {
		l.ShowIcon = true
		l.TextWidth = innerW - prefix - trailPad
	} else {
		l.TextWidth = innerW - iconLead - trailPad
	}
	if l.TextWidth < 0 {
		l.TextWidth = 0
	}

	focused := in.state.Focused
	switch {
	case in.value == "":
		l.ShowsPlaceholder = true
		l.Caret = focused
	case focused, o.ShowTextWhenCollapsed:
		l.ShowsText = true
	default:
		l.ShowsPlaceholder = true
	}

	if l.ShowsPlaceholder {
		l.Lines = []string{ui.TruncateString(o.Placeholder, l.TextWidth)}
		l.LineStarts = []int{0}
	}

	if l.ShowsText {
		display := in.state.Text
		if o.Transform != nil {
			display = o.Transform(display)
		}
		runes := []rune(ui.Flatten(display))

		sel := clampSelection(in.state.Selection, len(runes))
		caret := sel.End
		if !focused {
			caret = 0
		}
		l.Caret = focused && sel.Collapsed()
		if !sel.Collapsed() {
			l.Selection = sel
		}

		maxRows := 1
		if !o.SingleLine {
			maxRows = rows
			if o.MaxLines > 0 && o.MaxLines < maxRows {
				maxRows = o.MaxLines
			}
			if maxRows < 1 {
				maxRows = 1
			}
		}
		if maxRows == 1 {
			l.Lines, l.LineStarts, l.CaretCol = scrollLine(runes, l.TextWidth, caret, l.Caret)
		} else {
			l.Lines, l.LineStarts, l.CaretLine, l.CaretCol = wrapLines(runes, l.TextWidth, maxRows, caret, l.Caret)
		}
	}

	l.Bold = fontProgress(in.fontSize, o.InitialFontSize, state.TargetsFor(o.dimensions(), true, state.Constraints{}).FontSize) >= 0.5
	return l
}

// scrollLine fits runes into one row of width cells, scrolled so the caret
// stays visible.
func scrollLine(runes []rune, width, caret int, reserveCaret bool) (lines []string, starts []int, caretCol int) {
	caretCell := 0
	if reserveCaret {
		caretCell = 1
	}
	start := 0
	for start < caret && ui.RunesWidth(runes[start:caret])+caretCell > width {
		start++
	}
	end, used := start, 0
	for end < len(runes) {
		rw := runewidth.RuneWidth(runes[end])
		if used+rw > width {
			break
		}
		used += rw
		end++
	}
	return []string{string(runes[start:end])}, []int{start}, ui.RunesWidth(runes[start:caret])
}

// wrapLines hard-wraps runes into rows of width cells and returns the window
// of at most maxRows rows that contains the caret.
func wrapLines(runes []rune, width, maxRows, caret int, reserveCaret bool) (lines []string, starts []int, caretLine, caretCol int) {
	type span struct{ start, end, width int }

	var spans []span
	cur := span{}
	for i, r := range runes {
		rw := runewidth.RuneWidth(r)
		if cur.width+rw > width && cur.end > cur.start {
			spans = append(spans, cur)
			cur = span{start: i, end: i}
		}
		cur.end = i + 1
		cur.width += rw
	}
	spans = append(spans, cur)

	last := spans[len(spans)-1]
	if reserveCaret && caret == len(runes) && last.width >= width && width > 0 && len(runes) > 0 {
		spans = append(spans, span{start: len(runes), end: len(runes)})
	}

	caretRow := len(spans) - 1
	for i, s := range spans {
		if caret >= s.start && caret < s.end {
			caretRow = i
			break
		}
	}

	first := 0
	if caretRow >= maxRows {
		first = caretRow - maxRows + 1
	}
	stop := first + maxRows
	if stop > len(spans) {
		stop = len(spans)
	}
	for _, s := range spans[first:stop] {
		lines = append(lines, string(runes[s.start:s.end]))
		starts = append(starts, s.start)
	}
	caretStart := spans[caretRow].start
	return lines, starts, caretRow - first, ui.RunesWidth(runes[caretStart:caret])
}

// placeOffset mirrors how lipgloss.Place distributes a gap.
func placeOffset(gap int, pos lipgloss.Position) int {
	if gap <= 0 {
		return 0
	}
	switch {
	case pos <= lipgloss.Left:
		return 0
	case pos >= lipgloss.Right:
		return gap
	}
	return gap - int(math.Round(float64(gap)*float64(pos)))
}

func roundCells(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(v))
}

func clampSelection(s state.Selection, n int) state.Selection {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > n {
			return n
		}
		return v
	}
	s.Start, s.End = clamp(s.Start), clamp(s.End)
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

func fontProgress(font, initial, target float64) float64 {
	if target == initial {
		return 0
	}
	return (font - initial) / (target - initial)
}
