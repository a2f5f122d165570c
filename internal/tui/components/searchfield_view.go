package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/swipesearch/internal/tui/styles"
)

type segmentKind int

const (
	segText segmentKind = iota
	segPlaceholder
	segCaret
	segSelection
)

// View implements Component.
func (f *SearchField) View() string {
	if f.disposed {
		return ""
	}
	pill := f.renderPill(f.layout)
	if f.width <= 0 || f.height <= 0 {
		return pill
	}

	var ws []lipgloss.WhitespaceOption
	if f.Focused() && f.opts.Background != nil {
		ws = append(ws, lipgloss.WithWhitespaceBackground(f.opts.Background))
	}
	return lipgloss.Place(f.width, f.height, f.opts.Alignment.Horizontal, f.opts.Alignment.Vertical, pill, ws...)
}

func (f *SearchField) renderPill(l Layout) string {
	st := styles.NewPill(f.opts.Container, f.opts.Content)
	if l.Bold {
		st.Text = st.Text.Bold(true)
		st.Placeholder = st.Placeholder.Bold(true)
		st.Caret = st.Caret.Bold(true)
	}

	top := (l.Rows - len(l.Lines)) / 2
	if top < 0 {
		top = 0
	}

	rows := make([]string, l.Rows)
	for r := range rows {
		idx := r - top
		var b strings.Builder

		switch {
		case l.ShowIcon && idx == 0:
			b.WriteString(st.Fill.Render(strings.Repeat(" ", iconLead) + f.opts.Icon + strings.Repeat(" ", iconGap)))
		case l.ShowIcon:
			b.WriteString(st.Fill.Render(strings.Repeat(" ", iconLead+runewidth.StringWidth(f.opts.Icon)+iconGap)))
		default:
			b.WriteString(st.Fill.Render(strings.Repeat(" ", iconLead)))
		}

		used := 0
		if idx >= 0 && idx < len(l.Lines) {
			line, w := renderLine(l, idx, st)
			b.WriteString(line)
			used = w
		}

		pad := l.TextWidth - used + trailPad
		if pad > 0 {
			b.WriteString(st.Fill.Render(strings.Repeat(" ", pad)))
		}
		rows[r] = b.String()
	}

	body := strings.Join(rows, "\n")
	if !l.Bordered {
		return body
	}
	return st.Frame.Render(body)
}

// renderLine draws one visible text row, grouping runes into runs of the
// same style. It returns the rendered string and its cell width.
func renderLine(l Layout, idx int, st styles.Pill) (string, int) {
	base := segText
	if l.ShowsPlaceholder {
		base = segPlaceholder
	}
	caretHere := l.Caret && idx == l.CaretLine

	var (
		b    strings.Builder
		run  strings.Builder
		kind = base
		col  int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(segmentStyle(kind, st).Render(run.String()))
		run.Reset()
	}

	start := l.LineStarts[idx]
	for i, r := range []rune(l.Lines[idx]) {
		k := base
		pos := start + i
		switch {
		case !l.Selection.Collapsed() && l.ShowsText && pos >= l.Selection.Start && pos < l.Selection.End:
			k = segSelection
		case caretHere && col == l.CaretCol:
			k = segCaret
		}
		if k != kind {
			flush()
			kind = k
		}
		run.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	flush()

	if caretHere && l.CaretCol >= col && col < l.TextWidth {
		b.WriteString(st.Caret.Render(" "))
		col++
	}
	return b.String(), col
}

func segmentStyle(k segmentKind, st styles.Pill) lipgloss.Style {
	switch k {
	case segPlaceholder:
		return st.Placeholder
	case segCaret:
		return st.Caret
	case segSelection:
		return st.Selection
	}
	return st.Text
}
