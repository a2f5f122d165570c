package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/swipesearch/internal/animation"
	"github.com/hy4ri/swipesearch/internal/tui/state"
)

// Alignment positions the pill inside the field's area.
type Alignment struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
}

// Common alignments.
var (
	AlignTopCenter    = Alignment{Horizontal: lipgloss.Center, Vertical: lipgloss.Top}
	AlignCenter       = Alignment{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
	AlignBottomCenter = Alignment{Horizontal: lipgloss.Center, Vertical: lipgloss.Bottom}
)

// InputOptions configure the editing engine.
type InputOptions struct {
	// CharLimit caps the text length in runes. Zero means no limit.
	CharLimit int
	// Validate is run on every edit; a failing value is still accepted and
	// the error is reported through SearchField.Err.
	Validate func(string) error
}

// Actions are invoked for input-method actions.
type Actions struct {
	// OnSearch runs when enter is pressed while the field is expanded.
	OnSearch func(text string)
	// OnCancel runs when esc collapses the field.
	OnCancel func(text string)
}

// Transform rewrites text for display only. It must preserve the rune
// count for the caret to line up.
type Transform func(string) string

// MaskTransform hides every rune behind mask.
func MaskTransform(mask rune) Transform {
	return func(s string) string {
		return strings.Repeat(string(mask), len([]rune(s)))
	}
}

// SpringOptions switch the three properties from a timed tween to a spring.
type SpringOptions struct {
	Frequency float64
	Damping   float64
}

// Options configure a SearchField. They are read once at construction.
type Options struct {
	Alignment Alignment
	Enabled   bool
	ReadOnly  bool
	Input     InputOptions
	Actions   Actions

	SingleLine bool
	// MaxLines caps wrapped rows when SingleLine is false. Zero means as
	// many as the pill can show.
	MaxLines  int
	Transform Transform

	// OnTextLayout receives every recomputed layout.
	OnTextLayout func(Layout)

	Background lipgloss.TerminalColor
	Container  lipgloss.TerminalColor
	Content    lipgloss.TerminalColor

	InitialFontSize float64
	TargetFontSize  float64
	// Widths and heights are in terminal cells. A zero or +Inf target
	// fills the container.
	InitialWidth  float64
	TargetWidth   float64
	InitialHeight float64
	TargetHeight  float64

	Placeholder string
	Icon        string

	DragToFocus   bool
	DragThreshold float64
	// RowUnits converts one row of mouse drag into drag units.
	RowUnits float64
	// WheelUnits is the drag step produced by one wheel notch.
	WheelUnits float64

	Duration time.Duration
	Curve    animation.Curve
	Spring   *SpringOptions

	// ShowTextWhenCollapsed shows the live text in the collapsed chip
	// instead of the placeholder.
	ShowTextWhenCollapsed bool

	Clock animation.Clock
}

// Defaults shared by both presets.
const (
	DefaultFontSize      = 14
	DefaultWidth         = 14
	DefaultHeight        = 3
	DefaultDragThreshold = 40
	DefaultRowUnits      = 16
	DefaultWheelUnits    = 48
	DefaultDuration      = 400 * time.Millisecond
	DefaultPlaceholder   = "Search"
	DefaultIcon          = "🔍"

	// TapHeightFactor is the expanded height of the tap-only preset.
	TapHeightFactor = 1.5
)

// Default colours of the system search control.
var (
	DefaultBackground = lipgloss.Color("#F0F0F3")
	DefaultContainer  = lipgloss.Color("#8E8E93")
	DefaultContent    = lipgloss.Color("#FFFFFF")
)

// SwipeOptions is the preset that opens on a downward swipe and closes on
// an upward one.
func SwipeOptions() Options {
	return Options{
		Alignment:       AlignBottomCenter,
		Enabled:         true,
		SingleLine:      true,
		Background:      DefaultBackground,
		Container:       DefaultContainer,
		Content:         DefaultContent,
		InitialFontSize: DefaultFontSize,
		TargetFontSize:  DefaultFontSize * state.DefaultFontFactor,
		InitialWidth:    DefaultWidth,
		TargetWidth:     math.Inf(1),
		InitialHeight:   DefaultHeight,
		TargetHeight:    DefaultHeight * state.DefaultHeightFactor,
		Placeholder:     DefaultPlaceholder,
		Icon:            DefaultIcon,
		DragToFocus:     true,
		DragThreshold:   DefaultDragThreshold,
		RowUnits:        DefaultRowUnits,
		WheelUnits:      DefaultWheelUnits,
		Duration:        DefaultDuration,
		Curve:           animation.EaseInOut,
	}
}

// TapOptions is the preset without drag gestures; it only opens on tap or
// key press and grows a little taller.
func TapOptions() Options {
	o := SwipeOptions()
	o.DragToFocus = false
	o.TargetHeight = DefaultHeight * TapHeightFactor
	return o
}

func (o Options) dimensions() state.Dimensions {
	return state.Dimensions{
		InitialWidth:    o.InitialWidth,
		TargetWidth:     o.TargetWidth,
		InitialHeight:   o.InitialHeight,
		TargetHeight:    o.TargetHeight,
		InitialFontSize: o.InitialFontSize,
		TargetFontSize:  o.TargetFontSize,
	}
}

func (o Options) newAnimator(initial float64) animation.Animator {
	if o.Spring != nil {
		return animation.NewSpring(initial, o.Spring.Frequency, o.Spring.Damping)
	}
	return animation.NewTween(initial, o.Duration, o.Curve)
}
