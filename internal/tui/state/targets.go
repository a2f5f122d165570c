package state

import "math"

// Default growth factors applied when a target is left unset.
const (
	DefaultHeightFactor = 1.4
	DefaultFontFactor   = 1.25
)

// Dimensions are the configured collapsed and expanded sizes. A target of
// zero or +Inf means "as large as the container allows" for width and height;
// an unset font target means DefaultFontFactor times the initial size.
type Dimensions struct {
	InitialWidth    float64
	TargetWidth     float64
	InitialHeight   float64
	TargetHeight    float64
	InitialFontSize float64
	TargetFontSize  float64
}

// Constraints are the measured bounds of the container. Zero means not yet
// measured.
type Constraints struct {
	MaxWidth  float64
	MaxHeight float64
}

// AnimationTargets are the values the three animated properties head to.
type AnimationTargets struct {
	Width    float64
	Height   float64
	FontSize float64
}

// TargetsFor derives the animation targets for a focus state. Collapsed
// targets always equal the initial dimensions.
func TargetsFor(d Dimensions, focused bool, c Constraints) AnimationTargets {
	if !focused {
		return AnimationTargets{
			Width:    d.InitialWidth,
			Height:   d.InitialHeight,
			FontSize: d.InitialFontSize,
		}
	}

	t := AnimationTargets{
		Width:    d.TargetWidth,
		Height:   d.TargetHeight,
		FontSize: d.TargetFontSize,
	}
	if unbounded(t.Width) {
		t.Width = c.MaxWidth
		if t.Width <= 0 {
			t.Width = d.InitialWidth
		}
	}
	if unbounded(t.Height) {
		t.Height = c.MaxHeight
		if t.Height <= 0 {
			t.Height = d.InitialHeight * DefaultHeightFactor
		}
	}
	if t.FontSize <= 0 || math.IsInf(t.FontSize, 0) || math.IsNaN(t.FontSize) {
		t.FontSize = d.InitialFontSize * DefaultFontFactor
	}
	return t
}

func unbounded(v float64) bool {
	return v <= 0 || math.IsInf(v, 1) || math.IsNaN(v)
}
