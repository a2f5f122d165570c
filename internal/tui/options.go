package tui

import (
	"math"

	"github.com/hy4ri/swipesearch/internal/animation"
	"github.com/hy4ri/swipesearch/internal/config"
	"github.com/hy4ri/swipesearch/internal/tui/components"
	"github.com/hy4ri/swipesearch/internal/tui/state"
)

// FieldOptions builds the search field options described by cfg, starting
// from the preset of its variant.
func FieldOptions(cfg *config.Config) (components.Options, error) {
	fc := cfg.Field

	variant, err := config.ParseVariant(fc.Variant)
	if err != nil {
		return components.Options{}, err
	}
	opts := components.SwipeOptions()
	heightFactor := state.DefaultHeightFactor
	if variant == config.VariantTap {
		opts = components.TapOptions()
		heightFactor = components.TapHeightFactor
	}

	if opts.Alignment.Vertical, err = config.ParseAlignment(fc.Alignment); err != nil {
		return components.Options{}, err
	}
	opts.Placeholder = fc.Placeholder
	opts.Icon = fc.Icon

	if fc.InitialWidth > 0 {
		opts.InitialWidth = fc.InitialWidth
	}
	if fc.TargetWidth > 0 {
		opts.TargetWidth = fc.TargetWidth
	} else {
		opts.TargetWidth = math.Inf(1)
	}
	if fc.InitialHeight > 0 {
		opts.InitialHeight = fc.InitialHeight
		opts.TargetHeight = fc.InitialHeight * heightFactor
	}
	if fc.TargetHeight > 0 {
		opts.TargetHeight = fc.TargetHeight
	}
	if fc.InitialFontSize > 0 {
		opts.InitialFontSize = fc.InitialFontSize
		opts.TargetFontSize = fc.InitialFontSize * state.DefaultFontFactor
	}
	if fc.TargetFontSize > 0 {
		opts.TargetFontSize = fc.TargetFontSize
	}
	if fc.DragThreshold > 0 {
		opts.DragThreshold = fc.DragThreshold
	}

	opts.SingleLine = fc.SingleLine
	opts.MaxLines = fc.MaxLines
	opts.ReadOnly = fc.ReadOnly
	opts.ShowTextWhenCollapsed = fc.ShowTextWhenCollapsed
	opts.Input.CharLimit = fc.CharLimit
	if mask := []rune(fc.Mask); len(mask) == 1 {
		opts.Transform = components.MaskTransform(mask[0])
	}

	if opts.Background, opts.Container, opts.Content, err = fc.Colors.Parse(); err != nil {
		return components.Options{}, err
	}

	ac := cfg.Animation
	if opts.Duration, err = ac.ParseDuration(); err != nil {
		return components.Options{}, err
	}
	if curve, ok := animation.CurveByName(ac.Curve); ok {
		opts.Curve = curve
	} else if ac.Curve != "" {
		return components.Options{}, &config.ValueError{Field: "animation.curve", Value: ac.Curve}
	}
	if ac.Kind == config.KindSpring {
		opts.Spring = &components.SpringOptions{Frequency: ac.Frequency, Damping: ac.Damping}
	}

	return opts, nil
}
