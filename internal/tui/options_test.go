package tui

import (
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/swipesearch/internal/config"
	"github.com/hy4ri/swipesearch/internal/tui/components"
)

func TestFieldOptions_Defaults(t *testing.T) {
	opts, err := FieldOptions(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	want := components.SwipeOptions()
	if opts.InitialWidth != want.InitialWidth || !math.IsInf(opts.TargetWidth, 1) {
		t.Errorf("widths = %v -> %v", opts.InitialWidth, opts.TargetWidth)
	}
	if opts.TargetHeight != want.TargetHeight || opts.TargetFontSize != want.TargetFontSize {
		t.Errorf("targets = %v / %v, want %v / %v", opts.TargetHeight, opts.TargetFontSize, want.TargetHeight, want.TargetFontSize)
	}
	if !opts.DragToFocus || opts.Duration != 400*time.Millisecond || opts.Spring != nil {
		t.Errorf("unexpected motion options %+v", opts)
	}
	if opts.Alignment != components.AlignBottomCenter {
		t.Errorf("alignment = %+v", opts.Alignment)
	}
	if opts.Container != lipgloss.Color("#8E8E93") {
		t.Errorf("container = %v", opts.Container)
	}
}

func TestFieldOptions_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*config.Config)
		check func(*testing.T, components.Options)
	}{
		{
			name:  "tap variant",
			apply: func(c *config.Config) { c.Field.Variant = config.VariantTap },
			check: func(t *testing.T, o components.Options) {
				if o.DragToFocus {
					t.Error("expected drag off")
				}
				if o.TargetHeight != components.DefaultHeight*components.TapHeightFactor {
					t.Errorf("target height = %v", o.TargetHeight)
				}
			},
		},
		{
			name:  "initial height scales target",
			apply: func(c *config.Config) { c.Field.InitialHeight = 5 },
			check: func(t *testing.T, o components.Options) {
				if o.InitialHeight != 5 || math.Abs(o.TargetHeight-7) > 1e-9 {
					t.Errorf("heights = %v -> %v", o.InitialHeight, o.TargetHeight)
				}
			},
		},
		{
			name: "explicit targets",
			apply: func(c *config.Config) {
				c.Field.TargetWidth = 30
				c.Field.TargetHeight = 6
				c.Field.InitialFontSize = 10
				c.Field.TargetFontSize = 20
			},
			check: func(t *testing.T, o components.Options) {
				if o.TargetWidth != 30 || o.TargetHeight != 6 || o.InitialFontSize != 10 || o.TargetFontSize != 20 {
					t.Errorf("unexpected sizes %+v", o)
				}
			},
		},
		{
			name:  "top alignment",
			apply: func(c *config.Config) { c.Field.Alignment = "top" },
			check: func(t *testing.T, o components.Options) {
				if o.Alignment != components.AlignTopCenter {
					t.Errorf("alignment = %+v", o.Alignment)
				}
			},
		},
		{
			name:  "mask",
			apply: func(c *config.Config) { c.Field.Mask = "•" },
			check: func(t *testing.T, o components.Options) {
				if o.Transform == nil || o.Transform("abc") != "•••" {
					t.Error("expected a mask transform")
				}
			},
		},
		{
			name: "spring",
			apply: func(c *config.Config) {
				c.Animation.Kind = config.KindSpring
				c.Animation.Frequency = 9
				c.Animation.Damping = 0.5
			},
			check: func(t *testing.T, o components.Options) {
				if o.Spring == nil || o.Spring.Frequency != 9 || o.Spring.Damping != 0.5 {
					t.Errorf("spring = %+v", o.Spring)
				}
			},
		},
		{
			name:  "linear curve",
			apply: func(c *config.Config) { c.Animation.Curve = "linear" },
			check: func(t *testing.T, o components.Options) {
				if o.Curve(0.25) != 0.25 {
					t.Error("expected the linear curve")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.apply(cfg)
			opts, err := FieldOptions(cfg)
			if err != nil {
				t.Fatalf("FieldOptions: %v", err)
			}
			tt.check(t, opts)
		})
	}
}

func TestFieldOptions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*config.Config)
	}{
		{name: "variant", apply: func(c *config.Config) { c.Field.Variant = "pinch" }},
		{name: "alignment", apply: func(c *config.Config) { c.Field.Alignment = "sideways" }},
		{name: "colour", apply: func(c *config.Config) { c.Field.Colors.Content = "white" }},
		{name: "duration", apply: func(c *config.Config) { c.Animation.Duration = "later" }},
		{name: "curve", apply: func(c *config.Config) { c.Animation.Curve = "wobble" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.apply(cfg)
			_, err := FieldOptions(cfg)
			if _, ok := config.IsValueError(err); !ok {
				t.Errorf("expected ValueError, got %v", err)
			}
		})
	}
}
