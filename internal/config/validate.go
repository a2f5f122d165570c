package config

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hy4ri/swipesearch/internal/animation"
)

// Field variants.
const (
	VariantSwipe = "swipe"
	VariantTap   = "tap"
)

// Animation kinds.
const (
	KindTween  = "tween"
	KindSpring = "spring"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks every value that is parsed later. The first problem is
// returned as a *ValueError.
func (c *Config) Validate() error {
	if _, err := ParseVariant(c.Field.Variant); err != nil {
		return err
	}
	if _, err := ParseAlignment(c.Field.Alignment); err != nil {
		return err
	}
	if _, _, _, err := c.Field.Colors.Parse(); err != nil {
		return err
	}
	if n := len([]rune(c.Field.Mask)); n > 1 {
		return &ValueError{Field: "field.mask", Value: c.Field.Mask, Reason: "must be a single character"}
	}
	if c.Field.MaxLines < 0 {
		return &ValueError{Field: "field.max_lines", Value: strconv.Itoa(c.Field.MaxLines)}
	}
	if c.Field.CharLimit < 0 {
		return &ValueError{Field: "field.char_limit", Value: strconv.Itoa(c.Field.CharLimit)}
	}

	switch c.Animation.Kind {
	case KindTween, KindSpring:
	default:
		return &ValueError{Field: "animation.kind", Value: c.Animation.Kind, Reason: "tween or spring"}
	}
	if c.Animation.Kind == KindSpring {
		if c.Animation.Frequency <= 0 {
			return &ValueError{Field: "animation.frequency", Value: formatFloat(c.Animation.Frequency), Reason: "must be positive"}
		}
		if c.Animation.Damping <= 0 {
			return &ValueError{Field: "animation.damping", Value: formatFloat(c.Animation.Damping), Reason: "must be positive"}
		}
	}
	if _, err := c.Animation.ParseDuration(); err != nil {
		return err
	}
	if _, ok := animation.CurveByName(c.Animation.Curve); !ok {
		return &ValueError{
			Field:  "animation.curve",
			Value:  c.Animation.Curve,
			Reason: strings.Join(animation.CurveNames(), ", "),
		}
	}

	if _, _, err := ParseColorProfile(c.UI.ColorProfile); err != nil {
		return err
	}
	return nil
}

// ParseVariant accepts "swipe" and "tap". Empty means swipe.
func ParseVariant(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", VariantSwipe:
		return VariantSwipe, nil
	case VariantTap:
		return VariantTap, nil
	}
	return "", &ValueError{Field: "field.variant", Value: s, Reason: "swipe or tap"}
}

// ParseAlignment maps "top", "center" and "bottom" to a vertical position.
// Empty means bottom.
func ParseAlignment(s string) (lipgloss.Position, error) {
	switch strings.ToLower(s) {
	case "top":
		return lipgloss.Top, nil
	case "center", "middle":
		return lipgloss.Center, nil
	case "", "bottom":
		return lipgloss.Bottom, nil
	}
	return 0, &ValueError{Field: "field.alignment", Value: s, Reason: "top, center or bottom"}
}

// parseColor accepts "#RGB", "#RRGGBB" and ANSI indices 0-255. Empty
// yields nil, meaning the terminal default.
func parseColor(field, s string) (lipgloss.TerminalColor, error) {
	if s == "" {
		return nil, nil
	}
	if hexColor.MatchString(s) {
		return lipgloss.Color(s), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s), nil
	}
	return nil, &ValueError{Field: field, Value: s, Reason: "hex #RRGGBB or ANSI 0-255"}
}

// Parse parses the three field colours.
func (c ColorConfig) Parse() (background, container, content lipgloss.TerminalColor, err error) {
	if background, err = parseColor("field.colors.background", c.Background); err != nil {
		return nil, nil, nil, err
	}
	if container, err = parseColor("field.colors.container", c.Container); err != nil {
		return nil, nil, nil, err
	}
	if content, err = parseColor("field.colors.content", c.Content); err != nil {
		return nil, nil, nil, err
	}
	return background, container, content, nil
}

// ParseDuration parses Duration. Empty means 400ms.
func (a AnimationConfig) ParseDuration() (time.Duration, error) {
	if a.Duration == "" {
		return 400 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(a.Duration)
	if err != nil || d < 0 {
		return 0, &ValueError{Field: "animation.duration", Value: a.Duration, Reason: "e.g. 400ms"}
	}
	return d, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseColorProfile maps a profile name to a termenv profile. auto is true
// for "auto" and empty, leaving detection to the terminal.
func ParseColorProfile(s string) (profile termenv.Profile, auto bool, err error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return termenv.TrueColor, true, nil
	case "ascii", "none":
		return termenv.Ascii, false, nil
	case "ansi":
		return termenv.ANSI, false, nil
	case "ansi256":
		return termenv.ANSI256, false, nil
	case "truecolor":
		return termenv.TrueColor, false, nil
	}
	return 0, false, &ValueError{Field: "ui.color_profile", Value: s, Reason: "auto, ascii, ansi, ansi256 or truecolor"}
}
