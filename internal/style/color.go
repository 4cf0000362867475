// Package style provides the value objects used to describe how a toast looks:
// colors, fonts and the named style resources injected for custom variants.
package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an immutable RGBA color.
type Color struct {
	rgb   colorful.Color
	alpha float64
	valid bool
}

// RGB builds an opaque color from 0-255 components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1)
}

// RGBA builds a color from 0-255 components and an alpha in [0,1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{
		rgb:   colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		alpha: clampAlpha(alpha),
		valid: true,
	}
}

// ParseColor parses "#rgb", "#rrggbb", "rgb(r,g,b)" and "rgba(r,g,b,a)".
func ParseColor(value string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
		}
		return Color{rgb: c, alpha: 1, valid: true}, nil
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctional(value, v[len("rgba("):len(v)-1], 4)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(value, v[len("rgb("):len(v)-1], 3)
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level palettes.
func MustParseColor(value string) Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}

func parseFunctional(raw, args string, want int) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: %q: expected %d components", ErrInvalidColor, raw, want)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: %q: component %d out of range", ErrInvalidColor, raw, i)
		}
		rgb[i] = uint8(n)
	}
	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("%w: %q: alpha out of range", ErrInvalidColor, raw)
		}
		alpha = a
	}
	return RGBA(rgb[0], rgb[1], rgb[2], alpha), nil
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool {
	return !c.valid
}

// Alpha returns the alpha channel in [0,1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// WithAlpha returns a copy of the color with a new alpha channel.
func (c Color) WithAlpha(alpha float64) Color {
	c.alpha = clampAlpha(alpha)
	return c
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	return c.rgb.Clamped().Hex()
}

// CSS returns the color as a CSS "rgba(r,g,b,a)" string.
func (c Color) CSS() string {
	if !c.valid {
		return ""
	}
	r, g, b := c.rgb.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(c.alpha, 'f', -1, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.CSS()
}

// Terminal returns the color for lipgloss rendering.
func (c Color) Terminal() lipgloss.TerminalColor {
	if !c.valid {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

// Contrast returns black or white, whichever reads better on top of c.
func (c Color) Contrast() Color {
	l, _, _ := c.rgb.Lab()
	if l > 0.6 {
		return RGB(0, 0, 0)
	}
	return RGB(255, 255, 255)
}

// Blend mixes c towards other by t in [0,1] using the Lab color space.
func (c Color) Blend(other Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	return Color{
		rgb:   c.rgb.BlendLab(other.rgb, t).Clamped(),
		alpha: c.alpha + (other.alpha-c.alpha)*t,
		valid: c.valid && other.valid,
	}
}

// Equal reports whether both colors render the same CSS value.
func (c Color) Equal(other Color) bool {
	return c.CSS() == other.CSS()
}

func clampAlpha(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
