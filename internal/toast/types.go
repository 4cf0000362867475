package toast

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

// ErrInvalidName is returned when a custom type or action id is not a valid
// identifier.
var ErrInvalidName = errors.New("invalid name")

var namePattern = regexp.MustCompile(`^[a-zA-Z]+[_a-zA-Z0-9-]*$`)

func checkName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter followed by letters, digits, '_' or '-'", ErrInvalidName, name)
	}
	return nil
}

// Type is the visual variant of a toast: a DefaultType or a *CustomType.
type Type interface {
	Name() string
	Color() style.Color
	BackgroundColor() style.Color
	isType()
}

// DefaultType is one of the built-in variants.
type DefaultType string

const (
	TypeDefault DefaultType = "default"
	TypeSuccess DefaultType = "success"
	TypeInfo    DefaultType = "info"
	TypeWarning DefaultType = "warning"
	TypeError   DefaultType = "error"
	TypeDark    DefaultType = "dark"
)

// DefaultTypes lists the built-in variants.
var DefaultTypes = []DefaultType{TypeDefault, TypeSuccess, TypeInfo, TypeWarning, TypeError, TypeDark}

var defaultTypePalette = map[DefaultType][2]style.Color{
	TypeDefault: {style.MustParseColor("#212121"), style.MustParseColor("#ffffff")},
	TypeSuccess: {style.MustParseColor("#ffffff"), style.MustParseColor("#4caf50")},
	TypeInfo:    {style.MustParseColor("#ffffff"), style.MustParseColor("#2196f3")},
	TypeWarning: {style.MustParseColor("#212121"), style.MustParseColor("#ffc107")},
	TypeError:   {style.MustParseColor("#ffffff"), style.MustParseColor("#f44336")},
	TypeDark:    {style.MustParseColor("#ffffff"), style.MustParseColor("#212121")},
}

// IsValid checks if the variant is built in.
func (t DefaultType) IsValid() bool {
	_, ok := defaultTypePalette[t]
	return ok
}

// Name returns the variant name.
func (t DefaultType) Name() string { return string(t) }

// Color returns the text color.
func (t DefaultType) Color() style.Color { return defaultTypePalette[t][0] }

// BackgroundColor returns the background color.
func (t DefaultType) BackgroundColor() style.Color { return defaultTypePalette[t][1] }

func (DefaultType) isType() {}

// CustomType is a registered variant with its own colors.
type CustomType struct {
	name            string
	color           style.Color
	backgroundColor style.Color
	injected        bool
}

// Name returns the variant name.
func (t *CustomType) Name() string { return t.name }

// Color returns the text color.
func (t *CustomType) Color() style.Color { return t.color }

// BackgroundColor returns the background color.
func (t *CustomType) BackgroundColor() style.Color { return t.backgroundColor }

// Injected reports whether the style of the variant has been injected.
func (t *CustomType) Injected() bool { return t.injected }

func (*CustomType) isType() {}

// ProgressBarType is the variant of the progress bar: a
// DefaultProgressBarType or a *CustomProgressBarType.
type ProgressBarType interface {
	Name() string
	// Colors returns one color for a solid bar, or the stops of a gradient.
	Colors() []style.Color
	isProgressBarType()
}

// DefaultProgressBarType is one of the built-in progress bar variants.
type DefaultProgressBarType string

const (
	ProgressBarDefault DefaultProgressBarType = "default"
	ProgressBarRainbow DefaultProgressBarType = "rainbow"
	ProgressBarSuccess DefaultProgressBarType = "success"
	ProgressBarInfo    DefaultProgressBarType = "info"
	ProgressBarWarning DefaultProgressBarType = "warning"
	ProgressBarError   DefaultProgressBarType = "error"
	ProgressBarDark    DefaultProgressBarType = "dark"
)

// DefaultProgressBarTypes lists the built-in progress bar variants.
var DefaultProgressBarTypes = []DefaultProgressBarType{
	ProgressBarDefault, ProgressBarRainbow, ProgressBarSuccess, ProgressBarInfo,
	ProgressBarWarning, ProgressBarError, ProgressBarDark,
}

var defaultProgressBarPalette = map[DefaultProgressBarType][]style.Color{
	ProgressBarDefault: {style.MustParseColor("#bdbdbd")},
	ProgressBarRainbow: {
		style.MustParseColor("#ee4035"), style.MustParseColor("#f37736"), style.MustParseColor("#fdf498"),
		style.MustParseColor("#7bc043"), style.MustParseColor("#0392cf"),
	},
	ProgressBarSuccess: {style.MustParseColor("#2e7d32")},
	ProgressBarInfo:    {style.MustParseColor("#1565c0")},
	ProgressBarWarning: {style.MustParseColor("#ff8f00")},
	ProgressBarError:   {style.MustParseColor("#c62828")},
	ProgressBarDark:    {style.MustParseColor("#616161")},
}

// IsValid checks if the variant is built in.
func (p DefaultProgressBarType) IsValid() bool {
	_, ok := defaultProgressBarPalette[p]
	return ok
}

// Name returns the variant name.
func (p DefaultProgressBarType) Name() string { return string(p) }

// Colors returns the bar colors.
func (p DefaultProgressBarType) Colors() []style.Color {
	src := defaultProgressBarPalette[p]
	out := make([]style.Color, len(src))
	copy(out, src)
	return out
}

func (DefaultProgressBarType) isProgressBarType() {}

// CustomProgressBarType is a registered progress bar variant.
type CustomProgressBarType struct {
	name     string
	colors   []style.Color
	injected bool
}

// Name returns the variant name.
func (p *CustomProgressBarType) Name() string { return p.name }

// Colors returns the bar colors.
func (p *CustomProgressBarType) Colors() []style.Color {
	out := make([]style.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Injected reports whether the style of the variant has been injected.
func (p *CustomProgressBarType) Injected() bool { return p.injected }

func (*CustomProgressBarType) isProgressBarType() {}
