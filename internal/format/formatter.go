// Package format renders archived toasts for CLI commands.
package format

import (
	"io"

	"github.com/cristianoliveira/tmux-toaster/internal/history"
)

// Formatter writes history entries to a writer.
type Formatter interface {
	FormatEntries(entries []history.Entry, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one line per entry with id, status, time and title.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeCompact displays only titles, one per line.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeTable displays entries in a table with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays entries as a JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// FormatterTypes lists the known formatter types in help order.
var FormatterTypes = []FormatterType{FormatterTypeSimple, FormatterTypeCompact, FormatterTypeTable, FormatterTypeJSON}

// IsValid checks if the formatter type is known.
func (t FormatterType) IsValid() bool {
	for _, known := range FormatterTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeCompact:
		return NewCompactFormatter()
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}
