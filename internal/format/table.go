package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/tmux-toaster/internal/history"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderStyle styles the header and separator rows.
	HeaderStyle lipgloss.Style

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right, center).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		ColumnWidths: map[string]int{
			"ID":       4,
			"Recorded": 19,
			"Status":   9,
			"Type":     8,
			"Title":    32,
		},
		ColumnAlignments: map[string]string{
			"ID": "right",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Extractor extracts the cell value from an entry.
	Extractor func(history.Entry) string
}

// TableFormatter formats entries in a table with headers.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a new TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	return NewTableFormatterWithConfig(DefaultTableConfig())
}

// NewTableFormatterWithConfig creates a TableFormatter using config for
// widths, alignments and header styling.
func NewTableFormatterWithConfig(config *TableConfig) *TableFormatter {
	if config == nil {
		config = DefaultTableConfig()
	}
	cell := func(name string, value func(history.Entry) string) TableColumn {
		width := config.ColumnWidths[name]
		align := config.ColumnAlignments[name]
		return TableColumn{
			Name:  name,
			Width: width,
			Extractor: func(e history.Entry) string {
				return formatString(value(e), width, align)
			},
		}
	}
	columns := []TableColumn{
		cell("ID", func(e history.Entry) string { return strconv.Itoa(e.ToastID) }),
		cell("Recorded", func(e history.Entry) string { return e.RecordedAt.Local().Format(timeLayout) }),
		cell("Status", func(e history.Entry) string { return string(e.Status) }),
		cell("Type", func(e history.Entry) string { return e.Type }),
		{
			Name:  "Title",
			Width: config.ColumnWidths["Title"],
			Extractor: func(e history.Entry) string {
				return truncateString(e.Title, config.ColumnWidths["Title"])
			},
		},
	}
	return &TableFormatter{config: config, columns: columns}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatEntries formats entries in table format. Nothing is written for an
// empty slice.
func (f *TableFormatter) FormatEntries(entries []history.Entry, writer io.Writer) error {
	if len(entries) == 0 {
		return nil
	}

	if f.config.ShowHeaders {
		names := make([]string, len(f.columns))
		for i, col := range f.columns {
			names[i] = formatString(col.Name, col.Width, "left")
		}
		if err := f.writeStyledRow(names, writer); err != nil {
			return err
		}
	}

	separators := make([]string, len(f.columns))
	for i, col := range f.columns {
		separators[i] = makeSeparator(col.Width)
	}
	if err := f.writeStyledRow(separators, writer); err != nil {
		return err
	}

	for _, e := range entries {
		cells := make([]string, len(f.columns))
		for i, col := range f.columns {
			cells[i] = col.Extractor(e)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) writeStyledRow(cells []string, writer io.Writer) error {
	row := strings.TrimRight(strings.Join(cells, "  "), " ")
	_, err := fmt.Fprintln(writer, f.config.HeaderStyle.Render(row))
	return err
}

// formatString formats a string with the specified width and alignment.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
