package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/history"
)

// timeLayout is the human-readable layout used by the text formatters.
const timeLayout = "2006-01-02 15:04:05"

// SimpleFormatter formats entries as "id  status  time  - title".
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatEntries formats entries in simple format.
func (f *SimpleFormatter) FormatEntries(entries []history.Entry, writer io.Writer) error {
	for _, e := range entries {
		// Truncate title for display (50 chars max)
		_, err := fmt.Fprintf(writer, "%-4d  %-9s  %s  - %s\n",
			e.ToastID, e.Status, e.RecordedAt.Local().Format(timeLayout), strings.TrimRight(truncateString(e.Title, 50), " "))
		if err != nil {
			return err
		}
	}
	return nil
}

// CompactFormatter formats entries with only titles (one per line).
type CompactFormatter struct{}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

// FormatEntries formats entries in compact format.
func (f *CompactFormatter) FormatEntries(entries []history.Entry, writer io.Writer) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(writer, e.Title); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats entries as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonTimestamp struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

type jsonEntry struct {
	Session    string          `json:"session"`
	ID         int             `json:"id"`
	Title      string          `json:"title"`
	Label      []string        `json:"label"`
	Status     string          `json:"status"`
	Type       string          `json:"type"`
	Timestamps []jsonTimestamp `json:"timestamps"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// FormatEntries formats entries in JSON format. Timestamps are listed in
// chronological order.
func (f *JSONFormatter) FormatEntries(entries []history.Entry, writer io.Writer) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		label := e.Label
		if label == nil {
			label = []string{}
		}
		out = append(out, jsonEntry{
			Session:    e.Session,
			ID:         e.ToastID,
			Title:      e.Title,
			Label:      label,
			Status:     string(e.Status),
			Type:       e.Type,
			Timestamps: sortedTimestamps(e.Timestamps),
			RecordedAt: e.RecordedAt,
		})
	}
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func sortedTimestamps(m map[string]time.Time) []jsonTimestamp {
	out := make([]jsonTimestamp, 0, len(m))
	for k, v := range m {
		out = append(out, jsonTimestamp{Key: k, At: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].At.Equal(out[j].At) {
			return out[i].Key < out[j].Key
		}
		return out[i].At.Before(out[j].At)
	})
	return out
}
