package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tmux-toaster/internal/history"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

func sampleEntries() []history.Entry {
	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	return []history.Entry{
		{
			Session:    "run-1",
			ToastID:    1,
			Title:      "short title",
			Label:      []string{"first", "second"},
			Status:     toast.StatusClosed,
			Type:       "success",
			Timestamps: map[string]time.Time{"closed": at.Add(2 * time.Second), "showing": at, "opened": at.Add(time.Second)},
			RecordedAt: at.Add(2 * time.Second),
		},
		{
			Session:    "run-1",
			ToastID:    2,
			Title:      "this is a very long title that should be truncated because it exceeds the maximum allowed length",
			Status:     toast.StatusDiscarded,
			Type:       "default",
			RecordedAt: at.Add(time.Minute),
		},
	}
}

func TestFormatterFactory(t *testing.T) {
	tests := []struct {
		name     string
		ftype    FormatterType
		expected interface{}
	}{
		{"Simple", FormatterTypeSimple, &SimpleFormatter{}},
		{"Compact", FormatterTypeCompact, &CompactFormatter{}},
		{"Table", FormatterTypeTable, &TableFormatter{}},
		{"JSON", FormatterTypeJSON, &JSONFormatter{}},
		{"Unknown", FormatterType("unknown"), &SimpleFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.expected, NewFormatter(tt.ftype))
		})
	}
}

func TestFormatterTypeIsValid(t *testing.T) {
	for _, ft := range FormatterTypes {
		assert.True(t, ft.IsValid(), ft)
	}
	assert.False(t, FormatterType("legacy").IsValid())
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatEntries(sampleEntries(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1   "))
	assert.Contains(t, lines[0], "closed")
	assert.Contains(t, lines[0], "- short title")
	assert.Contains(t, lines[1], "discarded")
	assert.Contains(t, lines[1], "this is a very long title that should be trunca...")
	assert.NotContains(t, lines[1], "because it exceeds")
}

func TestCompactFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCompactFormatter().FormatEntries(sampleEntries()[:1], &buf))
	assert.Equal(t, "short title\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatEntries(sampleEntries(), &buf))

	var decoded []struct {
		ID         int      `json:"id"`
		Title      string   `json:"title"`
		Label      []string `json:"label"`
		Status     string   `json:"status"`
		Type       string   `json:"type"`
		Timestamps []struct {
			Key string `json:"key"`
		} `json:"timestamps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, 1, decoded[0].ID)
	assert.Equal(t, []string{"first", "second"}, decoded[0].Label)
	assert.Equal(t, "success", decoded[0].Type)
	keys := make([]string, 0, len(decoded[0].Timestamps))
	for _, ts := range decoded[0].Timestamps {
		keys = append(keys, ts.Key)
	}
	assert.Equal(t, []string{"showing", "opened", "closed"}, keys)

	assert.Equal(t, "discarded", decoded[1].Status)
	assert.NotNil(t, decoded[1].Label)
	assert.Empty(t, decoded[1].Label)
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatEntries(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatEntries(sampleEntries(), &buf))

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Recorded")
	assert.Contains(t, output, "Status")
	assert.Contains(t, output, "----")
	assert.Contains(t, output, "   1  ")
	assert.Contains(t, output, "success")
	assert.Contains(t, output, "this is a very long title tha...")
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatEntries(nil, &buf))
	assert.Empty(t, buf.String())
}

func TestTableFormatterCustomColumn(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.ShowHeaders = false
	f := NewTableFormatterWithConfig(cfg).WithColumns(TableColumn{
		Name:  "Session",
		Width: 6,
		Extractor: func(e history.Entry) string {
			return formatString(e.Session, 6, "left")
		},
	})

	var buf bytes.Buffer
	require.NoError(t, f.FormatEntries(sampleEntries()[:1], &buf))
	assert.NotContains(t, buf.String(), "Recorded")
	assert.Contains(t, buf.String(), "run-1")
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		in, align string
		width     int
		want      string
	}{
		{"ab", "left", 4, "ab  "},
		{"ab", "right", 4, "  ab"},
		{"ab", "center", 5, " ab  "},
		{"abcdef", "left", 3, "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatString(tt.in, tt.width, tt.align))
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc  ", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdefgh", 5))
	assert.Equal(t, "ab", truncateString("abcdefgh", 2))
}
