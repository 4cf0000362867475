package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{name: "development without commit", version: "development", commit: "unknown", expected: "development"},
		{name: "release with commit", version: "1.0.0", commit: "abc1234", expected: "1.0.0+abc1234"},
		{name: "unknown commit shows only version", version: "2.0.0", commit: "unknown", expected: "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit := Version, Commit
			defer func() { Version, Commit = origVersion, origCommit }()

			Version, Commit = tt.version, tt.commit
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version, Commit, Date = "1.2.3", "cafebabe", "2026-01-01"
	info := Info()
	assert.Contains(t, info, "tmux-toaster 1.2.3")
	assert.Contains(t, info, "commit: cafebabe")
	assert.Contains(t, info, "built: 2026-01-01")
	assert.Contains(t, info, runtime.Version())
}
