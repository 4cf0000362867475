package history

import "errors"

var (
	// ErrEmptyPath indicates that no database path was configured.
	ErrEmptyPath = errors.New("history: db path cannot be empty")
	// ErrNilItem indicates a Record call without an item.
	ErrNilItem = errors.New("history: item cannot be nil")
	// ErrInvalidLimit indicates a negative list limit.
	ErrInvalidLimit = errors.New("history: limit must be >= 0")
)
