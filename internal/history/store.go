// Package history archives toasts in SQLite once they leave the open pool.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/logging"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	_ "modernc.org/sqlite"
)

// timeLayout has a fixed width so stored instants sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one archived toast.
type Entry struct {
	Session    string
	ToastID    int
	Title      string
	Label      []string
	Status     toast.Status
	Type       string
	Timestamps map[string]time.Time
	RecordedAt time.Time
}

// Store is a SQLite-backed toast archive. It implements toast.HistoryRecorder.
type Store struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSession sets the session key rows are recorded under. Toast ids restart
// at zero in every process, so each run needs its own session.
func WithSession(session string) Option {
	return func(s *Store) {
		if strings.TrimSpace(session) != "" {
			s.session = session
		}
	}
}

// WithNow sets the time source for recorded_at.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open creates or opens the archive at dbPath.
func Open(dbPath string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, ErrEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("history: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	s.session = defaultSession(s.now())
	for _, opt := range opts {
		opt(s)
	}

	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.Debug("history store opened", "path", dbPath, "session", s.session)
	return s, nil
}

func defaultSession(now time.Time) string {
	return fmt.Sprintf("%s-%d", now.UTC().Format("20060102T150405"), os.Getpid())
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("history: create schema: %w", err)
	}
	return nil
}

// Session returns the session key used by Record.
func (s *Store) Session() string { return s.session }

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record upserts the item under the store session. Re-recording the same toast
// id replaces the previous row.
func (s *Store) Record(item *toast.Item) error {
	if item == nil {
		return ErrNilItem
	}

	label, err := json.Marshal(nonNilLabel(item.Label()))
	if err != nil {
		return fmt.Errorf("history: encode label: %w", err)
	}
	stamps, err := encodeTimestamps(item.Timestamps())
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(context.Background(), upsertSQL,
		s.session,
		item.ID(),
		item.Title(),
		string(label),
		string(item.Status()),
		typeName(item),
		stamps,
		s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("history: record toast %d: %w", item.ID(), err)
	}
	return nil
}

// List returns up to limit entries across all sessions, most recent first.
// A zero limit returns every entry.
func (s *Store) List(limit int) ([]Entry, error) {
	return s.list("", limit)
}

// ListSession is List restricted to one session.
func (s *Store) ListSession(session string, limit int) ([]Entry, error) {
	return s.list(session, limit)
}

func (s *Store) list(session string, limit int) ([]Entry, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	query := listSQL
	args := []any{session, session}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                          Entry
			label, status, stamps, rec string
		)
		if err := rows.Scan(&e.Session, &e.ToastID, &e.Title, &label, &status, &e.Type, &stamps, &rec); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(label), &e.Label); err != nil {
			return nil, fmt.Errorf("history: decode label of toast %d: %w", e.ToastID, err)
		}
		if e.Timestamps, err = decodeTimestamps(stamps); err != nil {
			return nil, fmt.Errorf("history: decode timestamps of toast %d: %w", e.ToastID, err)
		}
		if e.RecordedAt, err = time.Parse(timeLayout, rec); err != nil {
			return nil, fmt.Errorf("history: parse recorded_at of toast %d: %w", e.ToastID, err)
		}
		e.Status = toast.Status(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate rows: %w", err)
	}
	return entries, nil
}

// Count returns the number of archived entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRowContext(context.Background(), countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}

// Prune keeps the keep most recent entries and deletes the rest. It returns
// the number of deleted rows.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		return 0, ErrInvalidLimit
	}
	res, err := s.db.ExecContext(context.Background(), pruneSQL, keep)
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	if n > 0 {
		logging.Debug("history pruned", "deleted", n, "kept", keep)
	}
	return n, nil
}

func typeName(item *toast.Item) string {
	opts := item.Options()
	if opts == nil || opts.Type() == nil {
		return toast.TypeDefault.Name()
	}
	return opts.Type().Name()
}

func nonNilLabel(label []string) []string {
	if label == nil {
		return []string{}
	}
	return label
}

func encodeTimestamps(ts toast.Timestamps) (string, error) {
	m := make(map[string]string, ts.Len())
	for _, key := range ts.Keys() {
		at, _ := ts.Get(key)
		m[key] = at.UTC().Format(timeLayout)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("history: encode timestamps: %w", err)
	}
	return string(data), nil
}

func decodeTimestamps(raw string) (map[string]time.Time, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	out := make(map[string]time.Time, len(m))
	for key, value := range m {
		at, err := time.Parse(timeLayout, value)
		if err != nil {
			return nil, err
		}
		out[key] = at
	}
	return out, nil
}

var _ toast.HistoryRecorder = (*Store)(nil)
