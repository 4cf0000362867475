package hooks

import (
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

// PointPrefix prefixes the hook point of a toast status, e.g. "toast-closed".
const PointPrefix = "toast-"

// Point returns the hook point run for items in status s.
func Point(s toast.Status) string {
	return PointPrefix + string(s)
}

// Recorder runs the hook point of an item's status. It plugs into the
// Toaster as a history recorder, so it fires when a toast closes or is
// discarded.
type Recorder struct {
	runner *Runner
}

// NewRecorder creates a Recorder backed by runner.
func NewRecorder(runner *Runner) *Recorder {
	if runner == nil {
		panic("hooks.NewRecorder: runner dependency cannot be nil")
	}
	return &Recorder{runner: runner}
}

// Record runs the hook point for the item.
func (r *Recorder) Record(item *toast.Item) error {
	if item == nil {
		return nil
	}
	return r.runner.Run(Point(item.Status()), ItemEnv(item))
}

// ItemEnv describes an item as hook environment variables.
func ItemEnv(item *toast.Item) map[string]string {
	env := map[string]string{
		"TOAST_ID":     strconv.Itoa(item.ID()),
		"TOAST_TITLE":  item.Title(),
		"TOAST_LABEL":  strings.Join(item.Label(), "\n"),
		"TOAST_STATUS": string(item.Status()),
		"TOAST_TYPE":   toast.TypeDefault.Name(),
	}
	if opts := item.Options(); opts != nil && opts.Type() != nil {
		env["TOAST_TYPE"] = opts.Type().Name()
	}
	ts := item.Timestamps()
	for _, key := range ts.Keys() {
		at, _ := ts.Get(key)
		env["TOAST_"+EnvKey(key)+"_AT"] = at.UTC().Format(time.RFC3339Nano)
	}
	for k, v := range item.Context() {
		env["TOAST_CONTEXT_"+EnvKey(k)] = v
	}
	return env
}

var _ toast.HistoryRecorder = (*Recorder)(nil)
