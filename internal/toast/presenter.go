package toast

import "errors"

// Handle identifies a rendered toast inside the presentation layer.
type Handle interface {
	// ItemID returns the id of the toast the handle renders.
	ItemID() int
}

// Presenter is the presentation layer the Toaster drives.
type Presenter interface {
	// Create renders a toast and returns its handle. preserved carries the
	// timestamps the item collected before it was rendered (e.g. while queued).
	Create(id int, title string, label []string, opts *Options, preserved Timestamps) (Handle, error)
	// Close removes a rendered toast. The presenter reports the closure
	// through the registered close callback, synchronously or later.
	Close(h Handle)
	// OpenCount returns how many toasts are currently rendered.
	OpenCount() int
	// OnClose registers the close callback. There is one slot: a new
	// registration replaces the previous one.
	OnClose(fn func(Handle))
}

// HistoryRecorder persists items once they reach a terminal status.
type HistoryRecorder interface {
	Record(item *Item) error
}

// Recorders fans Record out to several recorders. Every recorder runs; their
// errors are joined.
type Recorders []HistoryRecorder

// Record calls Record on each non-nil recorder in order.
func (rs Recorders) Record(item *Item) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.Record(item); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
