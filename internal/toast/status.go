package toast

// Status is the lifecycle stage of a toast item.
type Status string

const (
	// StatusUnknown is the status of an item before any transition.
	StatusUnknown Status = "unknown"
	// StatusShowing is set while the presenter materializes the item.
	StatusShowing Status = "showing"
	// StatusOpened means the item is visible.
	StatusOpened Status = "opened"
	// StatusClosed means the item was shown and then closed.
	StatusClosed Status = "closed"
	// StatusQueued means the item waits for a free slot.
	StatusQueued Status = "queued"
	// StatusDiscarded means the overflow policy rejected the item.
	StatusDiscarded Status = "discarded"
)

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnknown, StatusShowing, StatusOpened, StatusClosed, StatusQueued, StatusDiscarded:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can happen.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusDiscarded
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// canTransition encodes the item state machine.
func canTransition(from, to Status) bool {
	switch from {
	case StatusUnknown:
		return to == StatusShowing || to == StatusQueued || to == StatusDiscarded
	case StatusQueued:
		return to == StatusShowing || to == StatusDiscarded
	case StatusShowing:
		return to == StatusOpened || to == StatusDiscarded
	case StatusOpened:
		return to == StatusClosed
	default:
		return false
	}
}
