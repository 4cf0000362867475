package toast

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Clock is the timestamp source used for status and action stamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// IDGenerator hands out monotonic toast ids starting at zero.
type IDGenerator struct {
	next atomic.Int64
}

// Next returns a fresh id.
func (g *IDGenerator) Next() int {
	return int(g.next.Add(1) - 1)
}

const actionIDPrefix = "action-"

var actionCounter atomic.Int64

func nextActionID() string {
	return actionIDPrefix + strconv.FormatInt(actionCounter.Add(1)-1, 10)
}
