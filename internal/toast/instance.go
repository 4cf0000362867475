package toast

import "sync"

var (
	instance     *Toaster
	instanceOnce sync.Once
)

// Init creates the process-wide Toaster on first call and returns it. Later
// calls return the existing instance and ignore their arguments.
func Init(p Presenter, opts ...Option) *Toaster {
	instanceOnce.Do(func() {
		instance = New(p, opts...)
	})
	return instance
}

// Get returns the process-wide Toaster, or nil before Init.
func Get() *Toaster {
	return instance
}
