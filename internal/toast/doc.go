// Package toast implements the toast notification manager.
//
// A Toaster owns a bounded pool of open toasts, a FIFO overflow queue and a
// bounded most-recent-first history. Rendering is delegated to a Presenter,
// which reports closures back through a single registered close callback.
//
// A Toaster is not safe for concurrent use. All calls, including the ones the
// presenter makes back into it, are expected to happen on one goroutine (the
// UI event loop). The presenter's close callback re-enters the Toaster
// synchronously from Hide, so the Toaster holds no locks.
package toast
