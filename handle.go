package byol

import "sync/atomic"

// Handle is the dual-mode task handle returned by Spawn and consumed by
// Finish. Resumed discriminates its two variants: an admitted task that
// is already running on the Executor and just needs awaiting, or a
// deferred computation that Finish must drive itself.
//
// A Handle has no methods of its own; Spawn and Finish are the only
// package-level functions operating on it.
type Handle[T any] struct {
	// Resumed is true iff the Scheduler's admission counter absorbed this
	// task at Spawn time.
	Resumed bool

	finished atomic.Bool
	frame    *Frame
	sched    *Scheduler

	// admitted path
	done   chan struct{}
	result T
	err    error

	// deferred path
	run func() (T, error)
}
