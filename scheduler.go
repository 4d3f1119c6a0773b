package byol

import (
	"context"
	"sync/atomic"
)

// Scheduler is BYOL's admission layer. It holds the admission bound
// max_tasks, a shared atomic counter of currently admitted tasks, a
// FrameAllocator, and a host Executor. A Scheduler value must outlive
// every Handle it issues.
type Scheduler struct {
	maxTasks    int64
	activeTasks *int64 // heap-allocated; shared by reference with every outstanding task
	outstanding int64  // count of Spawn calls not yet matched by Finish; used by Close's precondition check
	allocator   FrameAllocator
	executor    Executor
	logger      *debugLogger
}

// New constructs a Scheduler. The admission bound is 1 unless
// WithMaxTasks sets it; New returns ErrMaxTasksInvalid if it is < 1.
// New's signature returns an error
// to leave room for allocator-backed construction failures, though this
// implementation never fails to allocate the counter itself.
func New(opts ...Option) (*Scheduler, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if cfg.maxTasks < 1 {
		return nil, ErrMaxTasksInvalid
	}
	counter := new(int64)
	return &Scheduler{
		maxTasks:    cfg.maxTasks,
		activeTasks: counter,
		allocator:   cfg.allocator,
		executor:    cfg.executor,
		logger:      cfg.logger,
	}, nil
}

// Close releases the Scheduler. Its precondition is that no Handles it
// issued remain unfinished; violating it is a programmer error, surfaced
// here as a panic rather than silently leaking, since it is cheap to
// detect.
func (s *Scheduler) Close() error {
	if atomic.LoadInt64(&s.outstanding) != 0 {
		panic(ErrOutstandingHandles)
	}
	return nil
}

// MaxTasks returns the admission bound this Scheduler was constructed
// with.
func (s *Scheduler) MaxTasks() int {
	return int(s.maxTasks)
}

// ActiveTasks returns a snapshot of the number of currently admitted
// tasks. The value is advisory: by the time a caller observes it, it may
// already be stale.
func (s *Scheduler) ActiveTasks() int {
	return int(atomic.LoadInt64(s.activeTasks))
}

// Spawn is BYOL's admission decision point. f is run either on the
// Scheduler's Executor (admitted) or later, inline, inside Finish
// (deferred) - ctx is passed through to f unchanged in either case.
//
// Spawn is a package-level generic function, not a Scheduler method,
// because Go methods cannot introduce new type parameters.
func Spawn[T any](s *Scheduler, ctx context.Context, f func(context.Context) (T, error)) (*Handle[T], error) {
	// Fetch-add, recovering the pre-increment value.
	prev := atomic.AddInt64(s.activeTasks, 1) - 1
	resumed := prev < s.maxTasks
	if !resumed {
		// Undo the increment; a non-admitted task never changes the
		// counter net.
		atomic.AddInt64(s.activeTasks, -1)
	}

	if resumed {
		s.logger.admitted(prev, s.maxTasks)
	} else {
		s.logger.rejected(prev, s.maxTasks)
	}

	// Allocate the activation frame. A failure here must not leave the
	// counter permanently bumped for a task that never ran.
	frame, err := s.allocator.Allocate()
	if err != nil {
		if resumed {
			atomic.AddInt64(s.activeTasks, -1)
		}
		s.logger.allocFailed("spawn", err)
		return nil, &AllocError{Op: "spawn", Cause: err}
	}
	frame.admitted = resumed

	atomic.AddInt64(&s.outstanding, 1)

	h := &Handle[T]{
		Resumed: resumed,
		sched:   s,
		frame:   frame,
	}

	if resumed {
		// Publish the goroutine to the Executor strictly after h has
		// been constructed, so Spawn can return before any user code
		// runs: the goroutine's very first action, once scheduled, is
		// the conditional yield.
		done := make(chan struct{})
		h.done = done
		s.executor.Go(func() {
			defer close(done)
			// Completion bookkeeping, on every exit path (deferred, so it
			// also runs when f calls runtime.Goexit).
			defer atomic.AddInt64(s.activeTasks, -1)
			// Only admitted tasks yield.
			s.executor.Yield()
			// runGuarded never returns if f calls runtime.Goexit, so the
			// assignment below does not happen on that path; preset the
			// error Finish reports for it.
			h.err = ErrGoexit
			h.result, h.err = runGuarded(ctx, f)
		})
	} else {
		// Non-admitted: nothing runs yet. Finish itself performs the
		// single run, on the caller's own context.
		h.run = func() (T, error) {
			return runGuarded(ctx, f)
		}
	}

	return h, nil
}

// Finish retrieves a spawned task's result. It blocks until the result is
// available, then releases the activation frame on every exit path.
// Finish must be called exactly once per Handle; a second call panics
// with ErrHandleFinished.
func Finish[T any](h *Handle[T]) (T, error) {
	if !h.finished.CompareAndSwap(false, true) {
		panic(ErrHandleFinished)
	}
	defer func() {
		h.sched.allocator.Release(h.frame)
		atomic.AddInt64(&h.sched.outstanding, -1)
	}()

	if h.Resumed {
		if be, ok := h.sched.executor.(BlockingExecutor); ok {
			be.EnterBlocking()
			<-h.done
			be.ExitBlocking()
		} else {
			<-h.done
		}
		return h.result, h.err
	}

	// Deferred: run the wrapper now, inline, on the caller's own context.
	return h.run()
}
