package byol

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Executor models the host executor BYOL is built on top of. BYOL
// supplies neither threads nor scheduling fairness itself; it only
// decides, via Scheduler's admission counter, whether a spawned task is
// handed to an Executor at all.
type Executor interface {
	// Yield cooperatively gives up the current worker; the caller resumes
	// later, possibly on a different underlying worker. Called once,
	// immediately after an admitted task starts running.
	Yield()

	// Go submits entry to run, asynchronously with respect to the caller.
	// Spawn calls Go exactly once per admitted task.
	Go(entry func())
}

// BlockingExecutor is implemented by an Executor that holds a limited
// resource (e.g. a worker-pool permit) for the duration of Go's entry
// function. Finish calls EnterBlocking before waiting on an admitted
// child's completion channel, and ExitBlocking once it wakes, so the
// resource is released while the calling goroutine is parked rather than
// held for the entire, possibly-blocking, wait. Without this, a host
// executor with fewer workers than the Scheduler's max_tasks can
// deadlock on recursive workloads: every worker blocked in Finish still
// holds its permit, so an admitted child can never be scheduled to
// unblock its parent.
type BlockingExecutor interface {
	Executor

	// EnterBlocking is called immediately before the calling goroutine
	// parks waiting on another task's completion.
	EnterBlocking()

	// ExitBlocking is called immediately after the calling goroutine
	// wakes from that wait, before it resumes running entry.
	ExitBlocking()
}

// GoroutineExecutor is the default Executor: entry runs on a freshly
// started goroutine, and Yield cooperatively reschedules the calling
// goroutine via runtime.Gosched. It imposes no concurrency bound of its
// own - Scheduler.max_tasks is the only admission control in play.
type GoroutineExecutor struct{}

// Go implements Executor.
func (GoroutineExecutor) Go(entry func()) { go entry() }

// Yield implements Executor.
func (GoroutineExecutor) Yield() { runtime.Gosched() }

// NoYieldExecutor behaves like GoroutineExecutor except Yield is a no-op,
// for callers that want admitted work to run asynchronously without
// caring about exactly when yielding happens.
type NoYieldExecutor struct{}

// Go implements Executor.
func (NoYieldExecutor) Go(entry func()) { go entry() }

// Yield implements Executor.
func (NoYieldExecutor) Yield() {}

// BoundedExecutor wraps golang.org/x/sync/semaphore.Weighted to cap the
// number of concurrently *running* goroutines, independently of
// Scheduler.max_tasks. This models a more realistic externally supplied
// executor: a host application's fixed-size worker pool, which has its
// own resource limit unrelated to BYOL's admission bound - the two
// bounds are deliberately orthogonal and neither substitutes for the
// other.
//
// BoundedExecutor implements BlockingExecutor, releasing its permit
// while a worker is parked in Finish and reacquiring one before it
// resumes; this keeps recursive workloads (a task admitted under
// max_tasks > workers, whose parent worker is blocked awaiting it) from
// deadlocking on a permanently exhausted semaphore.
type BoundedExecutor struct {
	sem *semaphore.Weighted
}

// NewBoundedExecutor constructs a BoundedExecutor that runs at most
// workers goroutines concurrently. Panics if workers < 1.
func NewBoundedExecutor(workers int) *BoundedExecutor {
	if workers < 1 {
		panic("byol: BoundedExecutor requires workers >= 1")
	}
	return &BoundedExecutor{sem: semaphore.NewWeighted(int64(workers))}
}

// Go implements Executor. The goroutine is started immediately so Spawn
// can return promptly; the semaphore acquisition happens inside it, so a
// worker-pool-full condition blocks the task's own goroutine rather than
// the caller of Spawn.
func (e *BoundedExecutor) Go(entry func()) {
	go func() {
		// A background context is correct here: BYOL's core has no
		// cancellation support of its own, so there is nothing to respect
		// besides eventual semaphore availability.
		_ = e.sem.Acquire(context.Background(), 1)
		defer e.sem.Release(1)
		entry()
	}()
}

// Yield implements Executor.
func (e *BoundedExecutor) Yield() { runtime.Gosched() }

// EnterBlocking implements BlockingExecutor by releasing this worker's
// permit, making room for another admitted task - possibly the very
// child this worker is about to wait on.
func (e *BoundedExecutor) EnterBlocking() { e.sem.Release(1) }

// ExitBlocking implements BlockingExecutor by reacquiring a permit
// before the worker resumes running entry.
func (e *BoundedExecutor) ExitBlocking() {
	_ = e.sem.Acquire(context.Background(), 1)
}
