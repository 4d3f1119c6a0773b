// Package byol implements a cooperative task-admission layer on top of an
// externally supplied asynchronous executor ("Bring Your Own Loop").
//
// # Architecture
//
// A [Scheduler] holds a tunable admission bound, max_tasks, and a
// process-wide atomic counter of in-flight admitted tasks. Every call to
// [Spawn] is a decision point: if the counter is below the bound, the work
// is truly handed to the host [Executor] (widening the execution graph);
// otherwise it is deferred and runs inline, depth-first, when the caller
// later calls [Finish]. Application code that recurses via Spawn/Finish is
// written once and is correct under either outcome.
//
// This lets fine-grained parallel recursion (see package
// [github.com/joeycumines/byol/workload] for quicksum/quicksort examples)
// avoid both unbounded goroutine fan-out and the coordination cost of a
// full work-stealing scheduler.
//
// # Admission
//
// Admission uses fetch-add-then-compare-then-undo, not
// compare-then-increment: the fast (admitted) path costs one atomic op,
// and the cold path (hitting the bound) pays the cost of a rollback
// instead. See [Scheduler] for the exact sequence and its invariants.
//
// # Task Handle
//
// [Handle] is a dual-mode value: its Resumed flag discriminates between a
// task already running on the Executor (just needs awaiting) and a
// deferred computation that [Finish] must drive itself. A Handle must be
// finished exactly once; letting one go without a matching Finish is a
// programmer error that Scheduler.Close will detect.
//
// # Usage
//
//	sched, err := byol.New(byol.WithMaxTasks(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Close()
//
//	h, err := byol.Spawn(sched, ctx, func(ctx context.Context) (int, error) {
//	    return work(ctx)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := byol.Finish(h)
//
// # Error Types
//
//   - [AllocError]: wraps a frame-allocation failure from a [FrameAllocator]
//   - [PanicError]: wraps a panic recovered from a spawned user function
//   - [ErrGoexit]: returned by Finish when an admitted task's user function
//     exits via runtime.Goexit
//
// All error values implement [error] and work with [errors.Is]/[errors.As];
// [AllocError] and [PanicError] also implement Unwrap, exposing their
// causes.
package byol
