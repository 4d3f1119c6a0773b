// Package byol error types, following the cause-chain conventions used
// throughout the wider module: typed errors with Unwrap, not bare
// sentinels built by string concatenation.
package byol

import (
	"errors"
	"fmt"
)

var (
	// ErrGoexit is surfaced by Finish when an admitted task's user function
	// exited via runtime.Goexit rather than returning normally. A deferred
	// task runs on the goroutine calling Finish, so a runtime.Goexit there
	// terminates that goroutine and Finish does not return.
	ErrGoexit = errors.New("byol: goroutine exited via runtime.Goexit")

	// ErrHandleFinished is the panic value used to flag a second Finish
	// call against the same Handle.
	ErrHandleFinished = errors.New("byol: handle already finished")

	// ErrOutstandingHandles is the panic value used by Scheduler.Close when
	// handles remain unfinished.
	ErrOutstandingHandles = errors.New("byol: deinit called with outstanding handles")

	// ErrMaxTasksInvalid is returned by New when max_tasks < 1.
	ErrMaxTasksInvalid = errors.New("byol: max_tasks must be >= 1")
)

// AllocError wraps a failure to obtain an activation frame from a
// FrameAllocator in Spawn. New allocates no frame and never returns it.
type AllocError struct {
	// Op names the operation that failed to allocate; Spawn sets "spawn".
	Op string
	// Cause is the underlying allocator error.
	Cause error
}

// Error implements the error interface.
func (e *AllocError) Error() string {
	return fmt.Sprintf("byol: %s: allocation failed: %v", e.Op, e.Cause)
}

// Unwrap enables errors.Is/errors.As against Cause.
func (e *AllocError) Unwrap() error {
	return e.Cause
}

// PanicError wraps a panic value recovered from a spawned user function,
// so active_tasks is always decremented and Finish always returns,
// rather than the panic propagating into an unrelated goroutine.
type PanicError struct {
	// Value is the recovered panic value (may be any type, including error).
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("byol: spawned function panicked: %v", e.Value)
}

// Unwrap returns the underlying error if Value is itself an error,
// enabling errors.Is/errors.As through the panic's cause chain.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
