package byol

import (
	"fmt"
	"sync"
)

// Frame is the activation state backing one suspended invocation. Go has
// no manual memory layout to size or align, so Frame carries only the
// bookkeeping the wrapper and Handle need to share; the real payload -
// the user function's closure and its result - lives on the goroutine
// stack or in the Handle itself. Ownership transfers from Scheduler to
// Handle at Spawn and back at Finish.
type Frame struct {
	// admitted records the admission decision the frame was allocated
	// under, for diagnostics; it does not affect behavior.
	admitted bool
}

// FrameAllocator allocates and releases Frame values for the Scheduler.
// Implementations must tolerate concurrent calls from multiple workers.
type FrameAllocator interface {
	// Allocate returns a fresh (possibly pooled) Frame, or an error if
	// none is available.
	Allocate() (*Frame, error)
	// Release returns a Frame to the allocator. Called exactly once per
	// successfully allocated Frame, from Finish.
	Release(*Frame)
}

// PoolAllocator is the production FrameAllocator, backed by sync.Pool:
// it reuses per-task bookkeeping structs instead of a fresh heap
// allocation on every Spawn.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator constructs a PoolAllocator. Allocate never fails.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{
		pool: sync.Pool{New: func() any { return new(Frame) }},
	}
}

// Allocate implements FrameAllocator.
func (p *PoolAllocator) Allocate() (*Frame, error) {
	f := p.pool.Get().(*Frame)
	*f = Frame{}
	return f, nil
}

// Release implements FrameAllocator.
func (p *PoolAllocator) Release(f *Frame) {
	p.pool.Put(f)
}

// alwaysFailAllocator is a FrameAllocator that always returns an error,
// useful for callers that want to force the AllocError path without
// writing a custom counting allocator.
type alwaysFailAllocator struct{ err error }

// NewAlwaysFailAllocator constructs a FrameAllocator whose Allocate always
// fails with err (or a default error, if err is nil).
func NewAlwaysFailAllocator(err error) FrameAllocator {
	if err == nil {
		err = fmt.Errorf("byol: allocator exhausted")
	}
	return &alwaysFailAllocator{err: err}
}

func (a *alwaysFailAllocator) Allocate() (*Frame, error) { return nil, a.err }
func (a *alwaysFailAllocator) Release(*Frame)            {}
