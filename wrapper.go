package byol

import "context"

// runGuarded invokes f(ctx), converting a panic into a *PanicError
// instead of letting it escape to the caller's goroutine. It is shared by
// both the admitted path (run on a goroutine started by the Executor) and
// the deferred path (run synchronously inside Finish), so the panic
// recovery lives here rather than being duplicated at each call site.
//
// A completion flag distinguishes a normal return from a
// runtime.Goexit, and a deferred recover converts a panic into a
// *PanicError. A runtime.Goexit cannot be recovered: the deferred
// handler sets err to ErrGoexit, but the goroutine still terminates and
// runGuarded never returns to its caller. On the deferred path that
// goroutine is the one calling Finish.
func runGuarded[T any](ctx context.Context, f func(context.Context) (T, error)) (result T, err error) {
	completed := false

	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
			return
		}
		if !completed {
			err = ErrGoexit
		}
	}()

	result, err = f(ctx)
	completed = true
	return result, err
}
