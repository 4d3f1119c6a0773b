package byol

// schedulerOptions holds configuration for New.
type schedulerOptions struct {
	maxTasks  int64
	allocator FrameAllocator
	executor  Executor
	logger    *debugLogger
}

// --- Scheduler Options ---

// Option configures a Scheduler.
type Option interface {
	applyScheduler(*schedulerOptions) error
}

// optionFunc implements Option.
type optionFunc struct {
	fn func(*schedulerOptions) error
}

func (o *optionFunc) applyScheduler(opts *schedulerOptions) error {
	return o.fn(opts)
}

// WithMaxTasks sets the admission bound: the maximum number of
// concurrently admitted tasks, fixed for the life of the Scheduler.
// New returns ErrMaxTasksInvalid if n < 1.
func WithMaxTasks(n int) Option {
	return &optionFunc{func(opts *schedulerOptions) error {
		opts.maxTasks = int64(n)
		return nil
	}}
}

// WithAllocator overrides the FrameAllocator used for activation frames.
// Defaults to a PoolAllocator backed by sync.Pool.
func WithAllocator(a FrameAllocator) Option {
	return &optionFunc{func(opts *schedulerOptions) error {
		opts.allocator = a
		return nil
	}}
}

// WithExecutor overrides the host Executor tasks are handed to when
// admitted. Defaults to GoroutineExecutor.
func WithExecutor(e Executor) Option {
	return &optionFunc{func(opts *schedulerOptions) error {
		opts.executor = e
		return nil
	}}
}

// WithLogger attaches structured logging of admission decisions and
// allocation failures. See logging.go; nil disables logging (the default).
func WithLogger(l *debugLogger) Option {
	return &optionFunc{func(opts *schedulerOptions) error {
		opts.logger = l
		return nil
	}}
}

// resolveOptions applies Option instances to schedulerOptions.
func resolveOptions(opts []Option) (*schedulerOptions, error) {
	cfg := &schedulerOptions{
		maxTasks: 1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue // skip nil options gracefully
		}
		if err := opt.applyScheduler(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.allocator == nil {
		cfg.allocator = NewPoolAllocator()
	}
	if cfg.executor == nil {
		cfg.executor = GoroutineExecutor{}
	}
	return cfg, nil
}
