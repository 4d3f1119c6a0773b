package byol

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// debugLogger wraps a structured logger for the Scheduler's admission and
// allocation bookkeeping, using the logiface/stumpy pairing rather than
// the standard library's log package.
type debugLogger struct {
	log *logiface.Logger[*stumpy.Event]
}

// NewLogger wraps an existing logiface logger for use with WithLogger.
// Pass nil to explicitly disable logging (the default when no WithLogger
// option is given).
func NewLogger(log *logiface.Logger[*stumpy.Event]) *debugLogger {
	return &debugLogger{log: log}
}

// NewDefaultLogger builds a logiface logger using stumpy's default JSON
// writer (stderr), at or below the given level.
func NewDefaultLogger(level logiface.Level) *debugLogger {
	return &debugLogger{
		log: stumpy.L.New(
			stumpy.L.WithStumpy(),
			logiface.WithLevel[*stumpy.Event](level),
		),
	}
}

func (d *debugLogger) admitted(prev, max int64) {
	if d == nil || d.log == nil {
		return
	}
	d.log.Debug().
		Int("active_tasks_before", int(prev)).
		Int("max_tasks", int(max)).
		Bool("resumed", true).
		Log("byol: task admitted")
}

func (d *debugLogger) rejected(prev, max int64) {
	if d == nil || d.log == nil {
		return
	}
	d.log.Debug().
		Int("active_tasks_before", int(prev)).
		Int("max_tasks", int(max)).
		Bool("resumed", false).
		Log("byol: task deferred inline (admission bound reached)")
}

func (d *debugLogger) allocFailed(op string, err error) {
	if d == nil || d.log == nil {
		return
	}
	d.log.Err().
		Str("op", op).
		Err(err).
		Log("byol: frame allocation failed")
}
