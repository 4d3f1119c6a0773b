package byol

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// captureWriter collects every log line produced by a stumpy logger, for
// assertions without touching stderr.
type captureWriter struct {
	mu    sync.Mutex
	lines []string
}

func (w *captureWriter) Write(e *stumpy.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, string(e.Bytes()))
	return nil
}

func (w *captureWriter) snapshot() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.lines...)
}

func TestLogger_AdmissionAndRejection(t *testing.T) {
	cw := &captureWriter{}
	log := stumpy.L.New(
		stumpy.L.WithStumpy(),
		stumpy.L.WithWriter(cw),
		logiface.WithLevel[*stumpy.Event](logiface.LevelDebug),
	)

	s, err := New(WithMaxTasks(1), WithLogger(NewLogger(log)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	// h1 stays blocked, holding the only admission slot, until release is
	// closed, so h2 is deterministically rejected.
	release := make(chan struct{})
	h1, err := Spawn(s, context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if err != nil {
		t.Fatalf("Spawn (1): %v", err)
	}
	h2, err := Spawn(s, context.Background(), func(ctx context.Context) (int, error) { return 2, nil })
	if err != nil {
		t.Fatalf("Spawn (2): %v", err)
	}
	if !h1.Resumed || h2.Resumed {
		t.Fatalf("unexpected admission: h1.Resumed=%v h2.Resumed=%v", h1.Resumed, h2.Resumed)
	}
	close(release)
	if _, err := Finish(h1); err != nil {
		t.Fatalf("Finish (1): %v", err)
	}
	if _, err := Finish(h2); err != nil {
		t.Fatalf("Finish (2): %v", err)
	}

	lines := cw.snapshot()
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "task admitted") {
		t.Fatalf("line 0 = %q, want admission log", lines[0])
	}
	if !strings.Contains(lines[1], "deferred inline") {
		t.Fatalf("line 1 = %q, want rejection log", lines[1])
	}
}

func TestLogger_AllocFailure(t *testing.T) {
	cw := &captureWriter{}
	log := stumpy.L.New(
		stumpy.L.WithStumpy(),
		stumpy.L.WithWriter(cw),
		logiface.WithLevel[*stumpy.Event](logiface.LevelDebug),
	)

	s, err := New(WithMaxTasks(4), WithAllocator(NewAlwaysFailAllocator(nil)), WithLogger(NewLogger(log)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if _, err := Spawn(s, context.Background(), func(ctx context.Context) (int, error) { return 0, nil }); err == nil {
		t.Fatal("expected Spawn to fail")
	}

	lines := cw.snapshot()
	var sawAdmitted, sawAllocFailed bool
	for _, l := range lines {
		if strings.Contains(l, "task admitted") {
			sawAdmitted = true
		}
		if strings.Contains(l, "allocation failed") {
			sawAllocFailed = true
		}
	}
	if !sawAdmitted || !sawAllocFailed {
		t.Fatalf("missing expected log lines: %v", lines)
	}
}

func TestNewDefaultLogger_Constructs(t *testing.T) {
	// NewDefaultLogger must produce a logger that actually writes (a
	// non-nil logiface.Logger with a real writer attached), not merely a
	// non-nil wrapper around a disabled one.
	l := NewDefaultLogger(logiface.LevelDebug)
	if l == nil || l.log == nil {
		t.Fatal("NewDefaultLogger returned a disabled logger")
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var d *debugLogger
	d.admitted(0, 1)
	d.rejected(0, 1)
	d.allocFailed("spawn", nil)
}
