// Command byol-demo runs BYOL's sample workloads (quicksum, quicksort)
// end-to-end against a configurable Scheduler, sized and tuned using the
// same ambient concerns a production Go service in this codebase would
// carry: container-aware GOMAXPROCS via automaxprocs, a memory-aware
// default admission bound via pbnjay/memory, and TOML-based configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"

	"github.com/joeycumines/byol"
	"github.com/joeycumines/byol/workload"
	"github.com/joeycumines/logiface"
	"github.com/pbnjay/memory"
	"go.uber.org/automaxprocs/maxprocs"
)

// bytesPerTask is a rough, intentionally conservative per-admitted-task
// memory budget used only to clamp an "auto" max_tasks request; it is not
// a measurement of this program's actual footprint.
const bytesPerTask = 64 << 10 // 64 KiB

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	undo, err := maxprocs.Set(maxprocs.Logger(log.Printf))
	if err != nil {
		log.Printf("byol-demo: maxprocs.Set: %v (continuing with GOMAXPROCS=%d)", err, runtime.GOMAXPROCS(0))
	} else {
		defer undo()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	maxTasks := cfg.MaxTasks
	if maxTasks <= 0 {
		maxTasks = autoMaxTasks()
	}
	log.Printf(
		"byol-demo: GOMAXPROCS=%d free_memory=%dMiB max_tasks=%d executor=%s",
		runtime.GOMAXPROCS(0), memory.FreeMemory()/(1<<20), maxTasks, cfg.Executor,
	)

	ex, err := buildExecutor(cfg)
	if err != nil {
		return err
	}

	opts := []byol.Option{byol.WithMaxTasks(maxTasks), byol.WithExecutor(ex)}
	if cfg.Debug {
		opts = append(opts, byol.WithLogger(byol.NewDefaultLogger(logiface.LevelDebug)))
	}

	sched, err := byol.New(opts...)
	if err != nil {
		return fmt.Errorf("byol-demo: constructing scheduler: %w", err)
	}
	defer sched.Close()

	ctx := context.Background()

	switch cfg.Workload {
	case "quicksum":
		sum, err := workload.QuickSum(ctx, sched, cfg.RangeLow, cfg.RangeHigh, cfg.Threshold)
		if err != nil {
			return fmt.Errorf("byol-demo: quicksum: %w", err)
		}
		fmt.Fprintf(os.Stdout, "quicksum(%d, %d) = %d\n", cfg.RangeLow, cfg.RangeHigh, sum)

	case "quicksort":
		data := make([]int, cfg.SortSize)
		rng := rand.New(rand.NewSource(1))
		for i := range data {
			data[i] = rng.Int()
		}
		if err := workload.QuickSort(ctx, sched, data, cfg.Threshold); err != nil {
			return fmt.Errorf("byol-demo: quicksort: %w", err)
		}
		fmt.Fprintf(os.Stdout, "quicksort: sorted %d elements\n", len(data))

	default:
		return fmt.Errorf("byol-demo: unknown workload %q", cfg.Workload)
	}

	return nil
}

// autoMaxTasks derives a default admission bound from the number of
// usable CPUs (after automaxprocs has applied any container quota) and
// clamps it against a conservative estimate of how many admitted tasks'
// worth of frames free memory can hold.
func autoMaxTasks() int {
	byCPU := runtime.GOMAXPROCS(0) * 4
	byMemory := int(memory.FreeMemory() / bytesPerTask)
	if byMemory > 0 && byMemory < byCPU {
		return byMemory
	}
	return byCPU
}

func buildExecutor(cfg config) (byol.Executor, error) {
	switch cfg.Executor {
	case "", "goroutine":
		return byol.GoroutineExecutor{}, nil
	case "noyield":
		return byol.NoYieldExecutor{}, nil
	case "bounded":
		if cfg.BoundedWorkers < 1 {
			return nil, errors.New("byol-demo: bounded_workers must be >= 1 for the bounded executor")
		}
		return byol.NewBoundedExecutor(cfg.BoundedWorkers), nil
	default:
		return nil, fmt.Errorf("byol-demo: unknown executor %q", cfg.Executor)
	}
}
