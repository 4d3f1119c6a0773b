package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the demo binary's run configuration. The core byol library
// takes no configuration beyond Scheduler construction options; this
// config exists only for the demo, loaded from TOML the way the rest of
// this codebase's tooling is configured.
type config struct {
	// Workload selects which sample workload to run: "quicksum" or
	// "quicksort".
	Workload string `toml:"workload"`

	// RangeLow and RangeHigh bound the quicksum range [RangeLow, RangeHigh).
	RangeLow  int `toml:"range_low"`
	RangeHigh int `toml:"range_high"`

	// SortSize is the number of elements to sort, for the quicksort workload.
	SortSize int `toml:"sort_size"`

	// Threshold is the base-case cutoff at or below which recursion stops
	// spawning and runs sequentially.
	Threshold int `toml:"threshold"`

	// MaxTasks is the Scheduler's admission bound. 0 means "auto": derive
	// it from runtime.GOMAXPROCS(0), after applying automaxprocs.
	MaxTasks int `toml:"max_tasks"`

	// Executor selects the host Executor: "goroutine" (default),
	// "noyield", or "bounded".
	Executor string `toml:"executor"`

	// BoundedWorkers is the BoundedExecutor's concurrency cap, when
	// Executor == "bounded".
	BoundedWorkers int `toml:"bounded_workers"`

	// Debug enables structured logging of admission decisions and
	// allocation failures, written to stderr.
	Debug bool `toml:"debug"`
}

func defaultConfig() config {
	return config{
		Workload:       "quicksum",
		RangeLow:       0,
		RangeHigh:      10_000_000,
		SortSize:       1_000_000,
		Threshold:      4096,
		MaxTasks:       0,
		Executor:       "goroutine",
		BoundedWorkers: 4,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("byol-demo: loading config %q: %w", path, err)
	}
	return cfg, nil
}
