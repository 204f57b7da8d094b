// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package jsengine

import "time"

// engineOptions holds configuration resolved from EngineOption values.
type engineOptions struct {
	logger         Logger
	workerPoolSize int
	minLatency     time.Duration
	maxLatency     time.Duration
	bypassPending  bool // test-only: S4's orphan-response hook
}

// EngineOption configures an Engine instance.
type EngineOption interface {
	applyEngine(*engineOptions) error
}

// engineOptionImpl implements EngineOption.
type engineOptionImpl struct {
	applyEngineFunc func(*engineOptions) error
}

func (e *engineOptionImpl) applyEngine(opts *engineOptions) error {
	return e.applyEngineFunc(opts)
}

// WithLogger sets the Logger every actor logs through. Defaults to
// NoOpLogger if never set.
func WithLogger(logger Logger) EngineOption {
	return &engineOptionImpl{func(opts *engineOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithWorkerPoolSize sets the number of goroutines in the ApiManager's
// fixed-size worker pool (SPEC_FULL.md §4).
func WithWorkerPoolSize(size int) EngineOption {
	return &engineOptionImpl{func(opts *engineOptions) error {
		if size < 1 {
			size = 1
		}
		opts.workerPoolSize = size
		return nil
	}}
}

// WithSimulatedLatency sets the [min, max] range a worker sleeps before
// producing its response, modeling "unspecified delay" (spec.md §4.5.1).
func WithSimulatedLatency(min, max time.Duration) EngineOption {
	return &engineOptionImpl{func(opts *engineOptions) error {
		if max < min {
			max = min
		}
		opts.minLatency = min
		opts.maxLatency = max
		return nil
	}}
}

// withBypassPendingMap is a test-only hook (spec.md §8, S4) that makes the
// ApiManager skip the request phase's pending-map write for every request
// for the engine's lifetime, so every completion becomes an orphan
// response.
// It is unexported: reachable only from this package's own tests.
func withBypassPendingMap() EngineOption {
	return &engineOptionImpl{func(opts *engineOptions) error {
		opts.bypassPending = true
		return nil
	}}
}

// resolveEngineOptions applies opts over the engine's defaults.
func resolveEngineOptions(opts []EngineOption) (*engineOptions, error) {
	cfg := &engineOptions{
		logger:         NoOpLogger{},
		workerPoolSize: 4,
		minLatency:     10 * time.Millisecond,
		maxLatency:     50 * time.Millisecond,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyEngine(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
