// Package jsengine is a pedagogical emulator of a browser-style JavaScript
// execution environment: a single-threaded script interpreter cooperating
// with out-of-thread asynchronous workers through a central router, with
// strict priority rules between microtasks (promise continuations) and
// macrotasks (I/O completions, events).
//
// # Architecture
//
// Three long-lived actors run as goroutines:
//
//   - [Scheduler] routes Tasks by origin: worker-origin Tasks go to the
//     EventLoop's microtask or macrotask queue (by IsPromise); event-loop-
//     origin Tasks go to the ApiManager's request queue.
//   - [ApiManager] launches workers for requests, tracks pending context by
//     task id, and re-attaches worker responses to their originating Task
//     before forwarding them back to the Scheduler.
//   - [EventLoop] is the single-threaded interpreter: each tick runs at
//     most one macrotask, then drains all microtasks to quiescence.
//
// Every actor owns exactly one [Alarm] and one or more [TaskQueue]; a
// [ClosureHeap] is the only other point of cross-goroutine sharing. Every
// Callback, once registered in the heap, runs exactly once, on the
// EventLoop goroutine.
//
// # Usage
//
//	eng, err := jsengine.New(jsengine.WithLogger(jsengine.NewDefaultLogger(jsengine.LevelInfo, os.Stderr)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go eng.Run(context.Background())
//
//	eng.SimulateFetchThen()
//	eng.SimulateDomClick()
//
// # Thread Safety
//
//   - [TaskQueue.PushBack], [TaskQueue.PushFront], [TaskQueue.Pop] are safe
//     to call from any goroutine.
//   - [ClosureHeap.Register] and [ClosureHeap.Get] are safe to call from any
//     goroutine; Get returns an owned copy.
//   - Interpretation of a Callback's instructions happens on exactly one
//     goroutine: the EventLoop's.
//
// # Error Types
//
// The package models every recoverable error named by its error-handling
// design as a concrete type implementing [error]:
// [CallbackNotFoundError], [OrphanResponseError], [UnroutableTaskError],
// [DiscardedResponseError], and [PayloadTypeError]. None of them wraps a
// cause, so none has an Unwrap method. None of them ever terminates an
// actor; each is logged and the offending Task is dropped, except that a
// PayloadTypeError skips only the offending instruction and interpretation
// of the rest of the Callback continues.
package jsengine
