package jsengine

import "fmt"

// CallbackNotFoundError is returned when a ClosureHeap lookup for a given
// id finds nothing registered. The reference implementation lets this
// terminate the EventLoop goroutine with an uncaught exception; this is a
// fixed bug (spec.md §7, §9 open question 2): callers must log and drop
// the offending Task instead.
type CallbackNotFoundError struct {
	ID int64
}

func (e *CallbackNotFoundError) Error() string {
	return fmt.Sprintf("callback id %d not found", e.ID)
}

// OrphanResponseError is returned when the ApiManager receives a response
// whose task id is not present in its pending-context map: a protocol
// violation or duplicate delivery, considered recoverable since no actor
// state is corrupted.
type OrphanResponseError struct {
	TaskID int64
}

func (e *OrphanResponseError) Error() string {
	return fmt.Sprintf("no pending context for task %d, discarding response", e.TaskID)
}

// UnroutableTaskError is returned when the Scheduler sees a Task whose
// Source it does not recognize. This branch is currently unreachable in
// practice (spec.md §4.4), but is still modeled explicitly rather than
// panicking.
type UnroutableTaskError struct {
	Source TaskSource
	TaskID int64
}

func (e *UnroutableTaskError) Error() string {
	return fmt.Sprintf("task %d has unroutable source %s", e.TaskID, e.Source)
}

// DiscardedResponseError marks a Task arriving at the EventLoop with
// CallbackID == NoCallback: a silent no-op, not a failure. The EventLoop
// records it only at debug level.
type DiscardedResponseError struct {
	TaskID int64
}

func (e *DiscardedResponseError) Error() string {
	return fmt.Sprintf("task %d carries the sentinel callback id, discarding", e.TaskID)
}

// PayloadTypeError is returned when the interpreter tries to render a
// Task's or Instruction's Payload as printable text and it was never
// initialized.
type PayloadTypeError struct {
	TaskID int64
}

func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("task %d carries a payload of a non-printable type", e.TaskID)
}

// WrapError wraps cause with a contextual message, analogous to the
// teacher's helper of the same name.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
