package jsengine

import "sync/atomic"

// TaskSource identifies which actor originated a Task.
type TaskSource int

const (
	SourceScheduler TaskSource = iota
	SourceEventLoop
	SourceApiWorker
)

func (s TaskSource) String() string {
	switch s {
	case SourceScheduler:
		return "Scheduler"
	case SourceEventLoop:
		return "EventLoop"
	case SourceApiWorker:
		return "ApiWorker"
	default:
		return "Unknown"
	}
}

// TaskAction distinguishes a request crossing toward the ApiManager from a
// response crossing back.
type TaskAction int

const (
	ActionRequest TaskAction = iota
	ActionResponse
)

func (a TaskAction) String() string {
	switch a {
	case ActionRequest:
		return "Request"
	case ActionResponse:
		return "Response"
	default:
		return "Unknown"
	}
}

// TaskType is advisory: the binding decision on priority is made at the
// Scheduler/ApiManager boundary using IsPromise, not this field.
type TaskType int

const (
	TypeMacrotask TaskType = iota
	TypeMicrotask
)

func (t TaskType) String() string {
	switch t {
	case TypeMacrotask:
		return "Macrotask"
	case TypeMicrotask:
		return "Microtask"
	default:
		return "Unknown"
	}
}

// NoCallback is the sentinel callback id meaning "no continuation"; Tasks
// and Instructions carrying it are dropped as no-ops rather than erroring.
const NoCallback int64 = -1

// PayloadKind discriminates the variants of Payload, replacing the
// reference implementation's untyped data field with a closed sum type.
type PayloadKind int

const (
	PayloadText PayloadKind = iota
	PayloadJSON
)

// Payload is the opaque value carried by a Task or an Instruction across
// actor boundaries: a request URL on the way out, a response body on the
// way back, or a DOM event descriptor. It is always printable; a Payload
// constructed any other way than via [NewTextPayload] or [NewJSONPayload]
// is a zero value and triggers a PayloadTypeError when the interpreter
// tries to render it.
type Payload struct {
	Kind PayloadKind
	Text string
	set  bool
}

// NewTextPayload constructs a plain-text Payload.
func NewTextPayload(s string) Payload {
	return Payload{Kind: PayloadText, Text: s, set: true}
}

// NewJSONPayload constructs a Payload carrying a pre-serialized JSON
// string. It is still rendered as text by the interpreter's Log
// instruction; the Kind distinction exists so that a future DomUpdate
// handler can branch on it without re-parsing.
func NewJSONPayload(s string) Payload {
	return Payload{Kind: PayloadJSON, Text: s, set: true}
}

// String renders the payload for logging, reporting ok=false if the
// Payload was never initialized (the PayloadTypeError case).
func (p Payload) String() (string, bool) {
	if !p.set {
		return "", false
	}
	return p.Text, true
}

// taskIDCounter is the process-wide monotonic Task id source. Relaxed
// ordering suffices: uniqueness, not synchronization, is the contract.
var taskIDCounter atomic.Int64

// nextTaskID returns the next globally unique Task id.
func nextTaskID() int64 {
	return taskIDCounter.Add(1)
}

// Task is a transient message passing between actors.
type Task struct {
	ID         int64
	Source     TaskSource
	Action     TaskAction
	Type       TaskType
	CallbackID int64
	IsPromise  bool
	Data       Payload
}

// NewTask constructs a Task with a freshly minted id and CallbackID set to
// NoCallback, leaving all other fields at their zero values for the caller
// to set.
func NewTask() Task {
	return Task{ID: nextTaskID(), CallbackID: NoCallback}
}
