package jsengine

import (
	"math/rand/v2"
	"sync"
)

// InstructionKind tags one opcode the EventLoop interprets.
type InstructionKind int

const (
	InstructionLog InstructionKind = iota
	InstructionApiRequest
	InstructionDomUpdate
)

func (k InstructionKind) String() string {
	switch k {
	case InstructionLog:
		return "Log"
	case InstructionApiRequest:
		return "ApiRequest"
	case InstructionDomUpdate:
		return "DomUpdate"
	default:
		return "Unknown"
	}
}

// Instruction is a single opcode in a Callback's instruction stream.
type Instruction struct {
	Kind           InstructionKind
	Payload        Payload
	IsPromise      bool
	ThenCallbackID int64
}

// IsApiRequest reports whether Kind is InstructionApiRequest. It is a
// derived convenience, not independent state: it always equals
// Kind == InstructionApiRequest.
func (i Instruction) IsApiRequest() bool {
	return i.Kind == InstructionApiRequest
}

// LogInstruction constructs a Log opcode.
func LogInstruction(text string) Instruction {
	return Instruction{Kind: InstructionLog, Payload: NewTextPayload(text), ThenCallbackID: NoCallback}
}

// ApiRequestInstruction constructs an ApiRequest opcode. thenCallbackID
// may be NoCallback, meaning the eventual response is discarded.
func ApiRequestInstruction(url string, isPromise bool, thenCallbackID int64) Instruction {
	return Instruction{
		Kind:           InstructionApiRequest,
		Payload:        NewTextPayload(url),
		IsPromise:      isPromise,
		ThenCallbackID: thenCallbackID,
	}
}

// Callback is an immutable, named sequence of Instructions, executed
// serially on the EventLoop goroutine whenever a Task resolves it.
type Callback struct {
	ID                int64
	AssociatedClosure uint64
	Instructions      []Instruction
}

// ClosureHeap is a concurrent mapping from callback id to an immutable
// Callback record. Ids are assigned monotonically starting at 1 and are
// never reused; lookups return an isolated copy.
type ClosureHeap struct {
	mu     sync.RWMutex
	data   map[int64]Callback
	nextID int64
	logger Logger
}

// NewClosureHeap constructs an empty heap.
func NewClosureHeap(logger Logger) *ClosureHeap {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &ClosureHeap{
		data:   make(map[int64]Callback),
		nextID: 1,
		logger: logger,
	}
}

// Register assigns the next monotonic id, draws a 64-bit closure token
// uniformly from the full uint64 range using a well-seeded PRNG, stores
// the record, and returns the id. The closure token is informational
// only: it is never used for dispatch.
func (h *ClosureHeap) Register(instructions []Instruction) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	cb := Callback{
		ID:                id,
		AssociatedClosure: rand.Uint64(),
		Instructions:      append([]Instruction(nil), instructions...),
	}
	h.data[id] = cb
	h.logger.Log(LogEntry{
		Level:    LevelDebug,
		Category: CategoryClosureHeap,
		Message:  "callback registered",
		TaskID:   id,
	})
	return id
}

// Get returns an owned copy of the Callback registered under id. It
// returns a CallbackNotFoundError if id is absent, rather than the
// reference implementation's uncaught exception (spec.md §7, §9.2).
func (h *ClosureHeap) Get(id int64) (Callback, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cb, ok := h.data[id]
	if !ok {
		return Callback{}, &CallbackNotFoundError{ID: id}
	}
	// Callback is taken by value from the map, but Instructions would
	// still share its backing array with the stored record; copy it.
	cb.Instructions = append([]Instruction(nil), cb.Instructions...)
	return cb, nil
}
