package jsengine

// EventLoop is the single-threaded interpreter: each tick runs at most
// one macrotask, then drains all microtasks to quiescence before
// returning to the next macrotask (spec.md §4.6).
type EventLoop struct {
	macro   *TaskQueue[Task]
	micro   *TaskQueue[Task]
	alarm   *Alarm
	heap    *ClosureHeap
	sched   *TaskQueue[Task]
	schedAl *Alarm
	logger  Logger
}

// NewEventLoop wires an EventLoop to its two input queues, the
// ClosureHeap it resolves callbacks against, and the Scheduler queue its
// interpreted instructions may emit new Tasks onto.
func NewEventLoop(macro, micro *TaskQueue[Task], alarm *Alarm, heap *ClosureHeap, scheduler *TaskQueue[Task], schedulerAlarm *Alarm, logger Logger) *EventLoop {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &EventLoop{
		macro:   macro,
		micro:   micro,
		alarm:   alarm,
		heap:    heap,
		sched:   scheduler,
		schedAl: schedulerAlarm,
		logger:  logger,
	}
}

// Run executes ticks forever; it never returns.
func (e *EventLoop) Run() {
	for {
		e.tick()
	}
}

// tick parks if both queues are empty, then runs at most one macrotask and
// drains microtasks to quiescence (spec.md §4.6). It returns as soon as
// the microtask queue is empty; the park for the next round happens at the
// start of the following tick.
func (e *EventLoop) tick() {
	if e.macro.IsEmpty() && e.micro.IsEmpty() {
		e.alarm.Wait()
	}
	if task, ok := e.macro.Pop(); ok {
		e.execute(task)
	}
	for {
		task, ok := e.micro.Pop()
		if !ok {
			break
		}
		e.execute(task)
	}
}

// execute resolves task's callback and interprets it, or logs and drops
// the task if the callback id is the sentinel or unresolvable. This
// replaces the reference implementation's uncaught-exception-on-
// not-found behavior with the recoverable log-and-drop spec.md §7/§9
// require.
func (e *EventLoop) execute(task Task) {
	if task.CallbackID == NoCallback {
		err := &DiscardedResponseError{TaskID: task.ID}
		LogDebug(e.logger, CategoryEventLoop, err.Error())
		return
	}
	cb, err := e.heap.Get(task.CallbackID)
	if err != nil {
		LogError(e.logger, CategoryEventLoop, "dropping task with unresolvable callback", err)
		return
	}
	e.executeStackJS(cb, task)
}

// executeStackJS is the instruction interpreter (spec.md §4.6.1): it runs
// every instruction of cb in order. task.Data is not read; task's id only
// tags a PayloadTypeError.
func (e *EventLoop) executeStackJS(cb Callback, task Task) {
	for _, instr := range cb.Instructions {
		switch instr.Kind {
		case InstructionLog:
			text, ok := instr.Payload.String()
			if !ok {
				err := &PayloadTypeError{TaskID: task.ID}
				LogWarn(e.logger, CategoryEventLoop, err.Error())
				continue
			}
			LogInfo(e.logger, CategoryEventLoop, text)
		case InstructionApiRequest:
			e.emitApiRequest(instr)
		case InstructionDomUpdate:
			// Reserved: currently a no-op beyond logging the payload.
			if text, ok := instr.Payload.String(); ok {
				LogDebug(e.logger, CategoryEventLoop, "dom update: "+text)
			}
		}
	}
}

// emitApiRequest builds and enqueues the outbound Task an ApiRequest
// instruction produces, per spec.md §4.6.1.
func (e *EventLoop) emitApiRequest(instr Instruction) {
	if instr.ThenCallbackID == NoCallback {
		LogWarn(e.logger, CategoryEventLoop, "api request has no .then() callback; response will be discarded")
	}
	out := NewTask()
	out.Source = SourceEventLoop
	out.Action = ActionRequest
	if instr.IsPromise {
		out.Type = TypeMicrotask
	} else {
		out.Type = TypeMacrotask
	}
	out.CallbackID = instr.ThenCallbackID
	out.IsPromise = instr.IsPromise
	out.Data = instr.Payload
	e.sched.PushBack(out)
	e.schedAl.Notify()
}
