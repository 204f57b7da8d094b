package jsengine

import "context"

// Engine owns the five queues, three alarms, the ClosureHeap, and the
// three actors that together form the simulated JavaScript execution
// environment (spec.md §2).
type Engine struct {
	heap *ClosureHeap

	schedulerQueue *TaskQueue[Task]
	schedulerAlarm *Alarm

	apiRequestQueue  *TaskQueue[Task]
	apiResponseQueue *TaskQueue[ApiResponse]
	apiManagerAlarm  *Alarm

	macroQueue     *TaskQueue[Task]
	microQueue     *TaskQueue[Task]
	eventLoopAlarm *Alarm

	scheduler  *Scheduler
	apiManager *ApiManager
	eventLoop  *EventLoop

	logger Logger
}

// New constructs an Engine and its three actors, wired exactly per
// spec.md §2/§4, but does not start them: call [Engine.Run] for that.
func New(opts ...EngineOption) (*Engine, error) {
	cfg, err := resolveEngineOptions(opts)
	if err != nil {
		return nil, err
	}

	e := &Engine{logger: cfg.logger}
	e.heap = NewClosureHeap(cfg.logger)

	e.schedulerQueue = NewTaskQueue[Task]()
	e.apiRequestQueue = NewTaskQueue[Task]()
	e.apiResponseQueue = NewTaskQueue[ApiResponse]()
	e.macroQueue = NewTaskQueue[Task]()
	e.microQueue = NewTaskQueue[Task]()

	e.schedulerAlarm = NewAlarm(func() bool { return !e.schedulerQueue.IsEmpty() })
	e.apiManagerAlarm = NewAlarm(func() bool {
		return !e.apiRequestQueue.IsEmpty() || !e.apiResponseQueue.IsEmpty()
	})
	e.eventLoopAlarm = NewAlarm(func() bool {
		return !e.macroQueue.IsEmpty() || !e.microQueue.IsEmpty()
	})

	pool := newWorkerPool(cfg.workerPoolSize, cfg.minLatency, cfg.maxLatency, cfg.logger)

	e.scheduler = NewScheduler(e.schedulerQueue, e.schedulerAlarm, e.macroQueue, e.microQueue, e.eventLoopAlarm, e.apiRequestQueue, e.apiManagerAlarm, cfg.logger)
	e.apiManager = NewApiManager(e.apiRequestQueue, e.apiResponseQueue, e.apiManagerAlarm, e.schedulerQueue, e.schedulerAlarm, pool, cfg.logger, cfg.bypassPending)
	e.eventLoop = NewEventLoop(e.macroQueue, e.microQueue, e.eventLoopAlarm, e.heap, e.schedulerQueue, e.schedulerAlarm, cfg.logger)

	return e, nil
}

// Run starts the three actors and blocks until ctx is cancelled. Per
// spec.md §1/§5, there is no graceful shutdown of the actor goroutines
// themselves; Run returns as soon as ctx is done, leaving them running.
func (e *Engine) Run(ctx context.Context) error {
	go e.scheduler.Run()
	go e.apiManager.Run()
	go e.eventLoop.Run()
	<-ctx.Done()
	return ctx.Err()
}

// Heap exposes the ClosureHeap for callers that register their own
// scenarios (e.g. tests exercising spec.md §8's property tests directly).
func (e *Engine) Heap() *ClosureHeap { return e.heap }

// InjectTask pushes task directly onto the scheduler's input queue and
// notifies its alarm: the external entry point for Tasks other than the
// CLI's two built-in scenarios (spec.md §6). Responses are injected
// separately through [Engine.InjectResponse].
func (e *Engine) InjectTask(task Task) {
	e.schedulerQueue.PushBack(task)
	e.schedulerAlarm.Notify()
}

// InjectResponse bypasses the Scheduler entirely and drops a response
// straight onto the ApiManager's response queue: the test hook spec.md
// §8's S4 calls for to manufacture an orphan response deterministically.
func (e *Engine) InjectResponse(resp ApiResponse) {
	e.apiResponseQueue.PushBack(resp)
	e.apiManagerAlarm.Notify()
}

// SimulateFetchThen registers the chained-promise scenario (spec.md §6,
// §8 S1) and injects its initial Task, returning the ids of both
// registered callbacks. Carried over from original_source/main.cpp's
// simulateFetchThen, which the distilled spec.md places out of scope for
// the core but still specifies the shape of (§6).
func (e *Engine) SimulateFetchThen() (finalID, initialID int64) {
	finalID = e.heap.Register([]Instruction{
		LogInstruction("final"),
	})
	initialID = e.heap.Register([]Instruction{
		LogInstruction("first-resolved"),
		ApiRequestInstruction("api/details", true, finalID),
	})
	task := NewTask()
	task.Source = SourceApiWorker
	task.Action = ActionResponse
	task.IsPromise = true
	task.CallbackID = initialID
	task.Data = NewTextPayload("init-data")
	e.InjectTask(task)
	return finalID, initialID
}

// SimulateDomClick registers the DOM-click scenario (spec.md §6, §8 S2)
// and injects its single macrotask Task, returning the registered
// callback id. Carried over from original_source/main.cpp's
// simulateDomClick.
func (e *Engine) SimulateDomClick() (onClickID int64) {
	onClickID = e.heap.Register([]Instruction{
		LogInstruction("click-handled"),
	})
	task := NewTask()
	task.Source = SourceApiWorker
	task.Action = ActionResponse
	task.Type = TypeMacrotask
	task.IsPromise = false
	task.CallbackID = onClickID
	task.Data = NewJSONPayload(`{"type":"click","target":"#submit-btn"}`)
	e.InjectTask(task)
	return onClickID
}
