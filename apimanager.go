package jsengine

// ApiRequest crosses from the ApiManager to a worker. Only the task id and
// payload cross this boundary deliberately: internal routing fields
// (CallbackID, IsPromise, Type) are not exposed to the "external" worker
// (spec.md §4.5).
type ApiRequest struct {
	TaskID int64
	Data   Payload
}

// ApiResponse crosses back from a worker to the ApiManager.
type ApiResponse struct {
	TaskID int64
	Data   Payload
}

// ApiManager launches workers for requests, tracks pending context by task
// id, and re-attaches worker responses to their originating Task before
// forwarding them back to the Scheduler (spec.md §4.5).
type ApiManager struct {
	requests  *TaskQueue[Task]
	responses *TaskQueue[ApiResponse]
	alarm     *Alarm
	scheduler *TaskQueue[Task]
	schedAl   *Alarm
	pool      *workerPool
	logger    Logger

	pending       map[int64]Task
	bypassPending bool
}

// NewApiManager wires an ApiManager to its two input queues, the
// scheduler destination it forwards completions to, and the worker pool
// it spawns requests into.
func NewApiManager(requests *TaskQueue[Task], responses *TaskQueue[ApiResponse], alarm *Alarm, scheduler *TaskQueue[Task], schedulerAlarm *Alarm, pool *workerPool, logger Logger, bypassPending bool) *ApiManager {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &ApiManager{
		requests:      requests,
		responses:     responses,
		alarm:         alarm,
		scheduler:     scheduler,
		schedAl:       schedulerAlarm,
		pool:          pool,
		logger:        logger,
		pending:       make(map[int64]Task),
		bypassPending: bypassPending,
	}
}

// Run executes Phase R, Phase C, then parks on the ApiManager's own
// Alarm; it never returns.
func (m *ApiManager) Run() {
	for {
		m.phaseRequests()
		m.phaseCompletions()
		m.alarm.Wait()
	}
}

// phaseRequests drains the request queue. For each Task it stores the
// full Task in the pending map *before* submitting to the worker pool,
// preserving the "request stored before worker spawned" invariant
// (spec.md §9 open question 3) even though the ApiManager is the only
// writer of pending, so the ordering only matters for the reader inside
// phaseCompletions on a later loop iteration.
func (m *ApiManager) phaseRequests() {
	for {
		task, ok := m.requests.Pop()
		if !ok {
			return
		}
		if !m.bypassPending {
			m.pending[task.ID] = task
		}
		req := ApiRequest{TaskID: task.ID, Data: task.Data}
		m.pool.submit(req, m.responses, m.alarm)
	}
}

// phaseCompletions drains the response queue, re-hydrating each response
// against its originating Task and forwarding it to the Scheduler.
func (m *ApiManager) phaseCompletions() {
	for {
		resp, ok := m.responses.Pop()
		if !ok {
			return
		}
		original, found := m.pending[resp.TaskID]
		if !found {
			err := &OrphanResponseError{TaskID: resp.TaskID}
			LogError(m.logger, CategoryApiManager, "discarding orphan response", err)
			continue
		}
		delete(m.pending, resp.TaskID)
		completed := original
		completed.Source = SourceApiWorker
		completed.Data = resp.Data
		if completed.IsPromise {
			m.scheduler.PushFront(completed)
		} else {
			m.scheduler.PushBack(completed)
		}
		m.schedAl.Notify()
	}
}
