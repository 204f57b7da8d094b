package jsengine

// Scheduler is a pure router: it never transforms a Task beyond
// relocating it to the correct downstream queue. Source is the only
// field it inspects to choose a destination; IsPromise is the sole
// priority signal once a destination is chosen (spec.md §4.4).
type Scheduler struct {
	input  *TaskQueue[Task]
	alarm  *Alarm
	macro  *TaskQueue[Task]
	micro  *TaskQueue[Task]
	loopAl *Alarm
	apiReq *TaskQueue[Task]
	apiAl  *Alarm
	logger Logger
}

// NewScheduler wires a Scheduler to its input queue/alarm and the two
// downstream destinations it routes to.
func NewScheduler(input *TaskQueue[Task], alarm *Alarm, macro, micro *TaskQueue[Task], loopAlarm *Alarm, apiReq *TaskQueue[Task], apiAlarm *Alarm, logger Logger) *Scheduler {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &Scheduler{
		input:  input,
		alarm:  alarm,
		macro:  macro,
		micro:  micro,
		loopAl: loopAlarm,
		apiReq: apiReq,
		apiAl:  apiAlarm,
		logger: logger,
	}
}

// Run drains the input queue, routing every Task, then parks on the
// Scheduler's own Alarm; it never returns (spec.md §1: "no graceful
// shutdown of actor threads in the reference design").
func (s *Scheduler) Run() {
	for {
		for {
			task, ok := s.input.Pop()
			if !ok {
				break
			}
			s.route(task)
		}
		s.alarm.Wait()
	}
}

func (s *Scheduler) route(task Task) {
	switch task.Source {
	case SourceApiWorker:
		if task.IsPromise {
			s.micro.PushBack(task)
		} else {
			s.macro.PushBack(task)
		}
		s.loopAl.Notify()
	case SourceEventLoop:
		s.apiReq.PushBack(task)
		s.apiAl.Notify()
	default:
		// Currently unreachable: no producer constructs a Task whose
		// Source is SourceScheduler or anything else.
		err := &UnroutableTaskError{Source: task.Source, TaskID: task.ID}
		LogWarn(s.logger, CategoryScheduler, err.Error())
	}
}
