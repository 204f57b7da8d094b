package jsengine

import (
	"testing"
	"time"
)

func newTestScheduler() (*Scheduler, *TaskQueue[Task], *Alarm, *TaskQueue[Task], *TaskQueue[Task], *Alarm, *TaskQueue[Task], *Alarm) {
	input := NewTaskQueue[Task]()
	macro := NewTaskQueue[Task]()
	micro := NewTaskQueue[Task]()
	apiReq := NewTaskQueue[Task]()

	inputAlarm := NewAlarm(func() bool { return !input.IsEmpty() })
	loopAlarm := NewAlarm(func() bool { return !macro.IsEmpty() || !micro.IsEmpty() })
	apiAlarm := NewAlarm(func() bool { return !apiReq.IsEmpty() })

	s := NewScheduler(input, inputAlarm, macro, micro, loopAlarm, apiReq, apiAlarm, nil)
	return s, input, inputAlarm, macro, micro, loopAlarm, apiReq, apiAlarm
}

func TestScheduler_RoutesWorkerPromiseToMicrotaskQueue(t *testing.T) {
	s, _, _, macro, micro, _, _, _ := newTestScheduler()
	task := NewTask()
	task.Source = SourceApiWorker
	task.IsPromise = true
	s.route(task)

	if !macro.IsEmpty() {
		t.Error("promise-bearing worker task should not land in the macrotask queue")
	}
	got, ok := micro.Pop()
	if !ok || got.ID != task.ID {
		t.Fatalf("expected task to land in microtask queue, got ok=%v", ok)
	}
}

func TestScheduler_RoutesWorkerNonPromiseToMacrotaskQueue(t *testing.T) {
	s, _, _, macro, micro, _, _, _ := newTestScheduler()
	task := NewTask()
	task.Source = SourceApiWorker
	task.IsPromise = false
	s.route(task)

	if !micro.IsEmpty() {
		t.Error("non-promise worker task should not land in the microtask queue")
	}
	got, ok := macro.Pop()
	if !ok || got.ID != task.ID {
		t.Fatalf("expected task to land in macrotask queue, got ok=%v", ok)
	}
}

func TestScheduler_RoutesEventLoopOriginToApiRequestQueue(t *testing.T) {
	s, _, _, _, _, _, apiReq, _ := newTestScheduler()
	task := NewTask()
	task.Source = SourceEventLoop
	s.route(task)

	got, ok := apiReq.Pop()
	if !ok || got.ID != task.ID {
		t.Fatalf("expected task to land in api request queue, got ok=%v", ok)
	}
}

func TestScheduler_RunDrainsInputQueue(t *testing.T) {
	s, input, inputAlarm, macro, _, loopAlarm, _, _ := newTestScheduler()
	_ = loopAlarm

	task := NewTask()
	task.Source = SourceApiWorker
	task.IsPromise = false
	input.PushBack(task)
	inputAlarm.Notify()

	go s.Run() // Run() never returns; this goroutine outlives the test

	for i := 0; i < 200; i++ {
		if !macro.IsEmpty() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Scheduler never routed the injected task to the macrotask queue")
}
