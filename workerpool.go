package jsengine

import (
	"math/rand/v2"
	"time"
)

// workerPool is a fixed-size pool of goroutines simulating the "detached
// worker task" of spec.md §4.5.1. The reference implementation spawns one
// OS thread per request; design note §9 calls this out as needing a
// bounded pool in a production-grade reimplementation, so every request
// is instead submitted as a job on a buffered channel drained by a fixed
// set of long-lived goroutines. The contract visible to the rest of the
// system is unchanged: each request eventually produces exactly one
// response on the response queue, followed by a notify.
type workerPool struct {
	jobs       chan workerJob
	minLatency time.Duration
	maxLatency time.Duration
	logger     Logger
}

type workerJob struct {
	req       ApiRequest
	responses *TaskQueue[ApiResponse]
	alarm     *Alarm
}

// newWorkerPool starts size worker goroutines, all reading from the same
// job channel. The channel is large enough that, under spec.md §8's
// scenarios, submission never blocks the ApiManager actor; this is a
// deliberate simplification, not a correctness guarantee (no backpressure
// is a spec.md §1 non-goal).
func newWorkerPool(size int, minLatency, maxLatency time.Duration, logger Logger) *workerPool {
	if logger == nil {
		logger = NoOpLogger{}
	}
	p := &workerPool{
		jobs:       make(chan workerJob, 256),
		minLatency: minLatency,
		maxLatency: maxLatency,
		logger:     logger,
	}
	for i := 0; i < size; i++ {
		go p.loop()
	}
	return p
}

func (p *workerPool) loop() {
	for job := range p.jobs {
		p.run(job)
	}
}

func (p *workerPool) submit(req ApiRequest, responses *TaskQueue[ApiResponse], alarm *Alarm) {
	p.jobs <- workerJob{req: req, responses: responses, alarm: alarm}
}

// run simulates the latency of a real network/DOM round trip, then
// produces a response and notifies the waiting ApiManager. It never
// joins back with its submitter (spec.md §4.5.1: "no joining from the
// ApiManager; worker lifetime is independent").
func (p *workerPool) run(job workerJob) {
	delay := p.minLatency
	if p.maxLatency > p.minLatency {
		delay += time.Duration(rand.Int64N(int64(p.maxLatency - p.minLatency)))
	}
	time.Sleep(delay)

	text, ok := job.req.Data.String()
	if !ok {
		text = ""
	}
	LogDebug(p.logger, CategoryWorker, "worker completed request for "+text)

	resp := ApiResponse{
		TaskID: job.req.TaskID,
		Data:   NewTextPayload("API data received successfully"),
	}
	job.responses.PushBack(resp)
	job.alarm.Notify()
}
