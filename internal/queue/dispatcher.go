package queue

import (
	"sync"

	"github.com/rs/zerolog"
)

// Handler processes one dequeued path. Errors are the handler's own
// concern to log; the dispatcher only guards against panics.
type Handler func(path string)

// Dispatcher owns the receive half of a Queue exclusively and fans work
// out to a fixed-size worker pool, generalizing the teacher pipeline's
// semaphore-bounded goroutine-per-job pattern from a one-shot batch run
// to a long-lived service loop.
type Dispatcher struct {
	queue   *Queue
	handler Handler
	sem     chan struct{}
	log     zerolog.Logger

	wg sync.WaitGroup
}

// NewDispatcher creates a dispatcher bound to queue, running at most
// workers jobs concurrently. workers is floored to 1.
func NewDispatcher(q *Queue, workers int, handler Handler, log zerolog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		queue:   q,
		handler: handler,
		sem:     make(chan struct{}, workers),
		log:     log.With().Str("component", "dispatcher").Logger(),
	}
}

// Run blocks on the queue's receive channel, submitting each path to the
// worker pool, until the queue is closed. It resolves design note §9's
// flagged busy-spin anomaly: on channel closure the loop exits instead
// of continuing to poll a dead receiver.
func (d *Dispatcher) Run() {
	d.log.Info().Msg("dispatcher started")
	for path := range d.queue.Receive() {
		d.sem <- struct{}{} // acquire a pool slot; blocks, never drops work
		d.wg.Add(1)
		go d.runJob(path)
	}
	d.wg.Wait()
	d.log.Info().Msg("dispatcher stopped: queue closed")
}

func (d *Dispatcher) runJob(path string) {
	defer d.wg.Done()
	defer func() { <-d.sem }() // release the pool slot
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("path", path).Msg("worker panicked; job aborted")
		}
	}()
	d.handler(path)
}
