package check

import (
	"context"

	"github.com/gammazero/workerpool"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("check")

// EvalFunc evaluates a single raw descriptor, returning a Record on
// acceptance and the exclusion reason otherwise.
type EvalFunc func(ctx context.Context, raw string) (*Record, error)

// Scheduler fans an EvalFunc out over descriptors under bounded concurrency.
type Scheduler struct {
	width      int
	eval       EvalFunc
	onProgress func(done, total int)
}

// NewScheduler returns a Scheduler running eval on at most width concurrent
// workers.
func NewScheduler(width int, eval EvalFunc) *Scheduler {
	return &Scheduler{width: width, eval: eval}
}

// OnProgress registers a callback invoked after every completed task with
// the running completed-over-total counts. It must be set before RunAll.
func (s *Scheduler) OnProgress(fn func(done, total int)) {
	s.onProgress = fn
}

type taskResult struct {
	raw string
	rec *Record
	err error
}

// RunAll dispatches one evaluation task per descriptor and collects accepted
// records in completion order. Tasks are independent: a failed or panicking
// task is logged and does not affect its siblings or abort the run. RunAll
// returns once every dispatched task has finished; dispatched tasks are
// never cancelled.
func (s *Scheduler) RunAll(ctx context.Context, descriptors []string) []*Record {
	pool := workerpool.New(s.width)
	results := make(chan taskResult)

	for _, raw := range descriptors {
		raw := raw
		pool.Submit(func() {
			res := taskResult{raw: raw}
			defer func() {
				if r := recover(); r != nil {
					log.Errorw("error processing entry", "peer", raw, "panic", r)
					res.rec, res.err = nil, nil
				}
				results <- res
			}()
			res.rec, res.err = s.eval(ctx, raw)
		})
	}

	go func() {
		pool.StopWait()
		close(results)
	}()

	// The loop below is the only writer of accepted: worker tasks hand
	// their results over the channel instead of sharing an accumulator.
	accepted := make([]*Record, 0, len(descriptors))
	done, total := 0, len(descriptors)
	for res := range results {
		done++
		switch {
		case res.err != nil:
			log.Debugw("excluded peer", "peer", res.raw, "reason", res.err)
		case res.rec != nil:
			accepted = append(accepted, res.rec)
		}
		log.Infow("processed entry", "done", done, "total", total)
		if s.onProgress != nil {
			s.onProgress(done, total)
		}
	}
	return accepted
}
