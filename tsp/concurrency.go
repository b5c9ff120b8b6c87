// Package tsp — cooperative stop flag and the supervisor/worker harness.
//
// The search runs on a single worker goroutine; the only datum shared with
// the caller is a one-way atomic latch. The worker checks it exactly at
// should_continue() boundaries, between generations — never mid-iterate.
package tsp

import (
	"context"
	"sync/atomic"
)

// stop sets the stop flag. Safe to call from any goroutine, any number of
// times; the flag only ever transitions false -> true.
func (s *Solver) stop() { atomic.StoreUint32(&s.stopFlag, 1) }

// stopped reports whether the stop flag has been set.
func (s *Solver) stopped() bool { return atomic.LoadUint32(&s.stopFlag) == 1 }

// RunWithContext spawns Run on a worker goroutine and supervises it: if ctx
// is cancelled or its deadline elapses before the worker finishes, the stop
// flag is set and the supervisor waits for the worker to exit gracefully.
// The worker always returns a valid Result — best_solution survives
// cancellation because Finalize runs unconditionally once should_continue()
// turns false.
//
// Ordering: the worker's write to its result happens-before the supervisor's
// read, enforced by the channel receive below (the Go memory model's
// send-before-receive rule), not by any shared-memory convention.
func (s *Solver) RunWithContext(ctx context.Context) (Result, error) {
	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := s.Run()
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		s.stop()
		o := <-done
		return o.res, o.err
	}
}
