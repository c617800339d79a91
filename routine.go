package sched

import "context"

// Routine is the callback run once per due occurrence of a job. An error
// return propagates to whoever ticked the scheduler; the scheduler neither
// catches, logs, nor retries it.
type Routine func(ctx context.Context) error

// Func adapts a plain function to a Routine.
func Func(f func()) Routine {
	return func(context.Context) error {
		f()
		return nil
	}
}
