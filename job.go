package sched

import (
	"context"
	"time"
)

// DefaultMissedRunLimit replays at most the single most recent missed
// occurrence per tick.
const DefaultMissedRunLimit = 1

// JobOption is a Job constructor function.
type JobOption func(*Job)

// WithMissedRunLimit caps how many missed occurrences are replayed per tick.
// A non-positive n replays all of them.
//
// The limit defaults to DefaultMissedRunLimit.
func WithMissedRunLimit(n int) JobOption {
	return func(j *Job) {
		if n < 0 {
			n = 0
		}
		j.missedRunLimit = n
	}
}

// WithJobClock sets the clock the job reads "now" from on each tick.
//
// The clock defaults to time.Now.
func WithJobClock(now func() time.Time) JobOption {
	return func(j *Job) {
		if now != nil {
			j.now = now
		}
	}
}

// Job couples a Schedule with the Routine to run for each of its occurrences.
// A Job keeps no timer of its own; it only acts when ticked.
type Job struct {
	schedule Schedule
	run      Routine
	now      func() time.Time

	// lastTick is the instant up to which the schedule has been evaluated.
	// The zero value means the job has never been ticked.
	lastTick time.Time

	// missedRunLimit caps replayed occurrences per tick; 0 means no cap.
	missedRunLimit int
}

// NewJob is the constructor for Job.
func NewJob(schedule Schedule, run Routine, opts ...JobOption) *Job {
	j := &Job{
		schedule:       schedule,
		run:            run,
		now:            time.Now,
		missedRunLimit: DefaultMissedRunLimit,
	}

	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Tick runs the routine once per occurrence elapsed since the previous tick.
// See TickContext.
func (j *Job) Tick() error {
	return j.TickContext(context.Background())
}

// TickContext reads the clock once, then walks the schedule's occurrences
// strictly after the previous tick, in ascending order, running the routine
// once per occurrence that is not after "now". When the missed-run limit is
// set, occurrences beyond it are dropped, not deferred: the next walk starts
// from this tick's "now" regardless.
//
// A routine error aborts the walk and is returned before the tick is
// recorded, so the same occurrences come due again on the next tick.
func (j *Job) TickContext(ctx context.Context) error {
	now := j.now()

	// The first tick establishes a baseline; nothing from before the job
	// existed counts as missed.
	if j.lastTick.IsZero() {
		j.lastTick = now
		return nil
	}

	event := j.schedule.Next(j.lastTick)
	for ran := 0; j.missedRunLimit == 0 || ran < j.missedRunLimit; ran++ {
		if event.IsZero() || event.After(now) {
			break
		}

		if err := j.run(ctx); err != nil {
			return err
		}

		next := j.schedule.Next(event)
		if !next.After(event) {
			// The schedule stopped advancing; give up rather than
			// spin on a broken Next implementation.
			break
		}
		event = next
	}

	j.lastTick = now
	return nil
}
