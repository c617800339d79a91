package sched

import (
	"context"
	"time"
)

var (
	scheduler, _ = New()
	registry     = NewRegistry()
)

// Configure the default scheduler.
func Configure(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(scheduler); err != nil {
			return err
		}
	}
	return nil
}

// Register a routine with the default registry.
func Register(name string, routine Routine) error {
	return registry.Register(name, routine)
}

// Add a job to the default scheduler.
func Add(job *Job) {
	scheduler.Add(job)
}

// AddTab adds a crontab to the default scheduler, resolving routines against
// the default registry.
func AddTab(tab Tab) error {
	return scheduler.AddTab(tab, registry)
}

// Tick ticks the default scheduler.
func Tick() error {
	return scheduler.Tick()
}

// TickContext ticks the default scheduler with the given context.
func TickContext(ctx context.Context) error {
	return scheduler.TickContext(ctx)
}

// TimeTillNextJob reports the default scheduler's wait until its next
// occurrence.
func TimeTillNextJob() time.Duration {
	return scheduler.TimeTillNextJob()
}

// Run the default scheduler's sleep-then-tick loop.
func Run(ctx context.Context) error {
	return scheduler.Run(ctx)
}

// Stop the default scheduler's Run loop.
func Stop() {
	scheduler.Stop()
}
