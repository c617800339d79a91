// origin: https://github.com/robfig/cron/blob/master/schedule.go

package sched

import (
	"time"

	"github.com/pkg/errors"
	cron "github.com/robfig/cron/v3"
)

// The Schedule describes a job's duty cycle.
type Schedule interface {
	// Return the next activation time, later than the given time.
	// Next must be a pure function of the schedule and the given time;
	// walking a schedule is done by applying Next repeatedly. The zero
	// time means no further activations.
	Next(time.Time) time.Time
}

var defaultParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Parse converts a five-field cron expression, or a descriptor such as
// "@every 30s" or "@daily", into a Schedule.
func Parse(expression string) (Schedule, error) {
	schedule, err := defaultParser.Parse(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing expression %q", expression)
	}
	return schedule, nil
}

// MustParse calls Parse and panics if an error is returned.
func MustParse(expression string) Schedule {
	schedule, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return schedule
}

// Every returns a Schedule that activates once per duration. Durations are
// rounded the way robfig/cron rounds them: up to a second, no sub-second
// delays.
func Every(duration time.Duration) Schedule {
	return cron.Every(duration)
}
