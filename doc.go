/*
Package sched is a pull-based job scheduler partially based on github.com/robfig/cron
(same expression semantics). The scheduler never runs jobs on an internal timer: the
caller ticks it, and each tick replays the occurrences elapsed since the previous tick,
bounded per job by a missed-run limit.
*/
package sched
