package schedule

import (
	"context"
	"time"
)

type OpResult int

const (
	OpResultDone OpResult = iota
	OpResultRetry
	OpResultRepeatAfter
)

type Result struct {
	Result OpResult
	After  time.Duration
}

type ExecuteFn func(ctx context.Context) Result

// Task is a unit of background work. Group lets related tasks be
// cancelled together.
type Task struct {
	Group string
	Fn    ExecuteFn

	timeout time.Duration
	delay   time.Duration
	period  time.Duration

	scheduledAt time.Time
}

func (t *Task) After(d time.Duration) *Task {
	t.delay = d
	return t
}

// Every makes the task reschedule itself with the given period after
// each successful run.
func (t *Task) Every(period time.Duration) *Task {
	t.period = period
	return t
}

func (t *Task) WithTimeout(timeout time.Duration) *Task {
	t.timeout = timeout
	return t
}
