package schedule

import (
	"context"
	"sync"
	"time"

	"go-micro.dev/v4/logger"
)

const maxNotifications = 1000
const tickInterval = 10 * time.Second
const maxTaskTimeout = 10 * time.Minute
const baseRetryDelay = time.Second

type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	notifies chan struct{}

	mu      sync.Mutex
	pending []*Task
	running *Task
	dropped bool
}

func New() *Scheduler {
	s := Scheduler{
		notifies: make(chan struct{}, maxNotifications),
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process()
	}()

	return &s
}

func (s *Scheduler) Add(t *Task) bool {
	if t == nil || t.Fn == nil {
		return false
	}
	t.scheduledAt = time.Now().Add(t.delay)

	s.mu.Lock()
	s.insert(t)
	s.mu.Unlock()

	s.notifies <- struct{}{}
	return true
}

func (s *Scheduler) Cancel(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.Group != group {
			kept = append(kept, t)
		}
	}
	s.pending = kept
	if s.running != nil && s.running.Group == group {
		s.dropped = true
	}
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.notifies)
}

func (s *Scheduler) process() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.notifies:
			s.processQueue()
		case <-ticker.C:
			s.processQueue()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) processQueue() {
	for {
		now := time.Now()
		s.mu.Lock()
		t := s.pop(now)
		s.running = t
		s.mu.Unlock()

		if t == nil {
			return
		}

		s.run(t)
	}
}

func (s *Scheduler) run(t *Task) {
	timeout := t.timeout
	if timeout == 0 {
		timeout = maxTaskTimeout
	}

	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	result := t.Fn(ctx)
	cancel()

	switch result.Result {
	case OpResultDone:
		if t.period != 0 {
			t.scheduledAt = time.Now().Add(t.period)
		}

	case OpResultRetry:
		if t.delay == 0 {
			t.delay = baseRetryDelay
		}
		t.delay *= 2
		t.scheduledAt = time.Now().Add(t.delay)
		logger.Debugf("Task '%s' failed, retry in %s", t.Group, t.delay)

	case OpResultRepeatAfter:
		t.scheduledAt = time.Now().Add(result.After)
	}

	again := result.Result != OpResultDone || t.period != 0

	s.mu.Lock()
	if again && !s.dropped {
		s.insert(t)
	}
	s.running = nil
	s.dropped = false
	s.mu.Unlock()
}

func (s *Scheduler) insert(t *Task) {
	for i, cur := range s.pending {
		if cur.scheduledAt.After(t.scheduledAt) {
			s.pending = append(s.pending[:i], append([]*Task{t}, s.pending[i:]...)...)
			return
		}
	}
	s.pending = append(s.pending, t)
}

func (s *Scheduler) pop(now time.Time) *Task {
	if len(s.pending) == 0 {
		return nil
	}
	t := s.pending[0]
	if t.scheduledAt.After(now) {
		return nil
	}
	s.pending = s.pending[1:]
	return t
}
