// Package schedule runs periodic tasks with fixed-delay semantics on a single
// goroutine.
package schedule

import (
	"context"
	"log/slog"
	"time"
)

type task struct {
	name  string
	delay time.Duration
	run   func()
	next  time.Time
}

// Scheduler runs registered tasks one at a time. A task's next run is due
// delay after its previous run returns, so a task never overlaps itself or any
// other task. Every task runs once as soon as Run starts.
type Scheduler struct {
	tasks  []*task
	logger *slog.Logger
	now    func() time.Time
	done   chan struct{}
}

// New creates an empty scheduler.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// Every registers fn to run with the given fixed delay. It must be called
// before Run.
func (s *Scheduler) Every(name string, delay time.Duration, fn func()) {
	if delay <= 0 {
		delay = time.Second
	}
	s.tasks = append(s.tasks, &task{name: name, delay: delay, run: fn})
}

// Run executes tasks until ctx is canceled or Stop is called.
func (s *Scheduler) Run(ctx context.Context) error {
	start := s.now()
	for _, t := range s.tasks {
		t.next = start
		s.logger.Debug("scheduled task", "task", t.name, "delay", t.delay)
	}
	if len(s.tasks) == 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		}
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		due := s.earliest()
		timer.Reset(max(due.next.Sub(s.now()), 0))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-timer.C:
			s.execute(due)
			due.next = s.now().Add(due.delay)
		}
	}
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.done)
}

// earliest returns the task due soonest; ties go to the earlier registration.
func (s *Scheduler) earliest() *task {
	due := s.tasks[0]
	for _, t := range s.tasks[1:] {
		if t.next.Before(due.next) {
			due = t
		}
	}
	return due
}

func (s *Scheduler) execute(t *task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panicked", "task", t.name, "panic", r)
		}
	}()
	t.run()
}
