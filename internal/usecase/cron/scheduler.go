// Package cron runs backup jobs on preset schedules.
package cron

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/tsijukebox/jukebox-backup/internal/domain"
)

var (
	ErrJobRunning  = errors.New("job is running")
	ErrJobNotFound = errors.New("job not found")
)

const (
	defaultTick    = time.Minute
	defaultMaxJobs = 1
)

// Job is the work run on every tick a schedule is due.
type Job func(ctx context.Context) error

// Scheduler fires registered jobs when their next run time passes.
type Scheduler struct {
	mu       sync.RWMutex
	jobs     map[string]*job
	slots    chan struct{}
	maxJobs  int
	tick     time.Duration
	started  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
	inflight sync.WaitGroup
	log      zerowrap.Logger
	nowFn    func() time.Time
}

type job struct {
	id       string
	name     string
	schedule domain.BackupSchedule
	run      Job
	lastRun  time.Time
	nextRun  time.Time
	running  atomic.Bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMaxJobs bounds how many jobs may run at the same time.
func WithMaxJobs(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxJobs = n
		}
	}
}

// WithTick sets how often due jobs are checked.
func WithTick(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.tick = d
		}
	}
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(log zerowrap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		jobs:    make(map[string]*job),
		maxJobs: defaultMaxJobs,
		tick:    defaultTick,
		stopCh:  make(chan struct{}),
		log:     log,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.slots = make(chan struct{}, s.maxJobs)
	return s
}

// Add registers a job under id.
func (s *Scheduler) Add(id, name string, sched domain.BackupSchedule, run Job) error {
	if id == "" {
		return fmt.Errorf("%w: job id is required", domain.ErrInvalidArgument)
	}
	if run == nil {
		return fmt.Errorf("%w: job %q has no function", domain.ErrInvalidArgument, id)
	}

	next, err := sched.NextAfter(s.nowFn())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("%w: job %q already registered", domain.ErrInvalidArgument, id)
	}
	s.jobs[id] = &job{id: id, name: name, schedule: sched, run: run, nextRun: next}
	return nil
}

// Remove unregisters a job. A job that is currently running cannot be removed.
func (s *Scheduler) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if j.running.Load() {
		return fmt.Errorf("%w: %s", ErrJobRunning, id)
	}
	delete(s.jobs, id)
	return nil
}

// Start runs the scheduler loop in the background.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.claim(ctx) {
		return
	}
	go s.loop(ctx)
}

// Run runs the scheduler loop until ctx is done or Stop is called, then
// waits for in-flight jobs to return.
func (s *Scheduler) Run(ctx context.Context) {
	if !s.claim(ctx) {
		return
	}
	s.loop(ctx)
}

func (s *Scheduler) claim(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-s.stopCh:
		return false
	default:
	}
	return s.started.CompareAndSwap(false, true)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.started.Store(false)
	defer s.inflight.Wait()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.fireDue(ctx)
		}
	}
}

// Stop ends the scheduler loop. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// List returns the registered jobs ordered by next run time.
func (s *Scheduler) List() []domain.ScheduledJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.ScheduledJob, 0, len(s.jobs))
	for _, j := range s.jobs {
		entries = append(entries, domain.ScheduledJob{
			ID:       j.id,
			Name:     j.name,
			Schedule: j.schedule,
			LastRun:  j.lastRun,
			NextRun:  j.nextRun,
			Running:  j.running.Load(),
		})
	}
	sort.Slice(entries, func(a, b int) bool {
		if !entries[a].NextRun.Equal(entries[b].NextRun) {
			return entries[a].NextRun.Before(entries[b].NextRun)
		}
		return entries[a].ID < entries[b].ID
	})
	return entries
}

// RunNow runs a registered job synchronously, outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, id string) error {
	s.mu.RLock()
	j := s.jobs[id]
	s.mu.RUnlock()
	if j == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return s.execute(ctx, j)
}

func (s *Scheduler) fireDue(ctx context.Context) {
	now := s.nowFn()

	s.mu.RLock()
	due := make([]*job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if !now.Before(j.nextRun) && j.running.CompareAndSwap(false, true) {
			due = append(due, j)
		}
	}
	s.mu.RUnlock()

	for _, j := range due {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()

			select {
			case s.slots <- struct{}{}:
			case <-ctx.Done():
				j.running.Store(false)
				return
			}
			defer func() { <-s.slots }()

			if err := s.runClaimed(ctx, j); err != nil {
				s.log.Warn().Err(err).Str(zerowrap.FieldEntityID, j.id).Msg("scheduled job failed")
			}
		}()
	}
}

func (s *Scheduler) execute(ctx context.Context, j *job) error {
	if !j.running.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %s", ErrJobRunning, j.id)
	}
	return s.runClaimed(ctx, j)
}

// runClaimed runs a job whose running flag the caller already set.
func (s *Scheduler) runClaimed(ctx context.Context, j *job) (err error) {
	defer j.running.Store(false)

	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, s.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "cron",
		zerowrap.FieldEntityID: j.id,
	})
	log := zerowrap.FromCtx(ctx)

	started := s.nowFn()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.id, r)
		}

		finished := s.nowFn()
		next, nextErr := j.schedule.NextAfter(finished)
		if nextErr != nil && err == nil {
			err = nextErr
		}

		s.mu.Lock()
		j.lastRun = started
		j.nextRun = next
		s.mu.Unlock()

		log.Info().
			Dur(zerowrap.FieldDuration, finished.Sub(started)).
			Time("next_run", next).
			Bool("ok", err == nil).
			Msg("scheduled job finished")
	}()

	log.Info().Str("name", j.name).Msg("scheduled job started")
	return j.run(ctx)
}
