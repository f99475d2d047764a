// Package scheduler runs named background jobs on fixed intervals.
package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Job is one periodic task.
type Job struct {
	Name     string
	Interval time.Duration
	// RunOnStart runs the job once before the first tick.
	RunOnStart bool
	Run        func(ctx context.Context) error
}

// Scheduler runs each job on its own ticker. Runs of one job never overlap;
// different jobs run concurrently.
type Scheduler struct {
	log  logrus.FieldLogger
	jobs []Job
	wg   sync.WaitGroup
}

// New creates an empty Scheduler.
func New(log logrus.FieldLogger) *Scheduler {
	return &Scheduler{log: log}
}

// Add registers a job. It must be called before Start.
func (s *Scheduler) Add(j Job) error {
	if j.Name == "" || j.Run == nil {
		return fmt.Errorf("scheduler: job needs a name and a run func")
	}
	if j.Interval <= 0 {
		return fmt.Errorf("scheduler: job %s: interval must be positive, got %s", j.Name, j.Interval)
	}
	s.jobs = append(s.jobs, j)
	return nil
}

// Start launches every job and returns immediately. Jobs stop when ctx is
// cancelled; Wait blocks until they have.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
	s.log.WithField("jobs", len(s.jobs)).Info("scheduler started")
}

// Wait blocks until every job loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	log := s.log.WithField("job", j.Name)
	if j.RunOnStart {
		s.runOnce(ctx, j, log)
	}

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("job stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx, j, log)
		}
	}
}

// runOnce executes one run; errors and panics are logged, never propagated.
func (s *Scheduler) runOnce(ctx context.Context, j Job, log logrus.FieldLogger) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{"panic": r, "stack": string(debug.Stack())}).Error("job panicked")
		}
	}()

	if err := j.Run(ctx); err != nil {
		log.WithError(err).WithField("duration", time.Since(start)).Error("job failed")
		return
	}
	log.WithField("duration", time.Since(start)).Debug("job finished")
}
