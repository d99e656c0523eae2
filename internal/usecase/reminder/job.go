// Package reminder schedules the daily "what is waiting today" check.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdrill/internal/entity"
)

const checkTimeout = 30 * time.Second

type queueBuilder interface {
	BuildDailyQueue(ctx context.Context, dailyGoal int) (*entity.DailyQueue, error)
}

// Summary is what one check found.
type Summary struct {
	Due              int
	RecentlyWrong    int
	HardFlagged      int
	New              int
	MixedReview      int
	Total            int
	EstimatedMinutes int
}

// Job runs Check once a day at a fixed UTC wall-clock time.
type Job struct {
	study     queueBuilder
	dailyGoal int
	at        string
	log       logrus.FieldLogger

	mu        sync.Mutex
	scheduler *gocron.Scheduler
	notify    func(Summary)
}

// NewJob validates at ("HH:MM") and returns a stopped job.
func NewJob(study queueBuilder, dailyGoal int, at string, logger logrus.FieldLogger) (*Job, error) {
	if dailyGoal < 1 {
		return nil, entity.ErrInvalidDailyGoal
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("reminder: invalid time %q, want HH:MM", at)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Job{study: study, dailyGoal: dailyGoal, at: at, log: logger}, nil
}

// OnCheck registers a callback invoked after every successful check.
func (j *Job) OnCheck(fn func(Summary)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.notify = fn
}

// Start schedules the job. It is a no-op when already running.
func (j *Job) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.scheduler != nil {
		return nil
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if _, err := s.Every(1).Day().At(j.at).Do(j.run); err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.StartAsync()
	j.scheduler = s

	_, next := s.NextRun()
	j.log.WithFields(logrus.Fields{"at": j.at, "next_run": next}).Info("reminder scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running check to return.
func (j *Job) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.scheduler == nil {
		return
	}
	j.scheduler.Stop()
	j.scheduler = nil
	j.log.Info("reminder stopped")
}

// Running reports whether the scheduler is active.
func (j *Job) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.scheduler != nil && j.scheduler.IsRunning()
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	if _, err := j.Check(ctx); err != nil {
		j.log.WithError(err).Warn("reminder check failed")
	}
}

// Check builds today's queue and logs what is waiting.
func (j *Job) Check(ctx context.Context) (Summary, error) {
	queue, err := j.study.BuildDailyQueue(ctx, j.dailyGoal)
	if err != nil {
		return Summary{}, fmt.Errorf("build daily queue: %w", err)
	}
	summary := Summary{
		Due:              len(queue.Due),
		RecentlyWrong:    len(queue.RecentlyWrong),
		HardFlagged:      len(queue.HardFlagged),
		New:              len(queue.New),
		MixedReview:      len(queue.MixedReview),
		Total:            queue.Total,
		EstimatedMinutes: queue.EstimatedMinutes,
	}

	entry := j.log.WithFields(logrus.Fields{
		"due":            summary.Due,
		"recently_wrong": summary.RecentlyWrong,
		"hard_flagged":   summary.HardFlagged,
		"new":            summary.New,
		"total":          summary.Total,
		"minutes":        summary.EstimatedMinutes,
	})
	if summary.Total == 0 {
		entry.Info("nothing to study today")
	} else {
		entry.Info("study session waiting")
	}

	j.mu.Lock()
	notify := j.notify
	j.mu.Unlock()
	if notify != nil {
		notify(summary)
	}
	return summary, nil
}
