// Package task schedules recurring background work.
package task

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task is one schedulable unit of work.
type Task interface {
	Name() string
	Run(ctx context.Context) error
	// Spec is a cron expression, e.g. "@every 30m".
	Spec() string
	// IsStartupRun requests one immediate run when the scheduler starts.
	IsStartupRun() bool
}

type Scheduler struct {
	logger *zap.Logger
	cron   *cron.Cron
	tasks  []Task
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		logger: logger,
		cron:   cron.New(),
	}
}

func (s *Scheduler) AddTask(task Task) error {
	if _, err := s.cron.AddFunc(task.Spec(), func() {
		s.runTask(task)
	}); err != nil {
		return err
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Start launches startup runs and the cron loop. Returns immediately.
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}
	s.logger.Info("tasks starting", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		if task.IsStartupRun() {
			go s.runTask(task)
		}
	}
	s.cron.Start()
}

// Stop halts the cron loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("tasks stopped")
}

// runTask executes one task with panic isolation so a misbehaving task
// never takes down the scheduler.
func (s *Scheduler) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panic",
				zap.String("name", task.Name()),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()

	s.logger.Info("task running", zap.String("name", task.Name()))
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.Error(err))
	}
}
