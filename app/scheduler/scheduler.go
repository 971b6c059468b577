package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"DoceGestor/app/config"
	"DoceGestor/app/services"
)

// Scheduler broadcasts reminders for production runs scheduled for the
// current day.
type Scheduler struct {
	cron     *cron.Cron
	schedule *services.ScheduleService
	events   services.Publisher
	cfg      config.ScheduleConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ScheduleConfig, schedule *services.ScheduleService, events services.Publisher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local",
			zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		schedule: schedule,
		events:   events,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the daily reminder job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("cron", s.cfg.ReminderCron))

	if _, err := s.cron.AddFunc(s.cfg.ReminderCron, s.remindDueToday); err != nil {
		s.logger.Error("failed to schedule daily reminder", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) remindDueToday() {
	items, err := s.schedule.GetDueOn(time.Now())
	if err != nil {
		s.logger.Error("failed to load schedule items due today", zap.Error(err))
		return
	}
	if len(items) == 0 {
		return
	}

	s.logger.Info("production runs due today", zap.Int("count", len(items)))
	for _, item := range items {
		name := ""
		if item.Recipe != nil {
			name = item.Recipe.Name
		}
		s.events.Publish(services.EventScheduleReminder, map[string]interface{}{
			"schedule_id": item.ID,
			"recipe":      name,
			"batches":     item.Batches,
			"time_of_day": item.TimeOfDay,
		})
	}
}
