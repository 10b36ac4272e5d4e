package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/config"
	"github.com/mbodj/frigo/internal/service/reporting"
	"github.com/mbodj/frigo/pkg/clients/notify"
)

// Scheduler manages the daily expiry-digest task.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifier     notify.Client
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The notifier may be nil when
// no webhook is configured; the digest is then only logged.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		location = time.Local
	}

	c := cron.New(cron.WithLocation(location))

	return &Scheduler{
		cron:         c,
		reportingSvc: reportingSvc,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendExpiryDigest); err != nil {
		s.logger.Error("failed to schedule expiry digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendExpiryDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	digest, err := s.reportingSvc.BuildExpiryDigest(ctx)
	if err != nil {
		s.logger.Error("failed to build expiry digest", zap.Error(err))
		return
	}

	s.logger.Info("expiry digest", zap.String("digest", digest))

	if s.notifier != nil {
		if err := s.notifier.SendText(ctx, digest); err != nil {
			s.logger.Error("failed to send expiry digest", zap.Error(err))
		}
	}

	if err := s.reportingSvc.ExportSnapshot(ctx); err != nil {
		s.logger.Error("failed to export inventory snapshot", zap.Error(err))
	}
}
