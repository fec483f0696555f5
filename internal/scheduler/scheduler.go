package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-payops/internal/cashfloat"
)

// Scheduler runs the periodic cash float reset.
type Scheduler struct {
	cron        *cron.Cron
	cashService cashfloat.Service
	cronSpec    string
	logger      *zap.Logger
}

func New(cashService cashfloat.Service, cronSpec string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:        cron.New(),
		cashService: cashService,
		cronSpec:    cronSpec,
		logger:      logger.Named("scheduler"),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronSpec, s.runDailyReset); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("cron", s.cronSpec))
	return nil
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyReset() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.cashService.RunScheduledReset(ctx); err != nil {
		s.logger.Error("scheduled cash float reset failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled cash float reset checked")
}
