package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"ideator/internal/config"
	"ideator/internal/domain/trend"
	"ideator/internal/pkg/logger"
	"ideator/internal/pkg/metrics"
)

// TrendSweeper periodically removes trend rows older than the
// configured retention window.
type TrendSweeper struct {
	repo trend.Repository
	cfg  config.TrendConfig
	log  *logger.Logger
	cron *cron.Cron
}

// NewTrendSweeper creates a new sweeper
func NewTrendSweeper(repo trend.Repository, cfg config.TrendConfig, log *logger.Logger) *TrendSweeper {
	return &TrendSweeper{repo: repo, cfg: cfg, log: log}
}

// Start schedules the sweep and begins running it
func (s *TrendSweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Trend sweeper started, schedule %q, retention %s", s.cfg.SweepSchedule, s.cfg.Retention)
	return nil
}

// Stop stops the schedule and waits for a running sweep to finish
func (s *TrendSweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep removes expired rows once. Exposed so callers can trigger it
// outside the schedule.
func (s *TrendSweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.cfg.Retention)
	removed, err := s.repo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.RecordTrendPurge(removed)
	return removed, nil
}

func (s *TrendSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.Sweep(ctx)
	if err != nil {
		s.log.ErrorWithErr(err, "Trend sweep failed")
		return
	}
	if removed > 0 {
		s.log.Infof("Trend sweep removed %d expired rows", removed)
	}
}
