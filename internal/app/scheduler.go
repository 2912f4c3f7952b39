package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/docspot/internal/service"
	"go.uber.org/zap"
)

// StatsSource то, что планировщик периодически пишет в лог
type StatsSource interface {
	CountsView() service.Counts
}

// SessionCounter количество открытых сессий
type SessionCounter interface {
	Count() int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	stats    StatsSource
	sessions SessionCounter
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(stats StatsSource, sessions SessionCounter, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		stats:    stats,
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))

	go s.runStatsTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runStatsTask периодически пишет в лог сводку по заявкам
func (s *Scheduler) runStatsTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reportStats()
		case <-s.stopChan:
			s.logger.Info("Stats task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Stats task cancelled")
			return
		}
	}
}

func (s *Scheduler) reportStats() {
	counts := s.stats.CountsView()
	s.logger.Info("Appointment stats",
		zap.Int("total", counts.Total),
		zap.Int("pending", counts.Pending),
		zap.Int("approved", counts.Approved),
		zap.Int("rejected", counts.Rejected),
		zap.Int("open_sessions", s.sessions.Count()),
	)
}
