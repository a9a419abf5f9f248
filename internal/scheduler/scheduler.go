// Package scheduler runs the nightly reporting jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/config"
	"github.com/nirbani/dairy/internal/repository/sheets"
	"github.com/nirbani/dairy/internal/service/reporting"
	"github.com/nirbani/dairy/pkg/clients/whatsapp"
)

// Scheduler sends the owner a daily WhatsApp digest and mirrors the day's
// totals into the configured spreadsheet.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	messenger    whatsapp.Client
	exporter     sheets.Exporter
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a scheduler instance. The cron runs in the configured
// timezone so "0 20 * * *" means eight in the evening at the dairy, not UTC.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, messenger whatsapp.Client, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = sheets.NopExporter{}
	}

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		messenger:    messenger,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the daily digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendDailyDigest)
	if err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendDailyDigest() {
	s.logger.Info("generating daily digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := s.reportingSvc.DailyReport(ctx, "")
	if err != nil {
		s.logger.Error("failed to build daily report", zap.Error(err))
		return
	}

	if err := s.exporter.AppendDailySummary(ctx, report); err != nil {
		s.logger.Error("failed to export daily summary", zap.Error(err))
	}

	// Month-to-date profitability, one snapshot row per day.
	monthStart := report.Date[:8] + "01"
	profit, err := s.reportingSvc.ProfitReport(ctx, monthStart, report.Date)
	if err != nil {
		s.logger.Error("failed to build profit report", zap.Error(err))
	} else if err := s.exporter.AppendProfitSnapshot(ctx, profit); err != nil {
		s.logger.Error("failed to export profit snapshot", zap.Error(err))
	}

	if s.messenger == nil || !s.cfg.WhatsApp.Enabled() {
		return
	}

	digest, err := s.reportingSvc.FormatDailySummary(ctx, report.Date)
	if err != nil {
		s.logger.Error("failed to format daily digest", zap.Error(err))
		return
	}

	if err := s.messenger.SendText(ctx, s.cfg.WhatsApp.OwnerNumber, digest); err != nil {
		s.logger.Error("failed to send daily digest", zap.Error(err))
		return
	}
	s.logger.Info("daily digest sent")
}
