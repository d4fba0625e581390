package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"

	"chutti-news/internal/usecase/pipeline"
)

var (
	jobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_job_runs_total",
		Help: "Total scheduled pipeline runs by status",
	}, []string{"status"})

	jobDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "worker_job_duration_seconds",
		Help:    "Duration of scheduled pipeline runs in seconds",
		Buckets: []float64{1, 5, 30, 60, 300, 900},
	})

	jobLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "worker_job_last_success_timestamp",
		Help: "Unix timestamp of the last successful scheduled run",
	})
)

// Scheduler runs the pipeline on a cron schedule in a fixed timezone.
type Scheduler struct {
	service    *pipeline.Service
	schedule   string
	location   *time.Location
	jobTimeout time.Duration
	logger     *slog.Logger
	cron       *cron.Cron
}

func NewScheduler(service *pipeline.Service, schedule string, location *time.Location, jobTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		service:    service,
		schedule:   schedule,
		location:   location,
		jobTimeout: jobTimeout,
		logger:     logger,
	}
}

// Start registers the cron entry and begins scheduling. It does not block.
func (s *Scheduler) Start() error {
	s.cron = cron.New(cron.WithLocation(s.location))
	if _, err := s.cron.AddFunc(s.schedule, s.runJob); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started",
		slog.String("schedule", s.schedule),
		slog.String("timezone", s.location.String()),
	)
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runJob() {
	start := time.Now()
	s.logger.Info("scheduled pipeline run started")

	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	stats, err := s.service.Run(ctx)
	duration := time.Since(start)
	jobDurationSeconds.Observe(duration.Seconds())

	if err != nil {
		jobRunsTotal.WithLabelValues("failure").Inc()
		s.logger.Error("scheduled pipeline run failed",
			slog.Any("error", err),
			slog.Duration("duration", duration),
		)
		return
	}

	jobRunsTotal.WithLabelValues("success").Inc()
	jobLastSuccessTimestamp.SetToCurrentTime()
	s.logger.Info("scheduled pipeline run finished",
		slog.Int("fetched", stats.Fetched),
		slog.Int("stored", stats.Stored),
		slog.Int("translated", stats.Translated),
		slog.Int("feed_errors", stats.FeedErrors),
		slog.Duration("duration", duration),
	)
}
