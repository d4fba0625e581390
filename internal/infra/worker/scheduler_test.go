package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"chutti-news/internal/usecase/pipeline"
)

type stubFetcher struct {
	err error
}

func (f *stubFetcher) Fetch(ctx context.Context, feedURL string, cutoff time.Time, limit int) ([]pipeline.FeedItem, error) {
	return nil, f.err
}

type stubClassifier struct{}

func (stubClassifier) Classify(ctx context.Context, text string) string { return "en" }

type stubTranslator struct{}

func (stubTranslator) ToTamil(ctx context.Context, text string) (pipeline.Translation, error) {
	return pipeline.Translation{Text: text, Provider: "dictionary"}, nil
}

func newScheduler(fetchErr error) *Scheduler {
	svc := pipeline.NewService(nil, &stubFetcher{err: fetchErr}, stubClassifier{}, stubTranslator{},
		[]pipeline.FeedSource{{URL: "https://example.com/feed", MaxItems: 5}}, 7)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewScheduler(svc, "30 5 * * *", time.UTC, time.Minute, logger)
}

func TestRunJobRecordsSuccess(t *testing.T) {
	s := newScheduler(nil)

	before := testutil.ToFloat64(jobRunsTotal.WithLabelValues("success"))
	s.runJob()
	after := testutil.ToFloat64(jobRunsTotal.WithLabelValues("success"))

	if after != before+1 {
		t.Errorf("success runs = %v, want %v", after, before+1)
	}
}

func TestRunJobFeedErrorStillSucceeds(t *testing.T) {
	// A failing feed is skipped inside the run, not surfaced as a job failure.
	s := newScheduler(errors.New("connection refused"))

	before := testutil.ToFloat64(jobRunsTotal.WithLabelValues("success"))
	s.runJob()
	after := testutil.ToFloat64(jobRunsTotal.WithLabelValues("success"))

	if after != before+1 {
		t.Errorf("success runs = %v, want %v", after, before+1)
	}
}

func TestSchedulerStartInvalidSchedule(t *testing.T) {
	s := newScheduler(nil)
	s.schedule = "not a schedule"

	if err := s.Start(); err == nil {
		t.Fatal("Start() should fail on an invalid schedule")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s := newScheduler(nil)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Stop()
}
