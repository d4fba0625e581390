package circuitbreaker

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"
)

func TestExecutePassesThroughSuccess(t *testing.T) {
	cb := New(TranslationAPIConfig("claude"))

	result, err := cb.Execute(func() (interface{}, error) {
		return "வணக்கம்", nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if result.(string) != "வணக்கம்" {
		t.Errorf("Execute() result = %v, want வணக்கம்", result)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", cb.State())
	}
}

func TestExecutePassesThroughError(t *testing.T) {
	cb := New(SpeechAPIConfig())
	boom := errors.New("provider down")

	_, err := cb.Execute(func() (interface{}, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestBreakerTripsAfterThreshold(t *testing.T) {
	cfg := TranslationAPIConfig("google")
	cfg.MinRequests = 3
	cb := New(cfg)

	boom := errors.New("rate limited")
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}

	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v after repeated failures, want open", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) { return "never called", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Execute() with open circuit error = %v, want ErrOpenState", err)
	}
}

func TestPerProviderNames(t *testing.T) {
	if got := TranslationAPIConfig("claude").Name; got != "claude-translate" {
		t.Errorf("Name = %q, want claude-translate", got)
	}
	if got := TranslationAPIConfig("google").Name; got != "google-translate" {
		t.Errorf("Name = %q, want google-translate", got)
	}
}
