package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeClassifier struct{ code string }

func (f fakeClassifier) Classify(_ context.Context, _ string) string { return f.code }

type fakeProvider struct {
	name   string
	output string
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Translate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestToTamilShortCircuit(t *testing.T) {
	primary := &fakeProvider{name: "claude", output: "should not be used"}
	tr := New(fakeClassifier{code: "ta"}, primary)

	input := "இன்றைய செய்திகள்"
	result, err := tr.ToTamil(context.Background(), input)
	if err != nil {
		t.Fatalf("ToTamil() error = %v", err)
	}
	if result.Text != input {
		t.Errorf("ToTamil() = %q, want input unchanged %q", result.Text, input)
	}
	if result.Provider != "none" || !result.Verified {
		t.Errorf("short-circuit result = %+v, want provider none, verified", result)
	}
	if primary.calls != 0 {
		t.Errorf("provider called %d times on Tamil input, want 0", primary.calls)
	}
}

func TestToTamilProviderOrder(t *testing.T) {
	first := &fakeProvider{name: "claude", err: ErrNotConfigured}
	second := &fakeProvider{name: "google", output: "மொழிபெயர்ப்பு"}
	third := &fakeProvider{name: DictionaryProviderName, output: "unused"}
	tr := New(fakeClassifier{code: "en"}, first, second, third)

	result, err := tr.ToTamil(context.Background(), "some english text")
	if err != nil {
		t.Fatalf("ToTamil() error = %v", err)
	}
	if result.Provider != "google" {
		t.Errorf("Provider = %q, want google (first configured provider)", result.Provider)
	}
	if !result.Verified {
		t.Error("Verified = false for a real provider, want true")
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Errorf("calls = %d/%d/%d, want 1/1/0", first.calls, second.calls, third.calls)
	}
}

func TestToTamilProviderFailureFallsThrough(t *testing.T) {
	first := &fakeProvider{name: "claude", err: errors.New("rate limited")}
	second := &fakeProvider{name: "google", err: errors.New("quota exceeded")}
	tr := New(fakeClassifier{code: "en"}, first, second, NewDictionary())

	result, err := tr.ToTamil(context.Background(), "News Today")
	if err != nil {
		t.Fatalf("ToTamil() error = %v, want dictionary fallback to succeed", err)
	}
	if result.Provider != DictionaryProviderName {
		t.Errorf("Provider = %q, want %q", result.Provider, DictionaryProviderName)
	}
	if result.Verified {
		t.Error("Verified = true for dictionary output, want false")
	}
}

func TestToTamilCallerCancellationIsFatal(t *testing.T) {
	first := &fakeProvider{name: "claude", err: context.Canceled}
	second := &fakeProvider{name: "google", output: "should not run"}
	tr := New(fakeClassifier{code: "en"}, first, second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.ToTamil(ctx, "text")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ToTamil() error = %v, want context.Canceled", err)
	}
	if second.calls != 0 {
		t.Errorf("second provider called after cancellation, want chain abort")
	}
}

func TestToTamilProviderTimeoutFallsThrough(t *testing.T) {
	// A provider enforces its own deadline internally; its timeout must not be
	// mistaken for the caller giving up.
	first := &fakeProvider{
		name: "claude",
		err:  fmt.Errorf("claude translate failed after retries: %w", context.DeadlineExceeded),
	}
	tr := New(fakeClassifier{code: "en"}, first, NewDictionary())

	result, err := tr.ToTamil(context.Background(), "News Today")
	if err != nil {
		t.Fatalf("ToTamil() error = %v, want dictionary fallback to succeed", err)
	}
	if result.Provider != DictionaryProviderName {
		t.Errorf("Provider = %q, want %q", result.Provider, DictionaryProviderName)
	}
	if first.calls != 1 {
		t.Errorf("first provider calls = %d, want 1", first.calls)
	}
}

func TestToTamilEmptyInput(t *testing.T) {
	tr := New(fakeClassifier{code: "en"}, NewDictionary())

	for _, input := range []string{"", "<p> </p>"} {
		if _, err := tr.ToTamil(context.Background(), input); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ToTamil(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestToTamilAllProvidersExhausted(t *testing.T) {
	first := &fakeProvider{name: "claude", err: ErrNotConfigured}
	tr := New(fakeClassifier{code: "en"}, first)

	_, err := tr.ToTamil(context.Background(), "text with no fallback configured")
	if err == nil {
		t.Fatal("ToTamil() error = nil, want failure when every provider is exhausted")
	}
}

func TestDictionaryTranslate(t *testing.T) {
	d := NewDictionary()

	got, err := d.Translate(context.Background(), "News Today")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if !strings.HasPrefix(got, UnverifiedMarker) {
		t.Errorf("output %q missing unverified marker prefix", got)
	}
	if !strings.Contains(got, "செய்திகள்") {
		t.Errorf("output %q missing substitution for News", got)
	}
	if !strings.Contains(got, "இன்று") {
		t.Errorf("output %q missing substitution for Today", got)
	}
	payload := strings.TrimSpace(strings.TrimPrefix(got, UnverifiedMarker))
	for eng := range phraseTable {
		if strings.Contains(strings.ToLower(payload), strings.ToLower(eng)) {
			t.Errorf("output %q still contains table word %q", got, eng)
		}
	}
}

func TestDictionaryWholeWordCaseInsensitive(t *testing.T) {
	d := NewDictionary()

	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{"lowercase match", "today news", "செய்திகள்", "news"},
		{"uppercase match", "NEWS", "செய்திகள்", "NEWS"},
		{"partial word untouched", "newsworthy item", "newsworthy", "செய்திகள்"},
		{"unknown words preserved", "Cabinet meets Today", "Cabinet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Translate(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("Translate(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("Translate(%q) = %q, want it to not contain %q", tt.input, got, tt.excludes)
			}
		})
	}
}

func TestClaudeNotConfigured(t *testing.T) {
	c := NewClaude(DefaultClaudeConfig(""))
	if _, err := c.Translate(context.Background(), "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Translate() error = %v, want ErrNotConfigured", err)
	}
}

func TestGoogleNotConfigured(t *testing.T) {
	g := NewGoogle(DefaultGoogleConfig(""))
	if _, err := g.Translate(context.Background(), "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Translate() error = %v, want ErrNotConfigured", err)
	}
}
