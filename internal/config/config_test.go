package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Feeds) != 3 {
		t.Errorf("feeds = %d, want 3 defaults", len(cfg.Feeds))
	}
	for _, f := range cfg.Feeds {
		if f.MaxItems != defaultMaxItems {
			t.Errorf("feed %s max_items = %d, want %d", f.URL, f.MaxItems, defaultMaxItems)
		}
	}
	if cfg.CutoffDays != defaultCutoffDays {
		t.Errorf("cutoff_days = %d, want %d", cfg.CutoffDays, defaultCutoffDays)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Errorf("http_addr = %q, want %q", cfg.HTTPAddr, defaultHTTPAddr)
	}
	if !cfg.EnhanceContent {
		t.Error("enhance_content should default to true")
	}
	if cfg.Podcast.ScriptFileName != "podcast_script.txt" {
		t.Errorf("script_file = %q", cfg.Podcast.ScriptFileName)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
feeds:
  - url: https://example.com/tamil.xml
    max_items: 3
  - url: https://example.com/national.rss
cutoff_days: 2
data_dir: /var/lib/chutti
cron_schedule: "0 6 * * *"
podcast:
  timestamped_names: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Feeds) != 2 {
		t.Fatalf("feeds = %d, want 2", len(cfg.Feeds))
	}
	if cfg.Feeds[0].MaxItems != 3 {
		t.Errorf("feed 0 max_items = %d, want 3", cfg.Feeds[0].MaxItems)
	}
	if cfg.Feeds[1].MaxItems != defaultMaxItems {
		t.Errorf("feed 1 max_items = %d, want default %d", cfg.Feeds[1].MaxItems, defaultMaxItems)
	}
	if cfg.CutoffDays != 2 {
		t.Errorf("cutoff_days = %d, want 2", cfg.CutoffDays)
	}
	if cfg.DataDir != "/var/lib/chutti" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.CronSchedule != "0 6 * * *" {
		t.Errorf("cron_schedule = %q", cfg.CronSchedule)
	}
	if !cfg.Podcast.TimestampedNames {
		t.Error("timestamped_names should be true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Feeds) != 3 {
		t.Errorf("feeds = %d, want 3 defaults", len(cfg.Feeds))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/chutti-test")
	t.Setenv("CUTOFF_DAYS", "1")
	t.Setenv("ENHANCE_CONTENT", "false")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("OPENAI_TTS_VOICE", "nova")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/chutti-test" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.CutoffDays != 1 {
		t.Errorf("cutoff_days = %d, want 1", cfg.CutoffDays)
	}
	if cfg.EnhanceContent {
		t.Error("enhance_content should be overridden to false")
	}
	if cfg.Providers.AnthropicAPIKey != "test-key" {
		t.Errorf("anthropic key = %q", cfg.Providers.AnthropicAPIKey)
	}
	if cfg.Providers.OpenAIVoice != "nova" {
		t.Errorf("openai voice = %q", cfg.Providers.OpenAIVoice)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("feeds: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Feeds:        []Feed{{URL: "https://example.com/feed", MaxItems: 5}},
			CutoffDays:   7,
			DataDir:      "data",
			CronSchedule: "30 5 * * *",
			Timezone:     "Asia/Kolkata",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "no feeds",
			mutate:  func(c *Config) { c.Feeds = nil },
			wantErr: "at least one feed",
		},
		{
			name:    "feed without url",
			mutate:  func(c *Config) { c.Feeds[0].URL = "" },
			wantErr: "URL is required",
		},
		{
			name:    "feed with non-http url",
			mutate:  func(c *Config) { c.Feeds[0].URL = "ftp://example.com/feed" },
			wantErr: "http or https",
		},
		{
			name:    "negative cutoff",
			mutate:  func(c *Config) { c.CutoffDays = -1 },
			wantErr: "cutoff_days",
		},
		{
			name:    "empty data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: "data_dir",
		},
		{
			name:    "bad cron schedule",
			mutate:  func(c *Config) { c.CronSchedule = "not a schedule" },
			wantErr: "cron schedule",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: "timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Kolkata"}
	if got := cfg.Location().String(); got != "Asia/Kolkata" {
		t.Errorf("Location() = %q", got)
	}

	cfg = &Config{Timezone: "Mars/Olympus"}
	if got := cfg.Location(); got != time.UTC {
		t.Errorf("Location() = %v, want UTC fallback", got)
	}
}
