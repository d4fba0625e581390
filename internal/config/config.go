// Package config loads service configuration from an optional YAML file
// with environment variable overrides. A .env file is loaded first so
// local development does not need exported variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"chutti-news/internal/domain/entity"
)

const (
	defaultMaxItems     = 5
	defaultCutoffDays   = 7
	defaultDataDir      = "data"
	defaultHTTPAddr     = ":8080"
	defaultCronSchedule = "30 5 * * *"
	defaultTimezone     = "Asia/Kolkata"
)

// Feed is one RSS source with its per-run article limit.
type Feed struct {
	URL      string `yaml:"url"`
	MaxItems int    `yaml:"max_items"`
}

// Providers holds external API credentials. Empty values disable the
// corresponding provider and the chain falls through to the next one.
type Providers struct {
	AnthropicAPIKey string `yaml:"-"`
	AnthropicModel  string `yaml:"anthropic_model"`
	GoogleAPIKey    string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`
	OpenAIVoice     string `yaml:"openai_voice"`
}

// Podcast controls artifact naming in the data directory.
type Podcast struct {
	ScriptFileName   string `yaml:"script_file"`
	AudioFileName    string `yaml:"audio_file"`
	TimestampedNames bool   `yaml:"timestamped_names"`
}

// Config is the full service configuration shared by the API server,
// the worker and the one-shot pipeline command.
type Config struct {
	Feeds          []Feed    `yaml:"feeds"`
	CutoffDays     int       `yaml:"cutoff_days"`
	DataDir        string    `yaml:"data_dir"`
	HTTPAddr       string    `yaml:"http_addr"`
	CronSchedule   string    `yaml:"cron_schedule"`
	Timezone       string    `yaml:"timezone"`
	EnhanceContent bool      `yaml:"enhance_content"`
	Providers      Providers `yaml:"providers"`
	Podcast        Podcast   `yaml:"podcast"`
}

// defaultFeeds mirrors the sources the service launched with. A config
// file replaces the whole list.
func defaultFeeds() []Feed {
	return []Feed{
		{URL: "https://www.thehindu.com/news/national/feeder/default.rss", MaxItems: defaultMaxItems},
		{URL: "https://timesofindia.indiatimes.com/rssfeeds/4719148.cms", MaxItems: defaultMaxItems},
		{URL: "https://tamil.oneindia.com/rss/tamil-news.xml", MaxItems: defaultMaxItems},
	}
}

// Load builds the configuration. Order of precedence, lowest first:
// built-in defaults, the YAML file at path (skipped when absent),
// then environment variables. Credentials come from the environment only.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	cfg := &Config{
		Feeds:          defaultFeeds(),
		CutoffDays:     defaultCutoffDays,
		DataDir:        defaultDataDir,
		HTTPAddr:       defaultHTTPAddr,
		CronSchedule:   defaultCronSchedule,
		Timezone:       defaultTimezone,
		EnhanceContent: true,
		Podcast: Podcast{
			ScriptFileName: "podcast_script.txt",
			AudioFileName:  "podcast.mp3",
		},
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	for i := range cfg.Feeds {
		if cfg.Feeds[i].MaxItems == 0 {
			cfg.Feeds[i].MaxItems = defaultMaxItems
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DataDir = GetEnvString("DATA_DIR", c.DataDir)
	c.HTTPAddr = GetEnvString("HTTP_ADDR", c.HTTPAddr)
	c.CutoffDays = GetEnvInt("CUTOFF_DAYS", c.CutoffDays)
	c.CronSchedule = GetEnvString("CRON_SCHEDULE", c.CronSchedule)
	c.Timezone = GetEnvString("TZ_NAME", c.Timezone)
	c.EnhanceContent = GetEnvBool("ENHANCE_CONTENT", c.EnhanceContent)

	c.Providers.AnthropicAPIKey = GetEnvString("ANTHROPIC_API_KEY", c.Providers.AnthropicAPIKey)
	c.Providers.AnthropicModel = GetEnvString("ANTHROPIC_MODEL", c.Providers.AnthropicModel)
	c.Providers.GoogleAPIKey = GetEnvString("GOOGLE_TRANSLATE_API_KEY", c.Providers.GoogleAPIKey)
	c.Providers.OpenAIAPIKey = GetEnvString("OPENAI_API_KEY", c.Providers.OpenAIAPIKey)
	c.Providers.OpenAIVoice = GetEnvString("OPENAI_TTS_VOICE", c.Providers.OpenAIVoice)

	c.Podcast.ScriptFileName = GetEnvString("PODCAST_SCRIPT_FILE", c.Podcast.ScriptFileName)
	c.Podcast.AudioFileName = GetEnvString("PODCAST_AUDIO_FILE", c.Podcast.AudioFileName)
	c.Podcast.TimestampedNames = GetEnvBool("PODCAST_TIMESTAMPED_NAMES", c.Podcast.TimestampedNames)
}

// Validate checks the fields that would otherwise fail at an awkward
// moment, like the first scheduled run at dawn.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}
	for i, f := range c.Feeds {
		if err := entity.ValidateFeedURL(f.URL); err != nil {
			return fmt.Errorf("feed %d: %w", i, err)
		}
		if f.MaxItems < 0 {
			return fmt.Errorf("feed %d: max_items cannot be negative", i)
		}
	}
	if c.CutoffDays < 0 {
		return fmt.Errorf("cutoff_days cannot be negative")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if err := ValidateCronSchedule(c.CronSchedule); err != nil {
		return err
	}
	return ValidateTimezone(c.Timezone)
}

// Location resolves the configured timezone. Validate has already
// checked the name, so failures here fall back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
