package podcast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/observability/metrics"
	"chutti-news/internal/repository"

	"github.com/google/uuid"
)

// ErrNoApprovedArticles indicates there is nothing to compose a podcast from.
var ErrNoApprovedArticles = errors.New("no approved articles found")

// AudioResult describes the audio artifact produced by a synthesizer.
type AudioResult struct {
	Path        string
	Provider    string
	Placeholder bool
}

// Synthesizer writes audio for a script to path, degrading to a placeholder
// artifact rather than failing on provider errors.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, path string) (AudioResult, error)
}

// Config controls where podcast artifacts are written.
type Config struct {
	DataDir          string
	ScriptFileName   string
	AudioFileName    string
	TimestampedNames bool
}

// GenerateResult is the outcome of one podcast generation.
type GenerateResult struct {
	Script      string
	ScriptFile  string
	AudioFile   string
	Provider    string
	Placeholder bool
	Articles    int
}

// Service generates podcasts from the approved article set.
type Service struct {
	Repo   repository.ArticleRepository
	Synth  Synthesizer
	Config Config
}

// NewService creates a podcast Service.
func NewService(repo repository.ArticleRepository, synth Synthesizer, config Config) *Service {
	return &Service{Repo: repo, Synth: synth, Config: config}
}

// Generate composes a script from the approved articles, persists it, and
// synthesizes audio. Returns ErrNoApprovedArticles when nothing is approved.
func (s *Service) Generate(ctx context.Context) (*GenerateResult, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	approved := make([]*entity.Article, 0)
	for _, a := range articles {
		if a.Approved {
			approved = append(approved, a)
		}
	}
	if len(approved) == 0 {
		return nil, ErrNoApprovedArticles
	}

	script := ComposeScript(approved)
	scriptPath, audioPath := s.artifactPaths()

	if err := os.MkdirAll(filepath.Dir(scriptPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		return nil, fmt.Errorf("write podcast script: %w", err)
	}

	audio, err := s.Synth.Synthesize(ctx, script, audioPath)
	if err != nil {
		return nil, fmt.Errorf("synthesize podcast audio: %w", err)
	}

	metrics.RecordPodcastGenerated(audio.Placeholder)
	slog.Info("podcast generated",
		slog.Int("articles", len(approved)),
		slog.String("script_file", scriptPath),
		slog.String("audio_file", audio.Path),
		slog.String("provider", audio.Provider),
		slog.Bool("placeholder", audio.Placeholder))

	return &GenerateResult{
		Script:      script,
		ScriptFile:  scriptPath,
		AudioFile:   audio.Path,
		Provider:    audio.Provider,
		Placeholder: audio.Placeholder,
		Articles:    len(approved),
	}, nil
}

// artifactPaths resolves the script and audio file paths, optionally using
// collision-free timestamped names.
func (s *Service) artifactPaths() (string, string) {
	scriptName := s.Config.ScriptFileName
	audioName := s.Config.AudioFileName

	if s.Config.TimestampedNames {
		stamp := time.Now().Format("20060102-150405")
		suffix := strings.Split(uuid.NewString(), "-")[0]
		scriptName = fmt.Sprintf("podcast_%s_%s.txt", stamp, suffix)
		audioName = fmt.Sprintf("podcast_%s_%s.mp3", stamp, suffix)
	}

	return filepath.Join(s.Config.DataDir, scriptName), filepath.Join(s.Config.DataDir, audioName)
}
