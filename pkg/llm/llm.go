// Package llm exposes the optional language-model augmentation
// capabilities: summaries, tag suggestions and multi-memo digests.
//
// Backends degrade to empty output on internal failure instead of
// returning errors, so callers treat a missing result as a legitimate
// non-fatal case.
package llm

import (
	"context"

	"github.com/haierkeys/memos-mirror/pkg/llm/gemini"
	"github.com/haierkeys/memos-mirror/pkg/llm/ollama"
	"github.com/haierkeys/memos-mirror/pkg/llm/openai"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Backend        string `yaml:"backend" default:"openai"`
	APIKey         string `yaml:"api-key"`
	Model          string `yaml:"model" default:"gpt-4o-mini"`
	BaseURL        string `yaml:"base-url"`
	TargetLanguage string `yaml:"target-language" default:"en"`
}

// Provider is the augmentation capability set.
type Provider interface {
	Name() string
	// Summarize returns a short summary in the target language, or "".
	Summarize(ctx context.Context, content string, targetLanguage string) string
	// ExtractTags returns up to a few short topic labels, or nil.
	ExtractTags(ctx context.Context, content string) []string
	// DigestMany returns a formatted multi-section digest of the
	// given memo contents, or "".
	DigestMany(ctx context.Context, contents []string) string
}

var ErrUnknownBackend = errors.New("unknown llm backend")

// New selects a backend by the configured discriminator.
// Only openai is fully implemented; gemini and ollama are stand-ins
// that always return empty results.
func New(cfg *Config, logger *zap.Logger) (Provider, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	switch cfg.Backend {
	case "openai":
		return openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}, logger)
	case "gemini":
		return gemini.New(logger), nil
	case "ollama":
		return ollama.New(logger), nil
	}
	return nil, errors.Wrap(ErrUnknownBackend, cfg.Backend)
}
