// Package ollama is a not-yet-implemented augmentation backend.
package ollama

import (
	"context"

	"go.uber.org/zap"
)

type Client struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{logger: logger}
}

func (c *Client) Name() string {
	return "ollama"
}

func (c *Client) Summarize(ctx context.Context, content string, targetLanguage string) string {
	c.logger.Debug("ollama backend not implemented, returning empty summary")
	return ""
}

func (c *Client) ExtractTags(ctx context.Context, content string) []string {
	c.logger.Debug("ollama backend not implemented, returning no tags")
	return nil
}

func (c *Client) DigestMany(ctx context.Context, contents []string) string {
	c.logger.Debug("ollama backend not implemented, returning empty digest")
	return ""
}
