package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config:     cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

func (c *Client) Name() string {
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) generate(ctx context.Context, system string, user string) (string, error) {
	body, err := sonic.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", errors.Wrap(err, "openai: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "openai: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "openai: call api")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "openai: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("openai: api error %d: %s", resp.StatusCode, string(raw))
	}

	var out chatResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, "openai: decode response")
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *Client) Summarize(ctx context.Context, content string, targetLanguage string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	system := fmt.Sprintf("Summarize the user's note in one or two sentences. Respond in the language %q.", targetLanguage)
	out, err := c.generate(ctx, system, content)
	if err != nil {
		c.logger.Warn("openai summarize failed", zap.Error(err))
		return ""
	}
	return out
}

func (c *Client) ExtractTags(ctx context.Context, content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	system := "Suggest up to 5 short lowercase topic labels for the user's note. Reply with the labels only, comma separated, no # prefix."
	out, err := c.generate(ctx, system, content)
	if err != nil {
		c.logger.Warn("openai extract tags failed", zap.Error(err))
		return nil
	}
	var tags []string
	for _, part := range strings.FieldsFunc(out, func(r rune) bool { return r == ',' || r == '\n' }) {
		tag := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "#"))
		if tag == "" {
			continue
		}
		tags = append(tags, strings.ToLower(tag))
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

func (c *Client) DigestMany(ctx context.Context, contents []string) string {
	if len(contents) == 0 {
		return ""
	}
	system := "Write a weekly digest of the user's notes: a short overview paragraph followed by one section per theme. Use markdown headings."
	out, err := c.generate(ctx, system, strings.Join(contents, "\n\n---\n\n"))
	if err != nil {
		c.logger.Warn("openai digest failed", zap.Error(err))
		return ""
	}
	return out
}
