// Package memos is the HTTP client for the remote Memos API: paginated
// memo listing and binary resource downloads.
package memos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/juju/ratelimit"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PageSize is the fixed page size for list requests.
const PageSize = 100

// Requests per second against the remote, shared by page fetches and
// resource downloads.
const requestRate = 10

var apiVersionPattern = regexp.MustCompile(`/api/v\d+$`)

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	bucket      *ratelimit.Bucket
	logger      *zap.Logger
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{},
		bucket:      ratelimit.NewBucketWithRate(requestRate, requestRate),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) validateBaseURL() error {
	if !apiVersionPattern.MatchString(c.baseURL) {
		return errors.Wrap(ErrInvalidAPIURL, c.baseURL)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	c.bucket.Wait(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "memos: build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrHostUnreachable, "%s: %v", rawURL, err)
	}
	return resp, nil
}

// ListMemos fetches one page of normal-status memos. An empty pageToken
// requests the first page.
func (c *Client) ListMemos(ctx context.Context, pageToken string) (*MemoPage, error) {
	listURL := fmt.Sprintf("%s/memos?rowStatus=NORMAL&limit=%d", c.baseURL, PageSize)
	if pageToken != "" {
		listURL += "&offset=" + url.QueryEscape(pageToken)
	}

	resp, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "memos: read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}

	// Memos is a pointer so a structurally valid body without the
	// records array is still rejected.
	var page struct {
		Memos         *[]Memo `json:"memos"`
		NextPageToken string  `json:"nextPageToken"`
	}
	if err := sonic.Unmarshal(raw, &page); err != nil {
		return nil, &FormatError{Body: string(raw), Err: err}
	}
	if page.Memos == nil {
		return nil, &FormatError{Body: string(raw), Err: errors.New("missing memos array")}
	}

	return &MemoPage{Memos: *page.Memos, NextPageToken: page.NextPageToken}, nil
}

// DownloadResource fetches one attachment's bytes. The resource-serving
// endpoint lives outside the versioned API root.
func (c *Client) DownloadResource(ctx context.Context, shortID string, filename string) ([]byte, string, error) {
	fileBase := apiVersionPattern.ReplaceAllString(c.baseURL, "")
	fileURL := fmt.Sprintf("%s/file/resources/%s/%s", fileBase, shortID, url.PathEscape(filename))

	resp, err := c.get(ctx, fileURL)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "memos: read resource")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, resp.Header.Get("Content-Type"), nil
}
