package memos

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FetchAll retrieves up to limit memos and returns them newest first by
// creation time. Pages are requested with the fixed page size until the
// next-page token is absent, the limit is reached, or a short page
// signals the end of the collection. A single pass is all-or-nothing:
// any page failure aborts with no partial result and nothing is retried.
func (c *Client) FetchAll(ctx context.Context, limit int) ([]Memo, error) {
	if err := c.validateBaseURL(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errors.New("memos: record limit must be positive")
	}

	var all []Memo
	token := ""
	for {
		page, err := c.ListMemos(ctx, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Memos...)

		c.logger.Debug("memos page fetched",
			zap.Int("page", len(page.Memos)),
			zap.Int("accumulated", len(all)),
			zap.Bool("more", page.NextPageToken != ""))

		if page.NextPageToken == "" || len(all) >= limit || len(page.Memos) < PageSize {
			break
		}
		token = page.NextPageToken
	}

	if len(all) > limit {
		all = all[:limit]
	}

	// The remote's per-page ordering is not trusted; sort the full
	// accumulated set for a consistent total order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt().After(all[j].CreatedAt())
	})
	return all, nil
}
