package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/naveenspark/folio/pkg/domain"
)

// listPage fetches one page of a collection. The API names the array
// either "items" or after the resource (key), next to a "total" count.
func listPage[T any](ctx context.Context, c *Client, path, key string, page, limit int, params url.Values) (*domain.Page[T], error) {
	if params == nil {
		params = url.Values{}
	}
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var raw map[string]json.RawMessage
	if err := c.get(ctx, path+"?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	itemsRaw, ok := raw["items"]
	if !ok {
		itemsRaw = raw[key]
	}
	var items []T
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	total := len(items)
	if totalRaw, ok := raw["total"]; ok {
		var n *int
		if err := json.Unmarshal(totalRaw, &n); err != nil {
			return nil, fmt.Errorf("decode total: %w", err)
		}
		if n != nil {
			total = *n
		}
	}

	// A page never holds more than limit rows.
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return &domain.Page[T]{Items: items, Total: total, Page: page, PageSize: limit}, nil
}
