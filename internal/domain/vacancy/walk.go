package vacancy

import (
	"context"
	"fmt"
)

// Page is one raw page of provider results
type Page[T any] struct {
	Items []T
	// Last is set when the provider itself says no further page exists.
	Last bool
}

// FetchFunc fetches the page with the given zero-based index
type FetchFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// Walk requests pages 0, 1, 2... and passes each one to visit. It stops after a page
// shorter than pageSize (an empty page included), after a page marked Last, or on
// the first fetch error, which is returned. It reports how many pages were visited.
func Walk[T any](ctx context.Context, pageSize int, fetch FetchFunc[T], visit func(page int, p Page[T])) (int, error) {
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return page, err
		}

		p, err := fetch(ctx, page)
		if err != nil {
			return page, fmt.Errorf("page %d: %w", page, err)
		}

		visit(page, p)

		if len(p.Items) == 0 || len(p.Items) < pageSize || p.Last {
			return page + 1, nil
		}
	}
}
