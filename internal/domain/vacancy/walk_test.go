package vacancy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pager serves canned pages and records every requested index.
type pager struct {
	pages     []Page[int]
	failAt    int
	requested []int
}

func (p *pager) fetch(_ context.Context, page int) (Page[int], error) {
	p.requested = append(p.requested, page)
	if p.failAt >= 0 && page == p.failAt {
		return Page[int]{}, errors.New("boom")
	}
	if page >= len(p.pages) {
		return Page[int]{}, nil
	}
	return p.pages[page], nil
}

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name          string
		pageSize      int
		pages         []Page[int]
		failAt        int
		wantRequested []int
		wantVisited   int
		wantItems     int
		wantErr       bool
	}{
		{
			name:          "stops on short page without another request",
			pageSize:      3,
			pages:         []Page[int]{{Items: items(3)}, {Items: items(3)}, {Items: items(2)}},
			failAt:        -1,
			wantRequested: []int{0, 1, 2},
			wantVisited:   3,
			wantItems:     8,
		},
		{
			name:          "full pages then empty page",
			pageSize:      2,
			pages:         []Page[int]{{Items: items(2)}, {Items: items(2)}},
			failAt:        -1,
			wantRequested: []int{0, 1, 2},
			wantVisited:   3,
			wantItems:     4,
		},
		{
			name:          "empty first page is still visited",
			pageSize:      100,
			pages:         []Page[int]{{}},
			failAt:        -1,
			wantRequested: []int{0},
			wantVisited:   1,
		},
		{
			name:          "provider marks last page",
			pageSize:      2,
			pages:         []Page[int]{{Items: items(2), Last: true}, {Items: items(2)}},
			failAt:        -1,
			wantRequested: []int{0},
			wantVisited:   1,
			wantItems:     2,
		},
		{
			name:          "failure keeps earlier pages",
			pageSize:      2,
			pages:         []Page[int]{{Items: items(2)}, {Items: items(2)}, {Items: items(2)}},
			failAt:        1,
			wantRequested: []int{0, 1},
			wantVisited:   1,
			wantItems:     2,
			wantErr:       true,
		},
		{
			name:          "failure on first page",
			pageSize:      2,
			failAt:        0,
			wantRequested: []int{0},
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &pager{pages: tt.pages, failAt: tt.failAt}

			visited, total := 0, 0
			var seen []int
			n, err := Walk(context.Background(), tt.pageSize, p.fetch, func(page int, pg Page[int]) {
				seen = append(seen, page)
				visited++
				total += len(pg.Items)
			})

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRequested, p.requested)
			assert.Equal(t, tt.wantVisited, visited)
			assert.Equal(t, tt.wantVisited, n)
			assert.Equal(t, tt.wantItems, total)
			for i, page := range seen {
				assert.Equal(t, i, page)
			}
		})
	}
}

func TestWalkCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &pager{failAt: -1}
	_, err := Walk(ctx, 10, p.fetch, func(int, Page[int]) {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.requested)
}
