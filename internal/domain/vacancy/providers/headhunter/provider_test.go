package headhunter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-stats/pkg/headhunter"
)

type fakeClient struct {
	pages  []headhunter.SearchResult
	err    error
	errAt  int
	params []headhunter.SearchParams
}

func (f *fakeClient) SearchVacancies(_ context.Context, params headhunter.SearchParams) (headhunter.SearchResult, error) {
	f.params = append(f.params, params)
	if f.err != nil && params.Page == f.errAt {
		return headhunter.SearchResult{}, f.err
	}
	if params.Page >= len(f.pages) {
		return headhunter.SearchResult{}, nil
	}
	return f.pages[params.Page], nil
}

func num(v float64) *float64 { return &v }

func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		v      headhunter.Vacancy
		want   float64
		wantOK bool
	}{
		{
			name:   "rub range",
			v:      headhunter.Vacancy{Salary: &headhunter.Salary{From: num(1000), To: num(3000), Currency: "RUR"}},
			want:   2000,
			wantOK: true,
		},
		{
			name:   "rub lower only",
			v:      headhunter.Vacancy{Salary: &headhunter.Salary{From: num(1000), Currency: "RUR"}},
			want:   1200,
			wantOK: true,
		},
		{name: "no salary", v: headhunter.Vacancy{}},
		{name: "foreign currency", v: headhunter.Vacancy{Salary: &headhunter.Salary{From: num(1000), Currency: "USD"}}},
		{name: "rub without bounds", v: headhunter.Vacancy{Salary: &headhunter.Salary{Currency: "RUR"}}},
		{name: "malformed", v: headhunter.Vacancy{Malformed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Estimate(tt.v, "RUR")
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSearch(t *testing.T) {
	full := make([]headhunter.Vacancy, 2)
	client := &fakeClient{pages: []headhunter.SearchResult{
		{Found: 42, Pages: 5, Items: full},
		{Found: 42, Pages: 5, Items: []headhunter.Vacancy{
			{ID: "7", Salary: &headhunter.Salary{From: num(1000), To: num(3000), Currency: "RUR"}},
		}},
	}}

	p, err := NewProvider(client, Options{Area: 1, PageSize: 2, Title: "HeadHunter Moscow"})
	require.NoError(t, err)
	assert.Equal(t, "headhunter", p.Name())
	assert.Equal(t, "HeadHunter Moscow", p.Title())
	assert.Equal(t, vacancy.FoundReported, p.FoundPolicy())

	var batches []vacancy.Batch
	err = p.Search(context.Background(), "Go", func(b vacancy.Batch) { batches = append(batches, b) })
	require.NoError(t, err)

	require.Len(t, client.params, 2)
	for i, params := range client.params {
		assert.Equal(t, "Go", params.Text)
		assert.Equal(t, 1, params.Area)
		assert.Equal(t, 2, params.PerPage)
		assert.Equal(t, i, params.Page)
	}

	require.Len(t, batches, 2)
	assert.Equal(t, 42, batches[0].Reported)
	assert.Len(t, batches[0].Vacancies, 2)
	assert.False(t, batches[0].Vacancies[0].Estimated)

	require.Len(t, batches[1].Vacancies, 1)
	assert.Equal(t, "7", batches[1].Vacancies[0].ID)
	assert.True(t, batches[1].Vacancies[0].Estimated)
	assert.InDelta(t, 2000.0, batches[1].Vacancies[0].Estimate, 1e-9)
}

func TestSearchStopsAtReportedPageCount(t *testing.T) {
	client := &fakeClient{pages: []headhunter.SearchResult{
		{Found: 4, Pages: 2, Items: make([]headhunter.Vacancy, 2)},
		{Found: 4, Pages: 2, Items: make([]headhunter.Vacancy, 2)},
		{Found: 4, Pages: 2, Items: make([]headhunter.Vacancy, 2)},
	}}

	p, err := NewProvider(client, Options{PageSize: 2})
	require.NoError(t, err)

	err = p.Search(context.Background(), "Go", func(vacancy.Batch) {})
	require.NoError(t, err)
	assert.Len(t, client.params, 2)
}

func TestSearchFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("headhunter: API error (400): bad"), errAt: 0}

	p, err := NewProvider(client, Options{})
	require.NoError(t, err)

	called := false
	err = p.Search(context.Background(), "Go", func(vacancy.Batch) { called = true })
	assert.Error(t, err)
	assert.False(t, called)
}

func TestNewProviderRequiresClient(t *testing.T) {
	_, err := NewProvider(nil, Options{})
	assert.Error(t, err)
}
