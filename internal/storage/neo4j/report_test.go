package neo4j

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
)

type fakeWriter struct {
	calls int
	err   error
}

func (f *fakeWriter) ExecuteWrite(context.Context, neo4j.ManagedTransactionWork) (any, error) {
	f.calls++
	return nil, f.err
}

func TestReportParams(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	params := reportParams([]domain.Report{{
		RunID:       id,
		Provider:    "superjob",
		Title:       "SuperJob Moscow",
		GeneratedAt: at,
		Languages: []domain.LanguageStats{
			{Language: "Go", Found: 3, Processed: 2, Average: 1400.7},
		},
	}})

	reports, ok := params["reports"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, reports, 1)
	assert.Equal(t, id.String(), reports[0]["runId"])
	assert.Equal(t, at.UnixMilli(), reports[0]["generatedAt"])

	langs, ok := reports[0]["languages"].([]map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go", langs[0]["name"])
	assert.Equal(t, int64(1400), langs[0]["average"])
}

func TestWrite(t *testing.T) {
	w := &fakeWriter{}
	repo := NewReportRepository(w)
	assert.Equal(t, "neo4j", repo.Name())

	require.NoError(t, repo.Write(context.Background(), nil))
	assert.Zero(t, w.calls, "nothing to write")

	require.NoError(t, repo.Write(context.Background(), []domain.Report{{Provider: "headhunter"}}))
	assert.Equal(t, 1, w.calls)

	w.err = errors.New("unavailable")
	err := repo.Write(context.Background(), []domain.Report{{Provider: "headhunter"}})
	assert.ErrorContains(t, err, "unavailable")
}
