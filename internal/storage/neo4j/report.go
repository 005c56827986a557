package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/report"
)

var _ report.Sink = (*ReportRepository)(nil)

// writer is satisfied by *pkg/neo4j.Client.
type writer interface {
	ExecuteWrite(ctx context.Context, work neo4j.ManagedTransactionWork) (any, error)
}

// ReportRepository stores run reports as a graph
type ReportRepository struct {
	client writer
}

func NewReportRepository(client writer) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) Name() string {
	return "neo4j"
}

const upsertReportsQuery = `
	UNWIND $reports AS report
	MERGE (run:Run {id: report.runId})
	SET run.generatedAt = datetime({epochMillis: report.generatedAt})
	MERGE (pr:ProviderReport {runId: report.runId, provider: report.provider})
	SET pr.title = report.title
	MERGE (run)-[:INCLUDES]->(pr)
	WITH pr, report
	UNWIND report.languages AS lang
	MERGE (l:Language {name: lang.name})
	MERGE (s:LanguageStats {runId: report.runId, provider: report.provider, language: lang.name})
	SET s.found = lang.found,
	    s.processed = lang.processed,
	    s.averageSalary = lang.average,
	    s.error = lang.error
	MERGE (pr)-[:HAS_STATS]->(s)
	MERGE (s)-[:FOR_LANGUAGE]->(l)
`

// Write merges reports, so writing the same run twice is a no-op
func (r *ReportRepository) Write(ctx context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		return nil
	}
	if r.client == nil {
		return fmt.Errorf("neo4j: client is nil")
	}

	params := reportParams(reports)
	_, err := r.client.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, upsertReportsQuery, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j: upsert reports: %w", err)
	}
	return nil
}

func reportParams(reports []domain.Report) map[string]any {
	data := make([]map[string]any, 0, len(reports))
	for _, rep := range reports {
		langs := make([]map[string]any, 0, len(rep.Languages))
		for _, st := range rep.Languages {
			langs = append(langs, map[string]any{
				"name":      st.Language,
				"found":     int64(st.Found),
				"processed": int64(st.Processed),
				"average":   int64(st.Average),
				"error":     st.Error,
			})
		}

		data = append(data, map[string]any{
			"runId":       rep.RunID.String(),
			"provider":    rep.Provider,
			"title":       rep.Title,
			"generatedAt": rep.GeneratedAt.UnixMilli(),
			"languages":   langs,
		})
	}
	return map[string]any{"reports": data}
}
