package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/report"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

const statsToolName = "language_salary_stats"

// Collector runs a statistics pass over the given languages and providers
type Collector interface {
	CollectFrom(ctx context.Context, languages []string, providers []string) ([]domain.Report, error)
}

// StatsParams defines the arguments for the language_salary_stats tool
type StatsParams struct {
	Languages []string `json:"languages,omitempty" jsonschema:"Programming languages to search for; defaults to the configured list"`
	Providers []string `json:"providers,omitempty" jsonschema:"Provider names (headhunter, superjob); defaults to all"`
	Export    bool     `json:"export,omitempty" jsonschema:"Also write the reports to the configured sinks"`
}

// StatsResult is the structured output of language_salary_stats
type StatsResult struct {
	RunID       string         `json:"run_id"`
	Reports     []ProviderView `json:"reports"`
	FailedSinks int            `json:"failed_sinks,omitempty"`
}

// ProviderView is one provider report as returned to MCP clients
type ProviderView struct {
	Provider    string                 `json:"provider"`
	Title       string                 `json:"title"`
	GeneratedAt string                 `json:"generated_at"`
	Languages   []domain.LanguageStats `json:"languages"`
}

func newStatsResult(reports []domain.Report) StatsResult {
	res := StatsResult{Reports: make([]ProviderView, 0, len(reports))}
	for _, r := range reports {
		res.RunID = r.RunID.String()
		res.Reports = append(res.Reports, ProviderView{
			Provider:    r.Provider,
			Title:       r.Title,
			GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
			Languages:   r.Languages,
		})
	}
	return res
}

type statsTool struct {
	collector Collector
	languages []string
	sinks     []report.Sink
	logger    *logging.Logger
}

// WithLanguageStats registers the language_salary_stats tool
func WithLanguageStats(collector Collector, defaultLanguages []string, sinks ...report.Sink) Option {
	return func(reg *registry) {
		handler := statsTool{
			collector: collector,
			languages: defaultLanguages,
			sinks:     sinks,
			logger:    reg.logger,
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        statsToolName,
			Description: "Count vacancies and average salary estimates per programming language on HeadHunter and SuperJob",
		}, handler.handle)
		reg.add(statsToolName)
	}
}

func (t statsTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params StatsParams) (*sdkmcp.CallToolResult, StatsResult, error) {
	if t.collector == nil {
		return nil, StatsResult{}, fmt.Errorf("statistics service not configured")
	}

	languages := params.Languages
	if len(languages) == 0 {
		languages = t.languages
	}
	if len(languages) == 0 {
		return nil, StatsResult{}, fmt.Errorf("no languages requested")
	}

	t.logger.Info("language_salary_stats request",
		"languages", languages,
		"providers", params.Providers,
		"export", params.Export,
	)

	reports, err := t.collector.CollectFrom(ctx, languages, params.Providers)
	if err != nil {
		t.logger.Error("language_salary_stats failed", "err", err)
		return nil, StatsResult{}, fmt.Errorf("collect statistics: %w", err)
	}

	result := newStatsResult(reports)
	if params.Export {
		result.FailedSinks = report.Publish(ctx, t.logger, t.sinks, reports)
	}

	return textResult(formatReports(reports)), result, nil
}

func formatReports(reports []domain.Report) string {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s\n", r.Provider, r.Title)
		for _, st := range r.Languages {
			fmt.Fprintf(&b, "- %s: found %s, processed %s, average salary %s",
				st.Language,
				humanize.Comma(int64(st.Found)),
				humanize.Comma(int64(st.Processed)),
				humanize.Comma(int64(st.Average)),
			)
			if st.Error != "" {
				fmt.Fprintf(&b, " (incomplete: %s)", st.Error)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
