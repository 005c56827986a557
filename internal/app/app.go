package app

import (
	"context"
	"net/http"

	"github.com/honeycarbs/vacancy-stats/internal/config"
	"github.com/honeycarbs/vacancy-stats/internal/domain/stats"
	hhprovider "github.com/honeycarbs/vacancy-stats/internal/domain/vacancy/providers/headhunter"
	sjprovider "github.com/honeycarbs/vacancy-stats/internal/domain/vacancy/providers/superjob"
	"github.com/honeycarbs/vacancy-stats/internal/report"
	storage "github.com/honeycarbs/vacancy-stats/internal/storage/neo4j"
	"github.com/honeycarbs/vacancy-stats/pkg/headhunter"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
	pkgneo4j "github.com/honeycarbs/vacancy-stats/pkg/neo4j"
	"github.com/honeycarbs/vacancy-stats/pkg/sheets"
	"github.com/honeycarbs/vacancy-stats/pkg/superjob"
)

// App bundles everything an entry point needs for one process
type App struct {
	Config config.Config
	Logger *logging.Logger
	Stats  *stats.Service
	Sinks  []report.Sink
}

func provideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

func provideHeadHunterClient(cfg config.Config, httpClient *http.Client) (*headhunter.Client, error) {
	return headhunter.NewClient(headhunter.Config{
		BaseURL:           cfg.HeadHunter.BaseURL,
		UserAgent:         cfg.HeadHunter.UserAgent,
		HTTPClient:        httpClient,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
}

func provideSuperJobClient(cfg config.Config, httpClient *http.Client) (*superjob.Client, error) {
	return superjob.NewClient(superjob.Config{
		AppKey:            cfg.SuperJob.APIKey,
		BaseURL:           cfg.SuperJob.BaseURL,
		HTTPClient:        httpClient,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
}

func provideHeadHunterProvider(cfg config.Config, client *headhunter.Client) (*hhprovider.Provider, error) {
	return hhprovider.NewProvider(client, hhprovider.Options{
		Title:    cfg.HeadHunter.Title,
		Area:     cfg.HeadHunter.Area,
		Currency: cfg.HeadHunter.Currency,
		PageSize: cfg.HeadHunter.PageSize,
	})
}

func provideSuperJobProvider(cfg config.Config, client *superjob.Client) (*sjprovider.Provider, error) {
	return sjprovider.NewProvider(client, sjprovider.Options{
		Title:     cfg.SuperJob.Title,
		Town:      cfg.SuperJob.Town,
		Catalogue: cfg.SuperJob.Catalogue,
		PageSize:  cfg.SuperJob.PageSize,
	})
}

// provideStatsService keeps HeadHunter before SuperJob; reports are printed in that order.
func provideStatsService(logger *logging.Logger, observer stats.Observer, hh *hhprovider.Provider, sj *sjprovider.Provider) (*stats.Service, error) {
	return stats.NewService(
		stats.WithProviders(hh, sj),
		stats.WithLogger(logger),
		stats.WithObserver(observer),
	)
}

// provideSinks builds the configured report sinks. A sink whose backend
// cannot be reached is skipped with a warning so the tables still print.
func provideSinks(ctx context.Context, cfg config.Config, logger *logging.Logger) ([]report.Sink, func()) {
	var (
		sinks    []report.Sink
		cleanups []func()
	)

	if cfg.Export.CSVPath != "" {
		sinks = append(sinks, report.NewCSVSink(cfg.Export.CSVPath))
	}

	if cfg.Export.Neo4jEnabled() {
		client, err := pkgneo4j.NewClient(ctx, pkgneo4j.Config{
			URI:      cfg.Export.Neo4j.URI,
			Username: cfg.Export.Neo4j.Username,
			Password: cfg.Export.Neo4j.Password,
		})
		if err != nil {
			logger.Warn("neo4j sink disabled", "err", err)
		} else {
			logger.Info("neo4j client initialized", "uri", cfg.Export.Neo4j.URI)
			sinks = append(sinks, storage.NewReportRepository(client))
			cleanups = append(cleanups, func() {
				if err := client.Close(context.Background()); err != nil {
					logger.Warn("failed to close neo4j client", "err", err)
				}
			})
		}
	}

	if cfg.Export.SheetsEnabled() {
		client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Export.Sheets.CredentialsPath})
		if err != nil {
			logger.Warn("sheets sink disabled", "err", err)
		} else {
			sinks = append(sinks, report.NewSheetsSink(client, cfg.Export.Sheets.SpreadsheetID, cfg.Export.Sheets.Tab))
		}
	}

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return sinks, cleanup
}
