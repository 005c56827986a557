//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/vacancy-stats/internal/config"
	"github.com/honeycarbs/vacancy-stats/internal/domain/stats"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

// Initialize wires the API clients, providers, statistics service and sinks
func Initialize(ctx context.Context, cfg config.Config, logger *logging.Logger, observer stats.Observer) (*App, func(), error) {
	wire.Build(
		// Transport
		provideHTTPClient,
		provideHeadHunterClient,
		provideSuperJobClient,

		// Providers
		provideHeadHunterProvider,
		provideSuperJobProvider,

		// Services
		provideStatsService,

		// Sinks
		provideSinks,

		wire.Struct(new(App), "*"),
	)

	return nil, nil, nil
}
