package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

// Observer is notified after every finished (provider, language) pair
type Observer func(provider string, st domain.LanguageStats)

// Option configures Service
type Option func(*config)

type config struct {
	providers []vacancy.Provider
	logger    *logging.Logger
	clock     func() time.Time
	observer  Observer
}

// WithProviders sets vacancy providers; reports follow this order
func WithProviders(providers ...vacancy.Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithObserver(observer Observer) Option {
	return func(c *config) {
		c.observer = observer
	}
}

// Service computes per-language salary statistics for every provider
type Service struct {
	providers []vacancy.Provider
	logger    *logging.Logger
	clock     func() time.Time
	observer  Observer
}

// NewService builds Service from options
func NewService(opts ...Option) (*Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.providers) == 0 {
		return nil, fmt.Errorf("stats.Service: at least one provider is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &Service{
		providers: cfg.providers,
		logger:    cfg.logger,
		clock:     cfg.clock,
		observer:  cfg.observer,
	}, nil
}

// Providers lists the configured provider names
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Collect runs every language through every provider, one at a time.
// A provider failure only ends that provider's pagination for that language.
// The returned error is non-nil only when ctx is done; the reports then hold
// the languages finished so far.
func (s *Service) Collect(ctx context.Context, languages []string) ([]domain.Report, error) {
	return s.collect(ctx, languages, s.providers)
}

// CollectFrom is Collect restricted to the named providers
func (s *Service) CollectFrom(ctx context.Context, languages []string, providers []string) ([]domain.Report, error) {
	if len(providers) == 0 {
		return s.Collect(ctx, languages)
	}

	byName := make(map[string]vacancy.Provider, len(s.providers))
	for _, p := range s.providers {
		byName[p.Name()] = p
	}

	selected := make([]vacancy.Provider, 0, len(providers))
	for _, name := range providers {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q", name)
		}
		selected = append(selected, p)
	}

	return s.collect(ctx, languages, selected)
}

func (s *Service) collect(ctx context.Context, languages []string, providers []vacancy.Provider) ([]domain.Report, error) {
	runID := uuid.New()
	now := s.clock().UTC()

	reports := make([]domain.Report, len(providers))
	for i, p := range providers {
		reports[i] = domain.Report{
			RunID:       runID,
			Provider:    p.Name(),
			Title:       p.Title(),
			GeneratedAt: now,
			Languages:   make([]domain.LanguageStats, 0, len(languages)),
		}
	}

	log := s.logger.With("run_id", runID.String())

	for _, language := range languages {
		for i, p := range providers {
			if err := ctx.Err(); err != nil {
				return reports, err
			}

			st := s.collectOne(ctx, log, p, language)
			reports[i].Languages = append(reports[i].Languages, st)

			if s.observer != nil {
				s.observer(p.Name(), st)
			}
		}
	}

	return reports, nil
}

func (s *Service) collectOne(ctx context.Context, log *logging.Logger, p vacancy.Provider, language string) domain.LanguageStats {
	acc := NewAccumulator(p.FoundPolicy())
	pages := 0

	err := p.Search(ctx, language, func(b vacancy.Batch) {
		acc.Add(b)
		pages++
	})

	st := acc.Stats(language)
	if err != nil {
		st.Error = err.Error()
		log.Warn("vacancy search stopped early",
			"provider", p.Name(),
			"language", language,
			"pages", pages,
			"err", err,
		)
		return st
	}

	log.Debug("language collected",
		"provider", p.Name(),
		"language", language,
		"pages", pages,
		"found", st.Found,
		"processed", st.Processed,
		"average", st.Average,
	)
	return st
}
