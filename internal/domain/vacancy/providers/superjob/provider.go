package superjob

import (
	"context"
	"fmt"
	"strconv"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/domain/salary"
	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-stats/pkg/superjob"
)

const defaultPageSize = 100

type searchClient interface {
	SearchVacancies(ctx context.Context, params superjob.SearchParams) (superjob.SearchResult, error)
}

// Options scope every search
type Options struct {
	Title     string
	Town      int
	Catalogue int
	PageSize  int
}

// Provider implements vacancy.Provider using the SuperJob catalogue
type Provider struct {
	client searchClient
	opts   Options
}

// NewProvider builds a SuperJob provider
func NewProvider(client searchClient, opts Options) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("superjob provider: client is required")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Title == "" {
		opts.Title = "SuperJob"
	}
	return &Provider{client: client, opts: opts}, nil
}

func (p *Provider) Name() string {
	return "superjob"
}

func (p *Provider) Title() string {
	return p.opts.Title
}

// FoundPolicy counts retrieved vacancies; the reported total is not trusted
func (p *Provider) FoundPolicy() vacancy.FoundPolicy {
	return vacancy.FoundCounted
}

// Search pages through the catalogue for language
func (p *Provider) Search(ctx context.Context, language string, visit func(vacancy.Batch)) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("superjob provider: client is nil")
	}

	var reported int
	fetch := func(ctx context.Context, page int) (vacancy.Page[superjob.Vacancy], error) {
		res, err := p.client.SearchVacancies(ctx, superjob.SearchParams{
			Keyword:    language,
			Town:       p.opts.Town,
			Catalogues: p.opts.Catalogue,
			Count:      p.opts.PageSize,
			Page:       page,
		})
		if err != nil {
			return vacancy.Page[superjob.Vacancy]{}, err
		}
		reported = res.Total
		return vacancy.Page[superjob.Vacancy]{
			Items: res.Objects,
			Last:  res.More != nil && !*res.More,
		}, nil
	}

	_, err := vacancy.Walk(ctx, p.opts.PageSize, fetch, func(page int, pg vacancy.Page[superjob.Vacancy]) {
		out := make([]domain.Vacancy, 0, len(pg.Items))
		for _, v := range pg.Items {
			dv := domain.Vacancy{ID: strconv.Itoa(v.ID), Name: v.Profession}
			dv.Estimate, dv.Estimated = Estimate(v)
			out = append(out, dv)
		}
		visit(vacancy.Batch{Page: page, Reported: reported, Vacancies: out})
	})
	return err
}

// Estimate estimates a vacancy's salary from its payment fields
func Estimate(v superjob.Vacancy) (float64, bool) {
	if v.Malformed {
		return 0, false
	}
	return salary.Estimate(v.PaymentFrom, v.PaymentTo)
}

var _ vacancy.Provider = (*Provider)(nil)
