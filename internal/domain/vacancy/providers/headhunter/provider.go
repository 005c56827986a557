package headhunter

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/domain/salary"
	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
	"github.com/honeycarbs/vacancy-stats/pkg/headhunter"
)

const (
	defaultCurrency = "RUR"
	defaultPageSize = 100
)

// searchClient describes the subset of the HeadHunter client used by the provider.
type searchClient interface {
	SearchVacancies(ctx context.Context, params headhunter.SearchParams) (headhunter.SearchResult, error)
}

// Options scope every search
type Options struct {
	Title    string
	Area     int
	Currency string // only salaries in this currency are estimated
	PageSize int
}

// Provider implements vacancy.Provider using the HeadHunter API
type Provider struct {
	client searchClient
	opts   Options
}

// NewProvider builds a HeadHunter provider
func NewProvider(client searchClient, opts Options) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("headhunter provider: client is required")
	}
	if opts.Currency == "" {
		opts.Currency = defaultCurrency
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Title == "" {
		opts.Title = "HeadHunter"
	}
	return &Provider{client: client, opts: opts}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "headhunter"
}

func (p *Provider) Title() string {
	return p.opts.Title
}

// FoundPolicy trusts the "found" total of the first page
func (p *Provider) FoundPolicy() vacancy.FoundPolicy {
	return vacancy.FoundReported
}

// Search pages through /vacancies for language
func (p *Provider) Search(ctx context.Context, language string, visit func(vacancy.Batch)) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("headhunter provider: client is nil")
	}

	var reported int
	fetch := func(ctx context.Context, page int) (vacancy.Page[headhunter.Vacancy], error) {
		res, err := p.client.SearchVacancies(ctx, headhunter.SearchParams{
			Text:    language,
			Area:    p.opts.Area,
			PerPage: p.opts.PageSize,
			Page:    page,
		})
		if err != nil {
			return vacancy.Page[headhunter.Vacancy]{}, err
		}
		reported = res.Found
		return vacancy.Page[headhunter.Vacancy]{
			Items: res.Items,
			Last:  res.Pages > 0 && page+1 >= res.Pages,
		}, nil
	}

	_, err := vacancy.Walk(ctx, p.opts.PageSize, fetch, func(page int, pg vacancy.Page[headhunter.Vacancy]) {
		out := make([]domain.Vacancy, 0, len(pg.Items))
		for _, v := range pg.Items {
			out = append(out, p.normalize(v))
		}
		visit(vacancy.Batch{Page: page, Reported: reported, Vacancies: out})
	})
	return err
}

func (p *Provider) normalize(v headhunter.Vacancy) domain.Vacancy {
	out := domain.Vacancy{ID: v.ID, Name: v.Name}
	out.Estimate, out.Estimated = Estimate(v, p.opts.Currency)
	return out
}

// Estimate estimates a vacancy's salary when it is published in currency
func Estimate(v headhunter.Vacancy, currency string) (float64, bool) {
	if v.Malformed || v.Salary == nil {
		return 0, false
	}
	if v.Salary.Currency != currency {
		return 0, false
	}
	return salary.EstimatePtr(v.Salary.From, v.Salary.To)
}

var _ vacancy.Provider = (*Provider)(nil)
