package vacancy

import (
	"context"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
)

// FoundPolicy decides where a provider's "found" count comes from
type FoundPolicy int

const (
	// FoundReported trusts the total reported with the first page.
	FoundReported FoundPolicy = iota
	// FoundCounted counts the records actually retrieved.
	FoundCounted
)

func (p FoundPolicy) String() string {
	switch p {
	case FoundReported:
		return "reported"
	case FoundCounted:
		return "counted"
	default:
		return "unknown"
	}
}

// Batch is one page of normalized vacancies
type Batch struct {
	Page int
	// Reported is the provider's total for the whole query.
	Reported  int
	Vacancies []domain.Vacancy
}

// Provider represents an external vacancy source (HeadHunter, SuperJob)
type Provider interface {
	// e.g. "headhunter"
	Name() string

	// Title is the caption printed above the provider's table
	Title() string

	FoundPolicy() FoundPolicy

	// Search pages through every vacancy for language and hands each page to visit.
	// Pages visited before an error stay visited.
	Search(ctx context.Context, language string, visit func(Batch)) error
}
