package stats

import (
	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
)

// Accumulator collects one provider's batches for one language
type Accumulator struct {
	policy    vacancy.FoundPolicy
	found     int
	processed int
	total     float64
}

// NewAccumulator starts from zero counters
func NewAccumulator(policy vacancy.FoundPolicy) *Accumulator {
	return &Accumulator{policy: policy}
}

// Add folds one batch into the counters
func (a *Accumulator) Add(b vacancy.Batch) {
	if a.policy == vacancy.FoundReported && b.Page == 0 {
		a.found = b.Reported
	}

	for _, v := range b.Vacancies {
		if a.policy == vacancy.FoundCounted {
			a.found++
		}
		if !v.Estimated {
			continue
		}
		a.processed++
		a.total += v.Estimate
	}
}

// Stats finalizes the counters into LanguageStats
func (a *Accumulator) Stats(language string) domain.LanguageStats {
	st := domain.LanguageStats{
		Language:  language,
		Found:     a.found,
		Processed: a.processed,
		Total:     a.total,
	}

	// a reported total never undercounts what the provider actually served
	if st.Found < st.Processed {
		st.Found = st.Processed
	}

	if st.Processed > 0 {
		st.Average = st.Total / float64(st.Processed)
	}

	return st
}
