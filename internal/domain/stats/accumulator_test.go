package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/domain/vacancy"
)

func estimated(v float64) domain.Vacancy {
	return domain.Vacancy{Estimate: v, Estimated: true}
}

func TestAccumulatorReported(t *testing.T) {
	acc := NewAccumulator(vacancy.FoundReported)
	acc.Add(vacancy.Batch{Page: 0, Reported: 42, Vacancies: []domain.Vacancy{estimated(2000), {}}})
	acc.Add(vacancy.Batch{Page: 1, Reported: 40, Vacancies: []domain.Vacancy{estimated(1000)}})

	st := acc.Stats("Python")
	assert.Equal(t, "Python", st.Language)
	assert.Equal(t, 42, st.Found, "found comes from the first page only")
	assert.Equal(t, 2, st.Processed)
	assert.InDelta(t, 3000.0, st.Total, 1e-9)
	assert.InDelta(t, 1500.0, st.Average, 1e-9)
}

func TestAccumulatorCounted(t *testing.T) {
	acc := NewAccumulator(vacancy.FoundCounted)
	acc.Add(vacancy.Batch{Page: 0, Reported: 1000, Vacancies: []domain.Vacancy{estimated(1200), {}, estimated(1600)}})

	st := acc.Stats("Go")
	assert.Equal(t, 3, st.Found)
	assert.Equal(t, 2, st.Processed)
	assert.InDelta(t, 1400.0, st.Average, 1e-9)
}

func TestAccumulatorEmpty(t *testing.T) {
	for _, policy := range []vacancy.FoundPolicy{vacancy.FoundReported, vacancy.FoundCounted} {
		t.Run(policy.String(), func(t *testing.T) {
			st := NewAccumulator(policy).Stats("Ruby")
			assert.Zero(t, st.Found)
			assert.Zero(t, st.Processed)
			assert.Zero(t, st.Average)
		})
	}
}

func TestAccumulatorNoEstimates(t *testing.T) {
	acc := NewAccumulator(vacancy.FoundReported)
	acc.Add(vacancy.Batch{Page: 0, Reported: 10, Vacancies: []domain.Vacancy{{}, {}}})

	st := acc.Stats("PHP")
	assert.Equal(t, 10, st.Found)
	assert.Zero(t, st.Processed)
	assert.Zero(t, st.Average)
}

func TestAccumulatorProcessedNeverExceedsFound(t *testing.T) {
	acc := NewAccumulator(vacancy.FoundReported)
	acc.Add(vacancy.Batch{Page: 0, Reported: 1, Vacancies: []domain.Vacancy{estimated(1), estimated(2), estimated(3)}})

	st := acc.Stats("Swift")
	assert.LessOrEqual(t, st.Processed, st.Found)
	assert.Equal(t, 3, st.Found)
}
