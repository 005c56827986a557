package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunID identifies one statistics run
type RunID = uuid.UUID

// Vacancy is a provider record reduced to what the statistics need
type Vacancy struct {
	ID   string
	Name string
	// Estimate is meaningful only when Estimated is true.
	Estimate  float64
	Estimated bool
}

// LanguageStats aggregates one (provider, language) pair
type LanguageStats struct {
	Language  string  `json:"language"`
	Found     int     `json:"found"`
	Processed int     `json:"processed"`
	Total     float64 `json:"-"`
	Average   float64 `json:"average_salary"`
	// Error is set when pagination stopped on a failure; the counters hold what was gathered before it.
	Error string `json:"error,omitempty"`
}

// Report holds one provider's statistics for every requested language, in request order
type Report struct {
	RunID       RunID           `json:"run_id"`
	Provider    string          `json:"provider"`
	Title       string          `json:"title"`
	GeneratedAt time.Time       `json:"generated_at"`
	Languages   []LanguageStats `json:"languages"`
}

// Language returns the stats for name, if present
func (r Report) Language(name string) (LanguageStats, bool) {
	for _, st := range r.Languages {
		if st.Language == name {
			return st, true
		}
	}
	return LanguageStats{}, false
}
