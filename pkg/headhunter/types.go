package headhunter

import (
	"encoding/json"
	"net/http"
)

// Config defines HeadHunter API client settings
type Config struct {
	BaseURL           string
	UserAgent         string // hh.ru rejects requests without one
	HTTPClient        *http.Client
	RequestsPerSecond float64
}

// SearchParams describe one page of a vacancy search
type SearchParams struct {
	Text    string
	Area    int
	PerPage int
	Page    int
}

// SearchResult is one page of /vacancies
type SearchResult struct {
	Found   int       `json:"found"`
	Pages   int       `json:"pages"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Items   []Vacancy `json:"items"`
}

// Vacancy is a search result item. Only the fields the salary statistics use are decoded.
type Vacancy struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Salary *Salary `json:"salary"`

	// Malformed is set when the item could not be decoded.
	Malformed bool `json:"-"`
}

// Salary is the optional salary block of a vacancy
type Salary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    *bool    `json:"gross"`
}

// UnmarshalJSON never fails: an item of unexpected shape becomes a Malformed vacancy
// so one bad record does not discard the whole page.
func (v *Vacancy) UnmarshalJSON(data []byte) error {
	type plain Vacancy
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*v = Vacancy{Malformed: true}
		return nil
	}
	*v = Vacancy(p)
	return nil
}
