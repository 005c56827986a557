package superjob

import (
	"encoding/json"
	"net/http"
)

// Config defines SuperJob API client settings
type Config struct {
	AppKey            string
	BaseURL           string
	HTTPClient        *http.Client
	RequestsPerSecond float64
}

// SearchParams describe one page of a catalogue search
type SearchParams struct {
	Keyword    string
	Town       int
	Catalogues int
	Count      int
	Page       int
}

// SearchResult is one page of /vacancies/
type SearchResult struct {
	Total   int       `json:"total"`
	More    *bool     `json:"more"`
	Objects []Vacancy `json:"objects"`
}

// Vacancy is a catalogue search result. Zero payments mean "not specified".
type Vacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	FirmName    string  `json:"firm_name"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`

	// Malformed is set when the object could not be decoded.
	Malformed bool `json:"-"`
}

// UnmarshalJSON never fails; see headhunter.Vacancy.
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
