package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
)

// LanguageColumn heads the first column of every statistics table.
const LanguageColumn = "Programming language"

// Rows lays out stats as a header row followed by one row per language.
// Averages are truncated toward zero.
func Rows(title string, stats []domain.LanguageStats) [][]string {
	rows := make([][]string, 0, len(stats)+1)
	rows = append(rows, []string{title, "found", "processed", "average salary"})
	for _, st := range stats {
		rows = append(rows, []string{
			st.Language,
			strconv.Itoa(st.Found),
			strconv.Itoa(st.Processed),
			strconv.FormatInt(int64(st.Average), 10),
		})
	}
	return rows
}

// Render writes "<heading>:" and a boxed table for r to w
func Render(w io.Writer, heading, title string, r domain.Report) error {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(pterm.TableData(Rows(title, r.Languages))).
		Srender()
	if err != nil {
		return fmt.Errorf("render %s table: %w", r.Provider, err)
	}

	if _, err := fmt.Fprintf(w, "%s:\n%s\n", heading, table); err != nil {
		return fmt.Errorf("write %s table: %w", r.Provider, err)
	}
	return nil
}
