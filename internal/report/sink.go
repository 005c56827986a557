package report

import (
	"context"
	"strconv"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

// Sink persists the reports of a finished run
type Sink interface {
	Name() string
	Write(ctx context.Context, reports []domain.Report) error
}

// Publish hands reports to every sink. Failures are logged and counted,
// they never stop the remaining sinks.
func Publish(ctx context.Context, log *logging.Logger, sinks []Sink, reports []domain.Report) int {
	failed := 0
	for _, s := range sinks {
		if err := s.Write(ctx, reports); err != nil {
			failed++
			log.Warn("report sink failed", "sink", s.Name(), "err", err)
			continue
		}
		log.Info("report exported", "sink", s.Name(), "providers", len(reports))
	}
	return failed
}

// header is shared by the tabular sinks.
var header = []string{"run_id", "provider", "language", "found", "processed", "average_salary"}

func flatten(reports []domain.Report) [][]string {
	var rows [][]string
	for _, r := range reports {
		for _, st := range r.Languages {
			rows = append(rows, []string{
				r.RunID.String(),
				r.Provider,
				st.Language,
				strconv.Itoa(st.Found),
				strconv.Itoa(st.Processed),
				strconv.FormatInt(int64(st.Average), 10),
			})
		}
	}
	return rows
}
