package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
)

// CSVSink writes one row per (provider, language) to a file
type CSVSink struct {
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Name() string {
	return "csv"
}

// Write replaces the file at the sink path
func (s *CSVSink) Write(_ context.Context, reports []domain.Report) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", s.path, err)
	}

	if err := writeCSV(f, reports); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(f *os.File, reports []domain.Report) error {
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	if err := w.WriteAll(flatten(reports)); err != nil {
		return fmt.Errorf("csv: write rows: %w", err)
	}
	return nil
}
