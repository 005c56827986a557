package report

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-stats/internal/domain"
)

// valuesWriter is the part of the Sheets client the sink needs.
type valuesWriter interface {
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) error
}

// SheetsSink overwrites a spreadsheet tab with the latest run
type SheetsSink struct {
	client        valuesWriter
	spreadsheetID string
	tab           string
}

func NewSheetsSink(client valuesWriter, spreadsheetID, tab string) *SheetsSink {
	if tab == "" {
		tab = "Stats"
	}
	return &SheetsSink{client: client, spreadsheetID: spreadsheetID, tab: tab}
}

func (s *SheetsSink) Name() string {
	return "sheets"
}

func (s *SheetsSink) Write(ctx context.Context, reports []domain.Report) error {
	if s.client == nil {
		return fmt.Errorf("sheets: client is nil")
	}
	if s.spreadsheetID == "" {
		return fmt.Errorf("sheets: spreadsheet id is required")
	}

	if err := s.client.ClearValues(ctx, s.spreadsheetID, s.tab+"!A2:Z"); err != nil {
		return fmt.Errorf("sheets: clear %s: %w", s.tab, err)
	}

	rows := flatten(reports)
	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, toCells(header))
	for _, row := range rows {
		values = append(values, toCells(row))
	}

	if err := s.client.UpdateValues(ctx, s.spreadsheetID, s.tab+"!A1", values); err != nil {
		return fmt.Errorf("sheets: update %s: %w", s.tab, err)
	}
	return nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
