package classification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelStore reads classifications from a single Excel workbook with one
// sheet per entity. Each sheet carries a header row with id, name, code and
// level columns.
type ExcelStore struct {
	path   string
	logger *slog.Logger
}

// NewExcelStore creates a store over the given workbook path.
func NewExcelStore(path string, logger *slog.Logger) *ExcelStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelStore{path: path, logger: logger}
}

// Load opens the workbook and builds the registry from its sheets.
func (s *ExcelStore) Load(ctx context.Context) (*Registry, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open classification workbook: %w", err)
	}
	defer f.Close()

	tables := make([]Table, 0, len(entities))
	for _, label := range entities {
		sheet, err := findSheet(f, label)
		if err != nil {
			return nil, err
		}

		records, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		rows, err := rowsFromRecords(records)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		table, err := NewTable(label, rows)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "loaded classification sheet",
			slog.String("entity", label),
			slog.String("sheet", sheet),
			slog.Int("entries", table.Len()))
		tables = append(tables, table)
	}
	return NewRegistry(tables...)
}

// findSheet locates the sheet for an entity label, matching case-insensitively
// so "Product" and "product" both work.
func findSheet(f *excelize.File, label string) (string, error) {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, label) {
			return name, nil
		}
	}
	return "", fmt.Errorf("workbook has no sheet for %q classification", label)
}

// rowsFromRecords converts sheet rows (header first) into classification rows.
func rowsFromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	idIdx, nameIdx, codeIdx, levelIdx := -1, -1, -1, -1
	for i, col := range records[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "id":
			idIdx = i
		case "name":
			nameIdx = i
		case "code":
			codeIdx = i
		case "level", "aggregation":
			levelIdx = i
		}
	}
	if idIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("header must include id and name columns, got %v", records[0])
	}

	cell := func(record []string, idx int) string {
		// Excel rows omit trailing empty cells.
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []Row
	for line, record := range records[1:] {
		raw := strings.TrimSpace(cell(record, idIdx))
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse id at row %d: %w", line+2, err)
		}
		rows = append(rows, Row{
			ID:    id,
			Name:  cell(record, nameIdx),
			Code:  cell(record, codeIdx),
			Level: cell(record, levelIdx),
		})
	}
	return rows, nil
}
