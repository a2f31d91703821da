package classification

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store loads the full set of classification tables from some backing source.
type Store interface {
	Load(ctx context.Context) (*Registry, error)
}

// CSVStore reads classifications from a directory holding one CSV file per
// entity (occupation.csv, location.csv, product.csv, industry.csv), each with
// id, name, code and level columns.
type CSVStore struct {
	dir    string
	logger *slog.Logger
}

// NewCSVStore creates a store over the given directory.
func NewCSVStore(dir string, logger *slog.Logger) *CSVStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVStore{dir: dir, logger: logger}
}

// Load reads every classification file and builds the registry.
func (s *CSVStore) Load(ctx context.Context) (*Registry, error) {
	tables := make([]Table, 0, len(entities))
	for _, label := range entities {
		path := filepath.Join(s.dir, label+".csv")
		table, err := s.loadTable(label, path)
		if err != nil {
			return nil, fmt.Errorf("load %s classification: %w", label, err)
		}
		s.logger.InfoContext(ctx, "loaded classification",
			slog.String("entity", label),
			slog.String("path", path),
			slog.Int("entries", table.Len()))
		tables = append(tables, table)
	}
	return NewRegistry(tables...)
}

func (s *CSVStore) loadTable(label, path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open classification file: %w", err)
	}
	defer file.Close()

	rows, err := parseRows(file)
	if err != nil {
		return Table{}, err
	}
	return NewTable(label, rows)
}

// parseRows reads id/name/code/level records from CSV data. Column order is
// taken from the header so files may carry the columns in any order.
func parseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idIdx, nameIdx, codeIdx, levelIdx := -1, -1, -1, -1
	for i, col := range header {
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
		return nil, fmt.Errorf("header must include id and name columns, got %v", header)
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record at line %d: %w", line, err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[idIdx]))
		if err != nil {
			return nil, fmt.Errorf("parse id at line %d: %w", line, err)
		}

		row := Row{ID: id, Name: record[nameIdx]}
		if codeIdx >= 0 {
			row.Code = record[codeIdx]
		}
		if levelIdx >= 0 {
			row.Level = record[levelIdx]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
