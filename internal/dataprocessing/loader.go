package dataprocessing

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "catalogeda/internal/errors"
	"catalogeda/pkg/contracts/domain"
)

// requiredColumns must all be present in the source header; the loader
// reports a schema mismatch naming every absent one.
var requiredColumns = []string{
	"show_id", "type", "title", "release_year", "duration", "listed_in",
}

// LoadFile reads a catalog source into a Table, choosing the reader from the
// file extension (.csv or .xlsx). Anything else is attempted as CSV.
func LoadFile(path string) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadWorkbook(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads a delimited catalog file into a Table. The header row is
// mapped to the canonical schema by name; unexpected extra columns are
// preserved on each record but not required.
func LoadCSV(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewSourceError(path, err)
		}
		rows = append(rows, row)
	}

	return buildTable(path, header, rows)
}

// buildTable maps a raw header plus data rows onto the canonical schema.
// Shared by the CSV and workbook loaders.
func buildTable(path string, header []string, rows [][]string) (*domain.Table, error) {
	columnMap := make(map[string]int)
	var observed []string
	var extras []string
	extraMap := make(map[string]int)

	canonical := make(map[string]bool, len(domain.CanonicalColumns))
	for _, c := range domain.CanonicalColumns {
		canonical[c] = true
	}

	for i, name := range header {
		name = normalizeHeader(name)
		if name == "" {
			continue
		}
		if canonical[name] {
			if _, dup := columnMap[name]; !dup {
				columnMap[name] = i
				observed = append(observed, name)
			}
			continue
		}
		if _, dup := extraMap[name]; !dup {
			extraMap[name] = i
			extras = append(extras, name)
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columnMap[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewSchemaError(path, missing)
	}

	table := &domain.Table{
		Source:       path,
		Columns:      observed,
		ExtraColumns: extras,
		Rows:         make([]domain.Record, 0, len(rows)),
	}

	cell := func(row []string, col string) string {
		idx, ok := columnMap[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		record := domain.Record{
			ShowID:      cell(row, "show_id"),
			Type:        domain.ContentType(cell(row, "type")),
			Title:       cell(row, "title"),
			Director:    cell(row, "director"),
			Cast:        cell(row, "cast"),
			Country:     cell(row, "country"),
			DateAdded:   cell(row, "date_added"),
			ReleaseYear: cell(row, "release_year"),
			Rating:      cell(row, "rating"),
			Duration:    cell(row, "duration"),
			ListedIn:    cell(row, "listed_in"),
		}

		if len(extras) > 0 {
			record.Extra = make(map[string]string, len(extras))
			for _, name := range extras {
				idx := extraMap[name]
				if idx < len(row) {
					record.Extra[name] = strings.TrimSpace(row[idx])
				} else {
					record.Extra[name] = ""
				}
			}
		}

		table.Rows = append(table.Rows, record)
	}

	slog.Info("catalog source loaded",
		slog.String("file", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(observed)),
		slog.Int("extra_columns", len(extras)))

	return table, nil
}

// normalizeHeader lowercases a header cell and strips surrounding noise,
// including a UTF-8 BOM on the first column.
func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
