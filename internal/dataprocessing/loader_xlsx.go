package dataprocessing

import (
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "catalogeda/internal/errors"
	"catalogeda/pkg/contracts/domain"
)

// LoadWorkbook reads a catalog exported as an Excel workbook. The sheet
// holding the catalog is found by scanning for a header row that carries the
// key canonical columns, so exports with a renamed first sheet still load.
func LoadWorkbook(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}
	defer f.Close()

	var rows [][]string
	var sheetFound bool

	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil || len(sheetRows) == 0 {
			continue
		}
		if looksLikeCatalogHeader(sheetRows[0]) {
			rows = sheetRows
			sheetFound = true
			break
		}
	}

	if !sheetFound {
		return nil, apperrors.NewSchemaError(path, requiredColumns)
	}

	return buildTable(path, rows[0], rows[1:])
}

// looksLikeCatalogHeader checks a candidate header row for the columns that
// identify a catalog sheet.
func looksLikeCatalogHeader(row []string) bool {
	rowText := strings.ToLower(strings.Join(row, " "))
	return strings.Contains(rowText, "show_id") &&
		strings.Contains(rowText, "type") &&
		strings.Contains(rowText, "title")
}
