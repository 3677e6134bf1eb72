package dataprocessing

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "catalogeda/internal/errors"
	"catalogeda/pkg/contracts/domain"
)

// UnknownSentinel replaces missing categorical values so downstream grouping
// never drops rows silently.
const UnknownSentinel = "Unknown"

// sentinelColumns are the categorical columns that get the Unknown sentinel
// when the cell is empty.
var sentinelColumns = []string{"director", "cast", "country", "rating"}

var (
	movieDurationRe  = regexp.MustCompile(`(?i)^(\d+)\s*min$`)
	tvShowDurationRe = regexp.MustCompile(`(?i)^(\d+)\s*seasons?$`)
)

// dateAddedLayouts are the accepted date_added formats, most common first.
var dateAddedLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
	"1/2/2006",
}

// QualityReport is the structured summary of every data-quality problem the
// cleaner observed. It is the only channel for row-level issues; the cleaner
// returns an error solely for total failure.
type QualityReport struct {
	RowsBefore int `json:"rows_before"`
	RowsAfter  int `json:"rows_after"`

	// MissingBefore counts empty cells per canonical column before any
	// sentinel substitution.
	MissingBefore map[string]int `json:"missing_before"`

	DuplicatesRemoved int `json:"duplicates_removed"`

	// UnrecognizedType counts rows rejected because their content type is
	// not one of the known variants.
	UnrecognizedType int `json:"unrecognized_type"`

	// Malformed counts conversion failures per converted column. A row with
	// a malformed release_year stays in the table (it still counts for the
	// categorical aggregations) but is excluded from the affected numeric
	// analysis.
	Malformed map[string]int `json:"malformed"`
}

// Cleaner normalizes a loaded table in place: sentinel substitution for
// missing categoricals, duplicate removal, type conversion and multi-value
// splitting.
type Cleaner struct {
	logger *slog.Logger

	// Plausible release-year bounds. Years outside are malformed.
	minYear int
	maxYear int
}

// CleanerConfig holds the cleaner options.
type CleanerConfig struct {
	// MinReleaseYear is the lower bound of the plausible release-year
	// range. Zero means the default of 1870.
	MinReleaseYear int
}

// NewCleaner creates a cleaner. The upper release-year bound is always next
// calendar year.
func NewCleaner(logger *slog.Logger, cfg CleanerConfig) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	minYear := cfg.MinReleaseYear
	if minYear <= 0 {
		minYear = 1870
	}
	return &Cleaner{
		logger:  logger,
		minYear: minYear,
		maxYear: time.Now().Year() + 1,
	}
}

// Clean mutates the table in place and returns the quality report. The only
// error it returns is EmptyResult, when zero usable rows survive.
func (c *Cleaner) Clean(ctx context.Context, table *domain.Table) (*QualityReport, error) {
	report := &QualityReport{
		RowsBefore:    len(table.Rows),
		MissingBefore: make(map[string]int),
		Malformed:     make(map[string]int),
	}

	c.countMissing(table, report)
	c.rejectUnknownTypes(table, report)
	c.dropDuplicates(table, report)

	for i := range table.Rows {
		row := &table.Rows[i]
		c.fillSentinels(row)
		c.convertReleaseYear(row, report)
		c.convertDuration(row, report)
		c.convertDateAdded(row, report)
		c.splitMultiValues(row)
	}

	report.RowsAfter = len(table.Rows)

	if report.RowsAfter == 0 {
		return report, apperrors.NewEmptyResultError(table.Source)
	}

	c.logger.InfoContext(ctx, "cleaning completed",
		slog.Int("rows_before", report.RowsBefore),
		slog.Int("rows_after", report.RowsAfter),
		slog.Int("duplicates_removed", report.DuplicatesRemoved),
		slog.Int("unrecognized_type", report.UnrecognizedType),
		slog.Any("malformed", report.Malformed))

	return report, nil
}

// countMissing records per-column empty-cell counts before any substitution.
func (c *Cleaner) countMissing(table *domain.Table, report *QualityReport) {
	for i := range table.Rows {
		row := &table.Rows[i]
		for _, col := range table.Columns {
			if rawValue(row, col) == "" {
				report.MissingBefore[col]++
			}
		}
	}
}

// rejectUnknownTypes removes rows whose content type is not a known variant.
// They cannot be counted in any per-type analysis, so keeping them would
// miscount every aggregation keyed on type.
func (c *Cleaner) rejectUnknownTypes(table *domain.Table, report *QualityReport) {
	kept := table.Rows[:0]
	for _, row := range table.Rows {
		if !row.Type.IsValid() {
			report.UnrecognizedType++
			continue
		}
		kept = append(kept, row)
	}
	table.Rows = kept
}

// dropDuplicates collapses rows that are identical across all observed
// columns, preserved extras included, keeping the first occurrence.
func (c *Cleaner) dropDuplicates(table *domain.Table, report *QualityReport) {
	seen := make(map[string]bool, len(table.Rows))
	kept := table.Rows[:0]

	for _, row := range table.Rows {
		key := rowKey(&row, table.Columns, table.ExtraColumns)
		if seen[key] {
			report.DuplicatesRemoved++
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}

	table.Rows = kept
}

// fillSentinels substitutes the Unknown sentinel for empty categoricals.
func (c *Cleaner) fillSentinels(row *domain.Record) {
	if row.Director == "" {
		row.Director = UnknownSentinel
	}
	if row.Cast == "" {
		row.Cast = UnknownSentinel
	}
	if row.Country == "" {
		row.Country = UnknownSentinel
	}
	if row.Rating == "" {
		row.Rating = UnknownSentinel
	}
}

// convertReleaseYear parses the release year and checks the plausible range.
func (c *Cleaner) convertReleaseYear(row *domain.Record, report *QualityReport) {
	year, err := strconv.Atoi(row.ReleaseYear)
	if err != nil || year < c.minYear || year > c.maxYear {
		report.Malformed["release_year"]++
		return
	}
	row.Year = year
	row.YearOK = true
}

// convertDuration parses the duration with the unit pattern implied by the
// content type: "### min" for movies, "### Seasons" for TV shows. A string
// that does not match the pattern for its type is malformed, never zero.
func (c *Cleaner) convertDuration(row *domain.Record, report *QualityReport) {
	var re *regexp.Regexp
	switch row.Type {
	case domain.ContentTypeMovie:
		re = movieDurationRe
	case domain.ContentTypeTVShow:
		re = tvShowDurationRe
	default:
		return
	}

	m := re.FindStringSubmatch(row.Duration)
	if m == nil {
		report.Malformed["duration"]++
		return
	}

	value, err := strconv.Atoi(m[1])
	if err != nil || value <= 0 {
		report.Malformed["duration"]++
		return
	}

	row.DurationValue = value
	row.DurationOK = true
}

// convertDateAdded parses date_added when present. An empty cell is missing,
// not malformed.
func (c *Cleaner) convertDateAdded(row *domain.Record, report *QualityReport) {
	if row.DateAdded == "" {
		return
	}

	for _, layout := range dateAddedLayouts {
		if added, err := time.Parse(layout, row.DateAdded); err == nil {
			row.Added = added
			row.AddedOK = true
			return
		}
	}

	report.Malformed["date_added"]++
}

// splitMultiValues explodes the delimited list columns into trimmed tokens,
// discarding empties.
func (c *Cleaner) splitMultiValues(row *domain.Record) {
	row.Genres = splitList(row.ListedIn)
	row.Countries = splitList(row.Country)
	row.Directors = splitList(row.Director)
	row.CastList = splitList(row.Cast)
}

// splitList splits a comma-delimited field into ordered trimmed tokens.
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// rowKey builds the duplicate-detection identity from every observed column.
func rowKey(row *domain.Record, columns, extras []string) string {
	parts := make([]string, 0, len(columns)+len(extras))
	for _, col := range columns {
		parts = append(parts, rawValue(row, col))
	}
	if len(extras) > 0 {
		sorted := append([]string(nil), extras...)
		sort.Strings(sorted)
		for _, name := range sorted {
			parts = append(parts, row.Extra[name])
		}
	}
	return strings.Join(parts, "\x1f")
}

// rawValue returns the raw cell for a canonical column name.
func rawValue(row *domain.Record, col string) string {
	switch col {
	case "show_id":
		return row.ShowID
	case "type":
		return string(row.Type)
	case "title":
		return row.Title
	case "director":
		return row.Director
	case "cast":
		return row.Cast
	case "country":
		return row.Country
	case "date_added":
		return row.DateAdded
	case "release_year":
		return row.ReleaseYear
	case "rating":
		return row.Rating
	case "duration":
		return row.Duration
	case "listed_in":
		return row.ListedIn
	}
	return ""
}
