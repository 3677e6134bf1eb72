package domain

import "time"

// ContentType identifies the kind of catalog entry.
type ContentType string

const (
	// ContentTypeMovie is a feature-length title whose duration is measured in minutes.
	ContentTypeMovie ContentType = "Movie"
	// ContentTypeTVShow is an episodic title whose duration is measured in seasons.
	ContentTypeTVShow ContentType = "TV Show"
)

// ContentTypes returns the known content types in their stable enumeration order.
// Aggregations that break ties rely on this order being fixed.
func ContentTypes() []ContentType {
	return []ContentType{ContentTypeMovie, ContentTypeTVShow}
}

// IsValid reports whether the content type is one of the known variants.
func (c ContentType) IsValid() bool {
	return c == ContentTypeMovie || c == ContentTypeTVShow
}

// Record is a single catalog entry. The string fields mirror the source
// columns as loaded; the derived fields are populated by the cleaner and are
// the only fields aggregations should read for typed data.
type Record struct {
	// Raw canonical columns as read from the source. Missing cells are
	// empty strings until the cleaner substitutes sentinels.
	ShowID      string
	Type        ContentType
	Title       string
	Director    string
	Cast        string
	Country     string
	DateAdded   string
	ReleaseYear string
	Rating      string
	Duration    string
	ListedIn    string

	// Extra holds unexpected source columns, preserved but not required.
	Extra map[string]string

	// Derived fields, valid only after cleaning.
	Directors []string
	CastList  []string
	Countries []string
	Genres    []string

	Added   time.Time
	AddedOK bool

	Year   int
	YearOK bool

	// DurationValue is minutes for movies and season count for TV shows.
	DurationValue int
	DurationOK    bool
}

// CanonicalColumns lists the canonical schema in source order.
var CanonicalColumns = []string{
	"show_id", "type", "title", "director", "cast", "country",
	"date_added", "release_year", "rating", "duration", "listed_in",
}

// Table is the in-memory collection of records sharing one schema.
// It is created by the loader, mutated in place by the cleaner, and
// read-only for every aggregation.
type Table struct {
	// Source is the path the table was loaded from, kept for error context.
	Source string
	// Columns are the canonical columns observed in the source.
	Columns []string
	// ExtraColumns are non-canonical columns that were preserved.
	ExtraColumns []string
	Rows         []Record
}

// HasColumn reports whether the table observed the given canonical column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
