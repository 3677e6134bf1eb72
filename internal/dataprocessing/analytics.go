package dataprocessing

import (
	"sort"

	"catalogeda/pkg/contracts/domain"
)

// The aggregations below are pure functions over a cleaned table: they never
// mutate it, and calling one twice yields identical output, order included.

// TypeDistribution counts records per content type with percentages summing
// to 100 up to rounding. Entries follow the stable enumeration order of the
// content types.
func TypeDistribution(table *domain.Table) []TypeCount {
	counts := make(map[domain.ContentType]int)
	for i := range table.Rows {
		counts[table.Rows[i].Type]++
	}

	total := len(table.Rows)
	result := make([]TypeCount, 0, len(counts))
	for _, contentType := range domain.ContentTypes() {
		count := counts[contentType]
		entry := TypeCount{Type: contentType, Count: count}
		if total > 0 {
			entry.Percent = float64(count) * 100 / float64(total)
		}
		result = append(result, entry)
	}

	return result
}

// ReleaseTrend counts records per release year in ascending order. Every
// integer year in [min, max] of the observed valid years gets an entry: a
// year without content was a genuine gap and is reported as zero, not
// omitted. Rows with a malformed year are excluded.
func ReleaseTrend(table *domain.Table) []YearCount {
	counts := make(map[int]int)
	minYear, maxYear := 0, 0

	for i := range table.Rows {
		row := &table.Rows[i]
		if !row.YearOK {
			continue
		}
		counts[row.Year]++
		if minYear == 0 || row.Year < minYear {
			minYear = row.Year
		}
		if row.Year > maxYear {
			maxYear = row.Year
		}
	}

	if minYear == 0 {
		return nil
	}

	result := make([]YearCount, 0, maxYear-minYear+1)
	for year := minYear; year <= maxYear; year++ {
		result = append(result, YearCount{Year: year, Count: counts[year]})
	}

	return result
}

// GenrePopularity explodes each record's genre list into one count per
// (record, genre) pair and returns the top limit genres, descending by
// count with lexical tie-break.
func GenrePopularity(table *domain.Table, limit int) []LabelCount {
	counts := make(map[string]int)
	for i := range table.Rows {
		for _, genre := range table.Rows[i].Genres {
			counts[genre]++
		}
	}
	return topLabels(counts, limit)
}

// CountryDistribution explodes each record's country list into one count
// per (record, country) pair — a record with three countries contributes to
// all three — and returns the top limit countries with the same ordering
// rule as GenrePopularity.
func CountryDistribution(table *domain.Table, limit int) []LabelCount {
	counts := make(map[string]int)
	for i := range table.Rows {
		for _, country := range table.Rows[i].Countries {
			counts[country]++
		}
	}
	return topLabels(counts, limit)
}

// DurationStatistics partitions the table by content type and summarizes
// durations within each partition. Movies are measured in minutes, TV shows
// in seasons; the partitions never share values. Partitions with no valid
// durations are omitted.
func DurationStatistics(table *domain.Table) []DurationStats {
	byType := make(map[domain.ContentType][]float64)
	for i := range table.Rows {
		row := &table.Rows[i]
		if !row.DurationOK {
			continue
		}
		byType[row.Type] = append(byType[row.Type], float64(row.DurationValue))
	}

	var result []DurationStats
	for _, contentType := range domain.ContentTypes() {
		values := byType[contentType]
		if len(values) == 0 {
			continue
		}

		stats := DurationStats{
			Type:   contentType,
			Unit:   durationUnit(contentType),
			Count:  len(values),
			Min:    minOf(values),
			Max:    maxOf(values),
			Mean:   meanOf(values),
			Median: medianOf(values),
		}
		result = append(result, stats)
	}

	return result
}

// RatingDistribution counts records per rating category, the Unknown
// sentinel included, descending by count with lexical tie-break.
func RatingDistribution(table *domain.Table) []RatingCount {
	counts := make(map[string]int)
	for i := range table.Rows {
		counts[table.Rows[i].Rating]++
	}

	total := len(table.Rows)
	result := make([]RatingCount, 0, len(counts))
	for rating, count := range counts {
		entry := RatingCount{Rating: rating, Count: count}
		if total > 0 {
			entry.Percent = float64(count) * 100 / float64(total)
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Rating < result[j].Rating
	})

	return result
}

// AddedHeatmap builds the year-by-month count matrix from date_added, years
// ascending. Months with zero entries for an observed year are explicit
// zeros. Rows without a parseable date_added are excluded.
func AddedHeatmap(table *domain.Table) []HeatmapYear {
	byYear := make(map[int]*HeatmapYear)
	for i := range table.Rows {
		row := &table.Rows[i]
		if !row.AddedOK {
			continue
		}
		year := row.Added.Year()
		entry, ok := byYear[year]
		if !ok {
			entry = &HeatmapYear{Year: year}
			byYear[year] = entry
		}
		entry.Months[int(row.Added.Month())-1]++
	}

	result := make([]HeatmapYear, 0, len(byYear))
	for _, entry := range byYear {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })

	return result
}

// topLabels orders a label-count map descending by count, breaking ties by
// lexical label order for determinism, and truncates to limit.
func topLabels(counts map[string]int, limit int) []LabelCount {
	result := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		result = append(result, LabelCount{Label: label, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result
}

func durationUnit(contentType domain.ContentType) string {
	if contentType == domain.ContentTypeTVShow {
		return "seasons"
	}
	return "minutes"
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
