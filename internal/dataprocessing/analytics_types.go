package dataprocessing

import "catalogeda/pkg/contracts/domain"

// TypeCount is one entry of the content-type distribution.
type TypeCount struct {
	Type    domain.ContentType `json:"type"`
	Count   int                `json:"count"`
	Percent float64            `json:"percent"`
}

// YearCount is one entry of the release trend.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// LabelCount is one entry of a label-keyed distribution (genres, countries).
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DurationStats summarizes durations within one content-type partition.
// Unit is "minutes" for movies and "seasons" for TV shows; values from the
// two partitions are never mixed.
type DurationStats struct {
	Type   domain.ContentType `json:"type"`
	Unit   string             `json:"unit"`
	Count  int                `json:"count"`
	Min    float64            `json:"min"`
	Max    float64            `json:"max"`
	Mean   float64            `json:"mean"`
	Median float64            `json:"median"`
}

// RatingCount is one entry of the rating distribution.
type RatingCount struct {
	Rating  string  `json:"rating"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// HeatmapYear is one row of the year-by-month heatmap. Months holds January
// through December; months with no entries are explicit zeros.
type HeatmapYear struct {
	Year   int     `json:"year"`
	Months [12]int `json:"months"`
}

// AnalysisResult bundles every aggregation output plus the quality report
// for the reporter, exporter and chart renderer.
type AnalysisResult struct {
	Quality   *QualityReport  `json:"quality"`
	Types     []TypeCount     `json:"type_distribution"`
	Trend     []YearCount     `json:"release_trend"`
	Genres    []LabelCount    `json:"top_genres"`
	Countries []LabelCount    `json:"top_countries"`
	Durations []DurationStats `json:"duration_stats"`
	Ratings   []RatingCount   `json:"rating_distribution"`
	Heatmap   []HeatmapYear   `json:"added_heatmap"`
}
