// Package exporter writes the analysis outputs to flat files: one CSV per
// aggregation topic (with a UTF-8 BOM so spreadsheet tools open them
// cleanly) and a combined JSON summary including the quality report.
package exporter
