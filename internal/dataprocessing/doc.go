// Package dataprocessing implements the core analysis pipeline for a
// streaming content catalog: loading a tabular source, cleaning it, and
// computing the descriptive statistics every report and chart is built from.
//
// # Architecture
//
// The package is organized into three stages, run strictly in order:
//
//  1. Loader: reads a CSV or XLSX catalog into a domain.Table, mapping the
//     header onto the canonical schema and preserving extra columns
//  2. Cleaner: mutates the table in place — sentinel substitution,
//     duplicate removal, type conversion, multi-value splitting — and
//     produces a QualityReport
//  3. Aggregations: pure functions over the cleaned table returning small
//     ordered result structures
//
// # Usage
//
// The Processor ties the stages together:
//
//	processor := dataprocessing.NewProcessor(logger, dataprocessing.ProcessorConfig{})
//	table, result, err := processor.Run(ctx, "catalog_titles.csv")
//	if err != nil {
//	    // SOURCE_UNAVAILABLE, SCHEMA_MISMATCH or EMPTY_RESULT
//	}
//
// The stages can also be driven individually, e.g. to inspect the quality
// report before aggregating:
//
//	table, err := dataprocessing.LoadFile(path)
//	quality, err := cleaner.Clean(ctx, table)
//	trend := dataprocessing.ReleaseTrend(table)
//
// # Error handling
//
// Only total failures are errors; they carry the file and column context
// needed to fix the input. Row-level problems (malformed years, unparseable
// durations, duplicates) are recorded in the QualityReport and never abort
// a run.
//
// # Determinism
//
// Every aggregation is deterministic and idempotent: ties are broken by a
// fixed enumeration or lexical order, so running the pipeline twice over
// the same input yields byte-identical outputs.
package dataprocessing
