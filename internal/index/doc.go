// Package index persists parsed annotation records in SQLite so the CLI can
// answer lookup and statistics queries without re-reading the CSVs. Labels
// are denormalized into a side table for per-class aggregation.
package index
