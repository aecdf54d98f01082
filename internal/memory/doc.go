// Package memory turns a flat listing of stored photos into the ordered
// sequence of memory stations shown on the album timeline.
//
// The pipeline has three steps:
//
//   - GroupByDate extracts the YYYY-MM-DD token from each asset name, merges
//     assets that share a token, and orders the groups chronologically.
//     Assets without a usable token are returned in GroupResult.Skipped.
//   - Resolver maps a group's date to display metadata, either verbatim from
//     a customization table or from the month theme.
//   - BuildStations combines both into MemoryStation records. Only the
//     earliest station starts unlocked.
//
// Everything here is pure: no I/O besides LoadTable, no shared state.
package memory
