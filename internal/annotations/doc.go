// Package annotations parses Charades annotation CSVs into normalized
// records. Each row pairs a video file path with subject, scene, quality and
// relevance scores, free-text descriptions, object tags, and time-stamped
// action labels drawn from the fixed class vocabulary.
//
// The parser is strict: an unknown class code or a malformed numeric fails
// the row instead of dropping data, and a failed row aborts the scan so
// silent corruption cannot enter the record stream.
package annotations
