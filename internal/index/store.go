package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"charades/internal/annotations"
	"charades/internal/dataset"
)

// Store is a SQLite-backed index of parsed annotation records, used for
// fast lookups and corpus statistics without re-parsing the CSVs.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the index database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ImportSplit drains reader into the index, replacing any prior import of the
// same split. Returns the number of records imported. A parse failure mid
// split rolls the whole import back.
func (s *Store) ImportSplit(ctx context.Context, reader *dataset.Reader) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	split := string(reader.Split())
	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE split = ?`, split); err != nil {
		return 0, fmt.Errorf("clear split %s: %w", split, err)
	}

	importedAt := time.Now().UTC().Format(time.RFC3339Nano)
	count := 0
	for reader.Scan() {
		record := reader.Record()
		if err := insertRecord(ctx, tx, split, reader.Index(), importedAt, record); err != nil {
			return 0, err
		}
		count++
	}
	if err := reader.Err(); err != nil {
		return 0, fmt.Errorf("import %s split: %w", split, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return count, nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, split string, rowIndex int, importedAt string, record annotations.Record) error {
	objects, err := json.Marshal(record.Objects)
	if err != nil {
		return fmt.Errorf("marshal objects: %w", err)
	}
	descriptions, err := json.Marshal(record.Descriptions)
	if err != nil {
		return fmt.Errorf("marshal descriptions: %w", err)
	}
	labels, err := json.Marshal(record.Labels)
	if err != nil {
		return fmt.Errorf("marshal labels: %w", err)
	}
	timings, err := json.Marshal(record.ActionTimings)
	if err != nil {
		return fmt.Errorf("marshal timings: %w", err)
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO records (
            video_id, split, row_index, video_path, subject, scene,
            quality, relevance, verified, script,
            objects_json, descriptions_json, labels_json, timings_json,
            length, imported_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.VideoID,
		split,
		rowIndex,
		record.VideoPath,
		record.Subject,
		record.Scene,
		record.Quality,
		record.Relevance,
		record.Verified,
		record.Script,
		string(objects),
		string(descriptions),
		string(labels),
		string(timings),
		record.Length,
		importedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record %s: %w", record.VideoID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM record_labels WHERE video_id = ?`, record.VideoID); err != nil {
		return fmt.Errorf("clear labels for %s: %w", record.VideoID, err)
	}
	for _, classIndex := range record.Labels {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO record_labels (video_id, class_index) VALUES (?, ?)`,
			record.VideoID,
			classIndex,
		); err != nil {
			return fmt.Errorf("insert label for %s: %w", record.VideoID, err)
		}
	}
	return nil
}

// Record fetches one indexed record by video id. Returns nil when absent.
func (s *Store) Record(ctx context.Context, videoID string) (*annotations.Record, string, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT video_id, split, video_path, subject, scene, quality, relevance,
                verified, script, objects_json, descriptions_json,
                labels_json, timings_json, length
         FROM records WHERE video_id = ?`,
		videoID,
	)

	var (
		record       annotations.Record
		split        string
		subject      sql.NullString
		scene        sql.NullString
		verified     sql.NullString
		script       sql.NullString
		objects      string
		descriptions string
		labels       string
		timings      string
	)
	err := row.Scan(
		&record.VideoID,
		&split,
		&record.VideoPath,
		&subject,
		&scene,
		&record.Quality,
		&record.Relevance,
		&verified,
		&script,
		&objects,
		&descriptions,
		&labels,
		&timings,
		&record.Length,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("get record: %w", err)
	}

	record.Subject = subject.String
	record.Scene = scene.String
	record.Verified = verified.String
	record.Script = script.String
	if err := json.Unmarshal([]byte(objects), &record.Objects); err != nil {
		return nil, "", fmt.Errorf("decode objects for %s: %w", videoID, err)
	}
	if err := json.Unmarshal([]byte(descriptions), &record.Descriptions); err != nil {
		return nil, "", fmt.Errorf("decode descriptions for %s: %w", videoID, err)
	}
	if err := json.Unmarshal([]byte(labels), &record.Labels); err != nil {
		return nil, "", fmt.Errorf("decode labels for %s: %w", videoID, err)
	}
	if err := json.Unmarshal([]byte(timings), &record.ActionTimings); err != nil {
		return nil, "", fmt.Errorf("decode timings for %s: %w", videoID, err)
	}
	return &record, split, nil
}

// Count returns the number of indexed records, optionally filtered by split.
func (s *Store) Count(ctx context.Context, split string) (int, error) {
	var (
		row *sql.Row
	)
	if split == "" {
		row = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM records`)
	} else {
		row = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM records WHERE split = ?`, split)
	}
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// SceneCount pairs a scene name with its record count.
type SceneCount struct {
	Scene string
	Count int
}

// SceneCounts returns record counts per scene, most frequent first.
func (s *Store) SceneCounts(ctx context.Context, limit int) ([]SceneCount, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT scene, COUNT(1) AS n FROM records GROUP BY scene ORDER BY n DESC, scene LIMIT ?`,
		queryLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("scene counts: %w", err)
	}
	defer rows.Close()

	var out []SceneCount
	for rows.Next() {
		var sc SceneCount
		if err := rows.Scan(&sc.Scene, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// ClassCount pairs a class index with its annotation count.
type ClassCount struct {
	ClassIndex int
	Count      int
}

// ClassCounts returns annotation counts per action class, most frequent
// first.
func (s *Store) ClassCounts(ctx context.Context, limit int) ([]ClassCount, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT class_index, COUNT(1) AS n FROM record_labels GROUP BY class_index ORDER BY n DESC, class_index LIMIT ?`,
		queryLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("class counts: %w", err)
	}
	defer rows.Close()

	var out []ClassCount
	for rows.Next() {
		var cc ClassCount
		if err := rows.Scan(&cc.ClassIndex, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// QualityCount pairs a quality score (including the unset sentinel) with its
// record count.
type QualityCount struct {
	Quality int
	Count   int
}

// QualityHistogram returns record counts per quality score in ascending
// score order.
func (s *Store) QualityHistogram(ctx context.Context) ([]QualityCount, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT quality, COUNT(1) FROM records GROUP BY quality ORDER BY quality`,
	)
	if err != nil {
		return nil, fmt.Errorf("quality histogram: %w", err)
	}
	defer rows.Close()

	var out []QualityCount
	for rows.Next() {
		var qc QualityCount
		if err := rows.Scan(&qc.Quality, &qc.Count); err != nil {
			return nil, err
		}
		out = append(out, qc)
	}
	return out, rows.Err()
}

func queryLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
