package index

const schema = `
CREATE TABLE IF NOT EXISTS records (
    video_id          TEXT PRIMARY KEY,
    split             TEXT NOT NULL,
    row_index         INTEGER NOT NULL,
    video_path        TEXT NOT NULL,
    subject           TEXT,
    scene             TEXT,
    quality           INTEGER NOT NULL,
    relevance         INTEGER NOT NULL,
    verified          TEXT,
    script            TEXT,
    objects_json      TEXT NOT NULL,
    descriptions_json TEXT NOT NULL,
    labels_json       TEXT NOT NULL,
    timings_json      TEXT NOT NULL,
    length            REAL NOT NULL,
    imported_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS record_labels (
    video_id    TEXT NOT NULL REFERENCES records(video_id) ON DELETE CASCADE,
    class_index INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_split ON records(split);
CREATE INDEX IF NOT EXISTS idx_records_scene ON records(scene);
CREATE INDEX IF NOT EXISTS idx_record_labels_class ON record_labels(class_index);
`
