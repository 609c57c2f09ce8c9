package db

const (
	// SchemaV1 creates the journaldb tables. Days are stored as YYYY-MM-DD text
	// and are unique within a journal, so saving a day twice replaces it.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS mindlog_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS journals (
    id UUID PRIMARY KEY,
    name VARCHAR(256) NOT NULL UNIQUE,
    description TEXT,
    active BOOLEAN DEFAULT TRUE,
    created_at REAL DEFAULT (unixepoch()),
    updated_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS records (
    journal_id UUID NOT NULL REFERENCES journals(id) ON DELETE CASCADE,
    day CHAR(10) NOT NULL,
    mood VARCHAR(64) NOT NULL DEFAULT 'Not specified',
    mood_rating INTEGER NOT NULL DEFAULT 0,
    screen_hours INTEGER NOT NULL CHECK (screen_hours BETWEEN 0 AND 24),
    sleep_hours INTEGER NOT NULL CHECK (sleep_hours BETWEEN 0 AND 24),
    journal_text TEXT NOT NULL DEFAULT '',
    mental_health_index REAL NOT NULL,
    created_at REAL DEFAULT (unixepoch()),
    updated_at REAL DEFAULT (unixepoch()),
    PRIMARY KEY (journal_id, day)
);

CREATE INDEX IF NOT EXISTS idx_records_mood ON records(journal_id, mood);

CREATE TABLE IF NOT EXISTS tags (
    tag VARCHAR(256) PRIMARY KEY,
    created_at REAL DEFAULT (unixepoch()),
    updated_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS record_tags (
    journal_id UUID NOT NULL,
    day CHAR(10) NOT NULL,
    tag VARCHAR(256) NOT NULL REFERENCES tags(tag) ON DELETE CASCADE,
    created_at REAL DEFAULT (unixepoch()),
    PRIMARY KEY (journal_id, day, tag),
    FOREIGN KEY (journal_id, day) REFERENCES records(journal_id, day) ON DELETE CASCADE
);
`
)
