package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1StudyProgress,
}

// migrationV1StudyProgress creates the progress schema.
//
// Design notes:
//
// 1. ONE ROW PER (USER, MODULE)
//   - The site's lessons are the calendar systems themselves; finishing
//     the Hebrew module twice is meaningless, so the pair is unique.
//
// 2. MODULE NAMES AS TEXT
//   - Checked against the known module list here and again in Go via
//     Module.IsValid, so a bad client can't invent modules.
//
// 3. TIMESTAMPS AS TEXT
//   - SQLite has no native datetime type; we store RFC3339-ish text and
//     parse defensively when scanning.
const migrationV1StudyProgress = `
-- Migration 001: study progress

CREATE TABLE IF NOT EXISTS study_progress (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    user_id TEXT NOT NULL,
    module TEXT NOT NULL CHECK (module IN (
        'gregorian', 'julian', 'hebrew', 'islamic', 'hindu', 'maya'
    )),

    notes TEXT,

    completed_at TEXT NOT NULL DEFAULT (datetime('now')),
    created_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (user_id, module)
);

CREATE INDEX IF NOT EXISTS idx_study_progress_user
    ON study_progress (user_id, completed_at);
`
