package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx so the import store can
// run against either.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RunMigrations applies the full schema. Used at process start and by tests.
func (db *DB) RunMigrations() error {
	migration := `
-- Users and their API tokens
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    role TEXT NOT NULL CHECK(role IN ('admin', 'staff')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE api_tokens (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX idx_token_user ON api_tokens(user_id);

-- Startups table. Email is the primary natural key for import
-- reconciliation; (name, founder) is the secondary signal and is
-- deliberately not constrained here.
CREATE TABLE startups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    founder TEXT NOT NULL,
    email TEXT UNIQUE,
    phone TEXT,
    sector TEXT,
    stage TEXT NOT NULL CHECK(stage IN (
        'S0', 'S1', 'S2', 'S3', 'One-on-One',
        'Onboarded', 'Graduated', 'Inactive', 'Rejected'
    )),
    funding_amount REAL NOT NULL DEFAULT 0,
    annual_revenue REAL NOT NULL DEFAULT 0,
    employees INTEGER NOT NULL DEFAULT 0,
    description TEXT,
    recognition_date TIMESTAMP,
    onboarded_date TIMESTAMP,
    graduation_date TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    modified_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_startups_name_founder ON startups(name, founder);
CREATE INDEX idx_startups_stage ON startups(stage);
CREATE INDEX idx_startups_sector ON startups(sector);

-- Child records, each owned by exactly one startup
CREATE TABLE achievements (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    achieved_on TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_achievements_startup ON achievements(startup_id);

CREATE TABLE progress_entries (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    metric TEXT NOT NULL,
    value REAL NOT NULL,
    recorded_on TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_progress_startup ON progress_entries(startup_id);

CREATE TABLE revenue_entries (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    amount REAL NOT NULL,
    period TEXT NOT NULL,
    recorded_on TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_revenue_startup ON revenue_entries(startup_id);

CREATE TABLE meetings (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    kind TEXT NOT NULL CHECK(kind IN ('smc', 'one_on_one', 'fmc')),
    scheduled_on TIMESTAMP NOT NULL,
    time_slot TEXT,
    completed_at TIMESTAMP,
    stage_at_completion TEXT,
    notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_meetings_startup ON meetings(startup_id);
CREATE INDEX idx_meetings_kind ON meetings(kind);

CREATE TABLE documents (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    name TEXT NOT NULL,
    url TEXT NOT NULL,
    content_type TEXT,
    uploaded_at TIMESTAMP NOT NULL,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_documents_startup ON documents(startup_id);

CREATE TABLE stage_transitions (
    id TEXT PRIMARY KEY,
    startup_id TEXT NOT NULL,
    from_stage TEXT NOT NULL,
    to_stage TEXT NOT NULL,
    note TEXT,
    transitioned_at TIMESTAMP NOT NULL,
    FOREIGN KEY (startup_id) REFERENCES startups(id) ON DELETE CASCADE
);
CREATE INDEX idx_transitions_startup ON stage_transitions(startup_id);

-- Guests are standalone
CREATE TABLE guests (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    organization TEXT,
    purpose TEXT,
    visited_on TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
