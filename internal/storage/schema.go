package storage

const schema = `
-- One row per learner. Dates are stored as YYYY-MM-DD text.
CREATE TABLE IF NOT EXISTS learners (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    start_date TEXT NOT NULL,
    target_end_date TEXT NOT NULL,
    days_per_week REAL NOT NULL DEFAULT 5,
    created_at DATETIME NOT NULL
);

-- Current position and completed count. Phase is derived from current_week
-- and never stored.
CREATE TABLE IF NOT EXISTS progress (
    learner_id TEXT PRIMARY KEY,
    current_week INTEGER NOT NULL DEFAULT 1 CHECK (current_week BETWEEN 1 AND 48),
    current_day INTEGER NOT NULL DEFAULT 1 CHECK (current_day BETWEEN 1 AND 7),
    days_completed INTEGER NOT NULL DEFAULT 0 CHECK (days_completed >= 0),
    updated_at DATETIME NOT NULL,

    FOREIGN KEY(learner_id) REFERENCES learners(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS practice_logs (
    id TEXT PRIMARY KEY,
    learner_id TEXT NOT NULL,
    practiced_on TEXT NOT NULL,
    minutes INTEGER NOT NULL CHECK (minutes > 0),
    week INTEGER NOT NULL,
    day INTEGER NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL,

    FOREIGN KEY(learner_id) REFERENCES learners(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS practice_logs_learner_day ON practice_logs(learner_id, practiced_on);
`
