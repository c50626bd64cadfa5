package sqlite

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS workspaces (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	budget     TEXT NOT NULL DEFAULT '',
	deadline   TEXT NOT NULL DEFAULT '',
	progress   INTEGER,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS members (
	workspace_id TEXT NOT NULL REFERENCES workspaces(id),
	user_id      TEXT NOT NULL,
	name         TEXT NOT NULL,
	avatar       TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (workspace_id, user_id)
);

CREATE TABLE IF NOT EXISTS rooms (
	id           TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL REFERENCES workspaces(id),
	title        TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
	id            TEXT PRIMARY KEY,
	workspace_id  TEXT NOT NULL REFERENCES workspaces(id),
	room_id       TEXT NOT NULL DEFAULT '',
	sender_kind   TEXT NOT NULL,
	sender_id     TEXT NOT NULL DEFAULT '',
	sender_name   TEXT NOT NULL DEFAULT '',
	sender_avatar TEXT NOT NULL DEFAULT '',
	content       TEXT NOT NULL,
	ts            DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id                   TEXT PRIMARY KEY,
	workspace_id         TEXT NOT NULL REFERENCES workspaces(id),
	room_id              TEXT NOT NULL DEFAULT '',
	title                TEXT NOT NULL,
	owner                TEXT NOT NULL DEFAULT '',
	assignee             TEXT NOT NULL DEFAULT '',
	completed            INTEGER NOT NULL DEFAULT 0,
	due_date             TEXT NOT NULL DEFAULT '',
	deadline             TEXT NOT NULL DEFAULT '',
	progress             INTEGER,
	status               TEXT NOT NULL DEFAULT '',
	priority             TEXT NOT NULL DEFAULT '',
	source               TEXT NOT NULL,
	extracted_message_id TEXT NOT NULL DEFAULT '',
	extracted_ts         DATETIME,
	extracted_confidence REAL,
	created_at           DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS spending (
	id           TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL REFERENCES workspaces(id),
	amount       TEXT NOT NULL,
	category     TEXT NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_rooms_workspace ON rooms(workspace_id);
CREATE INDEX IF NOT EXISTS idx_messages_workspace ON messages(workspace_id, ts);
CREATE INDEX IF NOT EXISTS idx_messages_room ON messages(room_id, ts);
CREATE INDEX IF NOT EXISTS idx_tasks_workspace ON tasks(workspace_id);
CREATE INDEX IF NOT EXISTS idx_spending_workspace ON spending(workspace_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
