package history

const schemaSQL = `
CREATE TABLE IF NOT EXISTS toast_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session     TEXT    NOT NULL,
	toast_id    INTEGER NOT NULL,
	title       TEXT    NOT NULL DEFAULT '',
	label       TEXT    NOT NULL DEFAULT '[]',
	status      TEXT    NOT NULL,
	type        TEXT    NOT NULL DEFAULT 'default',
	timestamps  TEXT    NOT NULL DEFAULT '{}',
	recorded_at TEXT    NOT NULL,
	UNIQUE (session, toast_id)
);

CREATE INDEX IF NOT EXISTS idx_toast_history_recorded_at ON toast_history (recorded_at);
`

const upsertSQL = `
INSERT INTO toast_history (session, toast_id, title, label, status, type, timestamps, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (session, toast_id) DO UPDATE SET
	title       = excluded.title,
	label       = excluded.label,
	status      = excluded.status,
	type        = excluded.type,
	timestamps  = excluded.timestamps,
	recorded_at = excluded.recorded_at
`

const listSQL = `
SELECT session, toast_id, title, label, status, type, timestamps, recorded_at
FROM toast_history
WHERE (? = '' OR session = ?)
ORDER BY recorded_at DESC, id DESC
`

const countSQL = `SELECT COUNT(*) FROM toast_history`

const pruneSQL = `
DELETE FROM toast_history
WHERE id NOT IN (
	SELECT id FROM toast_history ORDER BY recorded_at DESC, id DESC LIMIT ?
)
`
