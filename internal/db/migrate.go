package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','completed','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS budget_items (
		id            TEXT NOT NULL,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		kind          TEXT NOT NULL CHECK(kind IN ('revenue','expense')),
		category      TEXT NOT NULL,
		position      INTEGER NOT NULL DEFAULT 0,
		source        TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		amount        REAL NOT NULL DEFAULT 0,
		actual_amount REAL,
		status        TEXT CHECK(status IS NULL OR status IN ('Pending','Approved','Denied')),
		PRIMARY KEY (project_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_budget_items_category ON budget_items(project_id, kind, category, position)`,

	`CREATE TABLE IF NOT EXISTS ticket_revenue_actuals (
		project_id     TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		actual_revenue REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS venues (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		capacity            INTEGER NOT NULL DEFAULT 0 CHECK(capacity >= 0),
		default_cost_type   TEXT NOT NULL DEFAULT 'free'
		                    CHECK(default_cost_type IN ('free','rented','in_kind')),
		default_cost        REAL NOT NULL DEFAULT 0,
		default_cost_period TEXT NOT NULL DEFAULT 'flat_rate'
		                    CHECK(default_cost_period IN ('per_day','per_hour','flat_rate'))
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT REFERENCES projects(id) ON DELETE CASCADE,
		venue_id             TEXT REFERENCES venues(id) ON DELETE SET NULL,
		title                TEXT NOT NULL,
		status               TEXT NOT NULL DEFAULT 'Scheduled',
		category             TEXT NOT NULL DEFAULT '',
		start_date           TEXT NOT NULL,
		end_date             TEXT,
		start_time           TEXT NOT NULL DEFAULT '',
		end_time             TEXT NOT NULL DEFAULT '',
		is_all_day           INTEGER NOT NULL DEFAULT 0,
		is_template          INTEGER NOT NULL DEFAULT 0,
		override_cost_type   TEXT,
		override_cost        REAL,
		override_cost_period TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_project ON events(project_id)`,

	`CREATE TABLE IF NOT EXISTS event_tickets (
		id               TEXT PRIMARY KEY,
		event_id         TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		ticket_type_id   TEXT NOT NULL DEFAULT '',
		ticket_type_name TEXT NOT NULL DEFAULT '',
		price            REAL NOT NULL DEFAULT 0,
		capacity         INTEGER NOT NULL DEFAULT 0 CHECK(capacity >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_event_tickets_event ON event_tickets(event_id)`,

	// Added after the first release.
	`ALTER TABLE event_tickets ADD COLUMN sold_count INTEGER NOT NULL DEFAULT 0`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		task_type       TEXT NOT NULL DEFAULT 'Time-Based'
		                CHECK(task_type IN ('Time-Based','Milestone')),
		estimated_hours REAL NOT NULL DEFAULT 0,
		hourly_rate     REAL NOT NULL DEFAULT 0,
		work_type       TEXT NOT NULL DEFAULT 'Paid'
		                CHECK(work_type IN ('Paid','In-Kind','Volunteer')),
		budget_item_id  TEXT,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id        TEXT PRIMARY KEY,
		task_id   TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		member_id TEXT NOT NULL DEFAULT '',
		hours     REAL NOT NULL DEFAULT 0 CHECK(hours >= 0),
		status    TEXT NOT NULL DEFAULT 'Pending'
		          CHECK(status IN ('Pending','Approved')),
		date      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_task ON activities(task_id)`,

	`CREATE TABLE IF NOT EXISTS direct_expenses (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		budget_item_id TEXT,
		description    TEXT NOT NULL DEFAULT '',
		amount         REAL NOT NULL DEFAULT 0,
		date           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_direct_expenses_project ON direct_expenses(project_id)`,

	`CREATE TABLE IF NOT EXISTS sale_sessions (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		association_type TEXT NOT NULL DEFAULT 'general'
		                 CHECK(association_type IN ('event','project','general')),
		project_id       TEXT REFERENCES projects(id) ON DELETE CASCADE,
		event_id         TEXT REFERENCES events(id) ON DELETE CASCADE,
		expected_revenue REAL
	)`,

	`CREATE TABLE IF NOT EXISTS sales_transactions (
		id              TEXT PRIMARY KEY,
		sale_session_id TEXT NOT NULL REFERENCES sale_sessions(id) ON DELETE CASCADE,
		total           REAL NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sales_transactions_session ON sales_transactions(sale_session_id)`,

	`CREATE TABLE IF NOT EXISTS proposal_snapshots (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		metrics_json TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_proposal_snapshots_project ON proposal_snapshots(project_id, created_at)`,
}
