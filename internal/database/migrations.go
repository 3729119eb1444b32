package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations, applied in order. Versions already recorded in the
// migrations table are skipped.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				created_at TIMESTAMP NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_segments",
		SQL: `
			CREATE TABLE IF NOT EXISTS segments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL REFERENCES users(id),
				start_lat REAL NOT NULL,
				start_lon REAL NOT NULL,
				end_lat REAL NOT NULL,
				end_lon REAL NOT NULL,
				status TEXT NOT NULL DEFAULT 'optimal',
				obstacle TEXT NOT NULL DEFAULT '',
				road_name TEXT NOT NULL DEFAULT '',
				last_aggregated TIMESTAMP,
				created_at TIMESTAMP NOT NULL
			)
		`,
	},
	{
		Version: 3,
		Name:    "create_reports",
		SQL: `
			CREATE TABLE IF NOT EXISTS reports (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				segment_id INTEGER NOT NULL REFERENCES segments(id),
				note TEXT NOT NULL DEFAULT '',
				confirmed INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_reports_segment ON reports(segment_id)
		`,
	},
	{
		Version: 4,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL REFERENCES users(id),
				from_lat REAL NOT NULL,
				from_lon REAL NOT NULL,
				to_lat REAL NOT NULL,
				to_lon REAL NOT NULL,
				private_from_lat REAL NOT NULL,
				private_from_lon REAL NOT NULL,
				private_to_lat REAL NOT NULL,
				private_to_lon REAL NOT NULL,
				distance_m REAL NOT NULL,
				duration_s REAL NOT NULL,
				geometry TEXT NOT NULL,
				private_geometry TEXT NOT NULL,
				weather_summary TEXT NOT NULL DEFAULT '',
				route_source TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_trips_user ON trips(user_id)
		`,
	},
	{
		Version: 5,
		Name:    "create_settings",
		SQL: `
			CREATE TABLE IF NOT EXISTS settings (
				user_id INTEGER PRIMARY KEY REFERENCES users(id),
				auto_detect_enabled INTEGER NOT NULL DEFAULT 1,
				auto_confirm_threshold INTEGER NOT NULL DEFAULT 2,
				default_map_zoom INTEGER NOT NULL DEFAULT 12,
				preferred_route_mode TEXT NOT NULL DEFAULT 'fastest',
				notifications_enabled INTEGER NOT NULL DEFAULT 1,
				dark_mode INTEGER NOT NULL DEFAULT 0,
				language TEXT NOT NULL DEFAULT 'en'
			)
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
