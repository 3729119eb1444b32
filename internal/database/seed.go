package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type seedSegment struct {
	startLat, startLon float64
	endLat, endLon     float64
	status             string
	obstacle           string
	roadName           string
}

// Demo segments along real roads in the Marina Bay area of Singapore, placed
// so they align with provider routing results.
var demoSegments = []seedSegment{
	{1.2834, 103.8607, 1.2847, 103.8592, "optimal", "", "Bayfront Avenue"},
	{1.2913, 103.8558, 1.2932, 103.8541, "optimal", "", "Raffles Boulevard"},
	{1.2996, 103.8631, 1.3012, 103.8658, "medium", "", "Nicoll Highway"},
	{1.3021, 103.8634, 1.3045, 103.8612, "maintenance", "pothole", "Beach Road"},
	{1.3010, 103.9125, 1.3025, 103.9187, "optimal", "", "East Coast Park Connector"},
	{1.3041, 103.8318, 1.3025, 103.8362, "medium", "", "Orchard Road"},
	{1.3251, 103.8224, 1.3289, 103.8198, "suboptimal", "rough surface", "Bukit Timah Road"},
	{1.3532, 103.9456, 1.3548, 103.9512, "optimal", "", "Tampines PCN"},
}

// Seed loads a demo user and demo segments into an empty database
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	// The user-count guard above must never see a partially seeded database.
	err := Transaction(db, func(tx *sql.Tx) error {
		res, err := tx.Exec("INSERT INTO users (username, created_at) VALUES (?, ?)", "alice", now)
		if err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
		userID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read demo user id: %w", err)
		}

		if _, err := tx.Exec("INSERT INTO settings (user_id) VALUES (?)", userID); err != nil {
			return fmt.Errorf("failed to seed demo settings: %w", err)
		}

		for _, s := range demoSegments {
			_, err := tx.Exec(`
				INSERT INTO segments (user_id, start_lat, start_lon, end_lat, end_lon, status, obstacle, road_name, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				userID, s.startLat, s.startLon, s.endLat, s.endLon, s.status, s.obstacle, s.roadName, now,
			)
			if err != nil {
				return fmt.Errorf("failed to seed segment %q: %w", s.roadName, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded demo data: 1 user, %d segments", len(demoSegments))
	return nil
}
