package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
)

const tripColumns = `id, user_id, from_lat, from_lon, to_lat, to_lon,
	private_from_lat, private_from_lon, private_to_lat, private_to_lon,
	distance_m, duration_s, geometry, private_geometry,
	weather_summary, route_source, created_at`

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip inserts a trip and returns it with its assigned id
func (r *TripRepository) CreateTrip(t *models.Trip) (*models.Trip, error) {
	now := time.Now().UTC()

	geometry, err := json.Marshal(t.Geometry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trip geometry: %w", err)
	}
	privateGeometry, err := json.Marshal(t.PrivateGeometry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private trip geometry: %w", err)
	}

	res, err := r.db.Exec(`
		INSERT INTO trips (user_id, from_lat, from_lon, to_lat, to_lon,
			private_from_lat, private_from_lon, private_to_lat, private_to_lon,
			distance_m, duration_s, geometry, private_geometry,
			weather_summary, route_source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.UserID, t.FromLat, t.FromLon, t.ToLat, t.ToLon,
		t.PrivateFromLat, t.PrivateFromLon, t.PrivateToLat, t.PrivateToLon,
		t.DistanceMeters, t.DurationSeconds, string(geometry), string(privateGeometry),
		t.WeatherSummary, t.RouteSource, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read trip id: %w", err)
	}

	created := *t
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

// GetTripByID retrieves a single trip by ID
func (r *TripRepository) GetTripByID(id int64) (*models.Trip, error) {
	row := r.db.QueryRow("SELECT "+tripColumns+" FROM trips WHERE id = ?", id)
	trip, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListTrips retrieves trips, newest first, optionally filtered by user
func (r *TripRepository) ListTrips(userID *int64) ([]models.Trip, error) {
	query := "SELECT " + tripColumns + " FROM trips"
	var args []interface{}
	if userID != nil {
		query += " WHERE user_id = ?"
		args = append(args, *userID)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *trip)
	}
	return trips, rows.Err()
}

// DeleteTrip removes a trip. Returns false when no such trip exists.
func (r *TripRepository) DeleteTrip(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

func scanTrip(row rowScanner) (*models.Trip, error) {
	var t models.Trip
	var geometry, privateGeometry string
	err := row.Scan(
		&t.ID, &t.UserID, &t.FromLat, &t.FromLon, &t.ToLat, &t.ToLon,
		&t.PrivateFromLat, &t.PrivateFromLon, &t.PrivateToLat, &t.PrivateToLon,
		&t.DistanceMeters, &t.DurationSeconds, &geometry, &privateGeometry,
		&t.WeatherSummary, &t.RouteSource, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(geometry), &t.Geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip geometry: %w", err)
	}
	if privateGeometry != "" && privateGeometry != "null" {
		var pg models.GeoJSONLineString
		if err := json.Unmarshal([]byte(privateGeometry), &pg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal private trip geometry: %w", err)
		}
		t.PrivateGeometry = &pg
	}
	return &t, nil
}
