package models

import "time"

// GeoJSONLineString is the geometry shape exchanged with clients
type GeoJSONLineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// NewLineString wraps coordinates in a GeoJSON LineString
func NewLineString(coords [][]float64) GeoJSONLineString {
	return GeoJSONLineString{Type: "LineString", Coordinates: coords}
}

// Trip represents a recorded ride between two points.
//
// Public coordinates are reduced-precision copies; the raw endpoints and
// geometry are kept in the Private* fields and only leave the repository
// when the owner asks for them.
type Trip struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"user_id" db:"user_id"`

	// Obfuscated public endpoints (~100m precision)
	FromLat float64 `json:"from_lat" db:"from_lat"`
	FromLon float64 `json:"from_lon" db:"from_lon"`
	ToLat   float64 `json:"to_lat" db:"to_lat"`
	ToLon   float64 `json:"to_lon" db:"to_lon"`

	// Raw private endpoints
	PrivateFromLat float64 `json:"private_from_lat,omitempty" db:"private_from_lat"`
	PrivateFromLon float64 `json:"private_from_lon,omitempty" db:"private_from_lon"`
	PrivateToLat   float64 `json:"private_to_lat,omitempty" db:"private_to_lat"`
	PrivateToLon   float64 `json:"private_to_lon,omitempty" db:"private_to_lon"`

	DistanceMeters  float64 `json:"distance_m" db:"distance_m"`
	DurationSeconds float64 `json:"duration_s" db:"duration_s"`

	// Geometry with the first/last ~150m fuzzed
	Geometry GeoJSONLineString `json:"geometry" db:"-"`
	// Raw geometry, owner-only
	PrivateGeometry *GeoJSONLineString `json:"private_geometry,omitempty" db:"-"`

	WeatherSummary string    `json:"weather_summary,omitempty" db:"weather_summary"`
	RouteSource    string    `json:"route_source" db:"route_source"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Sanitized returns a copy of the trip with all private fields stripped
func (t Trip) Sanitized() Trip {
	t.PrivateFromLat = 0
	t.PrivateFromLon = 0
	t.PrivateToLat = 0
	t.PrivateToLon = 0
	t.PrivateGeometry = nil
	return t
}

// TripCreate is the payload for trip creation
type TripCreate struct {
	UserID          int64              `json:"user_id" binding:"required"`
	FromLat         float64            `json:"from_lat"`
	FromLon         float64            `json:"from_lon"`
	ToLat           float64            `json:"to_lat"`
	ToLon           float64            `json:"to_lon"`
	Geometry        *GeoJSONLineString `json:"geometry"`
	DistanceMeters  *float64           `json:"distance_m"`
	DurationSeconds *float64           `json:"duration_s"`
	UseProvider     bool               `json:"use_provider"`
}
