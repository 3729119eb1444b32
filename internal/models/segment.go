package models

import "time"

// Segment represents a fixed stretch of road with a crowd-assessed quality status
type Segment struct {
	ID     int64 `json:"id" db:"id"`
	UserID int64 `json:"user_id" db:"user_id"`

	// Endpoints in degrees
	StartLat float64 `json:"start_lat" db:"start_lat"`
	StartLon float64 `json:"start_lon" db:"start_lon"`
	EndLat   float64 `json:"end_lat" db:"end_lat"`
	EndLon   float64 `json:"end_lon" db:"end_lon"`

	// Quality status, always one of the Status* constants
	Status   string `json:"status" db:"status"`
	Obstacle string `json:"obstacle,omitempty" db:"obstacle"`
	RoadName string `json:"road_name,omitempty" db:"road_name"`

	// Localized status label, filled at response time, never persisted
	StatusLocalized string `json:"status_localized,omitempty" db:"-"`

	LastAggregated *time.Time `json:"last_aggregated,omitempty" db:"last_aggregated"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// Segment status constants
const (
	StatusOptimal     = "optimal"
	StatusMedium      = "medium"
	StatusSuboptimal  = "suboptimal"
	StatusMaintenance = "maintenance"
)

// ValidStatus reports whether s is one of the four segment statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusOptimal, StatusMedium, StatusSuboptimal, StatusMaintenance:
		return true
	}
	return false
}

// Midpoint returns the arithmetic midpoint of the segment endpoints
func (s *Segment) Midpoint() (lat, lon float64) {
	return (s.StartLat + s.EndLat) / 2, (s.StartLon + s.EndLon) / 2
}

// SegmentCreate is the payload for segment submission
type SegmentCreate struct {
	UserID   int64   `json:"user_id" binding:"required"`
	StartLat float64 `json:"start_lat"`
	StartLon float64 `json:"start_lon"`
	EndLat   float64 `json:"end_lat"`
	EndLon   float64 `json:"end_lon"`
	Status   string  `json:"status"`
	Obstacle string  `json:"obstacle"`
	RoadName string  `json:"road_name"`
}
