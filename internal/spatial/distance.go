package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters

	// Cycling speed used for duration estimates, in meters per second
	DefaultSpeedMps = 11.0
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// EstimateDuration returns the expected travel time in seconds for a
// distance in meters at the default cycling speed
func EstimateDuration(distanceMeters float64) float64 {
	return distanceMeters / DefaultSpeedMps
}
