package models

// Route preference modes
const (
	PreferenceSafetyFirst = "safety_first"
	PreferenceShortest    = "shortest"
	PreferenceBalanced    = "balanced"
)

// ValidPreference reports whether p is a known preference mode
func ValidPreference(p string) bool {
	switch p {
	case PreferenceSafetyFirst, PreferenceShortest, PreferenceBalanced:
		return true
	}
	return false
}

// Route candidate sources
const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Warning marks a surface hazard along a route candidate
type Warning struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"type"`
	// Localized label, filled at response time
	TypeLocalized string `json:"type_localized,omitempty"`
}

// Warning types
const (
	WarningPothole  = "Pothole"
	WarningRoadWork = "Road Work"
	WarningBadRoad  = "Bad Road"
)

// Route tags
const (
	TagRecommended    = "Recommended"
	TagAlternative    = "Alternative"
	TagFastest        = "Fastest"
	TagShortest       = "Shortest"
	TagBestSurface    = "Best Surface"
	TagBumpy          = "Bumpy"
	TagRoadWork       = "Road Work"
	TagPoorSurface    = "Poor Surface"
	TagMixedSurface   = "Mixed Surface"
	TagSlightlyLonger = "Slightly Longer"
)

// RouteCandidate is one proposed route geometry among several being compared.
// It lives for a single request: constructed, scored, ranked, discarded.
type RouteCandidate struct {
	RouteID         string      `json:"route_id"`
	Coords          [][]float64 `json:"-"` // [lon, lat] vertices
	DistanceMeters  float64     `json:"total_distance"`
	DurationSeconds float64     `json:"duration_s"`
	Score           float64     `json:"-"` // lower is better
	QualityScore    float64     `json:"road_quality_score"`
	Tags            []string    `json:"tags"`
	Warnings        []Warning   `json:"segments_warning"`
	Source          string      `json:"source"`
}

// RoutesRequest is the payload for route previews
type RoutesRequest struct {
	FromLat    float64 `json:"from_lat"`
	FromLon    float64 `json:"from_lon"`
	ToLat      float64 `json:"to_lat"`
	ToLon      float64 `json:"to_lon"`
	N          int     `json:"n"`
	Preference string  `json:"preference"`
}

// PathSearchRequest is the payload for scored route search
type PathSearchRequest struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Preferences string     `json:"preferences"`
}
