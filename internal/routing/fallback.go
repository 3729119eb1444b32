package routing

import (
	"math"

	"github.com/openvelo/road-backend-go/internal/spatial"
)

// Perpendicular via-point offsets, in degrees, for fallback alternatives.
// The first candidate is always the direct line (offset 0).
var fallbackOffsets = []float64{0.010, -0.010, 0.018, -0.018}

const (
	directSteps  = 30
	viaStepsEach = 18

	// MaxCandidates caps how many alternatives one request may ask for
	MaxCandidates = 5
)

// FallbackRoute is a synthetically generated candidate geometry
type FallbackRoute struct {
	Coords          [][]float64
	DistanceMeters  float64
	DurationSeconds float64
	Direct          bool
}

// GenerateFallback builds up to n candidate geometries without a provider:
// the direct interpolated line plus alternatives bowed out through via
// points offset perpendicular to it.
func GenerateFallback(fromLat, fromLon, toLat, toLon float64, n int) []FallbackRoute {
	if n < 1 {
		n = 1
	}
	if n > MaxCandidates {
		n = MaxCandidates
	}

	base := spatial.InterpolatePath(fromLat, fromLon, toLat, toLon, directSteps)

	midLat := (fromLat + toLat) / 2
	midLon := (fromLon + toLon) / 2
	dlat := toLat - fromLat
	dlon := toLon - fromLon

	// Perpendicular unit vector in degree space
	px, py := dlon, -dlat
	norm := math.Sqrt(px*px + py*py)
	if norm == 0 {
		norm = 1.0
	}
	px /= norm
	py /= norm

	routes := make([]FallbackRoute, 0, n)
	dist := spatial.PathDistance(base)
	routes = append(routes, FallbackRoute{
		Coords:          base,
		DistanceMeters:  dist,
		DurationSeconds: spatial.EstimateDuration(dist),
		Direct:          true,
	})

	for i := 0; i < n-1 && i < len(fallbackOffsets); i++ {
		off := fallbackOffsets[i]
		viaLat := midLat + py*off
		viaLon := midLon + px*off
		coords := spatial.InterpolateViaPath(fromLat, fromLon, toLat, toLon, viaLat, viaLon, viaStepsEach)
		dist := spatial.PathDistance(coords)
		routes = append(routes, FallbackRoute{
			Coords:          coords,
			DistanceMeters:  dist,
			DurationSeconds: spatial.EstimateDuration(dist),
		})
	}

	return routes
}
