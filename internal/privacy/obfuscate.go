// Package privacy hides the endpoints of published locations and trips so
// that home and work addresses never appear in public data.
package privacy

import (
	"math"
	"math/rand"

	"github.com/openvelo/road-backend-go/internal/spatial"
)

const (
	// FuzzMeters is the obfuscation radius applied to trip endpoints
	FuzzMeters = 150.0
	// GridSizeDeg is the snapping grid, roughly 200m
	GridSizeDeg = 0.002

	metersPerDegreeLat = 111000.0
	// Longitude compensation blows up near the poles; cos(lat) is floored here
	minCosLat = 0.1
)

// Obfuscation methods
const (
	MethodNoise    = "noise"
	MethodGrid     = "grid"
	MethodTruncate = "truncate"
)

// ObfuscateLocation returns a privacy-degraded copy of a coordinate.
//
// noise:    uniform-random point within a 150m disk
// grid:     snap to a ~0.002 degree grid
// truncate: round to 3 decimals (~100m precision)
func ObfuscateLocation(lat, lon float64, method string) (float64, float64) {
	switch method {
	case MethodNoise:
		noiseDeg := FuzzMeters / metersPerDegreeLat
		angle := rand.Float64() * 2 * math.Pi
		radius := rand.Float64() * noiseDeg
		latOffset := radius * math.Cos(angle)
		lonOffset := radius * math.Sin(angle) / math.Max(math.Cos(lat*math.Pi/180), minCosLat)
		return lat + latOffset, lon + lonOffset

	case MethodGrid:
		return math.Round(lat/GridSizeDeg) * GridSizeDeg, math.Round(lon/GridSizeDeg) * GridSizeDeg

	case MethodTruncate:
		return math.Round(lat*1000) / 1000, math.Round(lon*1000) / 1000
	}
	return lat, lon
}

// ObfuscateTripGeometry fuzzes the first and last ~fuzzDistanceM meters of a
// trip path of [lon, lat] pairs.
//
// The vertices within fuzzDistanceM of either end are dropped, the new first
// and last vertices are noise-obfuscated, and the middle stays untouched.
// Paths too short to have an untouched middle keep their shape but get both
// endpoints noise-obfuscated.
func ObfuscateTripGeometry(coords [][]float64, fuzzDistanceM float64) [][]float64 {
	if len(coords) < 2 {
		return coords
	}

	// A walk that never accumulates fuzzDistanceM means the whole path sits
	// inside the fuzz radius; the defaults then force the short-path branch
	startTrim := len(coords) - 1
	distFromStart := 0.0
	for i := 1; i < len(coords); i++ {
		distFromStart += spatial.HaversineDistance(coords[i-1][1], coords[i-1][0], coords[i][1], coords[i][0])
		if distFromStart >= fuzzDistanceM {
			startTrim = i
			break
		}
	}

	endTrim := 0
	distFromEnd := 0.0
	for i := len(coords) - 1; i > 0; i-- {
		distFromEnd += spatial.HaversineDistance(coords[i][1], coords[i][0], coords[i-1][1], coords[i-1][0])
		if distFromEnd >= fuzzDistanceM {
			endTrim = i
			break
		}
	}

	if startTrim >= endTrim {
		result := make([][]float64, len(coords))
		copy(result, coords)
		lat, lon := ObfuscateLocation(coords[0][1], coords[0][0], MethodNoise)
		result[0] = []float64{lon, lat}
		lat, lon = ObfuscateLocation(coords[len(coords)-1][1], coords[len(coords)-1][0], MethodNoise)
		result[len(result)-1] = []float64{lon, lat}
		return result
	}

	fuzzed := make([][]float64, 0, endTrim-startTrim+3)
	lat, lon := ObfuscateLocation(coords[startTrim][1], coords[startTrim][0], MethodNoise)
	fuzzed = append(fuzzed, []float64{lon, lat})
	fuzzed = append(fuzzed, coords[startTrim:endTrim+1]...)
	lat, lon = ObfuscateLocation(coords[endTrim][1], coords[endTrim][0], MethodNoise)
	fuzzed = append(fuzzed, []float64{lon, lat})
	return fuzzed
}
