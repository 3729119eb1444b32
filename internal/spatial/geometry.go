package spatial

import (
	"math"
)

// InterpolatePath generates a straight path between two points as steps+1
// [lon, lat] pairs, linearly interpolated in degree space
func InterpolatePath(fromLat, fromLon, toLat, toLon float64, steps int) [][]float64 {
	coords := make([][]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		lat := fromLat + (toLat-fromLat)*t
		lon := fromLon + (toLon-fromLon)*t
		coords = append(coords, []float64{lon, lat})
	}
	return coords
}

// InterpolateViaPath generates a path from start to end through a via point,
// dropping the duplicate via vertex at the join
func InterpolateViaPath(fromLat, fromLon, toLat, toLon, viaLat, viaLon float64, stepsEach int) [][]float64 {
	a := InterpolatePath(fromLat, fromLon, viaLat, viaLon, stepsEach)
	b := InterpolatePath(viaLat, viaLon, toLat, toLon, stepsEach)
	return append(a, b[1:]...)
}

// PathDistance sums consecutive great-circle distances along a path of
// [lon, lat] pairs, in meters
func PathDistance(coords [][]float64) float64 {
	d := 0.0
	for i := 1; i < len(coords); i++ {
		d += HaversineDistance(coords[i-1][1], coords[i-1][0], coords[i][1], coords[i][0])
	}
	return d
}

// PointToSegmentDistance returns the degree-space distance from point
// (px, py) to the closest point on segment (ax, ay)-(bx, by).
// Latitude/longitude degrees are treated as locally Euclidean, which holds
// for the sub-degree tolerances this is used with.
func PointToSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	apx := px - ax
	apy := py - ay
	abSq := abx*abx + aby*aby
	if abSq == 0 {
		return math.Sqrt(apx*apx + apy*apy)
	}
	t := (apx*abx + apy*aby) / abSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX := ax + t*abx
	projY := ay + t*aby
	dx := px - projX
	dy := py - projY
	return math.Sqrt(dx*dx + dy*dy)
}
