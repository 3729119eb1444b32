package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openvelo/road-backend-go/internal/spatial"
)

func TestObfuscateLocationNoise(t *testing.T) {
	lat, lon := 1.2834, 103.8607
	for i := 0; i < 50; i++ {
		nLat, nLon := ObfuscateLocation(lat, lon, MethodNoise)
		d := spatial.HaversineDistance(lat, lon, nLat, nLon)
		assert.LessOrEqual(t, d, FuzzMeters*1.1, "noise must stay within the fuzz radius")
	}
}

func TestObfuscateLocationGrid(t *testing.T) {
	lat, lon := ObfuscateLocation(1.28345, 103.86072, MethodGrid)

	// Snapped values are multiples of the grid size
	assert.InDelta(t, 1.284, lat, 1e-9)
	assert.InDelta(t, 103.860, lon, 1e-9)
}

func TestObfuscateLocationTruncate(t *testing.T) {
	lat, lon := ObfuscateLocation(1.2834567, 103.8607891, MethodTruncate)
	assert.InDelta(t, 1.283, lat, 1e-9)
	assert.InDelta(t, 103.861, lon, 1e-9)
}

func TestObfuscateLocationUnknownMethod(t *testing.T) {
	lat, lon := ObfuscateLocation(1.2834, 103.8607, "whatever")
	assert.Equal(t, 1.2834, lat)
	assert.Equal(t, 103.8607, lon)
}

func TestObfuscateTripGeometryLongPath(t *testing.T) {
	// ~2.2km of path, comfortably longer than twice the fuzz distance
	coords := spatial.InterpolatePath(1.30, 103.80, 1.31, 103.815, 30)
	fuzzed := ObfuscateTripGeometry(coords, FuzzMeters)

	require.GreaterOrEqual(t, len(fuzzed), 2)

	// The published endpoints never coincide with the real ones
	assert.NotEqual(t, coords[0], fuzzed[0])
	assert.NotEqual(t, coords[len(coords)-1], fuzzed[len(fuzzed)-1])

	// The middle of the ride survives untouched
	middle := coords[len(coords)/2]
	found := false
	for _, c := range fuzzed {
		if c[0] == middle[0] && c[1] == middle[1] {
			found = true
			break
		}
	}
	assert.True(t, found, "middle vertex should be preserved")
}

func TestObfuscateTripGeometryShortPath(t *testing.T) {
	// ~120m end to end, shorter than the fuzz distance
	coords := spatial.InterpolatePath(1.3000, 103.8000, 1.3010, 103.8002, 10)
	fuzzed := ObfuscateTripGeometry(coords, FuzzMeters)

	// Shape is kept, both endpoints are replaced
	require.Len(t, fuzzed, len(coords))
	assert.NotEqual(t, coords[0], fuzzed[0])
	assert.NotEqual(t, coords[len(coords)-1], fuzzed[len(fuzzed)-1])
	assert.Equal(t, coords[1], fuzzed[1])
}

func TestObfuscateTripGeometryDegenerate(t *testing.T) {
	single := [][]float64{{103.80, 1.30}}
	assert.Equal(t, single, ObfuscateTripGeometry(single, FuzzMeters))
	assert.Nil(t, ObfuscateTripGeometry(nil, FuzzMeters))
}
