package spatial

import (
	"math"
	"strings"
)

// EncodePolyline encodes a path of [lon, lat] pairs using the Google
// polyline algorithm: coordinates scaled by 10^precision, successive deltas
// (lat then lon) zig-zag transformed and written as 5-bit chunks offset by 63
func EncodePolyline(coords [][]float64, precision int) string {
	var sb strings.Builder
	multiplier := math.Pow10(precision)
	prevLat, prevLon := int64(0), int64(0)

	for _, c := range coords {
		latInt := int64(math.Round(c[1] * multiplier))
		lonInt := int64(math.Round(c[0] * multiplier))
		encodeSigned(&sb, latInt-prevLat)
		encodeSigned(&sb, lonInt-prevLon)
		prevLat, prevLon = latInt, lonInt
	}

	return sb.String()
}

func encodeSigned(sb *strings.Builder, value int64) {
	v := value << 1
	if value < 0 {
		v = ^v
	}
	for v >= 0x20 {
		sb.WriteByte(byte(0x20|(v&0x1f)) + 63)
		v >>= 5
	}
	sb.WriteByte(byte(v) + 63)
}
