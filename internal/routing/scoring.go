package routing

import (
	"strings"

	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/spatial"
)

// SegmentMatchToleranceDeg is the degree-space distance within which a
// segment midpoint is considered to lie on a route (~200m at the equator)
const SegmentMatchToleranceDeg = 0.002

// Penalty weights per preference mode. Maintenance roads under safety_first
// are effectively treated as impassable.
type penaltyWeights struct {
	pothole     float64
	maintenance float64
	badRoad     float64
	medium      float64
}

var weightsByPreference = map[string]penaltyWeights{
	models.PreferenceSafetyFirst: {pothole: 1200, maintenance: 10.0, badRoad: 5.0, medium: 1.5},
	models.PreferenceShortest:    {pothole: 100, maintenance: 0.8, badRoad: 0.3, medium: 0.1},
	models.PreferenceBalanced:    {pothole: 500, maintenance: 4.0, badRoad: 2.0, medium: 0.5},
}

// FindSegmentsNearRoute returns every segment whose midpoint lies within
// toleranceDeg of any leg of the route. A segment can match several
// candidate routes independently.
func FindSegmentsNearRoute(coords [][]float64, segments []models.Segment, toleranceDeg float64) []models.Segment {
	var nearby []models.Segment
	for _, seg := range segments {
		midLat, midLon := seg.Midpoint()
		for i := 0; i < len(coords)-1; i++ {
			d := spatial.PointToSegmentDistance(
				midLon, midLat,
				coords[i][0], coords[i][1],
				coords[i+1][0], coords[i+1][1],
			)
			if d < toleranceDeg {
				nearby = append(nearby, seg)
				break
			}
		}
	}
	return nearby
}

// ScoreResult carries everything the scorer derives for one candidate
type ScoreResult struct {
	Score        float64 // distance + penalty, lower is better
	QualityScore float64 // 0-100, higher is better
	PotholeCount int
	BadRoadM     float64
	Tags         []string
	Warnings     []models.Warning
}

// ScoreCandidate accumulates surface-defect penalties for a route of the
// given distance crossing the given nearby segments.
//
// Each segment emits at most one warning: a segment already warned for a
// pothole does not also warn for road work.
func ScoreCandidate(distanceMeters float64, nearby []models.Segment, preference string) ScoreResult {
	weights, ok := weightsByPreference[preference]
	if !ok {
		weights = weightsByPreference[models.PreferenceBalanced]
	}

	var (
		potholeCount   int
		badRoadM       float64
		maintenanceM   float64
		mediumM        float64
		warnings       []models.Warning
		warnedSegments = make(map[int64]bool)
	)

	for _, seg := range nearby {
		midLat, midLon := seg.Midpoint()
		segLen := spatial.HaversineDistance(seg.StartLat, seg.StartLon, seg.EndLat, seg.EndLon)

		if strings.Contains(strings.ToLower(seg.Obstacle), "pothole") {
			potholeCount++
			warnings = append(warnings, models.Warning{Lat: midLat, Lon: midLon, Type: models.WarningPothole})
			warnedSegments[seg.ID] = true
		}

		switch seg.Status {
		case models.StatusMaintenance:
			maintenanceM += segLen
			badRoadM += segLen
			if !warnedSegments[seg.ID] {
				warnings = append(warnings, models.Warning{Lat: midLat, Lon: midLon, Type: models.WarningRoadWork})
				warnedSegments[seg.ID] = true
			}
		case models.StatusSuboptimal:
			badRoadM += segLen
			warnings = append(warnings, models.Warning{Lat: midLat, Lon: midLon, Type: models.WarningBadRoad})
		case models.StatusMedium:
			mediumM += segLen
		}
	}

	penalty := float64(potholeCount)*weights.pothole +
		maintenanceM*weights.maintenance +
		badRoadM*weights.badRoad +
		mediumM*weights.medium

	score := distanceMeters + penalty

	quality := 100.0
	if maxPenalty := distanceMeters * 3; maxPenalty > 0 {
		quality = 100 - (penalty/maxPenalty)*100
		if quality < 0 {
			quality = 0
		} else if quality > 100 {
			quality = 100
		}
	}

	var tags []string
	hasIssues := potholeCount > 0 || badRoadM > 0 || maintenanceM > 0

	// "Best Surface" and "Fastest" are mutually exclusive primary tags; the
	// shortest preference expresses a clean route via "Fastest" instead,
	// applied by the caller based on route position.
	if !hasIssues && preference != models.PreferenceShortest {
		tags = append(tags, models.TagBestSurface)
	}

	if potholeCount > 0 {
		tags = append(tags, models.TagBumpy)
	}
	if maintenanceM > 100 {
		tags = append(tags, models.TagRoadWork)
	} else if badRoadM > 100 {
		tags = append(tags, models.TagPoorSurface)
	}
	if mediumM > distanceMeters*0.3 {
		tags = append(tags, models.TagMixedSurface)
	}

	return ScoreResult{
		Score:        score,
		QualityScore: quality,
		PotholeCount: potholeCount,
		BadRoadM:     badRoadM,
		Tags:         tags,
		Warnings:     warnings,
	}
}
