package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/routing"
	"github.com/openvelo/road-backend-go/internal/spatial"
	"github.com/openvelo/road-backend-go/internal/weather"
)

const searchCandidates = 3

var candidateLabels = [routing.MaxCandidates]string{"A", "B", "C", "D", "E"}

// RouteService plans bicycle routes, scores them against known segment
// conditions and attaches weather context
type RouteService struct {
	segments SegmentStore
	provider routing.Provider
	weather  *weather.Service
}

func NewRouteService(segments SegmentStore, provider routing.Provider, w *weather.Service) *RouteService {
	return &RouteService{segments: segments, provider: provider, weather: w}
}

// RouteView is the client-facing shape of one ranked candidate
type RouteView struct {
	RouteID          string                   `json:"route_id"`
	Rank             int                      `json:"rank"`
	TotalDistance    float64                  `json:"total_distance"`
	DurationSeconds  float64                  `json:"duration_seconds"`
	DurationDisplay  string                   `json:"duration_display"`
	RoadQualityScore float64                  `json:"road_quality_score"`
	Tags             []string                 `json:"tags"`
	TagsLocalized    []string                 `json:"tags_localized"`
	Geometry         string                   `json:"geometry"`
	GeometryGeoJSON  models.GeoJSONLineString `json:"geometry_geojson"`
	SegmentsWarning  []models.Warning         `json:"segments_warning"`
	Source           string                   `json:"source"`
}

// SearchResult bundles ranked routes with the weather at the route midpoint
type SearchResult struct {
	Routes                []RouteView     `json:"routes"`
	RouteSource           string          `json:"route_source"`
	Weather               weather.Weather `json:"weather"`
	CyclingRecommendation string          `json:"cycling_recommendation"`
}

// Search plans up to three candidates between two points, scores them by
// the requested preference and returns them ranked best first
func (s *RouteService) Search(ctx context.Context, req models.PathSearchRequest, lang string) (*SearchResult, error) {
	from, to := req.Origin, req.Destination
	if !validCoord(from.Lat, from.Lon) || !validCoord(to.Lat, to.Lon) {
		return nil, InvalidArgument("invalid coordinates")
	}
	pref := req.Preferences
	if pref == "" {
		pref = models.PreferenceBalanced
	}
	if !models.ValidPreference(pref) {
		return nil, InvalidArgument("invalid preference")
	}

	candidates, source, err := s.buildCandidates(ctx, from.Lat, from.Lon, to.Lat, to.Lon, searchCandidates, pref)
	if err != nil {
		return nil, err
	}
	views := s.rankAndRender(candidates, lang)

	midLat := (from.Lat + to.Lat) / 2
	midLon := (from.Lon + to.Lon) / 2
	w := s.weather.Get(midLat, midLon, lang)
	return &SearchResult{
		Routes:                views,
		RouteSource:           source,
		Weather:               w,
		CyclingRecommendation: s.weather.CyclingRecommendation(w, lang),
	}, nil
}

// Preview returns up to n scored candidates without weather enrichment,
// used by the map to sketch alternatives while the user drags markers
func (s *RouteService) Preview(ctx context.Context, req models.RoutesRequest, lang string) ([]RouteView, string, error) {
	if !validCoord(req.FromLat, req.FromLon) || !validCoord(req.ToLat, req.ToLon) {
		return nil, "", InvalidArgument("invalid coordinates")
	}
	n := req.N
	if n < 1 {
		n = 1
	}
	if n > routing.MaxCandidates {
		n = routing.MaxCandidates
	}
	pref := req.Preference
	if pref == "" {
		pref = models.PreferenceBalanced
	}
	if !models.ValidPreference(pref) {
		return nil, "", InvalidArgument("invalid preference")
	}
	candidates, source, err := s.buildCandidates(ctx, req.FromLat, req.FromLon, req.ToLat, req.ToLon, n, pref)
	if err != nil {
		return nil, "", err
	}
	return s.rankAndRender(candidates, lang), source, nil
}

// buildCandidates asks the routing provider first and falls back to
// synthetic geometry when the provider is unreachable or finds no route.
// Provider failures are recovered here and never surface to the caller.
func (s *RouteService) buildCandidates(ctx context.Context, fromLat, fromLon, toLat, toLon float64, n int, pref string) ([]models.RouteCandidate, string, error) {
	segments, err := s.segments.ListSegments()
	if err != nil {
		return nil, "", fmt.Errorf("list segments: %w", err)
	}

	if s.provider != nil {
		routes, perr := s.provider.Routes(ctx, fromLat, fromLon, toLat, toLon, n > 1)
		if perr == nil && len(routes) > 0 {
			if len(routes) > n {
				routes = routes[:n]
			}
			out := make([]models.RouteCandidate, 0, len(routes))
			for idx, r := range routes {
				cand := s.scoreOne(r.Coords, r.DistanceMeters, r.DurationSeconds, segments, pref)
				cand.RouteID = candidateLabels[idx]
				cand.Source = models.SourceProvider
				if idx == 0 {
					if pref == models.PreferenceShortest {
						cand.Tags = prependTag(removeTag(cand.Tags, models.TagBestSurface), models.TagFastest)
					} else {
						cand.Tags = prependTag(cand.Tags, models.TagRecommended)
					}
				} else {
					cand.Tags = prependTag(cand.Tags, models.TagAlternative)
				}
				out = append(out, cand)
			}
			return out, models.SourceProvider, nil
		}
		if perr != nil {
			log.Printf("route provider unavailable, using fallback: %v", perr)
		}
	}

	fallback := routing.GenerateFallback(fromLat, fromLon, toLat, toLon, n)
	baseDist := fallback[0].DistanceMeters
	out := make([]models.RouteCandidate, 0, len(fallback))
	for idx, fr := range fallback {
		cand := s.scoreOne(fr.Coords, fr.DistanceMeters, fr.DurationSeconds, segments, pref)
		cand.RouteID = candidateLabels[idx]
		cand.Source = models.SourceFallback
		if fr.Direct {
			if pref == models.PreferenceShortest {
				cand.Tags = prependTag(removeTag(cand.Tags, models.TagBestSurface), models.TagFastest)
			} else {
				cand.Tags = prependTag(cand.Tags, models.TagShortest)
			}
		} else {
			cand.Tags = prependTag(cand.Tags, models.TagAlternative)
		}
		if fr.DistanceMeters > baseDist {
			cand.Tags = append(removeTag(cand.Tags, models.TagFastest), models.TagSlightlyLonger)
		}
		out = append(out, cand)
	}
	return out, models.SourceFallback, nil
}

func (s *RouteService) scoreOne(coords [][]float64, distance, duration float64, segments []models.Segment, pref string) models.RouteCandidate {
	near := routing.FindSegmentsNearRoute(coords, segments, routing.SegmentMatchToleranceDeg)
	scored := routing.ScoreCandidate(distance, near, pref)
	return models.RouteCandidate{
		Coords:          coords,
		Score:           scored.Score,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		QualityScore:    scored.QualityScore,
		Tags:            scored.Tags,
		Warnings:        scored.Warnings,
	}
}

// rankAndRender sorts candidates best first and produces the localized
// client views. Ordering is stable so provider order breaks score ties.
func (s *RouteService) rankAndRender(candidates []models.RouteCandidate, lang string) []RouteView {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	views := make([]RouteView, 0, len(candidates))
	for rank, cand := range candidates {
		warnings := make([]models.Warning, len(cand.Warnings))
		copy(warnings, cand.Warnings)
		for i := range warnings {
			warnings[i].TypeLocalized = i18n.Translate(warnings[i].Type, lang)
		}
		views = append(views, RouteView{
			RouteID:          cand.RouteID,
			Rank:             rank + 1,
			TotalDistance:    cand.DistanceMeters,
			DurationSeconds:  cand.DurationSeconds,
			DurationDisplay:  formatDuration(cand.DurationSeconds),
			RoadQualityScore: cand.QualityScore,
			Tags:             cand.Tags,
			TagsLocalized:    i18n.TranslateList(cand.Tags, lang),
			Geometry:         spatial.EncodePolyline(cand.Coords, 5),
			GeometryGeoJSON:  models.NewLineString(cand.Coords),
			SegmentsWarning:  warnings,
			Source:           cand.Source,
		})
	}
	return views
}

func prependTag(tags []string, tag string) []string {
	return append([]string{tag}, tags...)
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m < 1 {
		m = 1
	}
	return fmt.Sprintf("%d min", m)
}
