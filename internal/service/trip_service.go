package service

import (
	"context"
	"log"

	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/privacy"
	"github.com/openvelo/road-backend-go/internal/routing"
	"github.com/openvelo/road-backend-go/internal/spatial"
	"github.com/openvelo/road-backend-go/internal/weather"
)

const tripGeometrySteps = 30

// TripService records rides and sanitizes them before publication.
// Raw endpoints and geometry stay private; everything that leaves the API
// by default is obfuscated.
type TripService struct {
	trips    TripStore
	users    UserStore
	provider routing.Provider
	weather  *weather.Service
}

func NewTripService(trips TripStore, users UserStore, provider routing.Provider, w *weather.Service) *TripService {
	return &TripService{trips: trips, users: users, provider: provider, weather: w}
}

// Create records a trip. Geometry comes from the payload, the routing
// provider, or interpolation, in that order of preference.
func (s *TripService) Create(ctx context.Context, payload models.TripCreate, lang string) (*models.Trip, error) {
	user, err := s.users.GetUserByID(payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user_id not found")
	}
	if !validCoord(payload.FromLat, payload.FromLon) || !validCoord(payload.ToLat, payload.ToLon) {
		return nil, InvalidArgument("invalid coordinates")
	}

	coords, source := s.resolveGeometry(ctx, payload)

	distance := spatial.PathDistance(coords)
	if payload.DistanceMeters != nil && *payload.DistanceMeters > 0 {
		distance = *payload.DistanceMeters
	}
	duration := spatial.EstimateDuration(distance)
	if payload.DurationSeconds != nil && *payload.DurationSeconds > 0 {
		duration = *payload.DurationSeconds
	}

	pubFromLat, pubFromLon := privacy.ObfuscateLocation(payload.FromLat, payload.FromLon, privacy.MethodTruncate)
	pubToLat, pubToLon := privacy.ObfuscateLocation(payload.ToLat, payload.ToLon, privacy.MethodTruncate)
	publicCoords := privacy.ObfuscateTripGeometry(coords, privacy.FuzzMeters)

	midLat := (payload.FromLat + payload.ToLat) / 2
	midLon := (payload.FromLon + payload.ToLon) / 2
	w := s.weather.Get(midLat, midLon, lang)

	private := models.NewLineString(coords)
	trip := &models.Trip{
		UserID:          payload.UserID,
		FromLat:         pubFromLat,
		FromLon:         pubFromLon,
		ToLat:           pubToLat,
		ToLon:           pubToLon,
		PrivateFromLat:  payload.FromLat,
		PrivateFromLon:  payload.FromLon,
		PrivateToLat:    payload.ToLat,
		PrivateToLon:    payload.ToLon,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		Geometry:        models.NewLineString(publicCoords),
		PrivateGeometry: &private,
		WeatherSummary:  w.Summary,
		RouteSource:     source,
	}
	created, err := s.trips.CreateTrip(trip)
	if err != nil {
		return nil, err
	}
	sanitized := created.Sanitized()
	return &sanitized, nil
}

// resolveGeometry picks the trip path. Provider failures fall back to
// interpolation and are never surfaced.
func (s *TripService) resolveGeometry(ctx context.Context, payload models.TripCreate) ([][]float64, string) {
	if payload.Geometry != nil && len(payload.Geometry.Coordinates) >= 2 {
		return payload.Geometry.Coordinates, "geometry"
	}
	if payload.UseProvider && s.provider != nil {
		routes, err := s.provider.Routes(ctx, payload.FromLat, payload.FromLon, payload.ToLat, payload.ToLon, false)
		if err == nil && len(routes) > 0 {
			return routes[0].Coords, models.SourceProvider
		}
		if err != nil {
			log.Printf("trip geometry provider unavailable, interpolating: %v", err)
		}
	}
	return spatial.InterpolatePath(payload.FromLat, payload.FromLon, payload.ToLat, payload.ToLon, tripGeometrySteps), models.SourceFallback
}

// List returns trips, sanitized unless includePrivate is set
func (s *TripService) List(userID *int64, includePrivate bool) ([]models.Trip, error) {
	trips, err := s.trips.ListTrips(userID)
	if err != nil {
		return nil, err
	}
	if !includePrivate {
		for i := range trips {
			trips[i] = trips[i].Sanitized()
		}
	}
	return trips, nil
}

func (s *TripService) Get(id int64, includePrivate bool) (*models.Trip, error) {
	trip, err := s.trips.GetTripByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, NotFound("trip_id not found")
	}
	if !includePrivate {
		sanitized := trip.Sanitized()
		return &sanitized, nil
	}
	return trip, nil
}

func (s *TripService) Delete(id int64) error {
	deleted, err := s.trips.DeleteTrip(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("trip_id not found")
	}
	return nil
}
