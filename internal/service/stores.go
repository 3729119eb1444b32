package service

import (
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
)

// Store interfaces mirror the repository layer so services can be exercised
// against in-memory fakes in tests.

// UserStore persists users
type UserStore interface {
	CreateUser(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// SegmentStore persists road segments
type SegmentStore interface {
	CreateSegment(seg *models.Segment) (*models.Segment, error)
	GetSegmentByID(id int64) (*models.Segment, error)
	ListSegments() ([]models.Segment, error)
	UpdateSegmentStatus(id int64, status string, aggregatedAt time.Time) error
	OverrideSegmentStatus(id int64, status string) error
}

// ReportStore persists segment condition reports
type ReportStore interface {
	CreateReport(segmentID int64, note string) (*models.Report, error)
	GetReportByID(id int64) (*models.Report, error)
	ListReportsBySegment(segmentID int64) ([]models.Report, error)
	ConfirmReport(id int64) error
	CountReports() (total int64, confirmed int64, err error)
}

// TripStore persists recorded trips
type TripStore interface {
	CreateTrip(trip *models.Trip) (*models.Trip, error)
	GetTripByID(id int64) (*models.Trip, error)
	ListTrips(userID *int64) ([]models.Trip, error)
	DeleteTrip(id int64) (bool, error)
}

// SettingsStore persists per-user preferences
type SettingsStore interface {
	GetSettings(userID int64) (*models.Settings, error)
	SaveSettings(s *models.Settings) error
}
