package service

import (
	"context"
	"errors"
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/routing"
)

// In-memory stores for service tests. IDs are assigned sequentially the way
// the sqlite layer does.

type memUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (m *memUserStore) CreateUser(username string) (*models.User, error) {
	u := &models.User{ID: m.nextID, Username: username, CreatedAt: time.Now()}
	m.users[u.ID] = u
	m.nextID++
	return u, nil
}

func (m *memUserStore) GetUserByID(id int64) (*models.User, error) {
	return m.users[id], nil
}

func (m *memUserStore) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) ListUsers() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

type memSegmentStore struct {
	segments map[int64]*models.Segment
	nextID   int64
}

func newMemSegmentStore() *memSegmentStore {
	return &memSegmentStore{segments: make(map[int64]*models.Segment), nextID: 1}
}

func (m *memSegmentStore) CreateSegment(seg *models.Segment) (*models.Segment, error) {
	copied := *seg
	copied.ID = m.nextID
	copied.CreatedAt = time.Now()
	m.segments[copied.ID] = &copied
	m.nextID++
	return &copied, nil
}

func (m *memSegmentStore) GetSegmentByID(id int64) (*models.Segment, error) {
	seg, ok := m.segments[id]
	if !ok {
		return nil, nil
	}
	copied := *seg
	return &copied, nil
}

func (m *memSegmentStore) ListSegments() ([]models.Segment, error) {
	out := make([]models.Segment, 0, len(m.segments))
	for _, seg := range m.segments {
		out = append(out, *seg)
	}
	return out, nil
}

func (m *memSegmentStore) UpdateSegmentStatus(id int64, status string, aggregatedAt time.Time) error {
	seg, ok := m.segments[id]
	if !ok {
		return errors.New("segment missing")
	}
	seg.Status = status
	seg.LastAggregated = &aggregatedAt
	return nil
}

func (m *memSegmentStore) OverrideSegmentStatus(id int64, status string) error {
	seg, ok := m.segments[id]
	if !ok {
		return errors.New("segment missing")
	}
	seg.Status = status
	return nil
}

type memReportStore struct {
	reports map[int64]*models.Report
	nextID  int64
}

func newMemReportStore() *memReportStore {
	return &memReportStore{reports: make(map[int64]*models.Report), nextID: 1}
}

func (m *memReportStore) CreateReport(segmentID int64, note string) (*models.Report, error) {
	r := &models.Report{ID: m.nextID, SegmentID: segmentID, Note: note, CreatedAt: time.Now()}
	m.reports[r.ID] = r
	m.nextID++
	return r, nil
}

func (m *memReportStore) GetReportByID(id int64) (*models.Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *memReportStore) ListReportsBySegment(segmentID int64) ([]models.Report, error) {
	var out []models.Report
	for _, r := range m.reports {
		if r.SegmentID == segmentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReportStore) ConfirmReport(id int64) error {
	r, ok := m.reports[id]
	if !ok {
		return errors.New("report missing")
	}
	r.Confirmed = true
	return nil
}

func (m *memReportStore) CountReports() (int64, int64, error) {
	var total, confirmed int64
	for _, r := range m.reports {
		total++
		if r.Confirmed {
			confirmed++
		}
	}
	return total, confirmed, nil
}

type memTripStore struct {
	trips  map[int64]*models.Trip
	nextID int64
}

func newMemTripStore() *memTripStore {
	return &memTripStore{trips: make(map[int64]*models.Trip), nextID: 1}
}

func (m *memTripStore) CreateTrip(trip *models.Trip) (*models.Trip, error) {
	copied := *trip
	copied.ID = m.nextID
	copied.CreatedAt = time.Now()
	m.trips[copied.ID] = &copied
	m.nextID++
	result := copied
	return &result, nil
}

func (m *memTripStore) GetTripByID(id int64) (*models.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (m *memTripStore) ListTrips(userID *int64) ([]models.Trip, error) {
	var out []models.Trip
	for _, t := range m.trips {
		if userID == nil || t.UserID == *userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTripStore) DeleteTrip(id int64) (bool, error) {
	if _, ok := m.trips[id]; !ok {
		return false, nil
	}
	delete(m.trips, id)
	return true, nil
}

type memSettingsStore struct {
	settings map[int64]*models.Settings
}

func newMemSettingsStore() *memSettingsStore {
	return &memSettingsStore{settings: make(map[int64]*models.Settings)}
}

func (m *memSettingsStore) GetSettings(userID int64) (*models.Settings, error) {
	s, ok := m.settings[userID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *memSettingsStore) SaveSettings(s *models.Settings) error {
	copied := *s
	m.settings[s.UserID] = &copied
	return nil
}

// stubProvider returns canned routes or an error
type stubProvider struct {
	routes []routing.ProviderRoute
	err    error
	calls  int
}

func (p *stubProvider) Routes(ctx context.Context, fromLat, fromLon, toLat, toLon float64, alternatives bool) ([]routing.ProviderRoute, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.routes, nil
}
