package service

import (
	"math"

	"github.com/openvelo/road-backend-go/internal/i18n"
)

// StatsService summarizes the dataset for the dashboard
type StatsService struct {
	users    UserStore
	segments SegmentStore
	reports  ReportStore
	trips    TripStore
}

func NewStatsService(users UserStore, segments SegmentStore, reports ReportStore, trips TripStore) *StatsService {
	return &StatsService{users: users, segments: segments, reports: reports, trips: trips}
}

// StatsSummary is the dashboard snapshot
type StatsSummary struct {
	Users            int                  `json:"users"`
	Segments         int                  `json:"segments"`
	SegmentsByStatus map[string]int       `json:"segments_by_status"`
	StatusLabels     map[string]string    `json:"status_labels"`
	Reports          StatsReportBreakdown `json:"reports"`
	Trips            int                  `json:"trips"`
	TotalDistanceKm  float64              `json:"total_distance_km"`
}

// StatsReportBreakdown splits reports by confirmation state
type StatsReportBreakdown struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
}

// Summary counts users, segments by status, reports and trips
func (s *StatsService) Summary(lang string) (*StatsSummary, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, err
	}
	segments, err := s.segments.ListSegments()
	if err != nil {
		return nil, err
	}
	totalReports, confirmedReports, err := s.reports.CountReports()
	if err != nil {
		return nil, err
	}
	trips, err := s.trips.ListTrips(nil)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	labels := make(map[string]string)
	for _, seg := range segments {
		byStatus[seg.Status]++
		if _, ok := labels[seg.Status]; !ok {
			labels[seg.Status] = i18n.Translate(seg.Status, lang)
		}
	}

	var totalDistanceM float64
	for _, t := range trips {
		totalDistanceM += t.DistanceMeters
	}

	return &StatsSummary{
		Users:            len(users),
		Segments:         len(segments),
		SegmentsByStatus: byStatus,
		StatusLabels:     labels,
		Reports: StatsReportBreakdown{
			Total:     totalReports,
			Confirmed: confirmedReports,
			Pending:   totalReports - confirmedReports,
		},
		Trips:           len(trips),
		TotalDistanceKm: math.Round(totalDistanceM/10) / 100,
	}, nil
}
