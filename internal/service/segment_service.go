package service

import (
	"math"

	"github.com/openvelo/road-backend-go/internal/detection"
	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/internal/models"
)

// SegmentService manages road segments and their condition overrides
type SegmentService struct {
	segments SegmentStore
	users    UserStore
}

func NewSegmentService(segments SegmentStore, users UserStore) *SegmentService {
	return &SegmentService{segments: segments, users: users}
}

// List returns all segments with statuses localized for lang
func (s *SegmentService) List(lang string) ([]models.Segment, error) {
	segs, err := s.segments.ListSegments()
	if err != nil {
		return nil, err
	}
	for i := range segs {
		segs[i].StatusLocalized = i18n.Translate(segs[i].Status, lang)
	}
	return segs, nil
}

func (s *SegmentService) Get(id int64, lang string) (*models.Segment, error) {
	seg, err := s.segments.GetSegmentByID(id)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	seg.StatusLocalized = i18n.Translate(seg.Status, lang)
	return seg, nil
}

// Create validates the owner and coordinates before persisting. An empty
// status defaults to optimal.
func (s *SegmentService) Create(payload models.SegmentCreate) (*models.Segment, error) {
	user, err := s.users.GetUserByID(payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user_id not found")
	}
	if !validCoord(payload.StartLat, payload.StartLon) || !validCoord(payload.EndLat, payload.EndLon) {
		return nil, InvalidArgument("invalid coordinates")
	}
	status := payload.Status
	if status == "" {
		status = models.StatusOptimal
	}
	if !models.ValidStatus(status) {
		return nil, InvalidArgument("invalid status")
	}
	seg := &models.Segment{
		UserID:   payload.UserID,
		StartLat: payload.StartLat,
		StartLon: payload.StartLon,
		EndLat:   payload.EndLat,
		EndLon:   payload.EndLon,
		Status:   status,
		Obstacle: payload.Obstacle,
		RoadName: payload.RoadName,
	}
	return s.segments.CreateSegment(seg)
}

// DetectionOutcome couples a detector result with the segment it ran against
type DetectionOutcome struct {
	SegmentID      int64            `json:"segment_id"`
	CurrentStatus  string           `json:"current_status"`
	Detection      detection.Result `json:"detection"`
	Recommendation string           `json:"recommendation"`
}

// AutoDetect classifies sensor readings against a segment without changing it
func (s *SegmentService) AutoDetect(id int64, data *detection.SensorData) (*DetectionOutcome, error) {
	seg, err := s.segments.GetSegmentByID(id)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	result := detection.Detect(data)
	recommendation := "keep"
	if result.DetectedStatus != detection.StatusUnknown && result.DetectedStatus != seg.Status {
		recommendation = "update"
	}
	return &DetectionOutcome{
		SegmentID:      seg.ID,
		CurrentStatus:  seg.Status,
		Detection:      result,
		Recommendation: recommendation,
	}, nil
}

// StatusChange records a manual or detector-driven status override
type StatusChange struct {
	SegmentID int64  `json:"segment_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// ApplyDetection overrides a segment's status with a detector verdict the
// user accepted
func (s *SegmentService) ApplyDetection(id int64, status string) (*StatusChange, error) {
	if !models.ValidStatus(status) {
		return nil, InvalidArgument("invalid status")
	}
	seg, err := s.segments.GetSegmentByID(id)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	old := seg.Status
	if err := s.segments.OverrideSegmentStatus(id, status); err != nil {
		return nil, err
	}
	return &StatusChange{SegmentID: id, OldStatus: old, NewStatus: status}, nil
}

func validCoord(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
