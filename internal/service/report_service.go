package service

import (
	"github.com/openvelo/road-backend-go/internal/models"
)

// ReportService manages crowd-sourced condition reports
type ReportService struct {
	reports  ReportStore
	segments SegmentStore
}

func NewReportService(reports ReportStore, segments SegmentStore) *ReportService {
	return &ReportService{reports: reports, segments: segments}
}

// Create attaches a free-text report to an existing segment
func (s *ReportService) Create(payload models.ReportCreate) (*models.Report, error) {
	seg, err := s.segments.GetSegmentByID(payload.SegmentID)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	return s.reports.CreateReport(payload.SegmentID, payload.Note)
}

func (s *ReportService) ListBySegment(segmentID int64) ([]models.Report, error) {
	seg, err := s.segments.GetSegmentByID(segmentID)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	return s.reports.ListReportsBySegment(segmentID)
}

// Confirm marks a single report as verified. Confirming twice is a no-op.
func (s *ReportService) Confirm(id int64) (*models.Report, error) {
	report, err := s.reports.GetReportByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, NotFound("report_id not found")
	}
	if err := s.reports.ConfirmReport(id); err != nil {
		return nil, err
	}
	report.Confirmed = true
	return report, nil
}

// BatchConfirm confirms several reports in one call, recording a per-id
// outcome instead of failing the whole batch on the first miss
func (s *ReportService) BatchConfirm(ids []int64) []models.BatchConfirmResult {
	results := make([]models.BatchConfirmResult, 0, len(ids))
	for _, id := range ids {
		res := models.BatchConfirmResult{ID: id}
		report, err := s.reports.GetReportByID(id)
		switch {
		case err != nil:
			res.Error = err.Error()
		case report == nil:
			res.Error = "report_id not found"
		default:
			if err := s.reports.ConfirmReport(id); err != nil {
				res.Error = err.Error()
			} else {
				res.Confirmed = true
			}
		}
		results = append(results, res)
	}
	return results
}

// AutoConfirmSummary describes the outcome of a threshold-based auto confirm
type AutoConfirmSummary struct {
	SegmentID    int64  `json:"segment_id"`
	Unconfirmed  int    `json:"unconfirmed"`
	Confirmed    int    `json:"confirmed"`
	Threshold    int    `json:"threshold"`
	ThresholdMet bool   `json:"threshold_met"`
	Message      string `json:"message,omitempty"`
}

// AutoConfirm confirms every pending report on a segment once enough
// independent reports agree that something is wrong
func (s *ReportService) AutoConfirm(segmentID int64, threshold int) (*AutoConfirmSummary, error) {
	if threshold < 1 {
		threshold = 2
	}
	seg, err := s.segments.GetSegmentByID(segmentID)
	if err != nil {
		return nil, err
	}
	if seg == nil {
		return nil, NotFound("segment_id not found")
	}
	reports, err := s.reports.ListReportsBySegment(segmentID)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if !r.Confirmed {
			pending = append(pending, r)
		}
	}
	summary := &AutoConfirmSummary{
		SegmentID:   segmentID,
		Unconfirmed: len(pending),
		Threshold:   threshold,
	}
	if len(pending) < threshold {
		summary.Message = "not enough unconfirmed reports"
		return summary, nil
	}
	summary.ThresholdMet = true
	for _, r := range pending {
		if err := s.reports.ConfirmReport(r.ID); err != nil {
			return nil, err
		}
		summary.Confirmed++
	}
	return summary, nil
}
