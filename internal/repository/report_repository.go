package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
)

// ReportRepository handles database operations for reports
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReport inserts an unconfirmed report and returns it with its id
func (r *ReportRepository) CreateReport(segmentID int64, note string) (*models.Report, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(
		"INSERT INTO reports (segment_id, note, confirmed, created_at) VALUES (?, ?, 0, ?)",
		segmentID, note, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read report id: %w", err)
	}
	return &models.Report{ID: id, SegmentID: segmentID, Note: note, CreatedAt: now}, nil
}

// GetReportByID retrieves a single report by ID
func (r *ReportRepository) GetReportByID(id int64) (*models.Report, error) {
	var rep models.Report
	err := r.db.QueryRow(
		"SELECT id, segment_id, note, confirmed, created_at FROM reports WHERE id = ?", id,
	).Scan(&rep.ID, &rep.SegmentID, &rep.Note, &rep.Confirmed, &rep.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &rep, nil
}

// ListReportsBySegment retrieves all reports for one segment
func (r *ReportRepository) ListReportsBySegment(segmentID int64) ([]models.Report, error) {
	rows, err := r.db.Query(
		"SELECT id, segment_id, note, confirmed, created_at FROM reports WHERE segment_id = ? ORDER BY id",
		segmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.SegmentID, &rep.Note, &rep.Confirmed, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// CountReports returns the total number of reports and how many are confirmed
func (r *ReportRepository) CountReports() (total int64, confirmed int64, err error) {
	err = r.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(confirmed), 0) FROM reports`).Scan(&total, &confirmed)
	if err != nil {
		return 0, 0, fmt.Errorf("count reports: %w", err)
	}
	return total, confirmed, nil
}

// ConfirmReport flips a report's confirmed flag to true. Confirmation is
// monotonic; there is no way back to unconfirmed.
func (r *ReportRepository) ConfirmReport(id int64) error {
	_, err := r.db.Exec("UPDATE reports SET confirmed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to confirm report: %w", err)
	}
	return nil
}
