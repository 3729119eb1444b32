package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
)

const segmentColumns = `id, user_id, start_lat, start_lon, end_lat, end_lon,
	status, obstacle, road_name, last_aggregated, created_at`

// SegmentRepository handles database operations for segments
type SegmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new segment repository
func NewSegmentRepository(db *sql.DB) *SegmentRepository {
	return &SegmentRepository{db: db}
}

// CreateSegment inserts a segment and returns it with its assigned id
func (r *SegmentRepository) CreateSegment(s *models.Segment) (*models.Segment, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO segments (user_id, start_lat, start_lon, end_lat, end_lon, status, obstacle, road_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.UserID, s.StartLat, s.StartLon, s.EndLat, s.EndLon, s.Status, s.Obstacle, s.RoadName, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert segment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read segment id: %w", err)
	}

	created := *s
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

// GetSegmentByID retrieves a single segment by ID
func (r *SegmentRepository) GetSegmentByID(id int64) (*models.Segment, error) {
	row := r.db.QueryRow("SELECT "+segmentColumns+" FROM segments WHERE id = ?", id)
	seg, err := scanSegment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}
	return seg, nil
}

// ListSegments retrieves all segments
func (r *SegmentRepository) ListSegments() ([]models.Segment, error) {
	rows, err := r.db.Query("SELECT " + segmentColumns + " FROM segments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	var segments []models.Segment
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, *seg)
	}
	return segments, rows.Err()
}

// UpdateSegmentStatus sets a segment's status and stamps last_aggregated
func (r *SegmentRepository) UpdateSegmentStatus(id int64, status string, aggregatedAt time.Time) error {
	_, err := r.db.Exec("UPDATE segments SET status = ?, last_aggregated = ? WHERE id = ?", status, aggregatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update segment status: %w", err)
	}
	return nil
}

// OverrideSegmentStatus sets a segment's status without touching last_aggregated
func (r *SegmentRepository) OverrideSegmentStatus(id int64, status string) error {
	_, err := r.db.Exec("UPDATE segments SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to override segment status: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSegment(row rowScanner) (*models.Segment, error) {
	var s models.Segment
	var lastAggregated sql.NullTime
	err := row.Scan(
		&s.ID, &s.UserID, &s.StartLat, &s.StartLon, &s.EndLat, &s.EndLon,
		&s.Status, &s.Obstacle, &s.RoadName, &lastAggregated, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastAggregated.Valid {
		t := lastAggregated.Time
		s.LastAggregated = &t
	}
	return &s, nil
}
