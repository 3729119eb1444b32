package models

import "time"

// Report represents a user submission describing observed condition of a segment
type Report struct {
	ID        int64     `json:"id" db:"id"`
	SegmentID int64     `json:"segment_id" db:"segment_id"`
	Note      string    `json:"note,omitempty" db:"note"`
	Confirmed bool      `json:"confirmed" db:"confirmed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReportCreate is the payload for report submission. The segment id comes
// from the URL path, not the body.
type ReportCreate struct {
	SegmentID int64  `json:"-"`
	Note      string `json:"note"`
}

// BatchConfirmResult is the per-id outcome of a batch confirmation
type BatchConfirmResult struct {
	ID        int64  `json:"id"`
	Confirmed bool   `json:"confirmed,omitempty"`
	Error     string `json:"error,omitempty"`
}
