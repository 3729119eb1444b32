// Package aggregation turns the stream of user condition reports for a
// segment into a weighted consensus status.
package aggregation

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/openvelo/road-backend-go/internal/models"
)

// Weighting and decision constants. These thresholds are load-bearing
// business rules shared with the mobile clients; do not tune casually.
const (
	FreshnessDays   = 30
	FreshnessWeight = 2.0
	ConfirmedWeight = 1.5
	ThresholdBad    = 0.6
	ThresholdMedium = 0.3
	ThresholdGood   = 0.7

	// Neutral reports lean slightly negative for safety
	neutralNegativeShare = 0.3
	neutralPositiveShare = 0.7
)

var negativeKeywords = []string{
	"bad", "pothole", "damage", "broken", "crack", "hole",
	"rough", "dangerous", "hazard", "poor", "terrible",
}

var positiveKeywords = []string{
	"good", "fixed", "repaired", "smooth", "clear",
	"excellent", "optimal", "safe", "fine",
}

// SegmentStore is the segment access the engine needs
type SegmentStore interface {
	GetSegmentByID(id int64) (*models.Segment, error)
	ListSegments() ([]models.Segment, error)
	UpdateSegmentStatus(id int64, status string, aggregatedAt time.Time) error
}

// ReportStore is the report access the engine needs
type ReportStore interface {
	ListReportsBySegment(segmentID int64) ([]models.Report, error)
}

// Result is the outcome of aggregating one segment's reports
type Result struct {
	SegmentID         int64     `json:"segment_id"`
	ReportsTotal      int       `json:"reports_total"`
	ReportsConfirmed  int       `json:"reports_confirmed"`
	ReportsFresh      int       `json:"reports_fresh"`
	NegativeScore     float64   `json:"weighted_negative_score"`
	PositiveScore     float64   `json:"weighted_positive_score"`
	PreviousStatus    string    `json:"previous_status"`
	RecommendedStatus string    `json:"recommended_status"`
	StatusChanged     bool      `json:"status_changed"`
	AggregatedAt      time.Time `json:"aggregated_at"`
}

// SweepSummary is the outcome of a full aggregation sweep
type SweepSummary struct {
	TriggeredAt       time.Time `json:"triggered_at"`
	SegmentsProcessed int       `json:"segments_processed"`
	SegmentsFailed    int       `json:"segments_failed"`
	StatusChanges     int       `json:"status_changes"`
	Results           []Result  `json:"results"`
}

// Engine computes weighted consensus statuses for segments
type Engine struct {
	segments SegmentStore
	reports  ReportStore
	workers  int
	now      func() time.Time

	// Per-segment locks serialize the read-modify-write of a segment's
	// status under concurrent aggregation triggers
	locks sync.Map
}

// NewEngine creates an aggregation engine; workers bounds sweep concurrency
func NewEngine(segments SegmentStore, reports ReportStore, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		segments: segments,
		reports:  reports,
		workers:  workers,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the engine clock, for tests
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// ReportWeight returns the voting weight of a single report: base 1.0,
// doubled when created within the freshness window, and multiplied by 1.5
// when confirmed. A zero creation timestamp gets no freshness bonus.
func (e *Engine) ReportWeight(r models.Report) float64 {
	weight := 1.0
	if e.isFresh(r) {
		weight *= FreshnessWeight
	}
	if r.Confirmed {
		weight *= ConfirmedWeight
	}
	return weight
}

func (e *Engine) isFresh(r models.Report) bool {
	if r.CreatedAt.IsZero() {
		return false
	}
	return e.now().Sub(r.CreatedAt) <= FreshnessDays*24*time.Hour
}

// AggregateSegment runs weighted voting over all reports of one segment and
// commits the recommended status when it differs from the current one.
func (e *Engine) AggregateSegment(segmentID int64) (*Result, error) {
	mu := e.lockFor(segmentID)
	mu.Lock()
	defer mu.Unlock()

	seg, err := e.segments.GetSegmentByID(segmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load segment %d: %w", segmentID, err)
	}
	if seg == nil {
		return nil, ErrSegmentNotFound
	}

	reports, err := e.reports.ListReportsBySegment(segmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports for segment %d: %w", segmentID, err)
	}

	now := e.now()
	if len(reports) == 0 {
		return &Result{
			SegmentID:         segmentID,
			PreviousStatus:    seg.Status,
			RecommendedStatus: seg.Status,
			AggregatedAt:      now,
		}, nil
	}

	var totalWeight, negativeWeight, positiveWeight float64
	var confirmedCount, freshCount int

	for _, r := range reports {
		weight := e.ReportWeight(r)
		totalWeight += weight

		if r.Confirmed {
			confirmedCount++
		}
		if e.isFresh(r) {
			freshCount++
		}

		note := strings.ToLower(r.Note)
		switch {
		case containsAny(note, negativeKeywords):
			negativeWeight += weight
		case containsAny(note, positiveKeywords):
			positiveWeight += weight
		default:
			negativeWeight += weight * neutralNegativeShare
			positiveWeight += weight * neutralPositiveShare
		}
	}

	negativeScore := negativeWeight / totalWeight
	positiveScore := positiveWeight / totalWeight

	var recommended string
	switch {
	case negativeScore >= ThresholdBad:
		recommended = models.StatusMaintenance
	case negativeScore >= ThresholdMedium:
		recommended = models.StatusMedium
	case positiveScore > ThresholdGood:
		recommended = models.StatusOptimal
	default:
		recommended = models.StatusMedium
	}

	statusChanged := recommended != seg.Status
	if statusChanged {
		if err := e.segments.UpdateSegmentStatus(segmentID, recommended, now); err != nil {
			return nil, fmt.Errorf("failed to update status for segment %d: %w", segmentID, err)
		}
	}

	return &Result{
		SegmentID:         segmentID,
		ReportsTotal:      len(reports),
		ReportsConfirmed:  confirmedCount,
		ReportsFresh:      freshCount,
		NegativeScore:     round3(negativeScore),
		PositiveScore:     round3(positiveScore),
		PreviousStatus:    seg.Status,
		RecommendedStatus: recommended,
		StatusChanged:     statusChanged,
		AggregatedAt:      now,
	}, nil
}

// AggregateAll sweeps every known segment with bounded concurrency. A
// failing segment is counted and logged, never aborts the sweep.
func (e *Engine) AggregateAll() (*SweepSummary, error) {
	segments, err := e.segments.ListSegments()
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	summary := &SweepSummary{
		TriggeredAt: e.now(),
		Results:     make([]Result, 0, len(segments)),
	}

	ids := make(chan int64, len(segments))
	for _, seg := range segments {
		ids <- seg.ID
	}
	close(ids)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				result, err := e.AggregateSegment(id)
				mu.Lock()
				if err != nil {
					summary.SegmentsFailed++
					log.Printf("aggregation sweep: segment %d failed: %v", id, err)
				} else {
					summary.SegmentsProcessed++
					if result.StatusChanged {
						summary.StatusChanges++
					}
					summary.Results = append(summary.Results, *result)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return summary, nil
}

func (e *Engine) lockFor(segmentID int64) *sync.Mutex {
	v, _ := e.locks.LoadOrStore(segmentID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
