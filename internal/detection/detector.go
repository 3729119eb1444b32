// Package detection classifies road surface quality from ride sensor data.
package detection

import (
	"fmt"

	"github.com/openvelo/road-backend-go/internal/models"
)

// Accelerometer thresholds in m/s². Below MinSpeedMps the rider is standing
// or walking and vibration readings are unreliable.
const (
	SevereZThreshold = 25.0
	ZAxisThreshold   = 15.0
	MinorZThreshold  = 8.0
	MinSpeedMps      = 2.0

	poorGPSAccuracyM = 20.0
)

// StatusUnknown marks a detection without sensor data. It is never written
// to a segment; callers must gather readings first.
const StatusUnknown = "unknown"

// SensorData is one vibration event captured during a ride
type SensorData struct {
	ZAxisPeak    float64  `json:"z_axis_peak" binding:"required"`
	Speed        float64  `json:"speed"`
	DurationMs   *float64 `json:"duration_ms"`
	GPSAccuracyM *float64 `json:"gps_accuracy_m"`
}

// Result is the outcome of classifying a sensor event
type Result struct {
	DetectedStatus string  `json:"detected_status"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"detection_reason"`
}

// Detect classifies a vibration event into a segment status. A nil event
// yields an explicit unknown result rather than a guess.
func Detect(data *SensorData) Result {
	if data == nil {
		return Result{
			DetectedStatus: StatusUnknown,
			Confidence:     0,
			Reason:         "no sensor data provided",
		}
	}

	var r Result
	switch {
	case data.Speed < MinSpeedMps:
		r = Result{
			DetectedStatus: models.StatusOptimal,
			Confidence:     0.3,
			Reason:         "speed below threshold, detection unreliable",
		}
	case data.ZAxisPeak >= SevereZThreshold:
		r = Result{
			DetectedStatus: models.StatusMaintenance,
			Confidence:     min(0.95, 0.7+(data.ZAxisPeak-SevereZThreshold)/50),
			Reason:         fmt.Sprintf("severe impact detected (z=%.1f m/s²)", data.ZAxisPeak),
		}
	case data.ZAxisPeak >= ZAxisThreshold:
		r = Result{
			DetectedStatus: models.StatusSuboptimal,
			Confidence:     min(0.90, 0.6+(data.ZAxisPeak-ZAxisThreshold)/30),
			Reason:         fmt.Sprintf("pothole impact detected (z=%.1f m/s²)", data.ZAxisPeak),
		}
	case data.ZAxisPeak >= MinorZThreshold:
		r = Result{
			DetectedStatus: models.StatusMedium,
			Confidence:     min(0.85, 0.5+(data.ZAxisPeak-MinorZThreshold)/20),
			Reason:         fmt.Sprintf("minor bump detected (z=%.1f m/s²)", data.ZAxisPeak),
		}
	default:
		r = Result{
			DetectedStatus: models.StatusOptimal,
			Confidence:     max(0.7, 0.95-data.ZAxisPeak/20),
			Reason:         fmt.Sprintf("smooth surface (z=%.1f m/s²)", data.ZAxisPeak),
		}
	}

	if data.GPSAccuracyM != nil && *data.GPSAccuracyM > poorGPSAccuracyM {
		r.Confidence *= 0.8
		r.Reason += fmt.Sprintf(", GPS accuracy: %.1fm", *data.GPSAccuracyM)
	}

	return r
}
