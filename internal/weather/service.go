// Package weather generates location-based weather data for cyclists.
//
// The data is synthetic but deterministic: the same rounded coordinates in
// the same hour of the same day always yield the same report, so responses
// stay stable within the hour and cacheable by clients.
package weather

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/openvelo/road-backend-go/internal/i18n"
)

// Weather is a point-in-time weather report
type Weather struct {
	Condition          string    `json:"condition"`
	ConditionLocalized string    `json:"condition_localized"`
	TemperatureC       float64   `json:"temperature_c"`
	WindSpeedKmh       float64   `json:"wind_speed_kmh"`
	HumidityPercent    int       `json:"humidity_percent"`
	RainChancePercent  int       `json:"rain_chance_percent"`
	Summary            string    `json:"summary"`
	FetchedAt          time.Time `json:"fetched_at"`
	CyclingFriendly    bool      `json:"is_cycling_friendly"`
}

type condition struct {
	name     string
	tempBase float64
	windBase float64
	rainProb float64
	weight   float64
}

// Weighted toward rideable weather
var conditions = []condition{
	{"Sunny", 25, 5, 0.0, 0.35},
	{"Clear", 22, 8, 0.0, 0.25},
	{"Cloudy", 18, 12, 0.2, 0.15},
	{"Windy", 16, 25, 0.1, 0.10},
	{"Rainy", 14, 15, 0.8, 0.10},
	{"Stormy", 12, 35, 0.9, 0.05},
}

// Service resolves weather for a coordinate
type Service struct {
	now func() time.Time
}

// NewService creates a weather service using the wall clock
func NewService() *Service {
	return &Service{now: func() time.Time { return time.Now().UTC() }}
}

// NewServiceWithClock creates a weather service with an injected clock
func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// Get returns the weather report for a location, localized for lang
func (s *Service) Get(lat, lon float64, lang string) Weather {
	now := s.now()
	rng := s.rng(lat, lon, now)

	cond := pickCondition(rng)

	tempVariation := rng.Float64()*10 - 5  // [-5, 5)
	windVariation := rng.Float64()*15 - 5  // [-5, 10)

	// Higher latitudes run colder
	latFactor := math.Abs(lat) / 90.0
	tempAdjustment := -latFactor * 15

	// Cooler at night, warmer in the early afternoon
	hour := now.Hour()
	if hour < 6 || hour > 20 {
		tempAdjustment -= 5
	} else if hour >= 10 && hour <= 16 {
		tempAdjustment += 3
	}

	temperature := round1(cond.tempBase + tempVariation + tempAdjustment)
	windSpeed := math.Max(0, round1(cond.windBase+windVariation))
	rainChance := int(math.Round(cond.rainProb * 100))

	humidity := int(math.Round(40 + cond.rainProb*50 + (rng.Float64()*20 - 10)))
	if humidity < 20 {
		humidity = 20
	} else if humidity > 100 {
		humidity = 100
	}

	condLocalized := i18n.Translate(cond.name, lang)
	summary := fmt.Sprintf("%s, %.1f°C", condLocalized, temperature)
	if windSpeed > 20 {
		summary = fmt.Sprintf("%s, %.1f°C", i18n.Translate("Windy", lang), temperature)
	}

	friendly := (cond.name == "Sunny" || cond.name == "Clear" || cond.name == "Cloudy") && windSpeed < 25

	return Weather{
		Condition:          cond.name,
		ConditionLocalized: condLocalized,
		TemperatureC:       temperature,
		WindSpeedKmh:       windSpeed,
		HumidityPercent:    humidity,
		RainChancePercent:  rainChance,
		Summary:            summary,
		FetchedAt:          now,
		CyclingFriendly:    friendly,
	}
}

// CyclingRecommendation describes how rideable the given weather is
func (s *Service) CyclingRecommendation(w Weather, lang string) string {
	var byLang map[string]string
	switch {
	case w.CyclingFriendly:
		byLang = map[string]string{
			"en": "Great conditions for cycling!",
			"zh": "非常适合骑行！",
			"it": "Ottime condizioni per il ciclismo!",
		}
	case w.RainChancePercent > 50:
		byLang = map[string]string{
			"en": "Rain expected - bring waterproof gear.",
			"zh": "预计有雨 - 请携带防水装备。",
			"it": "Pioggia prevista - porta abbigliamento impermeabile.",
		}
	case w.WindSpeedKmh > 25:
		byLang = map[string]string{
			"en": "Strong winds - cycling may be difficult.",
			"zh": "大风 - 骑行可能困难。",
			"it": "Vento forte - il ciclismo potrebbe essere difficile.",
		}
	default:
		byLang = map[string]string{
			"en": "Acceptable conditions, stay alert.",
			"zh": "条件尚可，请保持警惕。",
			"it": "Condizioni accettabili, resta attento.",
		}
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang["en"]
}

// rng seeds a generator from the rounded location plus the hour and day, so
// results are stable for an hour at ~1km granularity
func (s *Service) rng(lat, lon float64, now time.Time) *rand.Rand {
	seedStr := fmt.Sprintf("%.2f:%.2f:%d:%d", lat, lon, now.Hour(), now.Day())
	sum := md5.Sum([]byte(seedStr))
	seed := int64(binary.BigEndian.Uint32(sum[:4]))
	return rand.New(rand.NewSource(seed))
}

func pickCondition(rng *rand.Rand) condition {
	total := 0.0
	for _, c := range conditions {
		total += c.weight
	}
	r := rng.Float64() * total
	for _, c := range conditions {
		if r < c.weight {
			return c
		}
		r -= c.weight
	}
	return conditions[len(conditions)-1]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
