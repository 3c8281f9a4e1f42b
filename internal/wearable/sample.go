package wearable

import "time"

// #region sample

// Sample is one day of wearable telemetry.
type Sample struct {
	Date          time.Time `json:"date"`
	SleepHours    float64   `json:"sleep_hours"`
	DeepSleepPct  float64   `json:"deep_sleep_pct"`
	WakeEvents    int       `json:"wake_events"`
	RestingHR     float64   `json:"resting_hr"`
	HRVMs         float64   `json:"hrv_ms"`
	Steps         int       `json:"steps"`
	ActiveMinutes int       `json:"active_minutes"`
	Calories      int       `json:"calories"`
}

// SleepQualityScore derives a 0-100 quality score from duration, deep-sleep
// share and fragmentation. Duration carries half the weight, deep sleep 30%
// and wake events the remaining 20%.
func (s Sample) SleepQualityScore() float64 {
	duration := s.SleepHours / 8.0
	if duration > 1 {
		duration = 1
	}
	deep := s.DeepSleepPct / 25.0
	if deep > 1 {
		deep = 1
	}
	wake := (5.0 - float64(s.WakeEvents)) / 5.0
	if wake < 0 {
		wake = 0
	}
	return duration*50 + deep*30 + wake*20
}

// #endregion sample
