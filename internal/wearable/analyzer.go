package wearable

import (
	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
)

// #region derive-stress

// DeriveStress infers a stress level from physiological markers. Suppressed
// HRV, elevated resting heart rate and short sleep each add to a score that
// maps onto the three-level scale.
func DeriveStress(s Sample) health.StressLevel {
	score := 0
	if s.HRVMs < 30 {
		score += 2
	} else if s.HRVMs < 40 {
		score++
	}
	if s.RestingHR > 75 {
		score += 2
	} else if s.RestingHR > 70 {
		score++
	}
	if s.SleepHours < 5 {
		score += 2
	} else if s.SleepHours < 6 {
		score++
	}

	switch {
	case score >= 4:
		return health.StressHigh
	case score >= 2:
		return health.StressMedium
	default:
		return health.StressLow
	}
}

// #endregion derive-stress

// #region derive-energy

// DeriveEnergy maps sleep duration, sleep quality and HRV onto the 1-10
// energy scale used by snapshots.
func DeriveEnergy(s Sample) int {
	energy := (s.SleepHours/8.0)*5 + (s.SleepQualityScore()/100.0)*3
	switch {
	case s.HRVMs > 50:
		energy += 1.5
	case s.HRVMs > 40:
		energy++
	case s.HRVMs < 25:
		energy--
	}

	level := int(energy + 0.5)
	if level < 1 {
		level = 1
	}
	if level > 10 {
		level = 10
	}
	return level
}

// #endregion derive-energy

// #region snapshot

// Snapshot converts a day of telemetry into an engine state snapshot.
// history supplies the recent days needed for sleep-debt and consecutive
// high-effort counts; it may include the sample itself as its last element.
func Snapshot(s Sample, history []Sample, p profile.Profile, timeAvailable float64) health.StateSnapshot {
	return health.StateSnapshot{
		Timestamp:                 s.Date,
		SleepHours:                s.SleepHours,
		SleepQuality:              s.SleepQualityScore(),
		EnergyLevel:               DeriveEnergy(s),
		StressLevel:               DeriveStress(s),
		TimeAvailableHours:        timeAvailable,
		SleepDebtHours:            sleepDebt(history, p.TargetSleepHours),
		ConsecutiveHighEffortDays: consecutiveHighEffort(history),
		HRVMs:                     s.HRVMs,
		RestingHR:                 int(s.RestingHR + 0.5),
		StepsToday:                s.Steps,
	}
}

// sleepDebt accumulates the shortfall against the target over the last
// seven days, ignoring surplus nights.
func sleepDebt(history []Sample, target float64) float64 {
	if target <= 0 {
		target = 8.0
	}
	start := len(history) - 7
	if start < 0 {
		start = 0
	}
	debt := 0.0
	for _, s := range history[start:] {
		if s.SleepHours < target {
			debt += target - s.SleepHours
		}
	}
	return debt
}

// consecutiveHighEffort counts the streak of high-activity days ending at
// the most recent sample.
func consecutiveHighEffort(history []Sample) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].ActiveMinutes < 60 && history[i].Steps < 12000 {
			break
		}
		streak++
	}
	return streak
}

// #endregion snapshot
