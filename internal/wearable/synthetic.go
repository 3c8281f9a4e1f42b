package wearable

import (
	"fmt"
	"math/rand"
	"time"
)

// #region scenarios

// Scenario names a synthetic telemetry profile used for simulation and
// fixture generation.
type Scenario string

const (
	ScenarioNormal         Scenario = "normal"
	ScenarioBurnout        Scenario = "burnout"
	ScenarioRecovery       Scenario = "recovery"
	ScenarioHighStress     Scenario = "high_stress"
	ScenarioWeekendWarrior Scenario = "weekend_warrior"
)

// Scenarios lists every supported synthetic scenario.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioNormal, ScenarioBurnout, ScenarioRecovery,
		ScenarioHighStress, ScenarioWeekendWarrior,
	}
}

// #endregion scenarios

// #region generator

// Baseline physiology for the synthetic generator. Scenario shapes bend
// these day by day.
const (
	baseSleepHours = 7.0
	baseDeepPct    = 20.0
	baseRestingHR  = 65.0
	baseHRVMs      = 45.0
	baseSteps      = 8000
)

// Generate produces days of synthetic samples for a scenario, ending on the
// day before `end`. The same seed always yields the same series.
func Generate(scenario Scenario, days int, seed int64, end time.Time) ([]Sample, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	rng := rand.New(rand.NewSource(seed))

	samples := make([]Sample, 0, days)
	start := end.AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		progress := float64(i) / float64(days)

		s := Sample{
			Date:         date,
			SleepHours:   baseSleepHours + rng.NormFloat64()*0.5,
			DeepSleepPct: baseDeepPct + rng.NormFloat64()*3,
			WakeEvents:   rng.Intn(3),
			RestingHR:    baseRestingHR + rng.NormFloat64()*3,
			HRVMs:        baseHRVMs + rng.NormFloat64()*5,
			Steps:        baseSteps + rng.Intn(4000) - 2000,
		}

		switch scenario {
		case ScenarioBurnout:
			// Progressive decline: sleep erodes, HRV drops, resting HR climbs.
			s.SleepHours -= progress * 2.5
			s.HRVMs -= progress * 20
			s.RestingHR += progress * 10
			s.WakeEvents += int(progress * 4)
		case ScenarioRecovery:
			// Starting depleted, trending back to baseline.
			s.SleepHours -= (1 - progress) * 2
			s.HRVMs -= (1 - progress) * 15
			s.RestingHR += (1 - progress) * 8
		case ScenarioHighStress:
			s.HRVMs -= 18
			s.RestingHR += 8
			s.WakeEvents += 2
		case ScenarioWeekendWarrior:
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				s.Steps += 8000
				s.ActiveMinutes += 90
				s.SleepHours -= 1
			}
		case ScenarioNormal:
			// Baseline noise only.
		default:
			return nil, fmt.Errorf("unknown scenario %q", scenario)
		}

		if s.SleepHours < 2 {
			s.SleepHours = 2
		}
		if s.HRVMs < 10 {
			s.HRVMs = 10
		}
		if s.WakeEvents < 0 {
			s.WakeEvents = 0
		}
		if s.Steps < 0 {
			s.Steps = 0
		}
		s.ActiveMinutes += 20 + rng.Intn(40)
		s.Calories = 1800 + s.Steps/20 + s.ActiveMinutes*5

		samples = append(samples, s)
	}
	return samples, nil
}

// #endregion generator
