package health

import "time"

// #region stress-level

// StressLevel is the user's reported or derived stress band.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Code maps the stress band to a numeric level (LOW=1, MEDIUM=2, HIGH=3).
func (s StressLevel) Code() int {
	switch s {
	case StressHigh:
		return 3
	case StressMedium:
		return 2
	default:
		return 1
	}
}

// #endregion

// #region category

// Category is one of the four fixed life domains. The set is closed.
type Category string

const (
	CategoryRecovery    Category = "recovery"
	CategoryNutrition   Category = "nutrition"
	CategoryFitness     Category = "fitness"
	CategoryMindfulness Category = "mindfulness"
)

// Categories returns all categories in base-priority order.
// This order is the tie-break order for equal adjusted priorities.
func Categories() []Category {
	return []Category{CategoryRecovery, CategoryNutrition, CategoryFitness, CategoryMindfulness}
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryRecovery, CategoryNutrition, CategoryFitness, CategoryMindfulness:
		return true
	}
	return false
}

// #endregion

// #region state-snapshot

// StateSnapshot is a single immutable reading of the user's state.
// Produced by an external analyzer; consumed read-only by every engine stage.
// Zero values for the optional fields are the documented neutral defaults.
type StateSnapshot struct {
	Timestamp time.Time `json:"timestamp"`

	SleepHours   float64     `json:"sleep_hours"`
	SleepQuality float64     `json:"sleep_quality"` // 0-100, from wearable
	EnergyLevel  int         `json:"energy_level"`  // 1-10
	StressLevel  StressLevel `json:"stress_level"`

	TimeAvailableHours float64 `json:"time_available_hours"`

	SleepDebtHours            float64 `json:"sleep_debt_hours"`
	ConsecutiveHighEffortDays int     `json:"consecutive_high_effort_days"`

	// Optional wearable detail, zero when no device feed exists.
	HRVMs      float64 `json:"hrv_ms,omitempty"`
	RestingHR  int     `json:"resting_hr,omitempty"`
	StepsToday int     `json:"steps_today,omitempty"`
}

// ReadinessScore computes a 0-100 readiness composite:
// HRV 40%, sleep quality 30%, resting HR 20%, sleep-debt balance 10%.
func (s StateSnapshot) ReadinessScore() int {
	hrv := s.HRVMs
	if hrv == 0 {
		hrv = 40.0
	}
	hrvScore := clamp01((hrv-20)/80.0) * 100

	rhr := float64(s.RestingHR)
	if rhr == 0 {
		rhr = 70
	}
	rhrScore := 100 - clamp01((rhr-40)/60.0)*100

	debtScore := 100 - s.SleepDebtHours*10
	if debtScore < 0 {
		debtScore = 0
	}

	score := hrvScore*0.40 + s.SleepQuality*0.30 + rhrScore*0.20 + debtScore*0.10
	return int(score + 0.5)
}

// #endregion

// #region planned-task

// PlannedTask is one scheduled activity in a category.
type PlannedTask struct {
	Category        Category `json:"category"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Intensity       float64  `json:"intensity"` // 0-1
	Description     string   `json:"description"`
}

// #endregion

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp01 bounds v to [0,1]. Severities, confidences, and intensities are
// clamped rather than rejected.
func Clamp01(v float64) float64 { return clamp01(v) }

// #endregion
