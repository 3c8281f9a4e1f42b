package constraint

// #region thresholds

// Thresholds configures constraint detection.
type Thresholds struct {
	MinSleepHours      float64
	CriticalSleepHours float64

	LowEnergy      int
	CriticalEnergy int

	MinTimeHours     float64
	LimitedTimeHours float64

	MaxConsecutiveHighEffort int

	SleepDebtWarningHours  float64
	SleepDebtCriticalHours float64
}

// DefaultThresholds returns the standard detection thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSleepHours:            6.0,
		CriticalSleepHours:       5.0,
		LowEnergy:                4,
		CriticalEnergy:           2,
		MinTimeHours:             0.5,
		LimitedTimeHours:         1.5,
		MaxConsecutiveHighEffort: 3,
		SleepDebtWarningHours:    3.0,
		SleepDebtCriticalHours:   6.0,
	}
}

// #endregion
