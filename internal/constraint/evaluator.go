package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kibbyd/htpa/go-engine/internal/health"
)

// #region descriptions

var constraintDescriptions = map[health.ConstraintName]string{
	health.ConstraintLowSleep:         "Sleep below minimum threshold - recovery impaired",
	health.ConstraintCriticalSleep:    "Severely sleep deprived - high priority for rest",
	health.ConstraintLowEnergy:        "Energy levels depleted - reduced capacity for effort",
	health.ConstraintCriticalEnergy:   "Energy critically low - only essential activities",
	health.ConstraintHighStress:       "Elevated stress - cognitive load impaired",
	health.ConstraintTimeLimited:      "Limited time available - must prioritize",
	health.ConstraintTimeCritical:     "Minimal time available - only most critical tasks",
	health.ConstraintOvertrainingRisk: "Too many consecutive high-effort days",
	health.ConstraintBurnoutWarning:   "Multiple indicators suggest burnout risk",
}

// #endregion

// #region evaluate

// Evaluate maps a state snapshot to the set of active constraints.
// Deterministic, no side effects, no error conditions: out-of-range inputs
// produce clamped severities rather than failures.
func Evaluate(state health.StateSnapshot, th Thresholds) health.ActiveConstraints {
	var cs health.ActiveConstraints

	evaluateSleep(state, th, &cs)
	evaluateEnergy(state, th, &cs)
	evaluateStress(state, &cs)
	evaluateTime(state, th, &cs)
	evaluateEffort(state, th, &cs)

	// Compound pass runs last: it derives from the constraints above.
	evaluateCompound(&cs)

	return cs
}

// #endregion

// #region sleep

func evaluateSleep(state health.StateSnapshot, th Thresholds, cs *health.ActiveConstraints) {
	if state.SleepHours < th.CriticalSleepHours {
		cs.Add(health.ConstraintCriticalSleep, 0.9,
			constraintDescriptions[health.ConstraintCriticalSleep], "wearable")
	} else if state.SleepHours < th.MinSleepHours {
		severity := 1 - state.SleepHours/th.MinSleepHours
		cs.Add(health.ConstraintLowSleep, min(0.7, severity),
			constraintDescriptions[health.ConstraintLowSleep], "wearable")
	}

	if state.SleepDebtHours >= th.SleepDebtCriticalHours {
		cs.Add(health.ConstraintSleepDebt, 0.8,
			fmt.Sprintf("Accumulated sleep debt of %.1f hours", state.SleepDebtHours), "derived")
	} else if state.SleepDebtHours >= th.SleepDebtWarningHours {
		cs.Add(health.ConstraintSleepDebt, 0.5,
			fmt.Sprintf("Building sleep debt of %.1f hours", state.SleepDebtHours), "derived")
	}
}

// #endregion

// #region energy

func evaluateEnergy(state health.StateSnapshot, th Thresholds, cs *health.ActiveConstraints) {
	if state.EnergyLevel <= th.CriticalEnergy {
		cs.Add(health.ConstraintCriticalEnergy, 0.9,
			constraintDescriptions[health.ConstraintCriticalEnergy], "derived")
	} else if state.EnergyLevel <= th.LowEnergy {
		severity := 1 - float64(state.EnergyLevel)/float64(th.LowEnergy+2)
		cs.Add(health.ConstraintLowEnergy, min(0.7, severity),
			constraintDescriptions[health.ConstraintLowEnergy], "derived")
	}
}

// #endregion

// #region stress

func evaluateStress(state health.StateSnapshot, cs *health.ActiveConstraints) {
	if state.StressLevel == health.StressHigh {
		cs.Add(health.ConstraintHighStress, 0.7,
			constraintDescriptions[health.ConstraintHighStress], "wearable")
	}
}

// #endregion

// #region time

func evaluateTime(state health.StateSnapshot, th Thresholds, cs *health.ActiveConstraints) {
	if state.TimeAvailableHours < th.MinTimeHours {
		cs.Add(health.ConstraintTimeCritical, 0.9,
			constraintDescriptions[health.ConstraintTimeCritical], "user_input")
	} else if state.TimeAvailableHours < th.LimitedTimeHours {
		severity := 1 - state.TimeAvailableHours/th.LimitedTimeHours
		cs.Add(health.ConstraintTimeLimited, min(0.7, severity),
			constraintDescriptions[health.ConstraintTimeLimited], "user_input")
	}
}

// #endregion

// #region effort

func evaluateEffort(state health.StateSnapshot, th Thresholds, cs *health.ActiveConstraints) {
	if state.ConsecutiveHighEffortDays >= th.MaxConsecutiveHighEffort {
		cs.Add(health.ConstraintOvertrainingRisk, 0.6,
			fmt.Sprintf("%d consecutive high-effort days", state.ConsecutiveHighEffortDays), "derived")
	}
}

// #endregion

// #region compound

// evaluateCompound adds burnout_warning when 3+ of the four risk factor
// groups (sleep, energy, stress, overtraining) are already active.
func evaluateCompound(cs *health.ActiveConstraints) {
	riskFactors := 0
	if cs.Has(health.ConstraintLowSleep) || cs.Has(health.ConstraintCriticalSleep) {
		riskFactors++
	}
	if cs.Has(health.ConstraintLowEnergy) || cs.Has(health.ConstraintCriticalEnergy) {
		riskFactors++
	}
	if cs.Has(health.ConstraintHighStress) {
		riskFactors++
	}
	if cs.Has(health.ConstraintOvertrainingRisk) {
		riskFactors++
	}

	if riskFactors >= 3 {
		cs.Add(health.ConstraintBurnoutWarning, 0.85,
			"Multiple risk factors indicate burnout risk", "derived")
	}
}

// #endregion

// #region summary

// Summary renders active constraints as a human-readable block,
// highest severity first.
func Summary(cs health.ActiveConstraints) string {
	all := cs.All()
	if len(all) == 0 {
		return "No active constraints - full adherence possible"
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Severity > all[j].Severity })

	lines := []string{"Active Constraints:"}
	for _, c := range all {
		label := "MODERATE"
		switch {
		case c.Severity >= 0.8:
			label = "CRITICAL"
		case c.Severity >= 0.6:
			label = "HIGH"
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s: %s", label, c.Name, c.Description))
	}
	return strings.Join(lines, "\n")
}

// #endregion
