package tradeoff

import (
	"fmt"

	"github.com/kibbyd/htpa/go-engine/internal/health"
)

// #region rule-type

// categoryRule resolves a task within one category, assuming the global
// time-starvation override did not already decide it.
type categoryRule func(task health.PlannedTask, cs *health.ActiveConstraints, state health.StateSnapshot) (Action, *health.PlannedTask, string)

// categoryRules is the closed dispatch table: every category has exactly one
// rule set.
var categoryRules = map[health.Category]categoryRule{
	health.CategoryFitness:     decideFitness,
	health.CategoryRecovery:    decideRecovery,
	health.CategoryMindfulness: decideMindfulness,
	health.CategoryNutrition:   decideNutrition,
}

// #endregion

// #region fitness

func decideFitness(task health.PlannedTask, cs *health.ActiveConstraints, state health.StateSnapshot) (Action, *health.PlannedTask, string) {
	if cs.Has(health.ConstraintBurnoutWarning) {
		return ActionSkip, nil,
			"Burnout risk detected - skipping workout to prioritize recovery"
	}

	if cs.Has(health.ConstraintCriticalSleep) || cs.Has(health.ConstraintCriticalEnergy) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryFitness,
			Name:            "Light stretching",
			DurationMinutes: 10,
			Intensity:       0.2,
			Description:     "Gentle movement only",
		}
		return ActionDowngrade, adjusted,
			"Critical fatigue - replacing with light stretching to maintain movement habit"
	}

	if cs.Has(health.ConstraintHighStress) && cs.Has(health.ConstraintLowSleep) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryFitness,
			Name:            "Recovery walk",
			DurationMinutes: 20,
			Intensity:       0.3,
			Description:     "Low-intensity outdoor walk",
		}
		return ActionDowngrade, adjusted,
			"High stress + poor sleep - replacing planned session with recovery walk"
	}

	if cs.Has(health.ConstraintOvertrainingRisk) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryFitness,
			Name:            "Mobility work",
			DurationMinutes: 15,
			Intensity:       0.25,
			Description:     "Active recovery mobility",
		}
		return ActionDowngrade, adjusted,
			"Overtraining risk - substituting with mobility work for active recovery"
	}

	if cs.Has(health.ConstraintLowEnergy) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryFitness,
			Name:            task.Name + " (reduced intensity)",
			DurationMinutes: task.DurationMinutes,
			Intensity:       task.Intensity * 0.6,
			Description:     "Lower intensity version: " + task.Description,
		}
		return ActionDowngrade, adjusted,
			"Low energy - reducing workout intensity by 40%"
	}

	return ActionMaintain, nil, "Conditions favorable for planned workout"
}

// #endregion

// #region recovery

func decideRecovery(task health.PlannedTask, cs *health.ActiveConstraints, state health.StateSnapshot) (Action, *health.PlannedTask, string) {
	if cs.Has(health.ConstraintCriticalSleep) || cs.Has(health.ConstraintBurnoutWarning) || cs.Has(health.ConstraintOvertrainingRisk) {
		return ActionPrioritize, nil,
			"Recovery critical due to active fatigue/burnout signals"
	}

	if cs.Has(health.ConstraintTimeCritical) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryRecovery,
			Name:            "Power nap",
			DurationMinutes: 20,
			Intensity:       0.1,
			Description:     "Quick restorative rest",
		}
		return ActionDowngrade, adjusted,
			"Time critical - condensed recovery with power nap"
	}

	return ActionMaintain, nil, "Recovery as planned"
}

// #endregion

// #region mindfulness

func decideMindfulness(task health.PlannedTask, cs *health.ActiveConstraints, state health.StateSnapshot) (Action, *health.PlannedTask, string) {
	if cs.Has(health.ConstraintHighStress) {
		return ActionPrioritize, nil,
			"High stress detected - prioritizing mindfulness for stress reduction"
	}

	if cs.Has(health.ConstraintTimeCritical) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryMindfulness,
			Name:            "Breathing exercise",
			DurationMinutes: 5,
			Intensity:       0.2,
			Description:     "Quick box breathing",
		}
		return ActionDowngrade, adjusted,
			"Time critical - condensed to 5-minute breathing exercise"
	}

	if state.EnergyLevel <= 3 {
		return ActionPrioritize, nil,
			"Low energy state - meditation supports recovery without physical demand"
	}

	return ActionMaintain, nil, "Mindfulness as planned"
}

// #endregion

// #region nutrition

func decideNutrition(task health.PlannedTask, cs *health.ActiveConstraints, state health.StateSnapshot) (Action, *health.PlannedTask, string) {
	if cs.Has(health.ConstraintTimeCritical) {
		adjusted := &health.PlannedTask{
			Category:        health.CategoryNutrition,
			Name:            "Simple healthy meal",
			DurationMinutes: 10,
			Intensity:       0.1,
			Description:     "Pre-prepared or quick healthy option",
		}
		return ActionDowngrade, adjusted,
			"Time critical - simplify to pre-prepared option rather than cooking"
	}

	if cs.Has(health.ConstraintLowEnergy) {
		// Maintain the slot but steer content toward energy support.
		return ActionMaintain, nil,
			"Low energy - adjusting meal focus to energy-supportive nutrients"
	}

	return ActionMaintain, nil, "Nutrition plan as scheduled"
}

// #endregion

// #region minimal-version

// minimalDurations is the floor duration per category for forced downgrades.
var minimalDurations = map[health.Category]int{
	health.CategoryFitness:     10,
	health.CategoryNutrition:   5,
	health.CategoryRecovery:    10,
	health.CategoryMindfulness: 5,
}

// minimalVersion builds the shortest acceptable variant of a task, used by
// the time-starvation override.
func minimalVersion(task health.PlannedTask) *health.PlannedTask {
	dur, ok := minimalDurations[task.Category]
	if !ok {
		dur = 10
	}
	return &health.PlannedTask{
		Category:        task.Category,
		Name:            "Minimal " + task.Name,
		DurationMinutes: dur,
		Intensity:       0.2,
		Description:     fmt.Sprintf("Abbreviated version of: %s", task.Description),
	}
}

// #endregion
