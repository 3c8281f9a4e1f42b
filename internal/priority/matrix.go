package priority

import (
	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
)

// #region base-priorities

// basePriorities are the unconstrained category weights. They sum to 1.0 and
// their order (see health.Categories) breaks ranking ties.
var basePriorities = map[health.Category]float64{
	health.CategoryRecovery:    0.30,
	health.CategoryNutrition:   0.25,
	health.CategoryFitness:     0.25,
	health.CategoryMindfulness: 0.20,
}

// #endregion

// #region modifier-table

// constraintModifiers maps constraint name → per-category delta. Each delta
// is scaled by the constraint's severity before being added to the base.
var constraintModifiers = map[health.ConstraintName]map[health.Category]float64{
	health.ConstraintCriticalSleep: {
		health.CategoryRecovery:    +0.25,
		health.CategoryFitness:     -0.20,
		health.CategoryMindfulness: +0.05,
	},
	health.ConstraintLowSleep: {
		health.CategoryRecovery: +0.15,
		health.CategoryFitness:  -0.10,
	},
	health.ConstraintHighStress: {
		health.CategoryMindfulness: +0.20,
		health.CategoryFitness:     -0.10,
		health.CategoryRecovery:    +0.10,
	},
	health.ConstraintLowEnergy: {
		health.CategoryRecovery: +0.10,
		health.CategoryFitness:  -0.15,
	},
	health.ConstraintCriticalEnergy: {
		health.CategoryRecovery:    +0.20,
		health.CategoryFitness:     -0.25,
		health.CategoryMindfulness: +0.10,
	},
	health.ConstraintOvertrainingRisk: {
		health.CategoryRecovery: +0.20,
		health.CategoryFitness:  -0.20,
	},
	health.ConstraintBurnoutWarning: {
		health.CategoryRecovery:    +0.25,
		health.CategoryFitness:     -0.25,
		health.CategoryMindfulness: +0.15,
		health.CategoryNutrition:   -0.10,
	},
	health.ConstraintTimeLimited: {
		// A quick workout beats nothing when the window is short.
		health.CategoryFitness: +0.05,
	},
	health.ConstraintTimeCritical: {
		health.CategoryNutrition: +0.10,
		health.CategoryFitness:   -0.15,
	},
}

// #endregion

// #region adjustment-trace

// Adjustment records a single (category, constraint) contribution for audit.
type Adjustment struct {
	Category   health.Category       `json:"category"`
	Constraint health.ConstraintName `json:"constraint"`
	Delta      float64               `json:"delta"`
}

// #endregion

// #region constants

const (
	// userBlendWeight is the share of the final priority taken from declared
	// preferences (70% computed / 30% user).
	userBlendWeight = 0.30

	// priorityFloor is the minimum any category can hold before
	// renormalization.
	priorityFloor = 0.05
)

// #endregion

// #region adjusted

// Adjusted converts active constraints plus optional user preferences into a
// normalized per-category priority distribution and an audit trace of every
// contribution. The result always sums to 1.0 with every value >= a floor
// derived from priorityFloor.
func Adjusted(cs health.ActiveConstraints, prefs *profile.DomainPreferences) (map[health.Category]float64, []Adjustment) {
	priorities := make(map[health.Category]float64, len(basePriorities))
	for cat, base := range basePriorities {
		priorities[cat] = base
	}

	var trace []Adjustment

	// 1. Apply severity-scaled constraint modifiers.
	for _, c := range cs.All() {
		modifiers, ok := constraintModifiers[c.Name]
		if !ok {
			continue
		}
		for _, cat := range health.Categories() {
			delta, ok := modifiers[cat]
			if !ok {
				continue
			}
			scaled := delta * c.Severity
			priorities[cat] += scaled
			trace = append(trace, Adjustment{Category: cat, Constraint: c.Name, Delta: scaled})
		}
	}

	// 2. Blend in declared preferences at a fixed 30% weight.
	if prefs != nil {
		for _, cat := range health.Categories() {
			priorities[cat] = priorities[cat]*(1-userBlendWeight) + prefs.Weight(cat)*userBlendWeight
		}
	}

	// 3. Floor and renormalize to sum 1.0.
	var total float64
	for cat, v := range priorities {
		if v < priorityFloor {
			v = priorityFloor
		}
		priorities[cat] = v
		total += v
	}
	for cat := range priorities {
		priorities[cat] /= total
	}

	return priorities, trace
}

// #endregion

// #region ranking

// Rank orders categories by descending adjusted priority; exact ties keep
// the base-priority order from health.Categories.
func Rank(priorities map[health.Category]float64) []health.Category {
	ranked := health.Categories()
	// Insertion sort keeps the base order stable for equal priorities.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && priorities[ranked[j]] > priorities[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

// Base returns a copy of the base priority table.
func Base() map[health.Category]float64 {
	out := make(map[health.Category]float64, len(basePriorities))
	for cat, v := range basePriorities {
		out[cat] = v
	}
	return out
}

// #endregion
