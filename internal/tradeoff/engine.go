package tradeoff

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/priority"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
)

// #region engine

// Engine ranks categories by adjusted priority, allocates a time/energy
// budget, and emits a bounded action per category. Pure: it never touches
// history or any store.
type Engine struct {
	prefs *profile.DomainPreferences // nil = no preference blend
}

// NewEngine creates an engine. prefs may be nil.
func NewEngine(prefs *profile.DomainPreferences) *Engine {
	return &Engine{prefs: prefs}
}

// #endregion

// #region decide

// Decide makes the trade-off decision for one cycle. Inputs are read-only;
// the returned record is immutable once built.
func (e *Engine) Decide(state health.StateSnapshot, cs health.ActiveConstraints, tasks []health.PlannedTask) TradeOffDecision {
	priorities, trace := priority.Adjusted(cs, e.prefs)
	ranked := priority.Rank(priorities)

	// Effective capacity: energy scales down usable minutes.
	availableMinutes := state.TimeAvailableHours * 60
	energyFactor := float64(state.EnergyLevel) / 10.0
	effectiveCapacity := availableMinutes * energyFactor

	decision := TradeOffDecision{
		DecisionID:          uuid.New().String()[:8],
		Timestamp:           timestampOrNow(state.Timestamp),
		State:               state,
		ConstraintsActive:   cs.Names(),
		PriorityAdjustments: trace,
	}

	// Walk ranked categories, one task per category per cycle.
	var timeAllocated float64
	for _, cat := range ranked {
		task, ok := firstTaskFor(cat, tasks)
		if !ok {
			continue
		}

		dd := decideTask(task, priorities[cat], &cs, effectiveCapacity-timeAllocated, state)

		switch dd.Action {
		case ActionPrioritize, ActionMaintain:
			timeAllocated += float64(task.DurationMinutes)
		case ActionDowngrade:
			if dd.AdjustedTask != nil {
				timeAllocated += float64(dd.AdjustedTask.DurationMinutes)
			}
		}

		decision.Decisions = append(decision.Decisions, dd)
	}

	decision.FutureImpacts = futureImpacts(&decision, state, &cs)
	decision.ReasoningSummary = summarize(&decision)
	decision.ConfidenceScore = confidence(cs)

	return decision
}

// #endregion

// #region decide-task

// decideTask applies the time-starvation override, then the per-category
// rule set, then the global priority boost.
func decideTask(task health.PlannedTask, prio float64, cs *health.ActiveConstraints, timeRemaining float64, state health.StateSnapshot) DomainDecision {
	var (
		action    Action
		adjusted  *health.PlannedTask
		reasoning string
	)

	// 1. Time-starvation override: less than half the task fits.
	if timeRemaining < float64(task.DurationMinutes)*0.5 {
		if prio >= 0.3 {
			action = ActionDowngrade
			adjusted = minimalVersion(task)
			reasoning = fmt.Sprintf("Time critically limited but %s is high priority - minimal version", task.Category)
		} else {
			action = ActionSkip
			reasoning = fmt.Sprintf("Insufficient time and %s not highest priority today", task.Category)
		}
	} else if rule, ok := categoryRules[task.Category]; ok {
		// 2. Category rules.
		action, adjusted, reasoning = rule(task, cs, state)
	} else {
		action = ActionMaintain
	}

	// 3. Priority boost: MAINTAIN upgrades to PRIORITIZE at >= 0.35.
	if action == ActionMaintain && prio >= 0.35 {
		action = ActionPrioritize
		reasoning = fmt.Sprintf("High adjusted priority (%.2f) - prioritizing %s", prio, task.Category)
	}

	if reasoning == "" {
		reasoning = "Standard execution of " + task.Name
	}

	return DomainDecision{
		Category:      task.Category,
		Action:        action,
		OriginalTask:  task,
		AdjustedTask:  adjusted,
		Reasoning:     reasoning,
		PriorityScore: prio,
	}
}

// #endregion

// #region future-impacts

func futureImpacts(decision *TradeOffDecision, state health.StateSnapshot, cs *health.ActiveConstraints) []FutureImpact {
	var impacts []FutureImpact

	if fd := decision.Get(health.CategoryFitness); fd != nil &&
		(fd.Action == ActionSkip || fd.Action == ActionDowngrade) {
		if cs.Has(health.ConstraintBurnoutWarning) || cs.Has(health.ConstraintOvertrainingRisk) {
			impacts = append(impacts, FutureImpact{
				DaysAffected:   3,
				AdjustmentType: ImpactIntensityReduction,
				Description:    "Reducing workout intensity to 60% for the next 3 days",
			})
		} else {
			impacts = append(impacts, FutureImpact{
				DaysAffected:   1,
				AdjustmentType: ImpactWorkoutReschedule,
				Description:    "Consider adding light activity tomorrow if energy improves",
			})
		}
	}

	if state.SleepDebtHours > 4 {
		impacts = append(impacts, FutureImpact{
			DaysAffected:   2,
			AdjustmentType: ImpactSleepExtension,
			Description:    fmt.Sprintf("Recommend adding 30 min to sleep for 2 nights to address %.1fh debt", state.SleepDebtHours),
		})
	}

	if cs.Has(health.ConstraintBurnoutWarning) {
		impacts = append(impacts, FutureImpact{
			DaysAffected:   7,
			AdjustmentType: ImpactDeloadWeek,
			Description:    "Consider a deload week: reduce all fitness intensity by 50%",
		})
	}

	return impacts
}

// #endregion

// #region summary

func summarize(decision *TradeOffDecision) string {
	var parts []string

	if n := len(decision.ConstraintsActive); n > 0 {
		parts = append(parts, fmt.Sprintf("Given %d active constraints", n))
	}

	byAction := func(a Action) []string {
		var cats []string
		for _, dd := range decision.Decisions {
			if dd.Action == a {
				cats = append(cats, string(dd.Category))
			}
		}
		return cats
	}

	if cats := byAction(ActionPrioritize); len(cats) > 0 {
		parts = append(parts, "prioritized "+strings.Join(cats, ", "))
	}
	if cats := byAction(ActionDowngrade); len(cats) > 0 {
		parts = append(parts, "downgraded "+strings.Join(cats, ", "))
	}
	if cats := byAction(ActionSkip); len(cats) > 0 {
		parts = append(parts, "skipped "+strings.Join(cats, ", "))
	}

	if len(parts) == 0 {
		return "All tasks maintained as planned."
	}
	return strings.Join(parts, "; ") + "."
}

// #endregion

// #region confidence

// confidence is 0.95 with no constraints, else 0.9 minus 0.3x the mean
// severity, floored at 0.5.
func confidence(cs health.ActiveConstraints) float64 {
	if cs.Len() == 0 {
		return 0.95
	}
	c := 0.9 - cs.MeanSeverity()*0.3
	if c < 0.5 {
		c = 0.5
	}
	return c
}

// #endregion

// #region helpers

func firstTaskFor(cat health.Category, tasks []health.PlannedTask) (health.PlannedTask, bool) {
	for _, t := range tasks {
		if t.Category == cat {
			return t, true
		}
	}
	return health.PlannedTask{}, false
}

func timestampOrNow(ts time.Time) time.Time {
	if ts.IsZero() {
		return time.Now().UTC()
	}
	return ts
}

// #endregion
