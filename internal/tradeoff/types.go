package tradeoff

import (
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/priority"
)

// #region action

// Action is the per-category outcome of a decision cycle.
type Action string

const (
	ActionPrioritize Action = "PRIORITIZE" // full execution, high priority
	ActionMaintain   Action = "MAINTAIN"   // execute as planned
	ActionDowngrade  Action = "DOWNGRADE"  // reduced version
	ActionDefer      Action = "DEFER"      // move to later time
	ActionSkip       Action = "SKIP"       // skip entirely
)

// #endregion

// #region domain-decision

// DomainDecision is the resolved action for a single category.
// AdjustedTask is non-nil iff Action is DOWNGRADE.
type DomainDecision struct {
	Category      health.Category     `json:"category"`
	Action        Action              `json:"action"`
	OriginalTask  health.PlannedTask  `json:"original_task"`
	AdjustedTask  *health.PlannedTask `json:"adjusted_task,omitempty"`
	Reasoning     string              `json:"reasoning"`
	PriorityScore float64             `json:"priority_score"`
}

// #endregion

// #region future-impact

// FutureImpact is a forward-looking note attached to a decision. It is a
// recommendation for the plan adjuster, not an executed mutation.
type FutureImpact struct {
	DaysAffected   int    `json:"days_affected"`
	AdjustmentType string `json:"type"`
	Description    string `json:"description"`
}

// Adjustment type tags emitted by the engine and consumed by the adjuster.
const (
	ImpactIntensityReduction = "intensity_reduction"
	ImpactWorkoutReschedule  = "workout_reschedule"
	ImpactSleepExtension     = "sleep_extension"
	ImpactDeloadWeek         = "deload_week"
)

// #endregion

// #region tradeoff-decision

// TradeOffDecision is the complete, immutable record of one decision cycle.
// Callers append it to an externally owned, size-bounded history log.
type TradeOffDecision struct {
	DecisionID string    `json:"decision_id"`
	Timestamp  time.Time `json:"timestamp"`

	State             health.StateSnapshot    `json:"state_snapshot"`
	ConstraintsActive []health.ConstraintName `json:"constraints_active"`

	PriorityAdjustments []priority.Adjustment `json:"priority_adjustments"`

	Decisions     []DomainDecision `json:"decisions"`
	FutureImpacts []FutureImpact   `json:"future_impacts"`

	ConfidenceScore  float64 `json:"confidence_score"`
	ReasoningSummary string  `json:"reasoning_summary"`
}

// Get returns the decision for a category, or nil when the category had no
// planned task this cycle.
func (d *TradeOffDecision) Get(cat health.Category) *DomainDecision {
	for i := range d.Decisions {
		if d.Decisions[i].Category == cat {
			return &d.Decisions[i]
		}
	}
	return nil
}

// HasAction reports whether any category resolved to the given action.
func (d *TradeOffDecision) HasAction(a Action) bool {
	for _, dd := range d.Decisions {
		if dd.Action == a {
			return true
		}
	}
	return false
}

// #endregion
