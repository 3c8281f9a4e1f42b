package council

import (
	"fmt"
	"strings"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region input

// Input is the shared read-only context every agent votes on.
type Input struct {
	State    health.StateSnapshot
	Activity string
	Goal     string
	History  []tradeoff.TradeOffDecision
}

// agent produces one recommendation from the shared input. Implementations
// share no mutable state so the council may fan them out in parallel.
type agent interface {
	Role() AgentRole
	Recommend(in Input) Recommendation
}

// #endregion

// #region sleep-specialist

// sleepSpecialist penalizes high-intensity activity under sleep debt.
type sleepSpecialist struct{}

func (sleepSpecialist) Role() AgentRole { return RoleSleepSpecialist }

func (sleepSpecialist) Recommend(in Input) Recommendation {
	sleep := in.State.SleepHours

	if sleep < 6 && isHighIntensity(in.Activity) {
		return Recommendation{
			Role:       RoleSleepSpecialist,
			Action:     ActionSkip,
			Reasoning:  fmt.Sprintf("Sleep debt detected (%.1fh). High-intensity exercise increases cortisol and impairs recovery.", sleep),
			Confidence: 0.95,
			PriorityHints: map[string]float64{
				"sleep": 2.0, "exercise": 0.3,
			},
		}
	}

	if sleep < 7 {
		return Recommendation{
			Role:       RoleSleepSpecialist,
			Action:     ActionModify,
			Reasoning:  fmt.Sprintf("Suboptimal sleep (%.1fh). Recommend lower intensity to preserve recovery capacity.", sleep),
			Confidence: 0.75,
			PriorityHints: map[string]float64{
				"sleep": 1.5, "exercise": 0.7,
			},
		}
	}

	return Recommendation{
		Role:       RoleSleepSpecialist,
		Action:     ActionProceed,
		Reasoning:  fmt.Sprintf("Adequate sleep (%.1fh). Recovery capacity is good.", sleep),
		Confidence: 0.8,
	}
}

// #endregion

// #region performance-coach

// performanceCoach rewards high energy and protects against low energy.
type performanceCoach struct{}

func (performanceCoach) Role() AgentRole { return RolePerformanceCoach }

func (performanceCoach) Recommend(in Input) Recommendation {
	energy := in.State.EnergyLevel

	if energy >= 7 && isOutputActivity(in.Activity) {
		return Recommendation{
			Role:       RolePerformanceCoach,
			Action:     ActionProceed,
			Reasoning:  fmt.Sprintf("High energy (%d/10). Optimal window for high-value activities aligned with goal: %s", energy, in.Goal),
			Confidence: 0.9,
			PriorityHints: map[string]float64{
				"work": 1.5, "exercise": 1.4,
			},
		}
	}

	if energy <= 3 {
		return Recommendation{
			Role:       RolePerformanceCoach,
			Action:     ActionModify,
			Reasoning:  fmt.Sprintf("Low energy (%d/10). Recommend strategic rest to prevent diminishing returns.", energy),
			Confidence: 0.7,
			PriorityHints: map[string]float64{
				"sleep": 1.3, "work": 0.6,
			},
		}
	}

	return Recommendation{
		Role:       RolePerformanceCoach,
		Action:     ActionProceed,
		Reasoning:  fmt.Sprintf("Moderate energy (%d/10). Maintain planned activities.", energy),
		Confidence: 0.6,
	}
}

// #endregion

// #region wellness-guardian

// wellnessGuardian reacts to stress level versus the activity type.
type wellnessGuardian struct{}

func (wellnessGuardian) Role() AgentRole { return RoleWellnessGuardian }

func (wellnessGuardian) Recommend(in Input) Recommendation {
	if in.State.StressLevel == health.StressHigh && isCognitiveLoad(in.Activity) {
		return Recommendation{
			Role:       RoleWellnessGuardian,
			Action:     ActionSkip,
			Reasoning:  "High stress detected. Additional cognitive load risks burnout. Recommend stress-reduction activities.",
			Confidence: 0.85,
			PriorityHints: map[string]float64{
				"mindfulness": 2.0, "work": 0.4,
			},
		}
	}

	if in.State.StressLevel == health.StressMedium {
		return Recommendation{
			Role:       RoleWellnessGuardian,
			Action:     ActionModify,
			Reasoning:  "Moderate stress. Balance productivity with recovery activities.",
			Confidence: 0.7,
			PriorityHints: map[string]float64{
				"mindfulness": 1.3,
			},
		}
	}

	return Recommendation{
		Role:       RoleWellnessGuardian,
		Action:     ActionProceed,
		Reasoning:  "Stress levels manageable. Maintain current balance.",
		Confidence: 0.75,
	}
}

// #endregion

// #region future-self

// futureSelf reacts to the skip rate over the last 7 history entries.
type futureSelf struct{}

func (futureSelf) Role() AgentRole { return RoleFutureSelf }

func (futureSelf) Recommend(in Input) Recommendation {
	recent := in.History
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	skips := 0
	for i := range recent {
		if recent[i].HasAction(tradeoff.ActionSkip) {
			skips++
		}
	}

	denom := len(recent)
	if denom == 0 {
		denom = 1
	}
	skipRate := float64(skips) / float64(denom)

	if skipRate > 0.5 {
		return Recommendation{
			Role:       RoleFutureSelf,
			Action:     ActionProceed,
			Reasoning:  fmt.Sprintf("Skip rate is %.0f%% this week. Skipping again risks habit collapse. Your future self needs consistency.", skipRate*100),
			Confidence: 0.9,
		}
	}

	if skipRate > 0.3 {
		return Recommendation{
			Role:       RoleFutureSelf,
			Action:     ActionModify,
			Reasoning:  fmt.Sprintf("Skip rate is %.0f%%. Consider a lighter version to maintain habit momentum.", skipRate*100),
			Confidence: 0.7,
		}
	}

	return Recommendation{
		Role:       RoleFutureSelf,
		Action:     ActionProceed,
		Reasoning:  fmt.Sprintf("Good consistency (%.0f%% skip rate). Your future self will thank you.", skipRate*100),
		Confidence: 0.8,
	}
}

// #endregion

// #region activity-classifiers

func isHighIntensity(activity string) bool {
	return containsAny(activity, "HIIT", "Intense", "Sprint", "Heavy")
}

func isOutputActivity(activity string) bool {
	return containsAny(activity, "Exercise", "Work", "Workout", "Training")
}

func isCognitiveLoad(activity string) bool {
	return containsAny(activity, "Work", "Deadline", "Study")
}

func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// #endregion
