package pattern

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region adaptation-record

// AdaptationRecord documents one pattern-based reshaping of future plans.
type AdaptationRecord struct {
	ID                 string            `json:"id"`
	Timestamp          time.Time         `json:"timestamp"`
	PatternDetected    string            `json:"pattern"`
	AdaptationMade     string            `json:"adaptation"`
	AffectedCategories []health.Category `json:"categories"`
	Reasoning          string            `json:"reasoning"`
}

func newRecord(now time.Time, pattern, adaptation, reasoning string, cats ...health.Category) AdaptationRecord {
	return AdaptationRecord{
		ID:                 uuid.New().String()[:8],
		Timestamp:          now,
		PatternDetected:    pattern,
		AdaptationMade:     adaptation,
		AffectedCategories: cats,
		Reasoning:          reasoning,
	}
}

// #endregion

// #region config

// AdjusterConfig tunes the pattern window and trigger thresholds.
type AdjusterConfig struct {
	WindowDays int

	// SkipRateTrigger is the skip frequency above which a category's
	// expectations are reduced.
	SkipRateTrigger float64

	// MinHistory is the number of decisions required before patterns are
	// trusted at all.
	MinHistory int

	HighStressDaysTrigger int
	LowSleepDaysTrigger   int
}

// DefaultAdjusterConfig returns the standard 7-day window settings.
func DefaultAdjusterConfig() AdjusterConfig {
	return AdjusterConfig{
		WindowDays:            7,
		SkipRateTrigger:       0.5,
		MinHistory:            3,
		HighStressDaysTrigger: 4,
		LowSleepDaysTrigger:   5,
	}
}

// #endregion

// #region adjuster

// Adjuster reshapes upcoming tasks from today's decision and detected
// history patterns. Pure: callers persist the returned records.
type Adjuster struct {
	config AdjusterConfig
}

// NewAdjuster creates an adjuster with the given configuration.
func NewAdjuster(config AdjusterConfig) *Adjuster {
	return &Adjuster{config: config}
}

// AdjustFuturePlan applies immediate adjustments from the current decision,
// then pattern-based adjustments from history. Returns the adjusted task
// list and the adaptation records explaining each change.
func (a *Adjuster) AdjustFuturePlan(
	current tradeoff.TradeOffDecision,
	upcoming []health.PlannedTask,
	history []tradeoff.TradeOffDecision,
) ([]health.PlannedTask, []AdaptationRecord) {
	return a.adjustAt(time.Now().UTC(), current, upcoming, history)
}

func (a *Adjuster) adjustAt(
	now time.Time,
	current tradeoff.TradeOffDecision,
	upcoming []health.PlannedTask,
	history []tradeoff.TradeOffDecision,
) ([]health.PlannedTask, []AdaptationRecord) {
	tasks := make([]health.PlannedTask, len(upcoming))
	copy(tasks, upcoming)

	var adaptations []AdaptationRecord

	tasks, imm := a.applyImmediate(now, current, tasks)
	adaptations = append(adaptations, imm...)

	if len(history) >= a.config.MinHistory {
		detector := NewDetector(history, now)
		var fromPatterns []AdaptationRecord
		tasks, fromPatterns = a.applyPatterns(now, detector, tasks)
		adaptations = append(adaptations, fromPatterns...)
	}

	return tasks, adaptations
}

// #endregion

// #region immediate

// applyImmediate reacts to today's decision: global intensity reduction from
// future-impact notes, and a lighter first fitness session after a skip.
func (a *Adjuster) applyImmediate(now time.Time, decision tradeoff.TradeOffDecision, tasks []health.PlannedTask) ([]health.PlannedTask, []AdaptationRecord) {
	intensityScale := 1.0
	for _, impact := range decision.FutureImpacts {
		if impact.AdjustmentType == tradeoff.ImpactIntensityReduction {
			intensityScale = 0.6
			break
		}
		if impact.AdjustmentType == tradeoff.ImpactDeloadWeek {
			intensityScale = 0.5
			break
		}
	}

	fitnessSkipped := false
	if fd := decision.Get(health.CategoryFitness); fd != nil && fd.Action == tradeoff.ActionSkip {
		fitnessSkipped = true
	}

	adjusted := make([]health.PlannedTask, 0, len(tasks))
	for _, task := range tasks {
		t := task
		t.Intensity = health.Clamp01(t.Intensity * intensityScale)

		if fitnessSkipped && t.Category == health.CategoryFitness {
			t = health.PlannedTask{
				Category:        health.CategoryFitness,
				Name:            "Recovery workout",
				DurationMinutes: minInt(30, task.DurationMinutes),
				Intensity:       0.4,
				Description:     "Lighter workout following rest day",
			}
		}
		adjusted = append(adjusted, t)
	}

	var adaptations []AdaptationRecord
	if intensityScale < 1.0 {
		adaptations = append(adaptations, newRecord(now,
			"high_fatigue_signals",
			fmt.Sprintf("Reduced all workout intensities to %d%%", int(intensityScale*100)),
			"Based on current fatigue indicators, reducing intensity to support recovery",
			health.CategoryFitness,
		))
	}
	return adjusted, adaptations
}

// #endregion

// #region patterns

// applyPatterns reduces expectations for chronically skipped categories and
// flags chronic constraint recurrence.
func (a *Adjuster) applyPatterns(now time.Time, detector *Detector, tasks []health.PlannedTask) ([]health.PlannedTask, []AdaptationRecord) {
	var adaptations []AdaptationRecord

	for _, cat := range health.Categories() {
		skipRate := detector.SkipFrequency(cat, a.config.WindowDays)
		if skipRate <= a.config.SkipRateTrigger {
			continue
		}

		// The plan is likely unrealistic for this category: ~30% less.
		for i, task := range tasks {
			if task.Category != cat {
				continue
			}
			tasks[i] = health.PlannedTask{
				Category:        cat,
				Name:            "Flexible " + task.Name,
				DurationMinutes: int(float64(task.DurationMinutes) * 0.7),
				Intensity:       health.Clamp01(task.Intensity * 0.8),
				Description:     "Adjusted based on adherence patterns: " + task.Description,
			}
		}

		adaptations = append(adaptations, newRecord(now,
			fmt.Sprintf("consistent_skip_%s", cat),
			fmt.Sprintf("Reduced %s expectations by 30%%", cat),
			fmt.Sprintf("%s is skipped %.0f%% of the time - adjusting to more realistic targets", cat, skipRate*100),
			cat,
		))
	}

	counts := detector.ConstraintCounts(a.config.WindowDays)

	if counts[health.ConstraintHighStress] >= a.config.HighStressDaysTrigger {
		adaptations = append(adaptations, newRecord(now,
			"chronic_high_stress",
			"Increased mindfulness allocation, reduced fitness intensity",
			"Persistent high stress pattern - rebalancing priorities for stress management",
			health.CategoryMindfulness, health.CategoryFitness,
		))
	}

	if counts[health.ConstraintLowSleep] >= a.config.LowSleepDaysTrigger {
		adaptations = append(adaptations, newRecord(now,
			"chronic_sleep_deficit",
			"Recommend sleep hygiene review and reduced evening activities",
			"Consistent sleep issues detected - systemic adjustment recommended",
			health.CategoryRecovery,
		))
	}

	return tasks, adaptations
}

// #endregion

// #region helpers

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// #endregion
