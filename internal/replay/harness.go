package replay

import (
	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/constraint"
	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/pattern"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region types

// ReplayConfig bundles the knobs for a replay run.
type ReplayConfig struct {
	Thresholds constraint.Thresholds
	Adjuster   pattern.AdjusterConfig
}

// DefaultReplayConfig returns defaults for every pipeline stage.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		Thresholds: constraint.DefaultThresholds(),
		Adjuster:   pattern.DefaultAdjusterConfig(),
	}
}

// Mismatch records one divergence between a fixture expectation and the
// engine's actual action.
type Mismatch struct {
	Category health.Category
	Expected string
	Actual   string
}

// DayResult captures the outcome of replaying one fixture day.
type DayResult struct {
	Day         int
	Decision    tradeoff.TradeOffDecision
	Adaptations []pattern.AdaptationRecord
	Mismatches  []Mismatch
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalDays     int
	MismatchDays  int
	Mismatches    int
	FinalForecast burnout.Forecast
	FinalReport   pattern.Report
}

// #endregion types

// #region replay

// Replay feeds fixture days through the full pipeline, evaluating
// constraints and deciding each day against a rolling decision history.
// The history starts empty so early days exercise the cold-start paths.
func Replay(f *Fixture, config ReplayConfig) []DayResult {
	var prefs *profile.DomainPreferences
	if f.Profile != nil {
		p := f.Profile.Preferences
		prefs = &p
	}
	engine := tradeoff.NewEngine(prefs)
	adjuster := pattern.NewAdjuster(config.Adjuster)

	var history []tradeoff.TradeOffDecision
	results := make([]DayResult, 0, len(f.Days))

	for i, day := range f.Days {
		snapshot := day.Snapshot.ToSnapshot()
		tasks := day.ToTasks()

		// 1. Constraints
		constraints := constraint.Evaluate(snapshot, config.Thresholds)

		// 2. Decide
		decision := engine.Decide(snapshot, constraints, tasks)

		// 3. Compare against expectations
		var mismatches []Mismatch
		for cat, want := range day.ExpectedActions {
			got := ""
			if dd := decision.Get(health.Category(cat)); dd != nil {
				got = string(dd.Action)
			}
			if got != want {
				mismatches = append(mismatches, Mismatch{
					Category: health.Category(cat),
					Expected: want,
					Actual:   got,
				})
			}
		}

		// 4. Advance history and adjust the next day's plan
		history = append(history, decision)
		var adaptations []pattern.AdaptationRecord
		if i+1 < len(f.Days) {
			_, adaptations = adjuster.AdjustFuturePlan(decision, f.Days[i+1].ToTasks(), history)
		}

		results = append(results, DayResult{
			Day:         i,
			Decision:    decision,
			Adaptations: adaptations,
			Mismatches:  mismatches,
		})
	}

	return results
}

// Summarize computes aggregate stats plus the terminal burnout forecast and
// weekly report over the accumulated history.
func Summarize(results []DayResult, config ReplayConfig) ReplaySummary {
	s := ReplaySummary{TotalDays: len(results)}
	history := make([]tradeoff.TradeOffDecision, 0, len(results))
	for _, r := range results {
		history = append(history, r.Decision)
		if len(r.Mismatches) > 0 {
			s.MismatchDays++
			s.Mismatches += len(r.Mismatches)
		}
	}
	s.FinalForecast = burnout.Predict(history)
	s.FinalReport = pattern.NewAdjuster(config.Adjuster).WeeklyReport(history)
	return s
}

// #endregion replay
