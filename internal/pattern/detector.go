package pattern

import (
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region detector

// Detector mines a trailing window of decision history for recurring
// skip/downgrade behavior and constraint recurrence. Read-only over the
// history it is given.
type Detector struct {
	history []tradeoff.TradeOffDecision
	now     time.Time
}

// NewDetector creates a detector anchored at now.
func NewDetector(history []tradeoff.TradeOffDecision, now time.Time) *Detector {
	return &Detector{history: history, now: now}
}

// #endregion

// #region frequencies

// SkipFrequency is the share of in-window decisions where the category
// resolved to SKIP.
func (d *Detector) SkipFrequency(cat health.Category, days int) float64 {
	return d.actionFrequency(cat, tradeoff.ActionSkip, days)
}

// DowngradeFrequency is the share of in-window decisions where the category
// resolved to DOWNGRADE.
func (d *Detector) DowngradeFrequency(cat health.Category, days int) float64 {
	return d.actionFrequency(cat, tradeoff.ActionDowngrade, days)
}

func (d *Detector) actionFrequency(cat health.Category, action tradeoff.Action, days int) float64 {
	recent := d.recent(days)
	if len(recent) == 0 {
		return 0
	}

	matches := 0
	for i := range recent {
		for _, dd := range recent[i].Decisions {
			if dd.Category == cat && dd.Action == action {
				matches++
			}
		}
	}
	return float64(matches) / float64(len(recent))
}

// #endregion

// #region constraint-counts

// ConstraintCounts tallies how often each constraint appeared in the window.
func (d *Detector) ConstraintCounts(days int) map[health.ConstraintName]int {
	counts := make(map[health.ConstraintName]int)
	for _, dec := range d.recent(days) {
		for _, name := range dec.ConstraintsActive {
			counts[name]++
		}
	}
	return counts
}

// #endregion

// #region day-of-week

// WeekdayStats summarizes decisions for one weekday. Reporting only; never
// triggers adjustments.
type WeekdayStats struct {
	Decisions      int     `json:"decisions"`
	Constraints    int     `json:"constraints"`
	Skips          int     `json:"skips"`
	AvgConstraints float64 `json:"avg_constraints"`
	SkipRate       float64 `json:"skip_rate"`
}

// DayOfWeekPatterns breaks the full history down per weekday
// (0=Monday .. 6=Sunday).
func (d *Detector) DayOfWeekPatterns() map[int]WeekdayStats {
	stats := make(map[int]WeekdayStats, 7)
	for i := 0; i < 7; i++ {
		stats[i] = WeekdayStats{}
	}

	for i := range d.history {
		dec := &d.history[i]
		dow := (int(dec.Timestamp.Weekday()) + 6) % 7 // Monday = 0
		s := stats[dow]
		s.Decisions++
		s.Constraints += len(dec.ConstraintsActive)
		for _, dd := range dec.Decisions {
			if dd.Action == tradeoff.ActionSkip {
				s.Skips++
			}
		}
		stats[dow] = s
	}

	for dow, s := range stats {
		if s.Decisions > 0 {
			s.AvgConstraints = float64(s.Constraints) / float64(s.Decisions)
			s.SkipRate = float64(s.Skips) / float64(s.Decisions)
			stats[dow] = s
		}
	}
	return stats
}

// #endregion

// #region helpers

func (d *Detector) recent(days int) []tradeoff.TradeOffDecision {
	cutoff := d.now.AddDate(0, 0, -days)
	var out []tradeoff.TradeOffDecision
	for i := range d.history {
		if !d.history[i].Timestamp.Before(cutoff) {
			out = append(out, d.history[i])
		}
	}
	return out
}

// #endregion
