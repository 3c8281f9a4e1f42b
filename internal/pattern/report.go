package pattern

import (
	"fmt"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region report-types

// Report status values.
const (
	StatusOK               = "ok"
	StatusInsufficientData = "insufficient_data"
)

// CategoryStats holds per-category adherence rates for the report window.
type CategoryStats struct {
	SkipRate      float64 `json:"skip_rate"`      // percent
	DowngradeRate float64 `json:"downgrade_rate"` // percent
}

// Report is the weekly pattern summary. Reporting only: nothing here
// mutates plans.
type Report struct {
	Status              string                           `json:"status"`
	Period              string                           `json:"period"`
	TotalDecisions      int                              `json:"total_decisions"`
	Categories          map[health.Category]CategoryStats `json:"categories,omitempty"`
	ConstraintFrequency map[health.ConstraintName]int    `json:"constraint_frequency,omitempty"`
	DayPatterns         map[int]WeekdayStats             `json:"day_patterns,omitempty"`
	Recommendations     []string                         `json:"recommendations,omitempty"`
}

// #endregion

// #region weekly-report

// WeeklyReport summarizes skip/downgrade rates, constraint recurrence, and
// weekday patterns over the configured window. Returns an explicit
// insufficient-data status below MinHistory rather than a fabricated
// pattern.
func (a *Adjuster) WeeklyReport(history []tradeoff.TradeOffDecision) Report {
	return a.weeklyReportAt(time.Now().UTC(), history)
}

func (a *Adjuster) weeklyReportAt(now time.Time, history []tradeoff.TradeOffDecision) Report {
	if len(history) < a.config.MinHistory {
		return Report{Status: StatusInsufficientData, TotalDecisions: len(history)}
	}

	detector := NewDetector(history, now)

	report := Report{
		Status:              StatusOK,
		Period:              fmt.Sprintf("last_%d_days", a.config.WindowDays),
		TotalDecisions:      len(history),
		Categories:          make(map[health.Category]CategoryStats, 4),
		ConstraintFrequency: detector.ConstraintCounts(a.config.WindowDays),
		DayPatterns:         detector.DayOfWeekPatterns(),
	}

	for _, cat := range health.Categories() {
		stats := CategoryStats{
			SkipRate:      detector.SkipFrequency(cat, a.config.WindowDays) * 100,
			DowngradeRate: detector.DowngradeFrequency(cat, a.config.WindowDays) * 100,
		}
		report.Categories[cat] = stats

		if stats.SkipRate > 40 {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Consider reducing %s targets - current plan may be too ambitious", cat))
		} else if stats.DowngradeRate > 60 {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("%s frequently downgraded - consider adjusting default intensity", cat))
		}
	}

	if report.ConstraintFrequency[health.ConstraintHighStress] >= a.config.HighStressDaysTrigger {
		report.Recommendations = append(report.Recommendations,
			"High stress is frequent - consider adding more recovery buffers")
	}

	return report
}

// #endregion
