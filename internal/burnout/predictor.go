package burnout

import (
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region forecast

// Forecast is a sustained-risk score over the trailing decision window.
type Forecast struct {
	RiskScore          int      `json:"risk_score"` // 0-100
	DaysToCrisis       *int     `json:"days_to_crisis,omitempty"`
	PrimaryFactors     []string `json:"primary_factors"`
	InterventionNeeded bool     `json:"intervention_needed"`
	Severity           string   `json:"severity"` // "low" | "moderate" | "high" | "critical"
}

// Severity tier thresholds on the composite score.
const (
	CriticalThreshold = 70
	HighThreshold     = 50
	ModerateThreshold = 30
)

// Composite weights for the four sub-scores.
const (
	sleepWeight    = 0.35
	stressWeight   = 0.30
	recoveryWeight = 0.20
	energyWeight   = 0.15
)

// #endregion

// #region predict

// Predict scores burnout risk from the trailing 7 days of history.
func Predict(history []tradeoff.TradeOffDecision) Forecast {
	return PredictAt(time.Now(), history)
}

// PredictAt is Predict with an explicit reference time for the trailing
// window.
func PredictAt(now time.Time, history []tradeoff.TradeOffDecision) Forecast {
	recent := withinDays(now, history, 7)
	if len(recent) < 2 {
		return lowRiskForecast()
	}

	sleepRisk := sleepRisk(recent)
	stressRisk := stressRisk(recent)
	recoveryRisk := recoveryRisk(recent)
	energyRisk := energyDeclineRisk(recent)

	score := int(sleepRisk*sleepWeight + stressRisk*stressWeight +
		recoveryRisk*recoveryWeight + energyRisk*energyWeight)

	var factors []string
	if sleepRisk > 60 {
		factors = append(factors, "Sleep debt accumulation")
	}
	if stressRisk > 60 {
		factors = append(factors, "Chronic stress pattern")
	}
	if recoveryRisk > 60 {
		factors = append(factors, "Insufficient recovery")
	}
	if energyRisk > 60 {
		factors = append(factors, "Rapid energy decline")
	}
	if len(factors) == 0 {
		factors = []string{"No significant risk factors"}
	}

	severity := "low"
	switch {
	case score >= CriticalThreshold:
		severity = "critical"
	case score >= HighThreshold:
		severity = "high"
	case score >= ModerateThreshold:
		severity = "moderate"
	}

	return Forecast{
		RiskScore:          score,
		DaysToCrisis:       crisisTimeline(score),
		PrimaryFactors:     factors,
		InterventionNeeded: score >= CriticalThreshold,
		Severity:           severity,
	}
}

// #endregion

// #region sub-scores

// sleepRisk: mean sleep plus consecutive sub-6h runs, capped at 100.
func sleepRisk(decisions []tradeoff.TradeOffDecision) float64 {
	var hours []float64
	for i := range decisions {
		hours = append(hours, decisions[i].State.SleepHours)
	}
	if len(hours) == 0 {
		return 0
	}

	var sum float64
	consecutive, maxConsecutive := 0, 0
	for _, h := range hours {
		sum += h
		if h < 6 {
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
		} else {
			consecutive = 0
		}
	}
	avg := sum / float64(len(hours))

	risk := 0.0
	if avg < 6.5 {
		risk += 40
	} else if avg < 7 {
		risk += 20
	}
	if maxConsecutive >= 3 {
		risk += 50
	} else if maxConsecutive >= 2 {
		risk += 30
	}
	return capped(risk)
}

// stressRisk: mean stress code plus consecutive HIGH runs, capped at 100.
func stressRisk(decisions []tradeoff.TradeOffDecision) float64 {
	var codes []int
	for i := range decisions {
		codes = append(codes, decisions[i].State.StressLevel.Code())
	}
	if len(codes) == 0 {
		return 0
	}

	var sum int
	consecutive, maxConsecutive := 0, 0
	for _, c := range codes {
		sum += c
		if c >= 3 {
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
		} else {
			consecutive = 0
		}
	}
	avg := float64(sum) / float64(len(codes))

	risk := 0.0
	if avg >= 2.5 {
		risk += 40
	}
	if maxConsecutive >= 3 {
		risk += 60
	} else if maxConsecutive >= 2 {
		risk += 30
	}
	return capped(risk)
}

// recoveryRisk: skip rate across recovery-type categories.
func recoveryRisk(decisions []tradeoff.TradeOffDecision) float64 {
	skipped, opportunities := 0, 0
	for i := range decisions {
		for _, dd := range decisions[i].Decisions {
			if dd.Category != health.CategoryRecovery && dd.Category != health.CategoryMindfulness {
				continue
			}
			opportunities++
			if dd.Action == tradeoff.ActionSkip {
				skipped++
			}
		}
	}
	if opportunities == 0 {
		return 0
	}

	rate := float64(skipped) / float64(opportunities)
	switch {
	case rate >= 0.6:
		return 80
	case rate >= 0.4:
		return 50
	case rate >= 0.2:
		return 25
	}
	return 0
}

// energyDeclineRisk: mean day-over-day energy delta across the window.
// Needs at least 3 samples to call a trend.
func energyDeclineRisk(decisions []tradeoff.TradeOffDecision) float64 {
	var levels []int
	for i := range decisions {
		levels = append(levels, decisions[i].State.EnergyLevel)
	}
	if len(levels) < 3 {
		return 0
	}

	var total int
	for i := 1; i < len(levels); i++ {
		total += levels[i] - levels[i-1]
	}
	avgChange := float64(total) / float64(len(levels)-1)

	switch {
	case avgChange <= -2:
		return 70
	case avgChange <= -1:
		return 40
	case avgChange < 0:
		return 20
	}
	return 0
}

// #endregion

// #region helpers

// crisisTimeline maps the composite score to an estimated day count, nil
// below the moderate threshold.
func crisisTimeline(score int) *int {
	if score < ModerateThreshold {
		return nil
	}
	days := 7
	switch {
	case score >= 90:
		days = 1
	case score >= 80:
		days = 2
	case score >= 70:
		days = 3
	case score >= 60:
		days = 5
	}
	return &days
}

func lowRiskForecast() Forecast {
	return Forecast{
		RiskScore:      10,
		PrimaryFactors: []string{"Insufficient data for analysis"},
		Severity:       "low",
	}
}

func withinDays(now time.Time, decisions []tradeoff.TradeOffDecision, days int) []tradeoff.TradeOffDecision {
	cutoff := now.AddDate(0, 0, -days)
	var out []tradeoff.TradeOffDecision
	for i := range decisions {
		if !decisions[i].Timestamp.Before(cutoff) {
			out = append(out, decisions[i])
		}
	}
	return out
}

func capped(risk float64) float64 {
	if risk > 100 {
		return 100
	}
	return risk
}

// #endregion
