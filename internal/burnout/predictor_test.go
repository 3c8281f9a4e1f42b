package burnout

import (
	"testing"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

var anchor = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

// day builds one history entry n days before the anchor.
func day(n int, sleep float64, stress health.StressLevel, energy int, recoveryAction tradeoff.Action) tradeoff.TradeOffDecision {
	return tradeoff.TradeOffDecision{
		Timestamp: anchor.AddDate(0, 0, -n),
		State: health.StateSnapshot{
			SleepHours:  sleep,
			StressLevel: stress,
			EnergyLevel: energy,
		},
		Decisions: []tradeoff.DomainDecision{
			{Category: health.CategoryRecovery, Action: recoveryAction},
			{Category: health.CategoryFitness, Action: tradeoff.ActionMaintain},
		},
	}
}

func TestPredictInsufficientData(t *testing.T) {
	cases := [][]tradeoff.TradeOffDecision{
		nil,
		{day(0, 5, health.StressHigh, 2, tradeoff.ActionSkip)},
	}
	for _, history := range cases {
		f := PredictAt(anchor, history)
		if f.RiskScore != 10 || f.Severity != "low" {
			t.Errorf("short history: got score=%d severity=%s, want 10/low", f.RiskScore, f.Severity)
		}
		if f.DaysToCrisis != nil {
			t.Error("no crisis timeline without data")
		}
		if len(f.PrimaryFactors) != 1 || f.PrimaryFactors[0] != "Insufficient data for analysis" {
			t.Errorf("factors = %v", f.PrimaryFactors)
		}
	}
}

func TestPredictIgnoresStaleHistory(t *testing.T) {
	// Plenty of bad days, all older than the 7-day window.
	var history []tradeoff.TradeOffDecision
	for i := 10; i < 20; i++ {
		history = append(history, day(i, 4, health.StressHigh, 2, tradeoff.ActionSkip))
	}
	f := PredictAt(anchor, history)
	if f.RiskScore != 10 {
		t.Errorf("stale history should score as insufficient data, got %d", f.RiskScore)
	}
}

func TestPredictHealthyWeek(t *testing.T) {
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 7; i++ {
		history = append(history, day(i, 8, health.StressLow, 7, tradeoff.ActionMaintain))
	}
	f := PredictAt(anchor, history)
	if f.Severity != "low" {
		t.Errorf("healthy week severity = %s (score %d)", f.Severity, f.RiskScore)
	}
	if f.InterventionNeeded {
		t.Error("no intervention needed on a healthy week")
	}
	if len(f.PrimaryFactors) != 1 || f.PrimaryFactors[0] != "No significant risk factors" {
		t.Errorf("factors = %v", f.PrimaryFactors)
	}
}

func TestPredictCollapsingWeek(t *testing.T) {
	// Short sleep every night, constant high stress, recovery always
	// skipped, energy sliding: every sub-score maxes out.
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 7; i++ {
		energy := 9 - i // 9 down to 3
		history = append(history, day(6-i, 5, health.StressHigh, energy, tradeoff.ActionSkip))
	}
	f := PredictAt(anchor, history)

	if f.Severity != "critical" {
		t.Fatalf("severity = %s (score %d), want critical", f.Severity, f.RiskScore)
	}
	if !f.InterventionNeeded {
		t.Error("critical score must flag intervention")
	}
	if f.DaysToCrisis == nil {
		t.Fatal("critical score must carry a crisis timeline")
	}
	if *f.DaysToCrisis < 1 || *f.DaysToCrisis > 3 {
		t.Errorf("days to crisis = %d", *f.DaysToCrisis)
	}
	if len(f.PrimaryFactors) < 3 {
		t.Errorf("expected several named factors, got %v", f.PrimaryFactors)
	}
}

func TestSleepRiskConsecutiveRuns(t *testing.T) {
	// 7h averages but a 3-night sub-6h run embedded.
	decisions := []tradeoff.TradeOffDecision{
		day(6, 8, health.StressLow, 7, tradeoff.ActionMaintain),
		day(5, 5.5, health.StressLow, 7, tradeoff.ActionMaintain),
		day(4, 5.5, health.StressLow, 7, tradeoff.ActionMaintain),
		day(3, 5.5, health.StressLow, 7, tradeoff.ActionMaintain),
		day(2, 8, health.StressLow, 7, tradeoff.ActionMaintain),
	}
	risk := sleepRisk(decisions)
	// avg 6.5 lands in the sub-7 band (+20); the 3-night run adds 50.
	if risk != 70 {
		t.Errorf("sleep risk = %f, want 70", risk)
	}
}

func TestRecoveryRiskTiers(t *testing.T) {
	build := func(skips, total int) []tradeoff.TradeOffDecision {
		var out []tradeoff.TradeOffDecision
		for i := 0; i < total; i++ {
			action := tradeoff.ActionMaintain
			if i < skips {
				action = tradeoff.ActionSkip
			}
			out = append(out, day(i, 8, health.StressLow, 7, action))
		}
		return out
	}

	cases := []struct {
		skips, total int
		want         float64
	}{
		{0, 5, 0},
		{1, 5, 25},  // 20%
		{2, 5, 50},  // 40%
		{3, 5, 80},  // 60%
	}
	for _, tc := range cases {
		if got := recoveryRisk(build(tc.skips, tc.total)); got != tc.want {
			t.Errorf("recoveryRisk(%d/%d) = %f, want %f", tc.skips, tc.total, got, tc.want)
		}
	}
}

func TestEnergyDeclineNeedsThreeSamples(t *testing.T) {
	two := []tradeoff.TradeOffDecision{
		day(1, 8, health.StressLow, 9, tradeoff.ActionMaintain),
		day(0, 8, health.StressLow, 2, tradeoff.ActionMaintain),
	}
	if got := energyDeclineRisk(two); got != 0 {
		t.Errorf("two samples is not a trend, got %f", got)
	}

	steep := []tradeoff.TradeOffDecision{
		day(2, 8, health.StressLow, 9, tradeoff.ActionMaintain),
		day(1, 8, health.StressLow, 6, tradeoff.ActionMaintain),
		day(0, 8, health.StressLow, 3, tradeoff.ActionMaintain),
	}
	if got := energyDeclineRisk(steep); got != 70 {
		t.Errorf("steep decline risk = %f, want 70", got)
	}
}

func TestCrisisTimeline(t *testing.T) {
	cases := []struct {
		score int
		want  int // 0 means nil
	}{
		{10, 0},
		{29, 0},
		{30, 7},
		{60, 5},
		{70, 3},
		{80, 2},
		{95, 1},
	}
	for _, tc := range cases {
		got := crisisTimeline(tc.score)
		if tc.want == 0 {
			if got != nil {
				t.Errorf("crisisTimeline(%d) = %d, want nil", tc.score, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("crisisTimeline(%d) = %v, want %d", tc.score, got, tc.want)
		}
	}
}
