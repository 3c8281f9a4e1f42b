package pattern

import (
	"strings"
	"testing"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

var anchor = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

func historyEntry(daysAgo int, fitnessAction tradeoff.Action, constraints ...health.ConstraintName) tradeoff.TradeOffDecision {
	return tradeoff.TradeOffDecision{
		Timestamp:         anchor.AddDate(0, 0, -daysAgo),
		ConstraintsActive: constraints,
		Decisions: []tradeoff.DomainDecision{
			{Category: health.CategoryFitness, Action: fitnessAction},
			{Category: health.CategoryRecovery, Action: tradeoff.ActionMaintain},
		},
	}
}

func upcomingPlan() []health.PlannedTask {
	return []health.PlannedTask{
		{Name: "Morning run", Category: health.CategoryFitness, DurationMinutes: 40, Intensity: 0.7},
		{Name: "Meditation", Category: health.CategoryMindfulness, DurationMinutes: 15, Intensity: 0.2},
	}
}

func TestSkipFrequency(t *testing.T) {
	// 5 skips across 7 in-window days.
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 7; i++ {
		action := tradeoff.ActionMaintain
		if i < 5 {
			action = tradeoff.ActionSkip
		}
		history = append(history, historyEntry(i, action))
	}
	d := NewDetector(history, anchor)

	got := d.SkipFrequency(health.CategoryFitness, 7)
	want := 5.0 / 7.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("skip frequency = %f, want %f", got, want)
	}
	if d.SkipFrequency(health.CategoryRecovery, 7) != 0 {
		t.Error("recovery was never skipped")
	}
}

func TestSkipFrequencyWindowing(t *testing.T) {
	history := []tradeoff.TradeOffDecision{
		historyEntry(20, tradeoff.ActionSkip),
		historyEntry(1, tradeoff.ActionMaintain),
	}
	d := NewDetector(history, anchor)
	if got := d.SkipFrequency(health.CategoryFitness, 7); got != 0 {
		t.Errorf("out-of-window skip counted: %f", got)
	}
}

func TestAdjustChronicSkipsReducesPlan(t *testing.T) {
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 7; i++ {
		action := tradeoff.ActionMaintain
		if i < 5 {
			action = tradeoff.ActionSkip
		}
		history = append(history, historyEntry(i, action))
	}
	current := historyEntry(0, tradeoff.ActionMaintain)

	a := NewAdjuster(DefaultAdjusterConfig())
	tasks, records := a.adjustAt(anchor, current, upcomingPlan(), history)

	var fitness *health.PlannedTask
	for i := range tasks {
		if tasks[i].Category == health.CategoryFitness {
			fitness = &tasks[i]
		}
	}
	if fitness == nil {
		t.Fatal("fitness task missing from adjusted plan")
	}
	if fitness.DurationMinutes != 28 { // 40 * 0.7
		t.Errorf("duration = %d, want 28", fitness.DurationMinutes)
	}
	if fitness.Intensity < 0.7*0.8-1e-9 || fitness.Intensity > 0.7*0.8+1e-9 {
		t.Errorf("intensity = %f, want %f", fitness.Intensity, 0.7*0.8)
	}
	if !strings.HasPrefix(fitness.Name, "Flexible ") {
		t.Errorf("name = %q", fitness.Name)
	}

	found := false
	for _, rec := range records {
		if rec.PatternDetected == "consistent_skip_fitness" {
			found = true
			if rec.ID == "" || rec.Reasoning == "" {
				t.Errorf("incomplete record: %+v", rec)
			}
		}
	}
	if !found {
		t.Errorf("expected consistent_skip_fitness record, got %+v", records)
	}
}

func TestAdjustRequiresMinHistory(t *testing.T) {
	history := []tradeoff.TradeOffDecision{
		historyEntry(1, tradeoff.ActionSkip),
		historyEntry(0, tradeoff.ActionSkip),
	}
	current := historyEntry(0, tradeoff.ActionMaintain)

	a := NewAdjuster(DefaultAdjusterConfig())
	tasks, records := a.adjustAt(anchor, current, upcomingPlan(), history)

	if len(records) != 0 {
		t.Errorf("below MinHistory no pattern should fire: %+v", records)
	}
	if tasks[0].Name != "Morning run" {
		t.Errorf("plan should be unchanged, got %q", tasks[0].Name)
	}
}

func TestAdjustImmediateIntensityReduction(t *testing.T) {
	current := historyEntry(0, tradeoff.ActionMaintain)
	current.FutureImpacts = []tradeoff.FutureImpact{
		{DaysAffected: 3, AdjustmentType: tradeoff.ImpactIntensityReduction},
	}

	a := NewAdjuster(DefaultAdjusterConfig())
	tasks, records := a.adjustAt(anchor, current, upcomingPlan(), nil)

	want := 0.7 * 0.6
	if tasks[0].Intensity < want-1e-9 || tasks[0].Intensity > want+1e-9 {
		t.Errorf("intensity = %f, want %f", tasks[0].Intensity, want)
	}
	if len(records) != 1 || records[0].PatternDetected != "high_fatigue_signals" {
		t.Errorf("records = %+v", records)
	}
}

func TestAdjustFitnessSkipToRecoveryWorkout(t *testing.T) {
	current := historyEntry(0, tradeoff.ActionSkip)

	a := NewAdjuster(DefaultAdjusterConfig())
	tasks, _ := a.adjustAt(anchor, current, upcomingPlan(), nil)

	if tasks[0].Name != "Recovery workout" {
		t.Fatalf("expected recovery workout after skip, got %q", tasks[0].Name)
	}
	if tasks[0].DurationMinutes != 30 || tasks[0].Intensity != 0.4 {
		t.Errorf("recovery workout shape: %+v", tasks[0])
	}
	// Non-fitness tasks untouched.
	if tasks[1].Name != "Meditation" {
		t.Errorf("mindfulness task changed: %+v", tasks[1])
	}
}

func TestAdjustChronicStressAndSleepRecords(t *testing.T) {
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 6; i++ {
		history = append(history, historyEntry(i, tradeoff.ActionMaintain,
			health.ConstraintHighStress, health.ConstraintLowSleep))
	}
	current := historyEntry(0, tradeoff.ActionMaintain)

	a := NewAdjuster(DefaultAdjusterConfig())
	_, records := a.adjustAt(anchor, current, upcomingPlan(), history)

	patterns := make(map[string]bool)
	for _, rec := range records {
		patterns[rec.PatternDetected] = true
	}
	if !patterns["chronic_high_stress"] {
		t.Error("expected chronic_high_stress record")
	}
	if !patterns["chronic_sleep_deficit"] {
		t.Error("expected chronic_sleep_deficit record")
	}
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	upcoming := upcomingPlan()
	current := historyEntry(0, tradeoff.ActionSkip)

	a := NewAdjuster(DefaultAdjusterConfig())
	a.adjustAt(anchor, current, upcoming, nil)

	if upcoming[0].Name != "Morning run" {
		t.Errorf("input slice mutated: %+v", upcoming[0])
	}
}

func TestWeeklyReportInsufficientData(t *testing.T) {
	a := NewAdjuster(DefaultAdjusterConfig())
	report := a.weeklyReportAt(anchor, []tradeoff.TradeOffDecision{
		historyEntry(0, tradeoff.ActionMaintain),
	})
	if report.Status != StatusInsufficientData {
		t.Fatalf("status = %s", report.Status)
	}
	if report.Categories != nil {
		t.Error("no category stats below MinHistory")
	}
}

func TestWeeklyReportRecommendations(t *testing.T) {
	var history []tradeoff.TradeOffDecision
	for i := 0; i < 7; i++ {
		action := tradeoff.ActionMaintain
		if i < 4 { // 57% skip rate
			action = tradeoff.ActionSkip
		}
		history = append(history, historyEntry(i, action, health.ConstraintHighStress))
	}

	a := NewAdjuster(DefaultAdjusterConfig())
	report := a.weeklyReportAt(anchor, history)

	if report.Status != StatusOK {
		t.Fatalf("status = %s", report.Status)
	}
	if report.TotalDecisions != 7 {
		t.Errorf("total = %d", report.TotalDecisions)
	}
	stats := report.Categories[health.CategoryFitness]
	if stats.SkipRate < 57 || stats.SkipRate > 58 {
		t.Errorf("fitness skip rate = %f", stats.SkipRate)
	}

	var sawTargets, sawStress bool
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "reducing fitness targets") {
			sawTargets = true
		}
		if strings.Contains(rec, "High stress is frequent") {
			sawStress = true
		}
	}
	if !sawTargets || !sawStress {
		t.Errorf("recommendations = %v", report.Recommendations)
	}
}

func TestDayOfWeekPatterns(t *testing.T) {
	monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) // a Monday
	history := []tradeoff.TradeOffDecision{
		{Timestamp: monday, Decisions: []tradeoff.DomainDecision{
			{Category: health.CategoryFitness, Action: tradeoff.ActionSkip},
		}},
		{Timestamp: monday.AddDate(0, 0, 7), Decisions: []tradeoff.DomainDecision{
			{Category: health.CategoryFitness, Action: tradeoff.ActionMaintain},
		}},
		{Timestamp: monday.AddDate(0, 0, 5), Decisions: nil}, // Saturday
	}
	d := NewDetector(history, monday.AddDate(0, 0, 8))

	stats := d.DayOfWeekPatterns()
	if stats[0].Decisions != 2 {
		t.Errorf("monday decisions = %d, want 2", stats[0].Decisions)
	}
	if stats[0].SkipRate != 0.5 {
		t.Errorf("monday skip rate = %f, want 0.5", stats[0].SkipRate)
	}
	if stats[5].Decisions != 1 {
		t.Errorf("saturday decisions = %d, want 1", stats[5].Decisions)
	}
	if stats[2].Decisions != 0 {
		t.Errorf("wednesday should be empty, got %d", stats[2].Decisions)
	}
}
