package health

import "testing"

func TestStressLevelCode(t *testing.T) {
	cases := []struct {
		level StressLevel
		want  int
	}{
		{StressLow, 1},
		{StressMedium, 2},
		{StressHigh, 3},
		{StressLevel("unknown"), 1},
	}
	for _, tc := range cases {
		if got := tc.level.Code(); got != tc.want {
			t.Errorf("Code(%q) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []Category{CategoryRecovery, CategoryNutrition, CategoryFitness, CategoryMindfulness}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(c) {
			t.Errorf("%s should be valid", c)
		}
	}
	if ValidCategory("sleep") {
		t.Error("sleep is not a category")
	}
}

func TestReadinessScoreDefaults(t *testing.T) {
	// No wearable feed: hrv defaults to 40, rhr to 70.
	s := StateSnapshot{SleepQuality: 70}
	score := s.ReadinessScore()
	if score < 0 || score > 100 {
		t.Fatalf("readiness out of range: %d", score)
	}

	rested := StateSnapshot{SleepQuality: 90, HRVMs: 80, RestingHR: 50}
	depleted := StateSnapshot{SleepQuality: 30, HRVMs: 22, RestingHR: 90, SleepDebtHours: 8}
	if rested.ReadinessScore() <= depleted.ReadinessScore() {
		t.Errorf("rested (%d) should outscore depleted (%d)",
			rested.ReadinessScore(), depleted.ReadinessScore())
	}
}

func TestActiveConstraintsAddReplaces(t *testing.T) {
	var cs ActiveConstraints
	cs.Add(ConstraintLowSleep, 0.3, "first", "wearable")
	cs.Add(ConstraintHighStress, 0.7, "stress", "wearable")
	cs.Add(ConstraintLowSleep, 0.6, "second", "wearable")

	if cs.Len() != 2 {
		t.Fatalf("expected 2 constraints, got %d", cs.Len())
	}
	if got := cs.Severity(ConstraintLowSleep); got != 0.6 {
		t.Errorf("re-add should replace severity, got %f", got)
	}
	// Insertion order preserved after replacement.
	names := cs.Names()
	if names[0] != ConstraintLowSleep || names[1] != ConstraintHighStress {
		t.Errorf("unexpected order: %v", names)
	}
}

func TestActiveConstraintsSeverityClamped(t *testing.T) {
	var cs ActiveConstraints
	cs.Add(ConstraintLowSleep, 1.7, "over", "derived")
	cs.Add(ConstraintLowEnergy, -0.5, "under", "derived")

	if got := cs.Severity(ConstraintLowSleep); got != 1.0 {
		t.Errorf("severity should clamp to 1.0, got %f", got)
	}
	if got := cs.Severity(ConstraintLowEnergy); got != 0.0 {
		t.Errorf("severity should clamp to 0.0, got %f", got)
	}
}

func TestMeanSeverity(t *testing.T) {
	var cs ActiveConstraints
	if cs.MeanSeverity() != 0 {
		t.Error("empty set should have mean severity 0")
	}
	cs.Add(ConstraintLowSleep, 0.4, "", "derived")
	cs.Add(ConstraintHighStress, 0.8, "", "derived")
	if got := cs.MeanSeverity(); got < 0.599 || got > 0.601 {
		t.Errorf("mean severity = %f, want 0.6", got)
	}
}
