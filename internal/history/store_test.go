package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/pattern"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func makeDecision(id string, at time.Time) tradeoff.TradeOffDecision {
	return tradeoff.TradeOffDecision{
		DecisionID: id,
		Timestamp:  at,
		State: health.StateSnapshot{
			SleepHours:  7,
			EnergyLevel: 6,
			StressLevel: health.StressLow,
		},
		ConstraintsActive: []health.ConstraintName{health.ConstraintLowSleep},
		Decisions: []tradeoff.DomainDecision{
			{Category: health.CategoryFitness, Action: tradeoff.ActionMaintain, Reasoning: "ok"},
		},
		ConfidenceScore:  0.9,
		ReasoningSummary: "test decision",
	}
}

func TestAppendAndReadDecisions(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		d := makeDecision(fmt.Sprintf("dec-%d", i), base.Add(time.Duration(i)*time.Hour))
		if err := store.AppendDecision(d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	decisions, err := store.Decisions(0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions, want 3", len(decisions))
	}
	// Oldest first.
	for i, d := range decisions {
		if want := fmt.Sprintf("dec-%d", i); d.DecisionID != want {
			t.Errorf("position %d: got %s, want %s", i, d.DecisionID, want)
		}
	}
	// Payload round trip.
	if decisions[0].State.SleepHours != 7 || decisions[0].ConfidenceScore != 0.9 {
		t.Errorf("payload lost fields: %+v", decisions[0])
	}
	if len(decisions[0].ConstraintsActive) != 1 {
		t.Errorf("constraints lost: %+v", decisions[0].ConstraintsActive)
	}
}

func TestDecisionLogTrimsToBound(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < maxDecisions+10; i++ {
		d := makeDecision(fmt.Sprintf("dec-%03d", i), base.Add(time.Duration(i)*time.Hour))
		if err := store.AppendDecision(d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	decisions, err := store.Decisions(0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(decisions) != maxDecisions {
		t.Fatalf("got %d decisions, want %d", len(decisions), maxDecisions)
	}
	// The oldest 10 were evicted.
	if decisions[0].DecisionID != "dec-010" {
		t.Errorf("oldest surviving = %s, want dec-010", decisions[0].DecisionID)
	}
	if decisions[len(decisions)-1].DecisionID != fmt.Sprintf("dec-%03d", maxDecisions+9) {
		t.Errorf("newest = %s", decisions[len(decisions)-1].DecisionID)
	}
}

func TestDecisionsLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := store.AppendDecision(makeDecision(fmt.Sprintf("dec-%d", i), base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	decisions, err := store.Decisions(2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(decisions) != 2 {
		t.Fatalf("got %d, want 2", len(decisions))
	}
	// The two newest, still oldest-first.
	if decisions[0].DecisionID != "dec-3" || decisions[1].DecisionID != "dec-4" {
		t.Errorf("got %s, %s", decisions[0].DecisionID, decisions[1].DecisionID)
	}
}

func TestDecisionByID(t *testing.T) {
	store := newTestStore(t)
	d := makeDecision("dec-x", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	if err := store.AppendDecision(d); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Decision("dec-x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ReasoningSummary != "test decision" {
		t.Errorf("summary = %q", got.ReasoningSummary)
	}

	if _, err := store.Decision("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestClearDecisions(t *testing.T) {
	store := newTestStore(t)
	if err := store.AppendDecision(makeDecision("dec-1", time.Now().UTC())); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.ClearDecisions(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	decisions, err := store.Decisions(0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(decisions) != 0 {
		t.Errorf("expected empty log, got %d", len(decisions))
	}
}

func TestAdaptationsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	rec := pattern.AdaptationRecord{
		ID:                 "adapt-1",
		Timestamp:          time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		PatternDetected:    "consistent_skip_fitness",
		AdaptationMade:     "Reduced fitness expectations by 30%",
		AffectedCategories: []health.Category{health.CategoryFitness},
		Reasoning:          "skipped too often",
	}
	if err := store.AppendAdaptation(rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := store.Adaptations(0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].PatternDetected != rec.PatternDetected || len(records[0].AffectedCategories) != 1 {
		t.Errorf("round trip lost data: %+v", records[0])
	}
}

func TestProfileUpsert(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.Profile(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	p := profile.Default("u1", "Test User")
	if err := store.SetProfile(p); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := store.Profile()
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.UserID != "u1" || got.Name != "Test User" {
		t.Errorf("profile = %+v", got)
	}

	// Upsert replaces the single row.
	p.Goal = "marathon"
	if err := store.SetProfile(p); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, _, _ = store.Profile()
	if got.Goal != "marathon" {
		t.Errorf("goal = %q", got.Goal)
	}
}
