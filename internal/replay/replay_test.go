package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
)

func restedDay(ts time.Time, expected map[string]string) FixtureDay {
	return FixtureDay{
		Snapshot: FixtureSnapshot{
			Timestamp:          ts.Format(time.RFC3339),
			SleepHours:         8,
			SleepQuality:       85,
			EnergyLevel:        8,
			StressLevel:        "low",
			TimeAvailableHours: 3,
		},
		Tasks: []FixtureTask{
			{Name: "Morning run", Category: "fitness", DurationMinutes: 45, Intensity: 0.7},
			{Name: "Meal prep", Category: "nutrition", DurationMinutes: 30, Intensity: 0.3},
			{Name: "Evening wind-down", Category: "recovery", DurationMinutes: 30, Intensity: 0.2},
			{Name: "Meditation", Category: "mindfulness", DurationMinutes: 15, Intensity: 0.2},
		},
		ExpectedActions: expected,
	}
}

func writeFixture(t *testing.T, f Fixture) string {
	t.Helper()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	ts := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	path := writeFixture(t, Fixture{
		Description: "two rested days",
		Days:        []FixtureDay{restedDay(ts, nil), restedDay(ts.AddDate(0, 0, 1), nil)},
	})

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Description != "two rested days" || len(f.Days) != 2 {
		t.Errorf("fixture = %q with %d days", f.Description, len(f.Days))
	}

	snap := f.Days[0].Snapshot.ToSnapshot()
	if !snap.Timestamp.Equal(ts) || snap.SleepQuality != 85 {
		t.Errorf("snapshot = %+v", snap)
	}
	tasks := f.Days[0].ToTasks()
	if len(tasks) != 4 || tasks[0].Category != health.CategoryFitness {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestLoadFixtureRejectsBadTimestamp(t *testing.T) {
	day := restedDay(time.Now(), nil)
	day.Snapshot.Timestamp = "yesterday"
	path := writeFixture(t, Fixture{Days: []FixtureDay{day}})
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected timestamp error")
	}
}

func TestLoadFixtureRejectsUnknownCategory(t *testing.T) {
	day := restedDay(time.Now(), nil)
	day.Tasks[0].Category = "crossfit"
	path := writeFixture(t, Fixture{Days: []FixtureDay{day}})
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected category error")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestReplayMatchesExpectations(t *testing.T) {
	ts := time.Now().UTC().AddDate(0, 0, -2)
	allMaintain := map[string]string{
		"fitness": "MAINTAIN", "nutrition": "MAINTAIN",
		"recovery": "MAINTAIN", "mindfulness": "MAINTAIN",
	}
	f := &Fixture{Days: []FixtureDay{
		restedDay(ts, allMaintain),
		restedDay(ts.AddDate(0, 0, 1), allMaintain),
		restedDay(ts.AddDate(0, 0, 2), allMaintain),
	}}

	results := Replay(f, DefaultReplayConfig())
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if len(r.Mismatches) != 0 {
			t.Errorf("day %d: unexpected mismatches %+v", r.Day, r.Mismatches)
		}
		if len(r.Decision.Decisions) != 4 {
			t.Errorf("day %d: %d decisions", r.Day, len(r.Decision.Decisions))
		}
	}

	summary := Summarize(results, DefaultReplayConfig())
	if summary.TotalDays != 3 || summary.MismatchDays != 0 || summary.Mismatches != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.FinalForecast.Severity != "low" {
		t.Errorf("severity = %q after three rested days", summary.FinalForecast.Severity)
	}
}

func TestReplayRecordsMismatch(t *testing.T) {
	ts := time.Now().UTC().AddDate(0, 0, -1)
	day := restedDay(ts, map[string]string{
		"fitness":     "SKIP",     // engine will maintain
		"mindfulness": "MAINTAIN", // task removed below, so no decision
	})
	day.Tasks = day.Tasks[:3]

	results := Replay(&Fixture{Days: []FixtureDay{day}}, DefaultReplayConfig())
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if len(results[0].Mismatches) != 2 {
		t.Fatalf("got %d mismatches: %+v", len(results[0].Mismatches), results[0].Mismatches)
	}
	for _, m := range results[0].Mismatches {
		switch m.Category {
		case health.CategoryFitness:
			if m.Expected != "SKIP" || m.Actual != "MAINTAIN" {
				t.Errorf("fitness mismatch = %+v", m)
			}
		case health.CategoryMindfulness:
			if m.Actual != "" {
				t.Errorf("mindfulness actual = %q, want empty for absent decision", m.Actual)
			}
		default:
			t.Errorf("unexpected mismatch category %s", m.Category)
		}
	}

	summary := Summarize(results, DefaultReplayConfig())
	if summary.MismatchDays != 1 || summary.Mismatches != 2 {
		t.Errorf("summary = %+v", summary)
	}
}
