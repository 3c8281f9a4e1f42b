package wearable

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
)

func TestSleepQualityScore(t *testing.T) {
	cases := []struct {
		name   string
		sample Sample
		want   float64
	}{
		{"perfect night", Sample{SleepHours: 8, DeepSleepPct: 25, WakeEvents: 0}, 100},
		{"half of everything", Sample{SleepHours: 4, DeepSleepPct: 12.5, WakeEvents: 5}, 40},
		{"oversleep capped", Sample{SleepHours: 10, DeepSleepPct: 25, WakeEvents: 0}, 100},
		{"fragmented floor", Sample{SleepHours: 8, DeepSleepPct: 25, WakeEvents: 9}, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.sample.SleepQualityScore()
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestDeriveStress(t *testing.T) {
	cases := []struct {
		name   string
		sample Sample
		want   health.StressLevel
	}{
		{"healthy markers", Sample{HRVMs: 45, RestingHR: 65, SleepHours: 7.5}, health.StressLow},
		{"two mild signals", Sample{HRVMs: 35, RestingHR: 72, SleepHours: 7.5}, health.StressMedium},
		{"everything elevated", Sample{HRVMs: 25, RestingHR: 80, SleepHours: 4.5}, health.StressHigh},
		{"hrv boundary is mild", Sample{HRVMs: 30, RestingHR: 65, SleepHours: 7.5}, health.StressLow},
		{"short sleep alone", Sample{HRVMs: 45, RestingHR: 65, SleepHours: 4.5}, health.StressMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStress(tc.sample); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeriveEnergy(t *testing.T) {
	rested := Sample{SleepHours: 8, DeepSleepPct: 25, WakeEvents: 0, HRVMs: 55}
	if got := DeriveEnergy(rested); got != 10 {
		t.Errorf("rested energy = %d, want 10", got)
	}

	depleted := Sample{SleepHours: 4, DeepSleepPct: 5, WakeEvents: 5, HRVMs: 20}
	if got := DeriveEnergy(depleted); got != 2 {
		t.Errorf("depleted energy = %d, want 2", got)
	}

	crashed := Sample{SleepHours: 2, DeepSleepPct: 0, WakeEvents: 5, HRVMs: 10}
	if got := DeriveEnergy(crashed); got != 1 {
		t.Errorf("crashed energy = %d, want 1", got)
	}
}

func TestSnapshotFromTelemetry(t *testing.T) {
	p := profile.Default("u1", "Test User")
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	today := Sample{
		Date: date, SleepHours: 6, DeepSleepPct: 20, WakeEvents: 2,
		RestingHR: 68.4, HRVMs: 42, Steps: 9500, ActiveMinutes: 30,
	}
	history := []Sample{
		{SleepHours: 6, ActiveMinutes: 30},
		{SleepHours: 7, ActiveMinutes: 70, Steps: 5000},
		{SleepHours: 9, ActiveMinutes: 20, Steps: 13000},
	}

	snap := Snapshot(today, history, p, 2.5)

	if snap.SleepHours != 6 {
		t.Errorf("sleep = %.1f", snap.SleepHours)
	}
	if snap.TimeAvailableHours != 2.5 {
		t.Errorf("time available = %.1f", snap.TimeAvailableHours)
	}
	if snap.RestingHR != 68 {
		t.Errorf("resting hr = %d, want rounded 68", snap.RestingHR)
	}
	if snap.StepsToday != 9500 {
		t.Errorf("steps = %d", snap.StepsToday)
	}
	// Target is 7.5h: shortfalls of 1.5 and 0.5, surplus night ignored.
	if math.Abs(snap.SleepDebtHours-2.0) > 1e-9 {
		t.Errorf("sleep debt = %.2f, want 2.00", snap.SleepDebtHours)
	}
	// Last two history days are high effort (70 active minutes, 13k steps).
	if snap.ConsecutiveHighEffortDays != 2 {
		t.Errorf("high effort streak = %d, want 2", snap.ConsecutiveHighEffortDays)
	}
	if snap.EnergyLevel != DeriveEnergy(today) || snap.StressLevel != DeriveStress(today) {
		t.Error("snapshot should carry derived energy and stress")
	}
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"date,sleep_hours,deep_sleep_pct,wake_events,resting_hr,hrv_ms,steps,active_minutes,calories",
		"2026-03-01,7.2,21.5,1,64,48,8200,35,2500",
		"not-a-date,7.0,20,1,64,48,8000,30,2400",
		"2026-03-02,6.1,18.0,3,69,39,6100,20,2200",
	}, "\n")

	samples, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2 (bad row skipped)", len(samples))
	}
	if samples[0].SleepHours != 7.2 || samples[0].Steps != 8200 {
		t.Errorf("first sample = %+v", samples[0])
	}
	if !samples[1].Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second date = %v", samples[1].Date)
	}
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	input := "date,sleep,deep_sleep_pct,wake_events,resting_hr,hrv_ms,steps,active_minutes,calories\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected header error")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	a, err := Generate(ScenarioNormal, 14, 42, end)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(ScenarioNormal, 14, 42, end)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce identical series")
	}
	if len(a) != 14 {
		t.Fatalf("got %d days", len(a))
	}
	if !a[0].Date.Equal(end.AddDate(0, 0, -14)) {
		t.Errorf("first day = %v", a[0].Date)
	}
	if !a[len(a)-1].Date.Equal(end.AddDate(0, 0, -1)) {
		t.Errorf("last day = %v, want day before end", a[len(a)-1].Date)
	}
}

func TestGenerateInvariants(t *testing.T) {
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, scenario := range Scenarios() {
		samples, err := Generate(scenario, 21, 7, end)
		if err != nil {
			t.Fatalf("%s: %v", scenario, err)
		}
		for i, s := range samples {
			if s.SleepHours < 2 || s.HRVMs < 10 || s.WakeEvents < 0 || s.Steps < 0 {
				t.Errorf("%s day %d violates clamps: %+v", scenario, i, s)
			}
			if want := 1800 + s.Steps/20 + s.ActiveMinutes*5; s.Calories != want {
				t.Errorf("%s day %d: calories %d, want %d", scenario, i, s.Calories, want)
			}
		}
	}
}

func TestGenerateWeekendWarrior(t *testing.T) {
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	samples, err := Generate(ScenarioWeekendWarrior, 14, 3, end)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, s := range samples {
		wd := s.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			if s.Steps < 12000 {
				t.Errorf("%s: weekend steps %d too low", s.Date.Format("2006-01-02"), s.Steps)
			}
		} else if s.Steps >= 12000 {
			t.Errorf("%s: weekday steps %d too high", s.Date.Format("2006-01-02"), s.Steps)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	end := time.Now().UTC()
	if _, err := Generate(ScenarioNormal, 0, 1, end); err == nil {
		t.Error("expected error for zero days")
	}
	if _, err := Generate(Scenario("bogus"), 7, 1, end); err == nil {
		t.Error("expected error for unknown scenario")
	}
}
