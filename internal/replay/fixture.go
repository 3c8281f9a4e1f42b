package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string           `json:"description"`
	Profile     *profile.Profile `json:"profile,omitempty"`
	Days        []FixtureDay     `json:"days"`
}

// FixtureDay pairs one day's snapshot and plan with the actions the engine
// is expected to take, keyed by category.
type FixtureDay struct {
	Snapshot        FixtureSnapshot   `json:"snapshot"`
	Tasks           []FixtureTask     `json:"tasks"`
	ExpectedActions map[string]string `json:"expected_actions,omitempty"`
}

// FixtureSnapshot mirrors health.StateSnapshot with JSON-friendly fields.
type FixtureSnapshot struct {
	Timestamp                 string  `json:"timestamp"`
	SleepHours                float64 `json:"sleep_hours"`
	SleepQuality              float64 `json:"sleep_quality"`
	EnergyLevel               int     `json:"energy_level"`
	StressLevel               string  `json:"stress_level"`
	TimeAvailableHours        float64 `json:"time_available_hours"`
	SleepDebtHours            float64 `json:"sleep_debt_hours"`
	ConsecutiveHighEffortDays int     `json:"consecutive_high_effort_days"`
	HRVMs                     float64 `json:"hrv_ms,omitempty"`
	RestingHR                 int     `json:"resting_hr,omitempty"`
	StepsToday                int     `json:"steps_today,omitempty"`
}

// FixtureTask mirrors health.PlannedTask with JSON tags.
type FixtureTask struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"duration_minutes"`
	Intensity       float64 `json:"intensity"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, day := range f.Days {
		if _, err := time.Parse(time.RFC3339, day.Snapshot.Timestamp); err != nil {
			return nil, fmt.Errorf("fixture day %d: bad timestamp %q: %w", i, day.Snapshot.Timestamp, err)
		}
		for _, task := range day.Tasks {
			if !health.ValidCategory(health.Category(task.Category)) {
				return nil, fmt.Errorf("fixture day %d: unknown category %q", i, task.Category)
			}
		}
	}
	return &f, nil
}

// ToSnapshot converts a FixtureSnapshot to a domain StateSnapshot.
func (fs *FixtureSnapshot) ToSnapshot() health.StateSnapshot {
	ts, _ := time.Parse(time.RFC3339, fs.Timestamp)
	return health.StateSnapshot{
		Timestamp:                 ts,
		SleepHours:                fs.SleepHours,
		SleepQuality:              fs.SleepQuality,
		EnergyLevel:               fs.EnergyLevel,
		StressLevel:               health.StressLevel(fs.StressLevel),
		TimeAvailableHours:        fs.TimeAvailableHours,
		SleepDebtHours:            fs.SleepDebtHours,
		ConsecutiveHighEffortDays: fs.ConsecutiveHighEffortDays,
		HRVMs:                     fs.HRVMs,
		RestingHR:                 fs.RestingHR,
		StepsToday:                fs.StepsToday,
	}
}

// ToTasks converts a day's fixture tasks to domain tasks.
func (d *FixtureDay) ToTasks() []health.PlannedTask {
	tasks := make([]health.PlannedTask, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		tasks = append(tasks, health.PlannedTask{
			Name:            t.Name,
			Category:        health.Category(t.Category),
			DurationMinutes: t.DurationMinutes,
			Intensity:       t.Intensity,
		})
	}
	return tasks
}

// #endregion fixture-loader
