package profile

import (
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/health"
)

// #region domain-preferences

// DomainPreferences holds the user's declared per-category priority weights.
type DomainPreferences struct {
	Fitness     float64 `json:"fitness"`
	Nutrition   float64 `json:"nutrition"`
	Recovery    float64 `json:"recovery"`
	Mindfulness float64 `json:"mindfulness"`
}

// DefaultPreferences returns an even 0.25 split.
func DefaultPreferences() DomainPreferences {
	return DomainPreferences{Fitness: 0.25, Nutrition: 0.25, Recovery: 0.25, Mindfulness: 0.25}
}

// Normalize rescales the weights to sum to 1.0. A zero-total set is left
// unchanged.
func (p *DomainPreferences) Normalize() {
	total := p.Fitness + p.Nutrition + p.Recovery + p.Mindfulness
	if total <= 0 {
		return
	}
	p.Fitness /= total
	p.Nutrition /= total
	p.Recovery /= total
	p.Mindfulness /= total
}

// Weight returns the declared weight for a category.
func (p DomainPreferences) Weight(c health.Category) float64 {
	switch c {
	case health.CategoryFitness:
		return p.Fitness
	case health.CategoryNutrition:
		return p.Nutrition
	case health.CategoryRecovery:
		return p.Recovery
	case health.CategoryMindfulness:
		return p.Mindfulness
	}
	return 0
}

// #endregion

// #region profile

// Profile is the user's goals, preferences, and decision thresholds.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Age  int    `json:"age,omitempty"`
	Goal string `json:"goal"`

	Preferences DomainPreferences `json:"preferences"`

	MinSleepHours            float64 `json:"min_sleep_hours"`
	TargetSleepHours         float64 `json:"target_sleep_hours"`
	MaxConsecutiveHighEffort int     `json:"max_consecutive_high_effort"`
}

// Default returns a profile with standard thresholds and even preferences.
func Default(userID, name string) Profile {
	return Profile{
		UserID:                   userID,
		Name:                     name,
		CreatedAt:                time.Now().UTC(),
		Goal:                     "general fitness",
		Preferences:              DefaultPreferences(),
		MinSleepHours:            6.0,
		TargetSleepHours:         7.5,
		MaxConsecutiveHighEffort: 3,
	}
}

// #endregion
