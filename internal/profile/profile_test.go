package profile

import (
	"math"
	"testing"

	"github.com/kibbyd/htpa/go-engine/internal/health"
)

func TestNormalize(t *testing.T) {
	p := DomainPreferences{Fitness: 2, Nutrition: 1, Recovery: 1, Mindfulness: 0}
	p.Normalize()
	if math.Abs(p.Fitness-0.5) > 1e-9 || math.Abs(p.Nutrition-0.25) > 1e-9 {
		t.Errorf("normalized = %+v", p)
	}
	if sum := p.Fitness + p.Nutrition + p.Recovery + p.Mindfulness; math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("sum = %f", sum)
	}
}

func TestNormalizeZeroTotal(t *testing.T) {
	p := DomainPreferences{}
	p.Normalize()
	if p != (DomainPreferences{}) {
		t.Errorf("zero-total set should be unchanged, got %+v", p)
	}
}

func TestWeight(t *testing.T) {
	p := DomainPreferences{Fitness: 0.4, Nutrition: 0.3, Recovery: 0.2, Mindfulness: 0.1}
	if p.Weight(health.CategoryFitness) != 0.4 || p.Weight(health.CategoryMindfulness) != 0.1 {
		t.Errorf("weights = %+v", p)
	}
	if p.Weight(health.Category("unknown")) != 0 {
		t.Error("unknown category should weigh 0")
	}
}

func TestDefault(t *testing.T) {
	p := Default("u1", "Test User")
	if p.UserID != "u1" || p.Name != "Test User" {
		t.Errorf("identity = %q %q", p.UserID, p.Name)
	}
	if p.TargetSleepHours != 7.5 || p.MinSleepHours != 6.0 || p.MaxConsecutiveHighEffort != 3 {
		t.Errorf("thresholds = %+v", p)
	}
	if p.Preferences != DefaultPreferences() {
		t.Errorf("preferences = %+v", p.Preferences)
	}
	if p.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}
