package health

// #region constraint-name

// ConstraintName identifies a limiting condition. The vocabulary is fixed;
// the priority modifier table and category rules key off these values.
type ConstraintName string

const (
	ConstraintLowSleep         ConstraintName = "low_sleep"
	ConstraintCriticalSleep    ConstraintName = "critical_sleep"
	ConstraintSleepDebt        ConstraintName = "sleep_debt_accumulated"
	ConstraintLowEnergy        ConstraintName = "low_energy"
	ConstraintCriticalEnergy   ConstraintName = "critical_energy"
	ConstraintHighStress       ConstraintName = "high_stress"
	ConstraintTimeLimited      ConstraintName = "time_limited"
	ConstraintTimeCritical     ConstraintName = "time_critical"
	ConstraintOvertrainingRisk ConstraintName = "overtraining_risk"
	ConstraintBurnoutWarning   ConstraintName = "burnout_warning"
)

// #endregion

// #region constraint

// Constraint is a named, severity-weighted limiting condition.
type Constraint struct {
	Name        ConstraintName `json:"name"`
	Severity    float64        `json:"severity"` // clamped to [0,1]
	Description string         `json:"description"`
	Source      string         `json:"source"` // "wearable" | "user_input" | "derived"
}

// #endregion

// #region active-constraints

// ActiveConstraints is the set of constraints detected in one evaluation
// pass, keyed by unique name. Insertion order is preserved for audit output.
type ActiveConstraints struct {
	constraints []Constraint
}

// Add appends a constraint, clamping its severity. Re-adding a name within
// one pass replaces the earlier entry.
func (a *ActiveConstraints) Add(name ConstraintName, severity float64, description, source string) {
	c := Constraint{
		Name:        name,
		Severity:    clamp01(severity),
		Description: description,
		Source:      source,
	}
	for i := range a.constraints {
		if a.constraints[i].Name == name {
			a.constraints[i] = c
			return
		}
	}
	a.constraints = append(a.constraints, c)
}

// Has reports whether the named constraint is active.
func (a *ActiveConstraints) Has(name ConstraintName) bool {
	for _, c := range a.constraints {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Severity returns the named constraint's severity, or 0 when inactive.
func (a *ActiveConstraints) Severity(name ConstraintName) float64 {
	for _, c := range a.constraints {
		if c.Name == name {
			return c.Severity
		}
	}
	return 0
}

// All returns the constraints in insertion order.
func (a *ActiveConstraints) All() []Constraint {
	out := make([]Constraint, len(a.constraints))
	copy(out, a.constraints)
	return out
}

// Names returns the constraint names in insertion order.
func (a *ActiveConstraints) Names() []ConstraintName {
	names := make([]ConstraintName, 0, len(a.constraints))
	for _, c := range a.constraints {
		names = append(names, c.Name)
	}
	return names
}

// Len returns the number of active constraints.
func (a *ActiveConstraints) Len() int { return len(a.constraints) }

// MeanSeverity averages severities across active constraints (0 when empty).
func (a *ActiveConstraints) MeanSeverity() float64 {
	if len(a.constraints) == 0 {
		return 0
	}
	var sum float64
	for _, c := range a.constraints {
		sum += c.Severity
	}
	return sum / float64(len(a.constraints))
}

// #endregion
