package logging

import "time"

// #region provenance-entry
// ProvenanceEntry is a single row in the provenance_log table. One row is
// written per decision cycle so a run can be audited after the fact.
type ProvenanceEntry struct {
	DecisionID  string
	TriggerType string // "interactive" | "simulation" | "replay"
	StateJSON   string
	Constraints string // comma-joined active constraint names
	Summary     string
	Confidence  float64
	CreatedAt   time.Time
}

// #endregion provenance-entry
