package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision
// LogDecision writes a provenance entry to the provenance_log table.
func LogDecision(db *sql.DB, entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO provenance_log (decision_id, trigger_type, state_json, constraints, summary, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.DecisionID,
		entry.TriggerType,
		nullIfEmpty(entry.StateJSON),
		nullIfEmpty(entry.Constraints),
		nullIfEmpty(entry.Summary),
		entry.Confidence,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
