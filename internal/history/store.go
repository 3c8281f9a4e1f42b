package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kibbyd/htpa/go-engine/internal/pattern"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	decision_id  TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	payload      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_created ON decisions(created_at);

CREATE TABLE IF NOT EXISTS adaptations (
	id           TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	payload      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profile (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	payload      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	decision_id  TEXT NOT NULL,
	trigger_type TEXT NOT NULL,
	state_json   TEXT,
	constraints  TEXT,
	summary      TEXT,
	confidence   REAL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (decision_id) REFERENCES decisions(decision_id)
);
`

// #endregion schema

// #region store-struct

// maxDecisions bounds the decision log: append, then trim to last N.
const maxDecisions = 50

// Store is the injected history repository: an append-only, size-bounded
// decision log plus adaptation records and the user profile. The mutex
// serializes writers; readers get point-in-time snapshots the engine never
// mutates.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw connection for provenance logging.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region append-decision

// AppendDecision inserts a decision and trims the log to the newest
// maxDecisions rows in the same transaction.
func (s *Store) AppendDecision(d tradeoff.TradeOffDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO decisions (decision_id, created_at, payload) VALUES (?, ?, ?)`,
		d.DecisionID, d.Timestamp.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM decisions WHERE decision_id NOT IN (
			SELECT decision_id FROM decisions ORDER BY created_at DESC LIMIT ?
		)`, maxDecisions,
	)
	if err != nil {
		return fmt.Errorf("trim decisions: %w", err)
	}

	return tx.Commit()
}

// #endregion append-decision

// #region read-decisions

// Decisions returns up to limit decisions, oldest first. limit <= 0 returns
// the full bounded log.
func (s *Store) Decisions(limit int) ([]tradeoff.TradeOffDecision, error) {
	if limit <= 0 || limit > maxDecisions {
		limit = maxDecisions
	}

	rows, err := s.db.Query(
		`SELECT payload FROM (
			SELECT payload, created_at FROM decisions ORDER BY created_at DESC LIMIT ?
		) ORDER BY created_at ASC`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var decisions []tradeoff.TradeOffDecision
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var d tradeoff.TradeOffDecision
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, fmt.Errorf("unmarshal decision: %w", err)
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

// Decision retrieves a single decision by id.
func (s *Store) Decision(id string) (tradeoff.TradeOffDecision, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM decisions WHERE decision_id = ?`, id).Scan(&payload)
	if err != nil {
		return tradeoff.TradeOffDecision{}, fmt.Errorf("get decision %s: %w", id, err)
	}
	var d tradeoff.TradeOffDecision
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return tradeoff.TradeOffDecision{}, fmt.Errorf("unmarshal decision: %w", err)
	}
	return d, nil
}

// ClearDecisions removes every decision row.
func (s *Store) ClearDecisions() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM decisions`)
	if err != nil {
		return fmt.Errorf("clear decisions: %w", err)
	}
	return nil
}

// #endregion read-decisions

// #region adaptations

// AppendAdaptation persists one adaptation record.
func (s *Store) AppendAdaptation(rec pattern.AdaptationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal adaptation: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO adaptations (id, created_at, payload) VALUES (?, ?, ?)`,
		rec.ID, rec.Timestamp.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert adaptation: %w", err)
	}
	return nil
}

// Adaptations returns up to limit adaptation records, oldest first.
func (s *Store) Adaptations(limit int) ([]pattern.AdaptationRecord, error) {
	if limit <= 0 {
		limit = maxDecisions
	}
	rows, err := s.db.Query(
		`SELECT payload FROM (
			SELECT payload, created_at FROM adaptations ORDER BY created_at DESC LIMIT ?
		) ORDER BY created_at ASC`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list adaptations: %w", err)
	}
	defer rows.Close()

	var records []pattern.AdaptationRecord
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var rec pattern.AdaptationRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal adaptation: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion adaptations

// #region profile

// Profile reads the stored profile; when none exists it returns ok=false.
func (s *Store) Profile() (profile.Profile, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM profile WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return profile.Profile{}, false, nil
	}
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	var p profile.Profile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return profile.Profile{}, false, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, true, nil
}

// SetProfile upserts the single profile row.
func (s *Store) SetProfile(p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO profile (id, payload) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// #endregion profile
