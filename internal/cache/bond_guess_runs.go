package cache

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// BondGuessRun is one persisted bond-guesser invocation's provenance.
type BondGuessRun struct {
	RunID             string `json:"run_id"`
	SourceFingerprint string `json:"source_fingerprint"`
	GuesserName       string `json:"guesser_name"`
	BondsAddedCount   int    `json:"bonds_added_count"`
	CreatedAt         int64  `json:"created_at"`
}

// InsertBondGuessRun persists run, generating a run id and timestamp if unset.
func (c *Cache) InsertBondGuessRun(run *BondGuessRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = c.clock.Now().UnixNano()
	}
	_, err := c.db.Exec(`
		INSERT INTO bond_guess_runs (run_id, source_fingerprint, guesser_name, bonds_added_count, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.SourceFingerprint, run.GuesserName, run.BondsAddedCount, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("cache: insert bond guess run: %w", err)
	}
	return nil
}

// ListBondGuessRuns returns every recorded invocation for fingerprint, most
// recent first.
func (c *Cache) ListBondGuessRuns(fingerprint string) ([]BondGuessRun, error) {
	rows, err := c.db.Query(`
		SELECT run_id, source_fingerprint, guesser_name, bonds_added_count, created_at
		FROM bond_guess_runs
		WHERE source_fingerprint = ?
		ORDER BY created_at DESC`, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("cache: list bond guess runs: %w", err)
	}
	defer rows.Close()

	var out []BondGuessRun
	for rows.Next() {
		var r BondGuessRun
		if err := rows.Scan(&r.RunID, &r.SourceFingerprint, &r.GuesserName, &r.BondsAddedCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("cache: scan bond guess run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
