package cache

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DSSPRun is one persisted DSSP classification result.
type DSSPRun struct {
	RunID              string `json:"run_id"`
	SourceFingerprint  string `json:"source_fingerprint"`
	Frame              int    `json:"frame"`
	ClassificationJSON string `json:"classification_json"`
	CreatedAt          int64  `json:"created_at"`
}

// InsertDSSPRun persists run, generating a run id and timestamp if unset.
func (c *Cache) InsertDSSPRun(run *DSSPRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = c.clock.Now().UnixNano()
	}
	_, err := c.db.Exec(`
		INSERT INTO dssp_runs (run_id, source_fingerprint, frame, classification_json, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.SourceFingerprint, run.Frame, run.ClassificationJSON, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("cache: insert dssp run: %w", err)
	}
	return nil
}

// FindDSSPRun returns the most recent cached run for fingerprint+frame, if
// any, so a repeated analyze invocation can skip recomputation.
func (c *Cache) FindDSSPRun(fingerprint string, frame int) (*DSSPRun, bool, error) {
	row := c.db.QueryRow(`
		SELECT run_id, source_fingerprint, frame, classification_json, created_at
		FROM dssp_runs
		WHERE source_fingerprint = ? AND frame = ?
		ORDER BY created_at DESC LIMIT 1`, fingerprint, frame)

	var run DSSPRun
	if err := row.Scan(&run.RunID, &run.SourceFingerprint, &run.Frame, &run.ClassificationJSON, &run.CreatedAt); err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: find dssp run: %w", err)
	}
	return &run, true, nil
}

// MarshalClassification is a small convenience around encoding/json for
// callers assembling a DSSPRun's classification_json column.
func MarshalClassification(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cache: marshal classification: %w", err)
	}
	return string(b), nil
}
