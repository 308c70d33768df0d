// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/surveyhub/surveyhub/scode"
)

// BackfillCodes assigns a code to every survey that lacks one. Run once at
// startup, before the server accepts traffic.
//
// Rows are repaired independently: an allocation or update failure is
// logged and skipped, never aborting the rest of the batch. Concurrent
// instances racing on the same rows are tolerated - the UNIQUE constraint
// on surveys.code makes the losing update fail harmlessly.
func BackfillCodes(db *sql.DB) error {
	rows, err := db.Query("SELECT id FROM surveys WHERE code IS NULL OR code = ''")
	if err != nil {
		return fmt.Errorf("failed to scan for missing codes: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan survey id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("failed to close scan: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	exists := func(code string) (bool, error) { return CodeExists(db, code) }

	repaired := 0
	for _, id := range ids {
		code, err := scode.Allocate(exists, scode.DefaultMaxAttempts)
		if err != nil {
			slog.Error("code backfill: allocation failed", "survey_id", id, "error", err)
			continue
		}

		if _, err := db.Exec("UPDATE surveys SET code = $1 WHERE id = $2", code, id); err != nil {
			slog.Error("code backfill: update failed", "survey_id", id, "error", err)
			continue
		}
		repaired++
	}

	slog.Info("code backfill complete", "missing", len(ids), "repaired", repaired)
	return nil
}
