// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when the targeted survey row does not exist.
var ErrNotFound = errors.New("survey not found")

// DeleteSurveyCascade removes a survey and everything hanging off it in one
// transaction. Deletion order is fixed: responses, answers through the
// question join, questions, then the survey row itself.
//
// If the survey row turns out not to exist the whole transaction is rolled
// back and ErrNotFound is returned - dependent-row deletions for a missing
// survey are never committed. Any other failure also rolls back everything.
func DeleteSurveyCascade(db *sql.DB, surveyID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM responses WHERE survey_id = $1", surveyID); err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}

	if _, err := tx.Exec(`
		DELETE FROM answers
		WHERE question_id IN (SELECT id FROM questions WHERE survey_id = $1)
	`, surveyID); err != nil {
		return fmt.Errorf("failed to delete answers: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM questions WHERE survey_id = $1", surveyID); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}

	res, err := tx.Exec("DELETE FROM surveys WHERE id = $1", surveyID)
	if err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Deferred rollback undoes the dependent deletes.
		return ErrNotFound
	}

	return tx.Commit()
}
