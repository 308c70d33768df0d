// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "database/sql"

// CodeExists reports whether any survey already carries the given code.
// Errors are returned as-is so callers can tell an inconclusive check from
// a free code.
func CodeExists(db *sql.DB, code string) (bool, error) {
	var id string
	err := db.QueryRow("SELECT id FROM surveys WHERE code = $1", code).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SurveyCreator returns the creator of the survey with the given id.
// found=false means no such survey. Matches authz.CreatorLookup.
func SurveyCreator(db *sql.DB, surveyID string) (string, bool, error) {
	var creator string
	err := db.QueryRow("SELECT creator FROM surveys WHERE id = $1", surveyID).Scan(&creator)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return creator, true, nil
}

// QuestionBelongsToSurvey reports whether the question exists and is owned
// by the given survey. Used to reject cross-survey answer and response
// attachment.
func QuestionBelongsToSurvey(db *sql.DB, questionID, surveyID string) (bool, error) {
	var id string
	err := db.QueryRow(
		"SELECT id FROM questions WHERE id = $1 AND survey_id = $2",
		questionID, surveyID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
