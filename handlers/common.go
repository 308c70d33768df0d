// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/surveyhub/surveyhub/authz"
	"github.com/surveyhub/surveyhub/middleware"
)

// writeDecision maps a non-Allow authorization decision onto the response
// and reports whether the request may proceed.
func writeDecision(w http.ResponseWriter, d authz.Decision) bool {
	switch d.Outcome {
	case authz.Allow:
		return true
	case authz.BadRequest:
		middleware.ErrorResponse(w, http.StatusBadRequest, d.Reason)
	case authz.Forbidden:
		middleware.ErrorResponse(w, http.StatusForbidden, d.Reason)
	case authz.NotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, d.Reason)
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, d.Reason)
	}
	return false
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// Both lib/pq ("duplicate key value violates unique constraint") and
// modernc sqlite ("UNIQUE constraint failed") mention the constraint kind
// in the message; neither exposes a portable typed error through
// database/sql.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
