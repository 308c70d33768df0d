// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/surveyhub/surveyhub/authz"
	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/db"
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
	"github.com/surveyhub/surveyhub/scode"
)

// How many times to re-allocate and re-insert when a concurrent writer wins
// the race on the same candidate code. The UNIQUE constraint on
// surveys.code is the race arbiter; a violation means "allocate again",
// never "give up".
const codeInsertRetries = 3

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{db: db, cfg: cfg}
}

func (h *SurveyHandler) creatorLookup() authz.CreatorLookup {
	return func(surveyID string) (string, bool, error) {
		return db.SurveyCreator(h.db, surveyID)
	}
}

// CreateSurvey handles POST /surveys
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Creator == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and creator required")
		return
	}

	if !writeDecision(w, authz.Create(claims.UserID, claims.Role, req.Creator)) {
		return
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	surveyID := uuid.NewString()

	if req.Code != "" {
		// Caller supplied their own code: it must be well-formed and free.
		// No fallback to auto-generation on either failure.
		if !scode.ValidateFormat(req.Code) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid code format")
			return
		}

		taken, err := db.CodeExists(h.db, req.Code)
		if err != nil {
			slog.Error("failed to check code", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			middleware.ErrorResponse(w, http.StatusBadRequest, "code already in use")
			return
		}

		err = h.insertSurvey(surveyID, req.Name, description, req.Creator, req.Code)
		if isUniqueViolation(err) {
			// Lost the race to a concurrent writer claiming the same code.
			middleware.ErrorResponse(w, http.StatusBadRequest, "code already in use")
			return
		}
		if err != nil {
			slog.Error("failed to insert survey", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
			return
		}

		slog.Info("survey created", "survey_id", surveyID, "code", req.Code, "creator", req.Creator)
		middleware.JSONResponse(w, http.StatusCreated, models.CreateSurveyResponse{ID: surveyID, Code: req.Code})
		return
	}

	code, err := h.allocateAndInsert(surveyID, req.Name, description, req.Creator)
	if err == scode.ErrExhausted {
		slog.Error("survey code allocation exhausted", "creator", req.Creator)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to allocate survey code")
		return
	}
	if err != nil {
		slog.Error("failed to insert survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
		return
	}

	slog.Info("survey created", "survey_id", surveyID, "code", code, "creator", req.Creator)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSurveyResponse{ID: surveyID, Code: code})
}

// allocateAndInsert allocates a fresh code and inserts the survey,
// re-allocating when the insert loses a uniqueness race.
func (h *SurveyHandler) allocateAndInsert(surveyID, name string, description *string, creator string) (string, error) {
	exists := func(code string) (bool, error) { return db.CodeExists(h.db, code) }

	var lastErr error
	for attempt := 0; attempt < codeInsertRetries; attempt++ {
		code, err := scode.Allocate(exists, scode.DefaultMaxAttempts)
		if err != nil {
			return "", err
		}

		err = h.insertSurvey(surveyID, name, description, creator, code)
		if err == nil {
			return code, nil
		}
		if !isUniqueViolation(err) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func (h *SurveyHandler) insertSurvey(surveyID, name string, description *string, creator, code string) error {
	_, err := h.db.Exec(`
		INSERT INTO surveys (id, name, description, creator, code)
		VALUES ($1, $2, $3, $4, $5)
	`, surveyID, name, description, creator, code)
	return err
}

// ListSurveys handles GET /surveys
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, description, creator, code, created_at
		FROM surveys
		ORDER BY created_at
	`)
	if err != nil {
		slog.Error("failed to query surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	surveys := []models.Survey{}
	for rows.Next() {
		var s models.Survey
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Creator, &s.Code, &s.CreatedAt); err != nil {
			slog.Error("failed to scan survey", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		surveys = append(surveys, s)
	}

	middleware.JSONResponse(w, http.StatusOK, surveys)
}

// GetSurvey handles GET /surveys/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	if surveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id required")
		return
	}

	var s models.Survey
	err := h.db.QueryRow(`
		SELECT id, name, description, creator, code, created_at
		FROM surveys
		WHERE id = $1
	`, surveyID).Scan(&s.ID, &s.Name, &s.Description, &s.Creator, &s.Code, &s.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}

// GetSurveyByCode handles GET /surveys/code/{code}
func (h *SurveyHandler) GetSurveyByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "code required")
		return
	}

	var s models.Survey
	err := h.db.QueryRow(`
		SELECT id, name, description, creator, code, created_at
		FROM surveys
		WHERE code = $1
	`, code).Scan(&s.ID, &s.Name, &s.Description, &s.Creator, &s.Code, &s.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s)
}

// UpdateSurvey handles PUT /surveys/{id}
func (h *SurveyHandler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	surveyID := r.PathValue("id")

	var req models.UpdateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == nil && req.Description == nil && req.Creator == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if !writeDecision(w, authz.Change(claims.UserID, claims.Role, surveyID, h.creatorLookup(), req.Creator)) {
		return
	}

	fields := []string{}
	values := []interface{}{}
	arg := 1
	if req.Name != nil {
		fields = append(fields, fmt.Sprintf("name = $%d", arg))
		values = append(values, *req.Name)
		arg++
	}
	if req.Description != nil {
		fields = append(fields, fmt.Sprintf("description = $%d", arg))
		values = append(values, *req.Description)
		arg++
	}
	if req.Creator != nil {
		fields = append(fields, fmt.Sprintf("creator = $%d", arg))
		values = append(values, *req.Creator)
		arg++
	}

	values = append(values, surveyID)
	query := fmt.Sprintf("UPDATE surveys SET %s WHERE id = $%d", strings.Join(fields, ", "), arg)

	res, err := h.db.Exec(query, values...)
	if err != nil {
		slog.Error("failed to update survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update survey")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update survey")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdatedResponse{Updated: affected})
}

// DeleteSurvey handles DELETE /surveys/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	surveyID := r.PathValue("id")

	if !writeDecision(w, authz.Change(claims.UserID, claims.Role, surveyID, h.creatorLookup(), nil)) {
		return
	}

	err := db.DeleteSurveyCascade(h.db, surveyID)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete survey", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete survey")
		return
	}

	slog.Info("survey deleted", "survey_id", surveyID)

	w.WriteHeader(http.StatusNoContent)
}
