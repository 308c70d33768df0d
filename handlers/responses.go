// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/db"
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
)

type ResponseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResponseHandler(db *sql.DB, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{db: db, cfg: cfg}
}

// CreateResponse handles POST /responses/{id} where {id} is the survey id
func (h *ResponseHandler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	if surveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id required")
		return
	}

	var req models.CreateResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionID == "" || req.Answer == "" || req.ResponderID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id, answer and responder_id required")
		return
	}

	ok, err := db.QuestionBelongsToSurvey(h.db, req.QuestionID, surveyID)
	if err != nil {
		slog.Error("failed to check question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question not found for this survey")
		return
	}

	responseID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO responses (id, survey_id, question_id, responder_id, answer)
		VALUES ($1, $2, $3, $4, $5)
	`, responseID, surveyID, req.QuestionID, req.ResponderID, req.Answer)

	if err != nil {
		slog.Error("failed to insert response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create response")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: responseID})
}

func (h *ResponseHandler) listResponses(w http.ResponseWriter, query string, args ...interface{}) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var resp models.Response
		if err := rows.Scan(&resp.ID, &resp.SurveyID, &resp.QuestionID, &resp.ResponderID, &resp.Answer, &resp.CreatedAt); err != nil {
			slog.Error("failed to scan response", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		responses = append(responses, resp)
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}

// ListBySurvey handles GET /responses/survey/{id}
func (h *ResponseHandler) ListBySurvey(w http.ResponseWriter, r *http.Request) {
	h.listResponses(w, `
		SELECT id, survey_id, question_id, responder_id, answer, created_at
		FROM responses
		WHERE survey_id = $1
		ORDER BY created_at
	`, r.PathValue("id"))
}

// ListBySurveyAndResponder handles GET /responses/survey/{id}/{responder}
func (h *ResponseHandler) ListBySurveyAndResponder(w http.ResponseWriter, r *http.Request) {
	h.listResponses(w, `
		SELECT id, survey_id, question_id, responder_id, answer, created_at
		FROM responses
		WHERE survey_id = $1 AND responder_id = $2
		ORDER BY created_at
	`, r.PathValue("id"), r.PathValue("responder"))
}

// ListByQuestion handles GET /responses/question/{id}
func (h *ResponseHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	h.listResponses(w, `
		SELECT id, survey_id, question_id, responder_id, answer, created_at
		FROM responses
		WHERE question_id = $1
		ORDER BY created_at
	`, r.PathValue("id"))
}

// GetLastResponder handles GET /responses/last-responder
// Returns the responder id of the most recent response, empty if none.
func (h *ResponseHandler) GetLastResponder(w http.ResponseWriter, r *http.Request) {
	var responderID string
	err := h.db.QueryRow(`
		SELECT responder_id FROM responses
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&responderID)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query last responder", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LastResponderResponse{LastResponderID: responderID})
}
