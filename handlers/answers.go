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

	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/db"
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
)

type AnswerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnswerHandler(db *sql.DB, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{db: db, cfg: cfg}
}

// checkQuestion rejects answers pointing at a question outside the survey
// named in the URL.
func (h *AnswerHandler) checkQuestion(w http.ResponseWriter, questionID, surveyID string) bool {
	ok, err := db.QuestionBelongsToSurvey(h.db, questionID, surveyID)
	if err != nil {
		slog.Error("failed to check question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question not found for this survey")
		return false
	}
	return true
}

// CreateAnswer handles POST /surveys/{id}/answers
func (h *AnswerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")

	var req models.CreateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionID == "" || req.Answer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id and answer required")
		return
	}

	if !h.checkQuestion(w, req.QuestionID, surveyID) {
		return
	}

	answerID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO answers (id, question_id, answer)
		VALUES ($1, $2, $3)
	`, answerID, req.QuestionID, req.Answer)

	if err != nil {
		slog.Error("failed to insert answer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create answer")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: answerID})
}

// UpdateAnswer handles PUT /surveys/{id}/answers/{aid}
func (h *AnswerHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	answerID := r.PathValue("aid")

	var req models.UpdateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionID == nil && req.Answer == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}

	fields := []string{}
	values := []interface{}{}
	arg := 1
	if req.QuestionID != nil {
		// Re-pointing an answer still has to stay inside this survey.
		if !h.checkQuestion(w, *req.QuestionID, surveyID) {
			return
		}
		fields = append(fields, fmt.Sprintf("question_id = $%d", arg))
		values = append(values, *req.QuestionID)
		arg++
	}
	if req.Answer != nil {
		fields = append(fields, fmt.Sprintf("answer = $%d", arg))
		values = append(values, *req.Answer)
		arg++
	}

	values = append(values, answerID)
	query := fmt.Sprintf("UPDATE answers SET %s WHERE id = $%d", strings.Join(fields, ", "), arg)

	res, err := h.db.Exec(query, values...)
	if err != nil {
		slog.Error("failed to update answer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update answer")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update answer")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdatedResponse{Updated: affected})
}

// ListAnswers handles GET /surveys/{id}/answers
func (h *AnswerHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")

	rows, err := h.db.Query(`
		SELECT a.id, a.question_id, a.answer
		FROM answers a
		JOIN questions q ON a.question_id = q.id
		WHERE q.survey_id = $1
	`, surveyID)
	if err != nil {
		slog.Error("failed to query answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Answer); err != nil {
			slog.Error("failed to scan answer", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		answers = append(answers, a)
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// GetAnswer handles GET /surveys/{id}/answers/{aid}
func (h *AnswerHandler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	answerID := r.PathValue("aid")

	var a models.Answer
	err := h.db.QueryRow(`
		SELECT a.id, a.question_id, a.answer
		FROM answers a
		JOIN questions q ON a.question_id = q.id
		WHERE a.id = $1 AND q.survey_id = $2
	`, answerID, surveyID).Scan(&a.ID, &a.QuestionID, &a.Answer)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query answer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, a)
}
