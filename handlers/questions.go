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
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// CreateQuestion handles POST /surveys/{id}/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	if surveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id required")
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question required")
		return
	}

	qType := req.Type
	if qType == "" {
		qType = models.QuestionTypeText
	}

	questionID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO questions (id, survey_id, question, type)
		VALUES ($1, $2, $3, $4)
	`, questionID, surveyID, req.Question, qType)

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "survey_id", surveyID, "question_id", questionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: questionID})
}

// ListQuestions handles GET /surveys/{id}/questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")

	rows, err := h.db.Query(`
		SELECT id, survey_id, question, type
		FROM questions
		WHERE survey_id = $1
	`, surveyID)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.SurveyID, &q.Question, &q.Type); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// GetQuestion handles GET /surveys/{id}/questions/{qid}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	questionID := r.PathValue("qid")

	var q models.Question
	err := h.db.QueryRow(`
		SELECT id, survey_id, question, type
		FROM questions
		WHERE id = $1 AND survey_id = $2
	`, questionID, surveyID).Scan(&q.ID, &q.SurveyID, &q.Question, &q.Type)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// UpdateQuestion handles PUT /surveys/{id}/questions/{qid}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	questionID := r.PathValue("qid")

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Question == nil && req.Type == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}

	fields := []string{}
	values := []interface{}{}
	arg := 1
	if req.Question != nil {
		fields = append(fields, fmt.Sprintf("question = $%d", arg))
		values = append(values, *req.Question)
		arg++
	}
	if req.Type != nil {
		fields = append(fields, fmt.Sprintf("type = $%d", arg))
		values = append(values, *req.Type)
		arg++
	}

	// Scoped by survey id so a question can't be edited through another
	// survey's URL.
	values = append(values, questionID, surveyID)
	query := fmt.Sprintf(
		"UPDATE questions SET %s WHERE id = $%d AND survey_id = $%d",
		strings.Join(fields, ", "), arg, arg+1,
	)

	res, err := h.db.Exec(query, values...)
	if err != nil {
		slog.Error("failed to update question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdatedResponse{Updated: affected})
}
