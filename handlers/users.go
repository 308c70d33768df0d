// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/surveyhub/surveyhub/authz"
	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// GetUser handles GET /users/{id}
// Returns only the user's id and display name.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var u models.PublicUser
	err := h.db.QueryRow(`
		SELECT id, name FROM users WHERE id = $1
	`, userID).Scan(&u.ID, &u.Name)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}

// GetUserSurveys handles GET /users/{id}/surveys
func (h *UserHandler) GetUserSurveys(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	rows, err := h.db.Query(`
		SELECT id, name, description, creator, code, created_at
		FROM surveys
		WHERE creator = $1
		ORDER BY created_at
	`, userID)
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

// GetAdmins handles GET /users/admins
// Returns id, name and email of every administrator.
func (h *UserHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email FROM users WHERE role = $1
	`, authz.RoleAdmin)
	if err != nil {
		slog.Error("failed to query admins", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	admins := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			slog.Error("failed to scan admin", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		admins = append(admins, u)
	}

	middleware.JSONResponse(w, http.StatusOK, admins)
}
