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

	"github.com/surveyhub/surveyhub/auth"
	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/middleware"
	"github.com/surveyhub/surveyhub/models"
)

// AdminHandler serves the user-management routes. The router guards every
// route with middleware.RequireAdmin.
type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

func (h *AdminHandler) getUser(userID string) (*models.User, error) {
	var u models.User
	err := h.db.QueryRow(`
		SELECT id, name, email, role, created_at FROM users WHERE id = $1
	`, userID).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	role := req.Role
	if role == "" {
		role = models.DefaultRole
	}

	var name *string
	if req.Name != "" {
		name = &req.Name
	}

	userID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, name, req.Email, hash, role)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "user already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user, err := h.getUser(userID)
	if err != nil {
		slog.Error("failed to load created user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created by admin", "user_id", userID, "role", role)

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email, role, created_at FROM users ORDER BY created_at
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			slog.Error("failed to scan user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		users = append(users, u)
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// GetUser handles GET /admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.getUser(r.PathValue("id"))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// UpdateUser handles PUT /admin/users/{id}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var req models.AdminUpdateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == nil && req.Email == nil && req.Role == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no fields to update")
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
	if req.Email != nil {
		fields = append(fields, fmt.Sprintf("email = $%d", arg))
		values = append(values, *req.Email)
		arg++
	}
	if req.Role != nil {
		fields = append(fields, fmt.Sprintf("role = $%d", arg))
		values = append(values, *req.Role)
		arg++
	}

	values = append(values, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(fields, ", "), arg)

	res, err := h.db.Exec(query, values...)
	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "email already in use")
			return
		}
		slog.Error("failed to update user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	user, err := h.getUser(userID)
	if err != nil {
		slog.Error("failed to load updated user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		slog.Error("failed to delete user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	slog.Info("user deleted", "user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}
