// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/surveyhub/surveyhub/models"
	"github.com/surveyhub/surveyhub/testutil"
)

func TestAdminCreateUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg)

	t.Run("creates a user with explicit role", func(t *testing.T) {
		body := models.RegisterRequest{Name: "New Admin", Email: "na@example.com", Password: "secret99", Role: "admin"}
		req := testutil.MakeRequest("POST", "/admin/users", body, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		raw := w.Body.String()
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.Role != "admin" {
			t.Errorf("Role = %q, want admin", user.Role)
		}
		if strings.Contains(raw, "secret99") {
			t.Error("Response leaks the password")
		}
	})

	t.Run("defaults role to user", func(t *testing.T) {
		body := models.RegisterRequest{Email: "plain@example.com", Password: "secret99"}
		req := testutil.MakeRequest("POST", "/admin/users", body, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.Role != models.DefaultRole {
			t.Errorf("Role = %q, want %q", user.Role, models.DefaultRole)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		body := models.RegisterRequest{Email: "plain@example.com", Password: "secret99"}
		req := testutil.MakeRequest("POST", "/admin/users", body, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestAdminUpdateUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "Target", "target@example.com", "user")
	testutil.CreateTestUser(t, conn, "Bystander", "bystander@example.com", "user")

	t.Run("promote to admin", func(t *testing.T) {
		role := "admin"
		body := models.AdminUpdateUserRequest{Role: &role}
		req := testutil.MakeRequest("PUT", "/admin/users/"+userID, body, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.Role != "admin" {
			t.Errorf("Role = %q, want admin", user.Role)
		}
	})

	t.Run("email collision conflicts", func(t *testing.T) {
		email := "bystander@example.com"
		body := models.AdminUpdateUserRequest{Email: &email}
		req := testutil.MakeRequest("PUT", "/admin/users/"+userID, body, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("no fields", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/admin/users/"+userID, models.AdminUpdateUserRequest{}, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing user", func(t *testing.T) {
		name := "Ghost"
		body := models.AdminUpdateUserRequest{Name: &name}
		req := testutil.MakeRequest("PUT", "/admin/users/ghost-id", body, nil)
		req.SetPathValue("id", "ghost-id")
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestAdminListAndGetUsers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "One", "one@example.com", "user")
	testutil.CreateTestUser(t, conn, "Two", "two@example.com", "admin")

	t.Run("list", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/users", nil, nil)
		w := httptest.NewRecorder()

		handler.ListUsers(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		raw := w.Body.String()
		var users []models.User
		testutil.AssertJSON(t, w, &users)
		if len(users) != 2 {
			t.Errorf("Got %d users, want 2", len(users))
		}
		if strings.Contains(raw, "password") {
			t.Error("User listing leaks password fields")
		}
	})

	t.Run("get", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/users/"+userID, nil, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.GetUser(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var user models.User
		testutil.AssertJSON(t, w, &user)
		if user.Email != "one@example.com" {
			t.Errorf("Email = %q, want one@example.com", user.Email)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/users/ghost", nil, nil)
		req.SetPathValue("id", "ghost")
		w := httptest.NewRecorder()

		handler.GetUser(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestAdminDeleteUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "Doomed", "doomed@example.com", "user")

	t.Run("delete existing", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/admin/users/"+userID, nil, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.DeleteUser(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)
		if n := testutil.CountRows(t, conn, "users"); n != 0 {
			t.Errorf("users has %d rows, want 0", n)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/admin/users/"+userID, nil, nil)
		req.SetPathValue("id", userID)
		w := httptest.NewRecorder()

		handler.DeleteUser(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
