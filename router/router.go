// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/surveyhub/surveyhub/cliparse"
	"github.com/surveyhub/surveyhub/handlers"
	"github.com/surveyhub/surveyhub/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	answerHandler := handlers.NewAnswerHandler(db, cfg)
	responseHandler := handlers.NewResponseHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	secret := cfg.JWTSecret

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Surveys (create/update/delete need a credential)
	mux.HandleFunc("POST /surveys", middleware.WithLogging(middleware.RequireAuth(secret, surveyHandler.CreateSurvey)))
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.ListSurveys))
	mux.HandleFunc("GET /surveys/code/{code}", middleware.WithLogging(surveyHandler.GetSurveyByCode))
	mux.HandleFunc("GET /surveys/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("PUT /surveys/{id}", middleware.WithLogging(middleware.RequireAuth(secret, surveyHandler.UpdateSurvey)))
	mux.HandleFunc("DELETE /surveys/{id}", middleware.WithLogging(middleware.RequireAuth(secret, surveyHandler.DeleteSurvey)))

	// Questions (nested under survey)
	mux.HandleFunc("POST /surveys/{id}/questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("GET /surveys/{id}/questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("GET /surveys/{id}/questions/{qid}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("PUT /surveys/{id}/questions/{qid}", middleware.WithLogging(questionHandler.UpdateQuestion))

	// Answers (validated through the question join)
	mux.HandleFunc("POST /surveys/{id}/answers", middleware.WithLogging(answerHandler.CreateAnswer))
	mux.HandleFunc("GET /surveys/{id}/answers", middleware.WithLogging(answerHandler.ListAnswers))
	mux.HandleFunc("GET /surveys/{id}/answers/{aid}", middleware.WithLogging(answerHandler.GetAnswer))
	mux.HandleFunc("PUT /surveys/{id}/answers/{aid}", middleware.WithLogging(answerHandler.UpdateAnswer))

	// Responses
	mux.HandleFunc("GET /responses/last-responder", middleware.WithLogging(responseHandler.GetLastResponder))
	mux.HandleFunc("POST /responses/{id}", middleware.WithLogging(responseHandler.CreateResponse))
	mux.HandleFunc("GET /responses/survey/{id}", middleware.WithLogging(responseHandler.ListBySurvey))
	mux.HandleFunc("GET /responses/survey/{id}/{responder}", middleware.WithLogging(responseHandler.ListBySurveyAndResponder))
	mux.HandleFunc("GET /responses/question/{id}", middleware.WithLogging(responseHandler.ListByQuestion))

	// Users
	mux.HandleFunc("GET /users/admins", middleware.WithLogging(userHandler.GetAdmins))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("GET /users/{id}/surveys", middleware.WithLogging(userHandler.GetUserSurveys))

	// Admin user management
	mux.HandleFunc("POST /admin/users", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.CreateUser)))
	mux.HandleFunc("GET /admin/users", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.ListUsers)))
	mux.HandleFunc("GET /admin/users/{id}", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.GetUser)))
	mux.HandleFunc("PUT /admin/users/{id}", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.UpdateUser)))
	mux.HandleFunc("DELETE /admin/users/{id}", middleware.WithLogging(middleware.RequireAdmin(secret, adminHandler.DeleteUser)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("surveyhub API v1"))
	})

	return mux
}
