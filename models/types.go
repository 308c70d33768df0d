package models

import "time"

// Default role for newly registered users. Any role other than "admin" is
// an ordinary user.
const DefaultRole = "user"

// Question type tag default
const QuestionTypeText = "text"

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSurveyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Code        string `json:"code"`
}

// Pointer fields distinguish "absent" from "set to empty" for the dynamic
// UPDATE clause.
type UpdateSurveyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Creator     *string `json:"creator"`
}

type CreateQuestionRequest struct {
	Question string `json:"question"`
	Type     string `json:"type"`
}

type UpdateQuestionRequest struct {
	Question *string `json:"question"`
	Type     *string `json:"type"`
}

type CreateAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type UpdateAnswerRequest struct {
	QuestionID *string `json:"question_id"`
	Answer     *string `json:"answer"`
}

type CreateResponseRequest struct {
	QuestionID  string `json:"question_id"`
	Answer      string `json:"answer"`
	ResponderID string `json:"responder_id"`
}

type AdminUpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// Response types

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type CreateSurveyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

type LastResponderResponse struct {
	LastResponderID string `json:"last_responder_id"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is a user without credential fields, safe to return to any
// caller.
type PublicUser struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email,omitempty"`
	Role  string  `json:"role,omitempty"`
}

type Survey struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Creator     string    `json:"creator"`
	Code        *string   `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
}

type Question struct {
	ID       string `json:"id"`
	SurveyID string `json:"survey_id"`
	Question string `json:"question"`
	Type     string `json:"type"`
}

type Answer struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type Response struct {
	ID          string    `json:"id"`
	SurveyID    string    `json:"survey_id"`
	QuestionID  string    `json:"question_id"`
	ResponderID string    `json:"responder_id"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
}
