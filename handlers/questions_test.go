// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/surveyhub/surveyhub/models"
	"github.com/surveyhub/surveyhub/testutil"
)

func TestCreateQuestion(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(conn, cfg)

	owner := testutil.CreateTestUser(t, conn, "Owner", "owner@example.com", "user")
	surveyID := testutil.CreateTestSurvey(t, conn, owner, nil)

	t.Run("type defaults to text", func(t *testing.T) {
		body := models.CreateQuestionRequest{Question: "How are you?"}
		req := testutil.MakeRequest("POST", "/surveys/"+surveyID+"/questions", body, nil)
		req.SetPathValue("id", surveyID)
		w := httptest.NewRecorder()

		handler.CreateQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.CreatedResponse
		testutil.AssertJSON(t, w, &resp)

		var qtype string
		if err := conn.QueryRow("SELECT type FROM questions WHERE id = $1", resp.ID).Scan(&qtype); err != nil {
			t.Fatalf("Failed to query question: %v", err)
		}
		if qtype != models.QuestionTypeText {
			t.Errorf("type = %q, want %q", qtype, models.QuestionTypeText)
		}
	})

	t.Run("explicit type is kept", func(t *testing.T) {
		body := models.CreateQuestionRequest{Question: "Pick one", Type: "choice"}
		req := testutil.MakeRequest("POST", "/surveys/"+surveyID+"/questions", body, nil)
		req.SetPathValue("id", surveyID)
		w := httptest.NewRecorder()

		handler.CreateQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.CreatedResponse
		testutil.AssertJSON(t, w, &resp)

		var qtype string
		if err := conn.QueryRow("SELECT type FROM questions WHERE id = $1", resp.ID).Scan(&qtype); err != nil {
			t.Fatalf("Failed to query question: %v", err)
		}
		if qtype != "choice" {
			t.Errorf("type = %q, want choice", qtype)
		}
	})

	t.Run("empty question text", func(t *testing.T) {
		body := models.CreateQuestionRequest{}
		req := testutil.MakeRequest("POST", "/surveys/"+surveyID+"/questions", body, nil)
		req.SetPathValue("id", surveyID)
		w := httptest.NewRecorder()

		handler.CreateQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetQuestionScopedToSurvey(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(conn, cfg)

	owner := testutil.CreateTestUser(t, conn, "Owner", "owner@example.com", "user")
	surveyA := testutil.CreateTestSurvey(t, conn, owner, nil)
	surveyB := testutil.CreateTestSurvey(t, conn, owner, nil)
	questionID := testutil.CreateTestQuestion(t, conn, surveyA, "Only in A")

	t.Run("question in its own survey", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/surveys/"+surveyA+"/questions/"+questionID, nil, nil)
		req.SetPathValue("id", surveyA)
		req.SetPathValue("qid", questionID)
		w := httptest.NewRecorder()

		handler.GetQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var q models.Question
		testutil.AssertJSON(t, w, &q)
		if q.ID != questionID {
			t.Errorf("ID = %q, want %q", q.ID, questionID)
		}
	})

	t.Run("same question through another survey", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/surveys/"+surveyB+"/questions/"+questionID, nil, nil)
		req.SetPathValue("id", surveyB)
		req.SetPathValue("qid", questionID)
		w := httptest.NewRecorder()

		handler.GetQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestListQuestions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(conn, cfg)

	owner := testutil.CreateTestUser(t, conn, "Owner", "owner@example.com", "user")
	surveyID := testutil.CreateTestSurvey(t, conn, owner, nil)
	testutil.CreateTestQuestion(t, conn, surveyID, "Q1")
	testutil.CreateTestQuestion(t, conn, surveyID, "Q2")

	req := testutil.MakeRequest("GET", "/surveys/"+surveyID+"/questions", nil, nil)
	req.SetPathValue("id", surveyID)
	w := httptest.NewRecorder()

	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var questions []models.Question
	testutil.AssertJSON(t, w, &questions)
	if len(questions) != 2 {
		t.Errorf("Got %d questions, want 2", len(questions))
	}
}

func TestUpdateQuestion(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(conn, cfg)

	owner := testutil.CreateTestUser(t, conn, "Owner", "owner@example.com", "user")
	surveyA := testutil.CreateTestSurvey(t, conn, owner, nil)
	surveyB := testutil.CreateTestSurvey(t, conn, owner, nil)
	questionID := testutil.CreateTestQuestion(t, conn, surveyA, "Original")

	t.Run("rewords the question", func(t *testing.T) {
		text := "Reworded"
		body := models.UpdateQuestionRequest{Question: &text}
		req := testutil.MakeRequest("PUT", "/surveys/"+surveyA+"/questions/"+questionID, body, nil)
		req.SetPathValue("id", surveyA)
		req.SetPathValue("qid", questionID)
		w := httptest.NewRecorder()

		handler.UpdateQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var stored string
		if err := conn.QueryRow("SELECT question FROM questions WHERE id = $1", questionID).Scan(&stored); err != nil {
			t.Fatalf("Failed to query question: %v", err)
		}
		if stored != "Reworded" {
			t.Errorf("question = %q, want Reworded", stored)
		}
	})

	t.Run("cannot update through another survey", func(t *testing.T) {
		text := "Hijacked"
		body := models.UpdateQuestionRequest{Question: &text}
		req := testutil.MakeRequest("PUT", "/surveys/"+surveyB+"/questions/"+questionID, body, nil)
		req.SetPathValue("id", surveyB)
		req.SetPathValue("qid", questionID)
		w := httptest.NewRecorder()

		handler.UpdateQuestion(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
