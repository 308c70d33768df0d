// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Handlers are grouped by resource, each constructed with the database handle
and config:

  - AuthHandler: registration and login, issuing JWT credentials
  - SurveyHandler: survey CRUD, code allocation, cascading deletion
  - QuestionHandler: questions nested under a survey
  - AnswerHandler: answers validated through the question-survey join
  - ResponseHandler: respondent submissions and lookups
  - UserHandler: public user lookups
  - AdminHandler: user management, admin role required

Survey creation and mutation go through the authz decision table; the
router applies the auth middleware to the routes that need a credential.
*/
package handlers
