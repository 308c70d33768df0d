// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SurveyHub API server.

SurveyHub is a survey-management backend: users create surveys with
shareable 10-character codes, attach questions and answer options, and
collect responses from identified respondents.

# Starting the Server

The server requires environment variables or CLI flags for configuration
(a .env file is loaded if present):

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - JWT_SECRET (-jwt-secret): secret for credential signing

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): postgres (default) or sqlite

# Startup

Before serving, the process creates the schema if needed and runs the code
backfill, assigning a unique shareable code to any survey that lacks one.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, surveys, questions, answers, responses, users, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, JSON helpers
  - models: request/response types
  - authz: survey access-control decisions
  - auth: credential signing and password hashing
  - scode: survey-code generation and allocation
  - db: schema creation, cascading deletion, code backfill
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
