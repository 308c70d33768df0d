// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Authentication

RequireAuth verifies the Bearer JWT and makes its claims available to the
wrapped handler:

	mux.HandleFunc("POST /surveys",
		middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, h.CreateSurvey)))

	claims, _ := middleware.ClaimsFromContext(r.Context())

RequireAdmin additionally rejects callers whose role claim is not "admin".

# Helpers

JSONResponse and ErrorResponse write JSON bodies with consistent shapes;
ParseJSONBody decodes request bodies; WithLogging logs request start and
completion with duration; CORS handles cross-origin and preflight requests.
*/
package middleware
