// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package authz holds the survey access-control decision table.

Every handler that creates, mutates, or deletes a survey goes through one of
two entry points instead of re-implementing the admin-bypass and
self-only-creator rules inline:

	d := authz.Create(claims.UserID, claims.Role, req.Creator)

	d := authz.Change(claims.UserID, claims.Role, surveyID, lookup, req.Creator)

Decisions are tagged outcomes (Allow, BadRequest, Forbidden, NotFound,
Internal) with a client-safe reason. The package never touches the store
itself; Change is handed a CreatorLookup so the decision logic stays pure
and testable.
*/
package authz
