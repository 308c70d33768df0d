// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types.

Request structs mirror JSON bodies; update requests use pointer fields so
handlers can tell an omitted field from one set to its zero value when
building dynamic UPDATE statements. Domain structs mirror database rows.
*/
package models
