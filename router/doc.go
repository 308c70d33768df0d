// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

Routes use the Go 1.22+ pattern syntax (method prefixes and {wildcards}).
Every route is wrapped with request logging; survey create/update/delete
require a valid credential and the /admin subtree requires the admin role.
*/
package router
