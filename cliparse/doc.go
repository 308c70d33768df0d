// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses configuration from CLI flags with environment
variable fallback.

Flags take precedence over environment variables. DATABASE_URL and
JWT_SECRET are required; PORT defaults to 3000 and DATABASE_TYPE to
postgres.
*/
package cliparse
