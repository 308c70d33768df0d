// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the schema and the two operations that need more than a
single statement: the cascading survey deletion and the startup code
backfill.

# Schema

CreateSchema is idempotent and run at startup. All ids are app-generated
text UUIDs; surveys.code carries the UNIQUE constraint that arbitrates
concurrent code allocation.

# Cascading Deletion

DeleteSurveyCascade deletes responses, answers, questions, and the survey
row inside one transaction, in that order. A missing survey rolls back the
dependent deletes and reports ErrNotFound; partial cascades are never
observable.

# Code Backfill

BackfillCodes repairs legacy surveys that predate the code column. It runs
once before the server starts serving and tolerates per-row failures.
*/
package db
