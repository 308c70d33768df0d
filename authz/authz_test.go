// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authz

import (
	"errors"
	"testing"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		requester  string
		role       string
		creator    string
		want       Outcome
		wantReason string
	}{
		{"user creating own survey", "7", "user", "7", Allow, ""},
		{"user declaring someone else", "7", "user", "9", Forbidden, ReasonForbidden},
		{"admin declaring someone else", "7", "admin", "9", Allow, ""},
		{"admin creating own survey", "7", "admin", "7", Allow, ""},
		{"missing creator", "7", "user", "", BadRequest, "creator required"},
		{"unknown role treated as user", "7", "moderator", "9", Forbidden, ReasonForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Create(tt.requester, tt.role, tt.creator)
			if d.Outcome != tt.want {
				t.Errorf("Create() outcome = %v, want %v", d.Outcome, tt.want)
			}
			if tt.wantReason != "" && d.Reason != tt.wantReason {
				t.Errorf("Create() reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}

func TestChange(t *testing.T) {
	ownedBy3 := func(id string) (string, bool, error) {
		if id == "s1" {
			return "3", true, nil
		}
		return "", false, nil
	}

	nine := "9"
	three := "3"

	tests := []struct {
		name       string
		requester  string
		role       string
		surveyID   string
		lookup     CreatorLookup
		newCreator *string
		want       Outcome
		wantReason string
	}{
		{"owner mutating own survey", "3", "user", "s1", ownedBy3, nil, Allow, ""},
		{"owner keeping creator set to self", "3", "user", "s1", ownedBy3, &three, Allow, ""},
		{"owner transferring ownership", "3", "user", "s1", ownedBy3, &nine, Forbidden, ReasonChangeCreator},
		{"non-owner non-admin", "5", "user", "s1", ownedBy3, nil, Forbidden, ReasonForbidden},
		{"admin on someone else's survey", "1", "admin", "s1", ownedBy3, nil, Allow, ""},
		{"admin transferring ownership", "1", "admin", "s1", ownedBy3, &nine, Allow, ""},
		{"missing id", "3", "user", "", ownedBy3, nil, BadRequest, "id required"},
		{"survey does not exist", "3", "user", "nope", ownedBy3, nil, NotFound, "not found"},
		{
			"lookup failure",
			"3", "user", "s1",
			func(string) (string, bool, error) { return "", false, errors.New("store down") },
			nil,
			Internal, "creator lookup failed",
		},
		{
			// Existence is checked before ownership: a stranger probing a
			// missing id gets NotFound, not Forbidden.
			"non-owner on missing survey",
			"5", "user", "nope", ownedBy3, nil, NotFound, "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Change(tt.requester, tt.role, tt.surveyID, tt.lookup, tt.newCreator)
			if d.Outcome != tt.want {
				t.Errorf("Change() outcome = %v, want %v", d.Outcome, tt.want)
			}
			if tt.wantReason != "" && d.Reason != tt.wantReason {
				t.Errorf("Change() reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}
