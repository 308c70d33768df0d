// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package authz

// RoleAdmin is the only role with elevated rights; every other role string
// is an ordinary user.
const RoleAdmin = "admin"

// Deny reasons surfaced to clients. No other detail about which check
// failed is exposed.
const (
	ReasonForbidden     = "forbidden"
	ReasonChangeCreator = "cannot change creator"
)

// Outcome is the terminal state of an authorization check.
type Outcome int

const (
	Allow Outcome = iota
	BadRequest
	Forbidden
	NotFound
	Internal
)

// Decision is the tagged result of an authorization check. Reason is set
// for non-Allow outcomes.
type Decision struct {
	Outcome Outcome
	Reason  string
}

// CreatorLookup fetches the current creator of a survey. found=false means
// the survey does not exist; a non-nil error means the lookup itself failed.
type CreatorLookup func(surveyID string) (creator string, found bool, err error)

func allow() Decision              { return Decision{Outcome: Allow} }
func deny(o Outcome, r string) Decision { return Decision{Outcome: o, Reason: r} }

// Create decides whether requester may create a survey declaring the given
// creator. Admins may create on anyone's behalf; everyone else only on
// their own.
func Create(requester, role, declaredCreator string) Decision {
	if declaredCreator == "" {
		return deny(BadRequest, "creator required")
	}
	if role == RoleAdmin {
		return allow()
	}
	if requester == declaredCreator {
		return allow()
	}
	return deny(Forbidden, ReasonForbidden)
}

// Change decides whether requester may mutate or delete the survey with the
// given id. newCreator is non-nil when the mutation payload sets the creator
// field; a non-admin may not point it at anyone but themselves.
//
// Check order is fixed: missing id, lookup failure, missing survey,
// admin bypass, ownership, creator transfer. Existence is checked before
// ownership so an unauthorized caller still learns whether the id exists,
// matching the original behavior.
func Change(requester, role, surveyID string, lookup CreatorLookup, newCreator *string) Decision {
	if surveyID == "" {
		return deny(BadRequest, "id required")
	}
	creator, found, err := lookup(surveyID)
	if err != nil {
		return deny(Internal, "creator lookup failed")
	}
	if !found {
		return deny(NotFound, "not found")
	}
	if role == RoleAdmin {
		return allow()
	}
	if requester != creator {
		return deny(Forbidden, ReasonForbidden)
	}
	if newCreator != nil && *newCreator != requester {
		return deny(Forbidden, ReasonChangeCreator)
	}
	return allow()
}
