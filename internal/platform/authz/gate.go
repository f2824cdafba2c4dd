// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package authz decides whether the identity behind a request holds the
administrator role.

# Policy

Role resolution distinguishes four outcomes (see [Outcome]) so callers and
logs can tell them apart, but the decision is fail closed: only a profile
that was found AND whose role is exactly "admin" grants access. Anonymous
requests, missing profiles and lookup failures are all denied.
*/
package authz

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/internal/platform/sec"
)

// ReasonAdminRequired is the denial reason returned to non-admin callers.
const ReasonAdminRequired = "Unauthorized: Admin access required"

// ProfileFinder looks up the role stored on an identity's profile.
//
// Implementations return an error matching [dberr.ErrNotFound] when the
// identity has no profile row.
type ProfileFinder interface {
	FindRole(ctx context.Context, userID string) (sec.UserRole, error)
}

// # Resolution

// Outcome tags the result of resolving the request identity's role.
type Outcome int

const (
	// OutcomeAnonymous means the request carries no identity.
	OutcomeAnonymous Outcome = iota
	// OutcomeFound means the profile exists and Role is populated.
	OutcomeFound
	// OutcomeNotFound means the identity has no profile row.
	OutcomeNotFound
	// OutcomeLookupError means the profile store failed.
	OutcomeLookupError
)

// String returns the log label of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAnonymous:
		return "anonymous"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeLookupError:
		return "lookup_error"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of a role lookup.
type Resolution struct {
	Outcome Outcome
	UserID  string
	Role    sec.UserRole
	Err     error
}

// Decision is the outcome of [Gate.RequireAdmin].
type Decision struct {
	Granted bool
	Reason  string
}

// # Gate

// Gate answers admin checks for the identity stored on the request context.
type Gate struct {
	profiles ProfileFinder
}

// NewGate constructs a [Gate] backed by the given profile store.
func NewGate(profiles ProfileFinder) *Gate {
	return &Gate{profiles: profiles}
}

// Resolve reads the identity from ctx and performs at most one profile lookup.
func (gate *Gate) Resolve(ctx context.Context) Resolution {
	userID, ok := ctxutil.AuthUserID(ctx)
	if !ok {
		return Resolution{Outcome: OutcomeAnonymous}
	}

	role, err := gate.profiles.FindRole(ctx, userID)
	switch {
	case err == nil:
		return Resolution{Outcome: OutcomeFound, UserID: userID, Role: role}
	case errors.Is(err, dberr.ErrNotFound):
		return Resolution{Outcome: OutcomeNotFound, UserID: userID}
	default:
		return Resolution{Outcome: OutcomeLookupError, UserID: userID, Err: err}
	}
}

// IsAdmin reports whether the request identity's profile role is "admin".
// It never fails: every other outcome is reported as false.
func (gate *Gate) IsAdmin(ctx context.Context) bool {
	resolution := gate.Resolve(ctx)

	if resolution.Outcome == OutcomeLookupError {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "admin_check_lookup_failed",
			slog.String("user_id", resolution.UserID),
			slog.Any("error", resolution.Err),
		)
	}

	return resolution.Outcome == OutcomeFound && resolution.Role.IsAdmin()
}

// RequireAdmin wraps [Gate.IsAdmin] into a grant/deny decision carrying the
// client-facing reason. It never returns an error.
func (gate *Gate) RequireAdmin(ctx context.Context) Decision {
	if !gate.IsAdmin(ctx) {
		return Decision{Granted: false, Reason: ReasonAdminRequired}
	}
	return Decision{Granted: true}
}
