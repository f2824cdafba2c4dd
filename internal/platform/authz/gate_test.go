// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/learnhub/internal/platform/authz"
	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/internal/platform/sec"
)

// stubProfiles answers FindRole from a fixed map and counts lookups.
type stubProfiles struct {
	roles map[string]sec.UserRole
	err   error
	calls int
}

func (stub *stubProfiles) FindRole(_ context.Context, userID string) (sec.UserRole, error) {
	stub.calls++
	if stub.err != nil {
		return "", stub.err
	}
	role, ok := stub.roles[userID]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return role, nil
}

func withUser(userID string) context.Context {
	return ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{UserID: userID})
}

/*
TestGate_Decisions is the full outcome table: only a found profile with the
literal "admin" role is granted.
*/
func TestGate_Decisions(t *testing.T) {
	profiles := &stubProfiles{roles: map[string]sec.UserRole{
		"admin-1":     sec.RoleAdmin,
		"mod-1":       sec.RoleModerator,
		"member-1":    sec.RoleMember,
		"shouty-1":    sec.UserRole("ADMIN"),
		"blank-1":     sec.UserRole(""),
		"superuser-1": sec.UserRole("superadmin"),
	}}

	tests := []struct {
		name        string
		ctx         context.Context
		wantOutcome authz.Outcome
		wantGranted bool
	}{
		{"admin", withUser("admin-1"), authz.OutcomeFound, true},
		{"moderator", withUser("mod-1"), authz.OutcomeFound, false},
		{"member", withUser("member-1"), authz.OutcomeFound, false},
		{"case_sensitive", withUser("shouty-1"), authz.OutcomeFound, false},
		{"empty_role", withUser("blank-1"), authz.OutcomeFound, false},
		{"no_hierarchy", withUser("superuser-1"), authz.OutcomeFound, false},
		{"no_profile", withUser("ghost-1"), authz.OutcomeNotFound, false},
		{"anonymous", context.Background(), authz.OutcomeAnonymous, false},
	}

	gate := authz.NewGate(profiles)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOutcome, gate.Resolve(tt.ctx).Outcome)
			assert.Equal(t, tt.wantGranted, gate.IsAdmin(tt.ctx))

			decision := gate.RequireAdmin(tt.ctx)
			assert.Equal(t, tt.wantGranted, decision.Granted)
			if tt.wantGranted {
				assert.Empty(t, decision.Reason)
			} else {
				assert.Equal(t, "Unauthorized: Admin access required", decision.Reason)
			}
		})
	}
}

/*
TestGate_LookupErrorFailsClosed verifies that store failures deny access and are logged.
*/
func TestGate_LookupErrorFailsClosed(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	profiles := &stubProfiles{err: errors.New("connection refused")}
	gate := authz.NewGate(profiles)

	ctx := ctxutil.WithLogger(withUser("admin-1"), logger)

	resolution := gate.Resolve(ctx)
	assert.Equal(t, authz.OutcomeLookupError, resolution.Outcome)
	assert.EqualError(t, resolution.Err, "connection refused")

	decision := gate.RequireAdmin(ctx)
	assert.False(t, decision.Granted)
	assert.Equal(t, authz.ReasonAdminRequired, decision.Reason)
	assert.Contains(t, logs.String(), "admin_check_lookup_failed")
	assert.Contains(t, logs.String(), "admin-1")
}

/*
TestGate_LookupBudget checks the side-effect bound: anonymous requests never hit
the store, identified ones hit it exactly once per check.
*/
func TestGate_LookupBudget(t *testing.T) {
	profiles := &stubProfiles{roles: map[string]sec.UserRole{"admin-1": sec.RoleAdmin}}
	gate := authz.NewGate(profiles)

	gate.RequireAdmin(context.Background())
	assert.Equal(t, 0, profiles.calls)

	gate.RequireAdmin(withUser("admin-1"))
	assert.Equal(t, 1, profiles.calls)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "anonymous", authz.OutcomeAnonymous.String())
	assert.Equal(t, "found", authz.OutcomeFound.String())
	assert.Equal(t, "not_found", authz.OutcomeNotFound.String())
	assert.Equal(t, "lookup_error", authz.OutcomeLookupError.String())
	assert.Equal(t, "unknown", authz.Outcome(99).String())
}
