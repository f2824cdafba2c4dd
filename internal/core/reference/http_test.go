// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/learnhub/internal/core/reference"
	"github.com/taibuivan/learnhub/internal/platform/authz"
	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/dberr"
	"github.com/taibuivan/learnhub/internal/platform/sec"
)

// # Test Doubles

// profileTable is an in-memory [authz.ProfileFinder].
type profileTable struct {
	roles map[string]sec.UserRole
	err   error
}

func (table profileTable) FindRole(_ context.Context, userID string) (sec.UserRole, error) {
	if table.err != nil {
		return "", table.err
	}
	role, ok := table.roles[userID]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return role, nil
}

const testUserHeader = "X-Test-User"

// newTestServer mounts the reference routes behind a stub authentication
// step that trusts testUserHeader.
func newTestServer(repo *fakeRepo, profiles profileTable) http.Handler {
	service := reference.NewService(repo, time.Second)
	handler := reference.NewHandler(service, authz.NewGate(profiles))
	routes := handler.Routes()

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if userID := request.Header.Get(testUserHeader); userID != "" {
			claims := &sec.AuthClaims{UserID: userID}
			request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
		}
		routes.ServeHTTP(writer, request)
	})
}

func defaultProfiles() profileTable {
	return profileTable{roles: map[string]sec.UserRole{
		"admin-1":  sec.RoleAdmin,
		"mod-1":    sec.RoleModerator,
		"member-1": sec.RoleMember,
	}}
}

func do(t *testing.T, server http.Handler, method, path, userID, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		request.Header.Set(testUserHeader, userID)
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	var decoded map[string]any
	_ = json.Unmarshal(recorder.Body.Bytes(), &decoded)
	return recorder, decoded
}

// # Authorization

func TestCreate_RejectedWithoutAdmin(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		profiles profileTable
	}{
		{"anonymous", "", defaultProfiles()},
		{"member", "member-1", defaultProfiles()},
		{"moderator", "mod-1", defaultProfiles()},
		{"no_profile_row", "stranger", defaultProfiles()},
		{"profile_store_down", "admin-1", profileTable{err: errors.New("connection refused")}},
	}

	paths := []string{"/categories", "/difficulty-levels", "/duration-units", "/content-types"}

	for _, tc := range cases {
		for _, path := range paths {
			t.Run(tc.name+path, func(t *testing.T) {
				repo := &fakeRepo{}
				server := newTestServer(repo, tc.profiles)

				recorder, body := do(t, server, http.MethodPost, path, tc.userID, `{"name":"X","code":"x"}`)

				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Equal(t, authz.ReasonAdminRequired, body["error"])
				assert.Equal(t, "UNAUTHORIZED", body["code"])
				assert.Zero(t, repo.writes.Load(), "rejected create must not write")
			})
		}
	}
}

func TestCreate_RejectedBeforeBodyIsRead(t *testing.T) {
	repo := &fakeRepo{}
	server := newTestServer(repo, defaultProfiles())

	recorder, _ := do(t, server, http.MethodPost, "/categories", "member-1", `{not json`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// # Creation

func TestCreateCategory_AsAdmin(t *testing.T) {
	repo := &fakeRepo{}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodPost, "/categories", "admin-1",
		`{"name":"Data Science","color":"bg-blue-500","is_active":false}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Data Science", body["name"])
	assert.Equal(t, "bg-blue-500", body["color"])
	assert.Equal(t, false, body["is_active"])
	assert.EqualValues(t, 0, body["order_index"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["created_at"])
	assert.Nil(t, body["description"])

	require.Len(t, repo.categories, 1)
	assert.False(t, repo.categories[0].IsActive)
}

func TestCreateContentType_NullFieldsTakeDefaults(t *testing.T) {
	repo := &fakeRepo{}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodPost, "/content-types", "admin-1",
		`{"name":"Video","code":"video","order_index":null,"is_active":null}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, true, body["is_active"])
	assert.EqualValues(t, 0, body["order_index"])
}

func TestCreate_MalformedJSON(t *testing.T) {
	repo := &fakeRepo{}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodPost, "/duration-units", "admin-1", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Zero(t, repo.writes.Load())
}

func TestCreate_StoreFailureExposesMessage(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New(`null value in column "code" violates not-null constraint`)}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodPost, "/difficulty-levels", "admin-1", `{"name":"Beginner"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "DATA_ACCESS_ERROR", body["code"])
	assert.Equal(t, `null value in column "code" violates not-null constraint`, body["error"])
}

// # Listing

func TestList_PublicAndUnfiltered(t *testing.T) {
	server := newTestServer(seededRepo(), defaultProfiles())

	request := httptest.NewRequest(http.MethodGet, "/difficulty-levels", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var levels []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &levels))
	require.Len(t, levels, 2)
	assert.Equal(t, "lvl-3", levels[0]["id"])
	assert.Equal(t, false, levels[1]["is_active"])
}

func TestList_EmptyEncodesAsArray(t *testing.T) {
	server := newTestServer(&fakeRepo{}, defaultProfiles())

	request := httptest.NewRequest(http.MethodGet, "/content-types", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestList_FailureExposesStoreMessage(t *testing.T) {
	repo := seededRepo()
	repo.listErrs = map[string]error{reference.DatasetCategories: errors.New("canceling statement due to statement timeout")}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodGet, "/categories", "", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "DATA_ACCESS_ERROR", body["code"])
	assert.Equal(t, "canceling statement due to statement timeout", body["error"])
}

// # Aggregate

func TestMasterData_Success(t *testing.T) {
	server := newTestServer(seededRepo(), defaultProfiles())

	recorder, body := do(t, server, http.MethodGet, "/master-data", "", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	for _, key := range []string{"categories", "difficultyLevels", "durationUnits", "contentTypes"} {
		assert.Contains(t, body, key)
	}
	assert.Len(t, body["categories"], 2)
	assert.Equal(t, []any{}, body["contentTypes"])
}

func TestMasterData_FailureIsGeneric(t *testing.T) {
	repo := seededRepo()
	repo.listErrs = map[string]error{reference.DatasetDifficultyLevels: errors.New("secret internal detail")}
	server := newTestServer(repo, defaultProfiles())

	recorder, body := do(t, server, http.MethodGet, "/master-data", "", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, reference.MsgMasterDataFailed, body["error"])
	assert.NotContains(t, recorder.Body.String(), "secret internal detail")
	assert.NotContains(t, body, "categories")
}
