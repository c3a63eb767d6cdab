package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jurnalresonansi/resonansi-api/internal/service"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
	"github.com/jurnalresonansi/resonansi-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetUser_PublicProfile(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.users.EXPECT().
		GetUser(gomock.Any(), "u1").
		Return(models.User{UserID: "u1", Username: "johndoe1", Password: "hash"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/user/u1", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	// Password must never leak into the response body.
	assert.NotContains(t, recorder.Body.String(), "hash")
}

func TestGetUser_NotFoundMapsTo404(t *testing.T) {
	router, mocks := newTestHandler(t)

	mocks.users.EXPECT().
		GetUser(gomock.Any(), "missing").
		Return(models.User{}, store.ErrNoUserWasFound)

	request := httptest.NewRequest(http.MethodGet, "/api/user/missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateUser_PassesPatch(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.users.EXPECT().
		UpdateUser(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleUser}, "actor-id", gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, _ string, patch models.UserUpdate) (models.User, error) {
			require.NotNil(t, patch.Username)
			assert.Equal(t, "newname1", *patch.Username)
			assert.Nil(t, patch.Email)
			return models.User{UserID: "actor-id", Username: "newname1"}, nil
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPut, "/api/user/update/actor-id", `{"username":"newname1"}`))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateUser_EmailConflictMapsTo409(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleUser)
	mocks.users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrEmailAlreadyInUse)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPut, "/api/user/update/actor-id", `{"email":"taken@example.com"}`))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestUpdateRole_PassesRole(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.users.EXPECT().
		UpdateRole(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleAdmin}, "u2", models.RoleAdmin).
		Return(models.User{UserID: "u2", Role: models.RoleAdmin}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPut, "/api/user/update-role/u2", `{"role":"admin"}`))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteUser_Acknowledges(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.users.EXPECT().
		DeleteUser(gomock.Any(), models.Identity{UserID: "actor-id", Role: models.RoleAdmin}, "u2").
		Return(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodDelete, "/api/user/delete/u2", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "user has been deleted", response.Message)
}

func TestGetUsers_ReturnsCounters(t *testing.T) {
	router, mocks := newTestHandler(t)

	expectParsedToken(mocks, models.RoleAdmin)
	mocks.users.EXPECT().
		ListUsers(gomock.Any(),
			models.Identity{UserID: "actor-id", Role: models.RoleAdmin},
			models.ListQuery{StartIndex: 9, Limit: 9}).
		Return(models.UsersResponse{TotalUsers: 42, LastMonthUsers: 5}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/user/getusers?startIndex=9", ""))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.UsersResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, int64(42), response.TotalUsers)
	assert.Equal(t, int64(5), response.LastMonthUsers)
}
