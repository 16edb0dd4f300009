package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dentax/models"
	"dentax/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	users []models.User
}

func (f *fakeUserService) IssueToken(email string) (string, error) {
	for _, u := range f.users {
		if u.Email == email {
			return "signed-token", nil
		}
	}
	return "", user.ErrUnknownEmail
}

func (f *fakeUserService) IsAdmin(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u.Role == models.RoleAdmin, nil
		}
	}
	return false, nil
}

func (f *fakeUserService) Create(u *models.User) (string, error) {
	f.users = append(f.users, *u)
	return "64b000000000000000000003", nil
}

func (f *fakeUserService) GetAll() ([]models.User, error) { return f.users, nil }

func (f *fakeUserService) Promote(id string) error { return nil }

func newUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)
	r := gin.New()
	r.GET("/jwt", h.IssueJWT)
	r.GET("/users", h.ListUsers)
	r.GET("/users/admin/:email", h.CheckAdmin)
	return r
}

func TestIssueJWTUnknownEmail(t *testing.T) {
	r := newUserRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jwt?email=nobody@example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"accessToken":""`)
}

func TestIssueJWTKnownEmail(t *testing.T) {
	r := newUserRouter(&fakeUserService{users: []models.User{
		{Email: "pat@example.com"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jwt?email=pat@example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestListUsersEmptyIsJSONArray(t *testing.T) {
	r := newUserRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCheckAdmin(t *testing.T) {
	r := newUserRouter(&fakeUserService{users: []models.User{
		{Email: "admin@example.com", Role: models.RoleAdmin},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
}
