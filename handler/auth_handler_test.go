package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
)

type fakeUserRepo struct {
	users map[string]*types.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *types.User) error {
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := service.NewAuthService(&fakeUserRepo{users: make(map[string]*types.User)}, nil, 4)
	t.Cleanup(auth.Close)

	h := NewAuthHandler(auth)
	r := gin.New()
	r.POST("/auth/signup", h.HandleSignUp)
	r.POST("/auth/signin", h.HandleSignIn)
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(auth))
	protected.POST("/auth/signout", h.HandleSignOut)
	return r, auth
}

func TestAuthFlow_SignUpSignInSignOut(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/auth/signup", `{"email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/auth/signin", `{"email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool                 `json:"status"`
		Data   types.SignInResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, "alice@example.com", resp.Data.Email)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleSignUp_DuplicateConflicts(t *testing.T) {
	r, _ := newAuthRouter(t)

	require.Equal(t, http.StatusOK, postJSON(r, "/auth/signup", `{"email":"alice@example.com","password":"s3cret"}`).Code)
	assert.Equal(t, http.StatusConflict, postJSON(r, "/auth/signup", `{"email":"alice@example.com","password":"other"}`).Code)
}

func TestHandleSignUp_MissingFields(t *testing.T) {
	r, _ := newAuthRouter(t)

	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/auth/signup", `{"email":"","password":"s3cret"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/auth/signup", `{"email":"alice@example.com","password":""}`).Code)
}

func TestHandleSignIn_BadCredentials(t *testing.T) {
	r, _ := newAuthRouter(t)

	require.Equal(t, http.StatusOK, postJSON(r, "/auth/signup", `{"email":"alice@example.com","password":"s3cret"}`).Code)

	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/auth/signin", `{"email":"alice@example.com","password":"wrong"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/auth/signin", `{"email":"nobody@example.com","password":"s3cret"}`).Code)
}

func TestHandleSignOut_RequiresBearerToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signout", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
