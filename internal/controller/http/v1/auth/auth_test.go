package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"presensi/backend/foundation/web"
	internalauth "presensi/backend/internal/auth"
	"presensi/backend/internal/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUser struct {
	byEmail map[string]entity.User
	byId    map[int]entity.User
}

func (f *fakeUser) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return entity.User{}, &web.Error{Err: assert.AnError, Status: http.StatusUnauthorized}
}

func (f *fakeUser) GetById(ctx context.Context, id int) (entity.User, error) {
	if u, ok := f.byId[id]; ok {
		return u, nil
	}
	return entity.User{}, &web.Error{Err: assert.AnError, Status: http.StatusUnauthorized}
}

func seededUser(t *testing.T) entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	nama := "Budi"
	email := "budi@kampus.ac.id"
	password := string(hash)
	role := internalauth.RoleUser

	return entity.User{
		BasicEntity: entity.BasicEntity{ID: 3},
		Nama:        &nama,
		Email:       &email,
		Password:    &password,
		Role:        &role,
	}
}

func newTestApp(fake *fakeUser, a *internalauth.Auth) *web.App {
	uc := NewController(fake, a)

	app := web.NewApp(zerolog.Nop())
	app.Post("/api/v1/sign-in", uc.SignIn)
	app.Post("/api/v1/refresh-token", uc.RefreshToken)
	return app
}

func doJSON(app *web.App, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestSignIn(t *testing.T) {
	u := seededUser(t)
	fake := &fakeUser{byEmail: map[string]entity.User{*u.Email: u}}
	a := internalauth.New("test-key")
	app := newTestApp(fake, a)

	w := doJSON(app, "/api/v1/sign-in", `{"email":"budi@kampus.ac.id","password":"rahasia"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Status)
	require.NotEmpty(t, body.Data.AccessToken)
	require.NotEmpty(t, body.Data.RefreshToken)

	claims, err := a.ValidateToken(body.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "Budi", claims.UserName)
	assert.Equal(t, internalauth.RoleUser, claims.Role)
}

func TestSignInWrongPassword(t *testing.T) {
	u := seededUser(t)
	fake := &fakeUser{byEmail: map[string]entity.User{*u.Email: u}}
	app := newTestApp(fake, internalauth.New("test-key"))

	w := doJSON(app, "/api/v1/sign-in", `{"email":"budi@kampus.ac.id","password":"salah"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignInUnknownEmail(t *testing.T) {
	fake := &fakeUser{}
	app := newTestApp(fake, internalauth.New("test-key"))

	w := doJSON(app, "/api/v1/sign-in", `{"email":"tidak@ada.id","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignInMissingFields(t *testing.T) {
	fake := &fakeUser{}
	app := newTestApp(fake, internalauth.New("test-key"))

	w := doJSON(app, "/api/v1/sign-in", `{"email":"budi@kampus.ac.id"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshToken(t *testing.T) {
	u := seededUser(t)
	fake := &fakeUser{byId: map[int]entity.User{3: u}}
	a := internalauth.New("test-key")
	app := newTestApp(fake, a)

	_, refresh, err := a.GenTokens(3, "Budi", internalauth.RoleUser)
	require.NoError(t, err)

	w := doJSON(app, "/api/v1/refresh-token", `{"refresh_token":"`+refresh+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	u := seededUser(t)
	fake := &fakeUser{byId: map[int]entity.User{3: u}}
	a := internalauth.New("test-key")
	app := newTestApp(fake, a)

	access, _, err := a.GenTokens(3, "Budi", internalauth.RoleUser)
	require.NoError(t, err)

	w := doJSON(app, "/api/v1/refresh-token", `{"refresh_token":"`+access+`"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenDeletedUser(t *testing.T) {
	fake := &fakeUser{}
	a := internalauth.New("test-key")
	app := newTestApp(fake, a)

	_, refresh, err := a.GenTokens(3, "Budi", internalauth.RoleUser)
	require.NoError(t, err)

	w := doJSON(app, "/api/v1/refresh-token", `{"refresh_token":"`+refresh+`"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
