package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motosync-api/controllers"
	"motosync-api/models"
)

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "admin@motosync.com",
			"password": "motosync123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[controllers.LoginResponse](t, w)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 1, resp.UserID)
		assert.Equal(t, models.RoleAdmin, resp.Role)
		assert.Equal(t, "admin@motosync.com", resp.Email)
		// The bcrypt hash must never leak.
		assert.NotContains(t, w.Body.String(), "senha")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "admin@motosync.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@motosync.com",
			"password": "motosync123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "Admin@Motosync.com",
			"password": "motosync123",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	t.Run("creates an admin", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"nome":  "Maria",
			"email": "maria@motosync.com",
			"senha": "segredo1",
			"cargo": "ADMIN",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)

		user := decode[models.User](t, w)
		assert.Equal(t, 2, user.ID)
		assert.Empty(t, user.Password)

		// The new account can log in.
		ts.login(t, "maria@motosync.com", "segredo1")
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"nome":  "Maria Again",
			"email": "MARIA@motosync.com",
			"senha": "segredo1",
			"cargo": "ADMIN",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("operator requires a yard", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"nome":  "João",
			"email": "joao@motosync.com",
			"senha": "segredo1",
			"cargo": "OPERADOR_PATIO",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("operator yard must exist", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"nome":  "João",
			"email": "joao@motosync.com",
			"senha": "segredo1",
			"cargo": "OPERADOR_PATIO",
			"patio": "Nowhere",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/auth/register", map[string]string{
			"nome":  "Zé",
			"email": "ze@motosync.com",
			"senha": "segredo1",
			"cargo": "GERENTE",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/patios", "/api/vagas", "/api/motos", "/api/auth/me"} {
		w := ts.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := ts.do(t, http.MethodGet, "/api/patios", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfile(t *testing.T) {
	ts := newTestServer(t)

	w := ts.authed(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode[models.User](t, w)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "admin@motosync.com", user.Email)
	assert.Empty(t, user.Password)
}
