package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"motosync-api/config"
	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/routes"
)

const testSecret = "test-secret"

type testServer struct {
	router *gin.Engine
	repo   *repositories.SnapshotRepository
	token  string
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	store, err := repositories.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := repositories.NewSnapshotRepository(store)

	hashed, err := bcrypt.GenerateFromPassword([]byte("motosync123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Update(func(snap *repositories.Snapshot) error {
		snap.Users = []models.User{{
			ID:       1,
			Name:     "Administrador",
			Email:    "admin@motosync.com",
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}}
		return nil
	}))

	router := gin.New()
	routes.SetupRoutes(router, repo, &config.Config{JWTSecret: testSecret})

	ts := &testServer{router: router, repo: repo}
	ts.token = ts.login(t, "admin@motosync.com", "motosync123")
	return ts
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	w := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// authed issues a request with the admin token.
func (ts *testServer) authed(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	return ts.do(t, method, path, body, ts.token)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
