package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"motosync-api/client"
	"motosync-api/config"
	"motosync-api/controllers"
	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/routes"
)

func newTestAPI(t *testing.T) *httptest.Server {
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
	routes.SetupRoutes(router, repo, &config.Config{JWTSecret: "test-secret"})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFlow(t *testing.T) {
	srv := newTestAPI(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	// Requests without a token are rejected.
	_, err := c.ListYards(ctx, 0, 10, "")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Login stores the token for subsequent calls.
	login, err := c.Login(ctx, "admin@motosync.com", "motosync123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, login.Role)

	yard, err := c.CreateYard(ctx, "Butantã", "Av. Vital Brasil, 1000")
	require.NoError(t, err)
	assert.Equal(t, 1, yard.ID)

	spot, err := c.CreateSpot(ctx, "A01", yard.ID)
	require.NoError(t, err)
	assert.Equal(t, "A01", spot.Code)

	moto, err := c.CreateMotorcycle(ctx, controllers.MotorcycleRequest{
		Model:    "POP",
		Plate:    "ABC1D23",
		YardName: "Butantã",
		SpotCode: "A01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, moto.Status)

	// The yard page reflects the derived occupancy.
	page, err := c.ListYards(ctx, 0, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, 1, page.Content[0].TotalSpots)
	assert.Equal(t, 0, page.Content[0].AvailableSpots)

	// Deleting the occupied spot is a conflict.
	err = c.DeleteSpot(ctx, spot.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	// Releasing the motorcycle frees the spot and then the yard.
	_, err = c.UpdateMotorcycle(ctx, moto.ID, controllers.MotorcycleRequest{
		Model: "POP",
		Plate: "ABC1D23",
	})
	require.NoError(t, err)

	require.NoError(t, c.DeleteSpot(ctx, spot.ID))
	require.NoError(t, c.DeleteYard(ctx, yard.ID))
}

func TestClientLoginFailure(t *testing.T) {
	srv := newTestAPI(t)
	c := client.New(srv.URL)

	_, err := c.Login(context.Background(), "admin@motosync.com", "wrong")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "401")
}

func TestClientSearchAndPagination(t *testing.T) {
	srv := newTestAPI(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "admin@motosync.com", "motosync123")
	require.NoError(t, err)

	_, err = c.CreateYard(ctx, "Butantã", "Av. Vital Brasil, 1000")
	require.NoError(t, err)
	_, err = c.CreateYard(ctx, "Lapa", "Rua Guaicurus, 250")
	require.NoError(t, err)

	page, err := c.ListYards(ctx, 0, 1, "")
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, 2, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)

	found, err := c.ListYards(ctx, 0, 10, "butanta")
	require.NoError(t, err)
	require.Len(t, found.Content, 1)
	assert.Equal(t, "Butantã", found.Content[0].Name)

	motos, err := c.ListMotorcycles(ctx, 0, 10, "")
	require.NoError(t, err)
	assert.Empty(t, motos.Content)
}
