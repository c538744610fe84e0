package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motosync-api/controllers"
	"motosync-api/models"
)

func TestCreateSpot(t *testing.T) {
	ts := newTestServer(t)
	butanta := ts.createYard(t, "Butantã", "Av. Vital Brasil, 1000")
	lapa := ts.createYard(t, "Lapa", "Rua Guaicurus, 250")

	spot := ts.createSpot(t, "A01", butanta.ID)
	assert.Equal(t, 1, spot.ID)
	assert.Equal(t, "A01", spot.Code)
	assert.Equal(t, butanta.ID, spot.YardID)

	t.Run("code is uppercased", func(t *testing.T) {
		created := ts.createSpot(t, "b02", butanta.ID)
		assert.Equal(t, "B02", created.Code)
	})

	t.Run("invalid code", func(t *testing.T) {
		w := ts.authed(t, http.MethodPost, "/api/vagas", map[string]interface{}{
			"codigo":   "101",
			"id_patio": butanta.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate scoped to the yard", func(t *testing.T) {
		// A01 already exists under Butantã.
		w := ts.authed(t, http.MethodPost, "/api/vagas", map[string]interface{}{
			"codigo":   "a01",
			"id_patio": butanta.ID,
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		// The same code under Lapa is fine.
		created := ts.createSpot(t, "A01", lapa.ID)
		assert.Equal(t, lapa.ID, created.YardID)
	})

	t.Run("unknown yard", func(t *testing.T) {
		w := ts.authed(t, http.MethodPost, "/api/vagas", map[string]interface{}{
			"codigo":   "C01",
			"id_patio": 999,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetSpots(t *testing.T) {
	ts := newTestServer(t)
	butanta := ts.createYard(t, "Butantã", "Av. Vital Brasil, 1000")
	lapa := ts.createYard(t, "Lapa", "Rua Guaicurus, 250")
	ts.createSpot(t, "A01", butanta.ID)
	ts.createSpot(t, "A02", butanta.ID)
	ts.createSpot(t, "A01", lapa.ID)

	w := ts.authed(t, http.MethodPost, "/api/motos", map[string]interface{}{
		"modelo": "SPORT",
		"placa":  "DEF4G56",
		"patio":  "Butantã",
		"vaga":   "A01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("filter by yard with derived status", func(t *testing.T) {
		w := ts.authed(t, http.MethodGet, fmt.Sprintf("/api/vagas?patio=%d", butanta.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		page := decode[struct {
			Content []controllers.SpotResponse `json:"content"`
		}](t, w)
		require.Len(t, page.Content, 2)

		byCode := map[string]models.SpotStatus{}
		for _, s := range page.Content {
			byCode[s.Code] = s.Status
		}
		assert.Equal(t, models.SpotOccupied, byCode["A01"])
		assert.Equal(t, models.SpotAvailable, byCode["A02"])
	})

	t.Run("same code in another yard stays available", func(t *testing.T) {
		w := ts.authed(t, http.MethodGet, fmt.Sprintf("/api/vagas?patio=%d", lapa.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		page := decode[struct {
			Content []controllers.SpotResponse `json:"content"`
		}](t, w)
		require.Len(t, page.Content, 1)
		assert.Equal(t, models.SpotAvailable, page.Content[0].Status)
	})

	t.Run("unfiltered list includes every yard", func(t *testing.T) {
		w := ts.authed(t, http.MethodGet, "/api/vagas", nil)
		require.Equal(t, http.StatusOK, w.Code)

		page := decode[struct {
			Content []controllers.SpotResponse `json:"content"`
		}](t, w)
		assert.Len(t, page.Content, 3)
	})
}

func TestDeleteSpot(t *testing.T) {
	ts := newTestServer(t)
	butanta := ts.createYard(t, "Butantã", "Av. Vital Brasil, 1000")
	occupied := ts.createSpot(t, "A01", butanta.ID)
	free := ts.createSpot(t, "A02", butanta.ID)

	w := ts.authed(t, http.MethodPost, "/api/motos", map[string]interface{}{
		"modelo": "POP",
		"placa":  "ABC1D23",
		"patio":  "Butantã",
		"vaga":   "A01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("occupied spot blocks deletion", func(t *testing.T) {
		w := ts.authed(t, http.MethodDelete, fmt.Sprintf("/api/vagas/%d", occupied.ID), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("free spot deletes", func(t *testing.T) {
		w := ts.authed(t, http.MethodDelete, fmt.Sprintf("/api/vagas/%d", free.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown spot", func(t *testing.T) {
		w := ts.authed(t, http.MethodDelete, "/api/vagas/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
