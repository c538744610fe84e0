package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/services"
	"motosync-api/utils"
)

type SpotController struct {
	repo *repositories.SnapshotRepository
}

func NewSpotController(repo *repositories.SnapshotRepository) *SpotController {
	return &SpotController{repo: repo}
}

type CreateSpotRequest struct {
	Code   string `json:"codigo" binding:"required"`
	YardID int    `json:"id_patio" binding:"required"`
}

// SpotResponse carries the spot record plus its status, derived from the
// motorcycle list on every read.
type SpotResponse struct {
	models.Spot
	Status models.SpotStatus `json:"status"`
}

// GetSpots lists spots, optionally filtered to one yard via ?patio=<id>.
func (sc *SpotController) GetSpots(c *gin.Context) {
	snap, err := sc.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch spots"})
		return
	}

	yardID := 0
	if raw := c.Query("patio"); raw != "" {
		yardID, err = strconv.Atoi(raw)
		if err != nil {
			utils.SendValidationError(c, "Invalid yard id")
			return
		}
	}

	yardNames := make(map[int]string, len(snap.Yards))
	for _, y := range snap.Yards {
		yardNames[y.ID] = y.Name
	}

	content := make([]SpotResponse, 0, len(snap.Spots))
	for _, s := range snap.Spots {
		if yardID != 0 && s.YardID != yardID {
			continue
		}
		content = append(content, SpotResponse{
			Spot:   s,
			Status: services.DeriveSpotStatus(s, yardNames[s.YardID], snap.Motorcycles),
		})
	}

	page, size := parsePagination(c)
	start, end := paginate(len(content), page, size)
	utils.SendPaginated(c, content[start:end], page, size, len(content))
}

func (sc *SpotController) CreateSpot(c *gin.Context) {
	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var created models.Spot
	err := sc.repo.Update(func(snap *repositories.Snapshot) error {
		found := false
		for _, y := range snap.Yards {
			if y.ID == req.YardID {
				found = true
				break
			}
		}
		if !found {
			return services.ErrUnknownYard
		}
		if err := services.CanCreateSpot(snap.Spots, req.YardID, req.Code); err != nil {
			return err
		}
		created = models.Spot{
			ID:     services.NextSpotID(snap.Spots),
			Code:   utils.Normalize(req.Code),
			YardID: req.YardID,
		}
		snap.Spots = append(snap.Spots, created)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownYard):
			c.JSON(http.StatusNotFound, gin.H{"error": "Yard not found"})
		case errors.Is(err, services.ErrInvalidSpotCode):
			utils.SendValidationError(c, err.Error())
		case errors.Is(err, services.ErrDuplicateSpotCode):
			utils.SendError(c, http.StatusConflict, err.Error())
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create spot"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteSpot removes a spot unless a motorcycle currently occupies it.
func (sc *SpotController) DeleteSpot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid spot id")
		return
	}

	err = sc.repo.Update(func(snap *repositories.Snapshot) error {
		idx := -1
		for i, s := range snap.Spots {
			if s.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errNotFound
		}
		if err := services.CanDeleteSpot(snap.Yards, snap.Motorcycles, snap.Spots[idx]); err != nil {
			return err
		}
		snap.Spots = append(snap.Spots[:idx], snap.Spots[idx+1:]...)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		case errors.Is(err, services.ErrSpotOccupied):
			utils.SendError(c, http.StatusConflict, err.Error())
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete spot"})
		}
		return
	}

	utils.SendSuccess(c, "Spot deleted successfully", nil)
}
