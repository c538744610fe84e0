package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/services"
	"motosync-api/utils"
)

type YardController struct {
	repo *repositories.SnapshotRepository
}

func NewYardController(repo *repositories.SnapshotRepository) *YardController {
	return &YardController{repo: repo}
}

type CreateYardRequest struct {
	Name    string `json:"nome" binding:"required"`
	Address string `json:"endereco" binding:"required"`
}

// YardResponse carries the yard record plus its derived occupancy
// counters, recomputed from the spot and motorcycle lists per request.
type YardResponse struct {
	models.Yard
	models.YardOccupancy
}

// GetYards lists yards as a page. The search param matches name or
// address, accent-insensitively.
func (yc *YardController) GetYards(c *gin.Context) {
	snap, err := yc.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch yards"})
		return
	}

	filtered := snap.Yards
	if search := c.Query("search"); strings.TrimSpace(search) != "" {
		needle := utils.Normalize(search)
		filtered = nil
		for _, y := range snap.Yards {
			if strings.Contains(utils.Normalize(y.Name), needle) ||
				strings.Contains(utils.Normalize(y.Address), needle) {
				filtered = append(filtered, y)
			}
		}
	}

	page, size := parsePagination(c)
	start, end := paginate(len(filtered), page, size)

	content := make([]YardResponse, 0, end-start)
	for _, y := range filtered[start:end] {
		content = append(content, YardResponse{
			Yard:          y,
			YardOccupancy: services.DeriveYardOccupancy(y, snap.Spots, snap.Motorcycles),
		})
	}

	utils.SendPaginated(c, content, page, size, len(filtered))
}

// GetYard returns a single yard with derived occupancy.
func (yc *YardController) GetYard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid yard id")
		return
	}

	snap, err := yc.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch yards"})
		return
	}

	for _, y := range snap.Yards {
		if y.ID == id {
			c.JSON(http.StatusOK, YardResponse{
				Yard:          y,
				YardOccupancy: services.DeriveYardOccupancy(y, snap.Spots, snap.Motorcycles),
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Yard not found"})
}

func (yc *YardController) CreateYard(c *gin.Context) {
	var req CreateYardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidYardName(req.Name) || strings.TrimSpace(req.Address) == "" {
		utils.SendValidationError(c, "Name and address are required")
		return
	}

	var created models.Yard
	err := yc.repo.Update(func(snap *repositories.Snapshot) error {
		if err := services.CanCreateYard(snap.Yards, req.Name); err != nil {
			return err
		}
		created = models.Yard{
			ID:      services.NextYardID(snap.Yards),
			Name:    strings.TrimSpace(req.Name),
			Address: strings.TrimSpace(req.Address),
		}
		snap.Yards = append(snap.Yards, created)
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateYardName) {
			utils.SendError(c, http.StatusConflict, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create yard"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteYard removes a yard. Blocked while the yard still owns spots; no
// partial mutation happens on a blocked delete.
func (yc *YardController) DeleteYard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid yard id")
		return
	}

	err = yc.repo.Update(func(snap *repositories.Snapshot) error {
		idx := -1
		for i, y := range snap.Yards {
			if y.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errNotFound
		}
		if err := services.CanDeleteYard(snap.Spots, id); err != nil {
			return err
		}
		snap.Yards = append(snap.Yards[:idx], snap.Yards[idx+1:]...)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Yard not found"})
		case errors.Is(err, services.ErrYardHasSpots):
			utils.SendError(c, http.StatusConflict, err.Error())
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete yard"})
		}
		return
	}

	utils.SendSuccess(c, "Yard deleted successfully", nil)
}
