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

type MotorcycleController struct {
	repo *repositories.SnapshotRepository
}

func NewMotorcycleController(repo *repositories.SnapshotRepository) *MotorcycleController {
	return &MotorcycleController{repo: repo}
}

type MotorcycleRequest struct {
	Model       string `json:"modelo" binding:"required"`
	Plate       string `json:"placa" binding:"required"`
	YardName    string `json:"patio"`
	SpotCode    string `json:"vaga"`
	Maintenance bool   `json:"manutencao"`
}

// MotorcycleResponse carries the record plus its derived status.
type MotorcycleResponse struct {
	models.Motorcycle
	Status models.MotorcycleStatus `json:"status"`
}

func toMotorcycleResponse(m models.Motorcycle) MotorcycleResponse {
	return MotorcycleResponse{
		Motorcycle: m,
		Status:     services.DeriveMotorcycleStatus(m),
	}
}

// GetMotorcycles lists motorcycles as a page. The search param matches
// the plate prefix, case-insensitively.
func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	snap, err := mc.repo.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycles"})
		return
	}

	filtered := snap.Motorcycles
	if search := c.Query("search"); strings.TrimSpace(search) != "" {
		needle := utils.Normalize(search)
		filtered = nil
		for _, m := range snap.Motorcycles {
			if strings.Contains(utils.Normalize(m.Plate), needle) {
				filtered = append(filtered, m)
			}
		}
	}

	page, size := parsePagination(c)
	start, end := paginate(len(filtered), page, size)

	content := make([]MotorcycleResponse, 0, end-start)
	for _, m := range filtered[start:end] {
		content = append(content, toMotorcycleResponse(m))
	}

	utils.SendPaginated(c, content, page, size, len(filtered))
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var created models.Motorcycle
	err := mc.repo.Update(func(snap *repositories.Snapshot) error {
		candidate := req.toModel(0)
		if err := services.CanPlaceMotorcycle(snap.Yards, snap.Spots, snap.Motorcycles, candidate, 0); err != nil {
			return err
		}
		candidate.ID = services.NextMotorcycleID(snap.Motorcycles)
		snap.Motorcycles = append(snap.Motorcycles, candidate)
		created = candidate
		return nil
	})
	if err != nil {
		mc.sendPlacementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMotorcycleResponse(created))
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid motorcycle id")
		return
	}

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated models.Motorcycle
	err = mc.repo.Update(func(snap *repositories.Snapshot) error {
		idx := -1
		for i, m := range snap.Motorcycles {
			if m.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errNotFound
		}
		candidate := req.toModel(id)
		if err := services.CanPlaceMotorcycle(snap.Yards, snap.Spots, snap.Motorcycles, candidate, id); err != nil {
			return err
		}
		snap.Motorcycles[idx] = candidate
		updated = candidate
		return nil
	})
	if err != nil {
		if errors.Is(err, errNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
			return
		}
		mc.sendPlacementError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMotorcycleResponse(updated))
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid motorcycle id")
		return
	}

	err = mc.repo.Update(func(snap *repositories.Snapshot) error {
		for i, m := range snap.Motorcycles {
			if m.ID == id {
				snap.Motorcycles = append(snap.Motorcycles[:i], snap.Motorcycles[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err != nil {
		if errors.Is(err, errNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete motorcycle"})
		return
	}

	utils.SendSuccess(c, "Motorcycle deleted successfully", nil)
}

func (r MotorcycleRequest) toModel(id int) models.Motorcycle {
	return models.Motorcycle{
		ID:          id,
		Model:       models.MotorcycleModel(strings.ToUpper(strings.TrimSpace(r.Model))),
		Plate:       utils.Normalize(r.Plate),
		YardName:    strings.TrimSpace(r.YardName),
		SpotCode:    utils.Normalize(r.SpotCode),
		Maintenance: r.Maintenance,
	}
}

// sendPlacementError maps each gate failure to exactly one 4xx response,
// in the gate's fixed check order.
func (mc *MotorcycleController) sendPlacementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidModel),
		errors.Is(err, services.ErrInvalidPlate),
		errors.Is(err, services.ErrSpotWithoutYard),
		errors.Is(err, services.ErrMaintenanceWithoutSpot):
		utils.SendValidationError(c, err.Error())
	case errors.Is(err, services.ErrUnknownYard),
		errors.Is(err, services.ErrUnknownSpot):
		utils.SendValidationError(c, err.Error())
	case errors.Is(err, services.ErrDuplicatePlate),
		errors.Is(err, services.ErrSpotOccupied):
		utils.SendError(c, http.StatusConflict, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save motorcycle"})
	}
}
