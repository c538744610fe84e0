package services

import (
	"motosync-api/models"
	"motosync-api/utils"
)

// The fleet engine is a set of pure functions over snapshot slices. It is
// handed the current lists, never storage handles, and performs no I/O; a
// caller is expected to serialize read-validate-write per user action so a
// single validation pass sees a stable snapshot.

// CanCreateYard fails when another yard already carries the candidate
// name under normalized comparison.
func CanCreateYard(yards []models.Yard, name string) error {
	normalized := utils.Normalize(name)
	for _, y := range yards {
		if utils.Normalize(y.Name) == normalized {
			return ErrDuplicateYardName
		}
	}
	return nil
}

// CanDeleteYard blocks deletion while any spot still references the yard,
// independent of whether motorcycles exist.
func CanDeleteYard(spots []models.Spot, yardID int) error {
	for _, s := range spots {
		if s.YardID == yardID {
			return ErrYardHasSpots
		}
	}
	return nil
}

// CanCreateSpot checks the code format first, then duplicates scoped to
// the target yard. The same code under a different yard is fine.
func CanCreateSpot(spots []models.Spot, yardID int, code string) error {
	if !utils.IsValidSpotCode(code) {
		return ErrInvalidSpotCode
	}
	normalized := utils.Normalize(code)
	for _, s := range spots {
		if s.YardID == yardID && utils.Normalize(s.Code) == normalized {
			return ErrDuplicateSpotCode
		}
	}
	return nil
}

// CanDeleteSpot blocks deletion while a motorcycle occupies the spot. The
// occupancy join runs on the (yard name, spot code) pair, so the spot's
// yard must be resolved from the yard list first.
func CanDeleteSpot(yards []models.Yard, motorcycles []models.Motorcycle, spot models.Spot) error {
	yardName := ""
	for _, y := range yards {
		if y.ID == spot.YardID {
			yardName = y.Name
			break
		}
	}
	if yardName == "" {
		// Orphaned spot; nothing can occupy it.
		return nil
	}
	if occupiedBy(motorcycles, yardName, spot.Code, 0) {
		return ErrSpotOccupied
	}
	return nil
}

// CanPlaceMotorcycle is the placement gate run before every motorcycle
// create or update. The check order is fixed: error messages are mutually
// exclusive and the client highlights exactly one problem at a time.
// excludeID skips the record being edited (0 when creating).
func CanPlaceMotorcycle(yards []models.Yard, spots []models.Spot, motorcycles []models.Motorcycle, candidate models.Motorcycle, excludeID int) error {
	if !utils.IsValidModel(string(candidate.Model)) {
		return ErrInvalidModel
	}
	if !utils.IsValidPlate(candidate.Plate) {
		return ErrInvalidPlate
	}

	plate := utils.Normalize(candidate.Plate)
	for _, m := range motorcycles {
		if m.ID != excludeID && utils.Normalize(m.Plate) == plate {
			return ErrDuplicatePlate
		}
	}

	if candidate.SpotCode != "" && candidate.YardName == "" {
		return ErrSpotWithoutYard
	}

	var yard *models.Yard
	if candidate.YardName != "" {
		yardName := utils.Normalize(candidate.YardName)
		for i := range yards {
			if utils.Normalize(yards[i].Name) == yardName {
				yard = &yards[i]
				break
			}
		}
		// A stale reference to a renamed or deleted yard lands here too.
		if yard == nil {
			return ErrUnknownYard
		}
	}

	if candidate.SpotCode != "" {
		code := utils.Normalize(candidate.SpotCode)
		found := false
		for _, s := range spots {
			if s.YardID == yard.ID && utils.Normalize(s.Code) == code {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownSpot
		}
		if occupiedBy(motorcycles, candidate.YardName, candidate.SpotCode, excludeID) {
			return ErrSpotOccupied
		}
	}

	if candidate.Maintenance && !candidate.Placed() {
		return ErrMaintenanceWithoutSpot
	}

	return nil
}

// DeriveMotorcycleStatus computes the status fresh from placement and the
// maintenance flag. No yard and no spot means the motorcycle is out in
// the field.
func DeriveMotorcycleStatus(m models.Motorcycle) models.MotorcycleStatus {
	if m.Maintenance {
		return models.StatusUnderMaintenance
	}
	if !m.Placed() {
		return models.StatusRented
	}
	return models.StatusAvailable
}

// DeriveSpotStatus reports a spot occupied when any motorcycle holds its
// (yard name, code) pair with a derived status of Disponível or
// Manutenção; a maintenance occupant surfaces as Manutenção. Stored
// occupancy flags are never consulted.
func DeriveSpotStatus(spot models.Spot, yardName string, motorcycles []models.Motorcycle) models.SpotStatus {
	yard := utils.Normalize(yardName)
	code := utils.Normalize(spot.Code)
	for _, m := range motorcycles {
		if !m.Placed() {
			continue
		}
		if utils.Normalize(m.YardName) != yard || utils.Normalize(m.SpotCode) != code {
			continue
		}
		switch DeriveMotorcycleStatus(m) {
		case models.StatusUnderMaintenance:
			return models.SpotUnderMaintenance
		case models.StatusAvailable:
			return models.SpotOccupied
		}
	}
	return models.SpotAvailable
}

// DeriveYardOccupancy recomputes a yard's spot counters from the full
// snapshot. Two calls on the same snapshot yield identical results.
func DeriveYardOccupancy(yard models.Yard, spots []models.Spot, motorcycles []models.Motorcycle) models.YardOccupancy {
	occ := models.YardOccupancy{}
	for _, s := range spots {
		if s.YardID != yard.ID {
			continue
		}
		occ.TotalSpots++
		if DeriveSpotStatus(s, yard.Name, motorcycles) == models.SpotAvailable {
			occ.AvailableSpots++
		}
	}
	return occ
}

func occupiedBy(motorcycles []models.Motorcycle, yardName, spotCode string, excludeID int) bool {
	yard := utils.Normalize(yardName)
	code := utils.Normalize(spotCode)
	for _, m := range motorcycles {
		if m.ID == excludeID || !m.Placed() {
			continue
		}
		if utils.Normalize(m.YardName) != yard || utils.Normalize(m.SpotCode) != code {
			continue
		}
		switch DeriveMotorcycleStatus(m) {
		case models.StatusAvailable, models.StatusUnderMaintenance:
			return true
		}
	}
	return false
}

// NextYardID and friends assign max(existing)+1. The server is the
// authoritative store, so these only run inside the repository's
// serialized update section; they are not safe across processes sharing
// a file store.
func NextYardID(yards []models.Yard) int {
	max := 0
	for _, y := range yards {
		if y.ID > max {
			max = y.ID
		}
	}
	return max + 1
}

func NextSpotID(spots []models.Spot) int {
	max := 0
	for _, s := range spots {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func NextMotorcycleID(motorcycles []models.Motorcycle) int {
	max := 0
	for _, m := range motorcycles {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

func NextUserID(users []models.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
