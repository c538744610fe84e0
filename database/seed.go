package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"motosync-api/models"
	"motosync-api/repositories"
	"motosync-api/services"
)

// SeedData loads the development dataset into an empty store. A store
// that already holds any yard is left untouched.
func SeedData(repo *repositories.SnapshotRepository) error {
	return repo.Update(func(snap *repositories.Snapshot) error {
		if len(snap.Yards) > 0 {
			return nil
		}

		snap.Yards = []models.Yard{
			{ID: 1, Name: "Butantã", Address: "Av. Vital Brasil, 1000 - São Paulo"},
			{ID: 2, Name: "Lapa", Address: "Rua Guaicurus, 250 - São Paulo"},
		}
		snap.Spots = []models.Spot{
			{ID: 1, Code: "A01", YardID: 1},
			{ID: 2, Code: "A02", YardID: 1},
			{ID: 3, Code: "B01", YardID: 1},
			{ID: 4, Code: "A01", YardID: 2},
			{ID: 5, Code: "A02", YardID: 2},
		}
		snap.Motorcycles = []models.Motorcycle{
			{ID: 1, Model: models.ModelPop, Plate: "ABC1D23", YardName: "Butantã", SpotCode: "A01"},
			{ID: 2, Model: models.ModelSport, Plate: "DEF4567", YardName: "Butantã", SpotCode: "A02", Maintenance: true},
			{ID: 3, Model: models.ModelE, Plate: "GHI8J90"},
		}

		if len(snap.Users) == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte("motosync123"), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			snap.Users = append(snap.Users, models.User{
				ID:       services.NextUserID(snap.Users),
				Name:     "Administrador",
				Email:    "admin@motosync.com",
				Password: string(hashed),
				Role:     models.RoleAdmin,
			})
		}
		return nil
	})
}
