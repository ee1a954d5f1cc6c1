package pet_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pawtrip/internal/repositories"
	"pawtrip/internal/services"
)

var Module = fx.Provide(
	providePetService, providePetRepo)

func providePetRepo(db *gorm.DB) repositories.PetRepository {
	return repositories.NewPetRepository(db)
}

func providePetService(petRepo repositories.PetRepository, log *zap.Logger) services.PetServiceInterface {
	return services.NewPetService(petRepo, log)
}
