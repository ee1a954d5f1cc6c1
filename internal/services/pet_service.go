package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pawtrip/internal/models/db_models"
	"pawtrip/internal/models/request_models"
	"pawtrip/internal/repositories"
	"pawtrip/pkg/utils"
)

type PetServiceInterface interface {
	// Load returns the stored profile, or a generic pet when none is saved.
	Load(ctx context.Context, userID string) (request_models.PetInfo, error)
	Save(ctx context.Context, userID string, req request_models.SavePetRequest) (request_models.PetInfo, error)
}

type PetService struct {
	petRepo repositories.PetRepository
	log     *zap.Logger
}

func NewPetService(petRepo repositories.PetRepository, log *zap.Logger) PetServiceInterface {
	return &PetService{
		petRepo: petRepo,
		log:     log.Named("pet_service"),
	}
}

func (p *PetService) Load(ctx context.Context, userID string) (request_models.PetInfo, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return request_models.PetInfo{}, fmt.Errorf("%w: malformed user id", utils.ErrInvalidInput)
	}

	pet, err := p.petRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		p.log.Error("failed to load pet profile", zap.String("user_id", userID), zap.Error(err))
		return request_models.PetInfo{}, utils.ErrDatabaseError
	}
	if pet == nil {
		return request_models.PetInfo{Type: request_models.PetTypeOther}, nil
	}

	petType, _ := request_models.ParsePetType(pet.Type)
	return request_models.PetInfo{
		Type:   petType,
		Name:   pet.Name,
		NameEn: pet.NameEn,
	}, nil
}

func (p *PetService) Save(ctx context.Context, userID string, req request_models.SavePetRequest) (request_models.PetInfo, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return request_models.PetInfo{}, fmt.Errorf("%w: malformed user id", utils.ErrInvalidInput)
	}

	petType, ok := request_models.ParsePetType(req.Type)
	if !ok {
		return request_models.PetInfo{}, utils.ErrInvalidPetType
	}

	profile := &db_models.PetProfile{
		AccountID: accountID,
		Type:      string(petType),
		Name:      strings.TrimSpace(req.Name),
		NameEn:    strings.TrimSpace(req.NameEn),
	}
	if err := p.petRepo.Upsert(ctx, profile); err != nil {
		p.log.Error("failed to save pet profile", zap.String("user_id", userID), zap.Error(err))
		return request_models.PetInfo{}, utils.ErrDatabaseError
	}

	p.log.Info("pet profile saved", zap.String("user_id", userID), zap.String("type", profile.Type))
	return request_models.PetInfo{
		Type:   petType,
		Name:   profile.Name,
		NameEn: profile.NameEn,
	}, nil
}
