package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pawtrip/internal/models/db_models"
	"pawtrip/internal/models/request_models"
)

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) GenerateImage(ctx context.Context, prompt, credential string) (string, error) {
	args := m.Called(ctx, prompt, credential)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) GenerateStory(ctx context.Context, prompt, credential string) (string, error) {
	args := m.Called(ctx, prompt, credential)
	return args.String(0), args.Error(1)
}

type mockPetService struct{ mock.Mock }

func (m *mockPetService) Load(ctx context.Context, userID string) (request_models.PetInfo, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(request_models.PetInfo), args.Error(1)
}

func (m *mockPetService) Save(ctx context.Context, userID string, req request_models.SavePetRequest) (request_models.PetInfo, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(request_models.PetInfo), args.Error(1)
}

type mockPetRepo struct{ mock.Mock }

func (m *mockPetRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PetProfile, error) {
	args := m.Called(ctx, accountID)
	pet, _ := args.Get(0).(*db_models.PetProfile)
	return pet, args.Error(1)
}

func (m *mockPetRepo) Upsert(ctx context.Context, pet *db_models.PetProfile) error {
	return m.Called(ctx, pet).Error(0)
}

type mockDiaryRepo struct{ mock.Mock }

func (m *mockDiaryRepo) Create(ctx context.Context, entry *db_models.DiaryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockDiaryRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.DiaryEntry, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	entries, _ := args.Get(0).([]db_models.DiaryEntry)
	return entries, args.Error(1)
}

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	return m.Called(account, ctx).Error(0)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*db_models.Account)
	return account, args.Error(1)
}
