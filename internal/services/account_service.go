package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pawtrip/internal/models/db_models"
	"pawtrip/internal/models/request_models"
	"pawtrip/internal/models/response_models"
	"pawtrip/internal/repositories"
	"pawtrip/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtManager  *utils.JWTManager
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtManager *utils.JWTManager, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
		log:         log.Named("account_service"),
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {

	startTime := time.Now()
	email := strings.ToLower(strings.TrimSpace(request.Email))

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("failed to look up account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtManager.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("failed to sign token", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	a.log.Debug("login completed",
		zap.String("user_id", account.ID.String()),
		zap.Duration("took", time.Since(startTime)))

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		HasPet:    account.Pet != nil,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("failed to look up account", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.log.Error("failed to create account", zap.Error(err))
		return utils.ErrDatabaseError
	}

	a.log.Info("account created", zap.String("user_id", newAccount.ID.String()))
	return nil
}
