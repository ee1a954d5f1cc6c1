package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pawtrip/internal/repositories"
	"pawtrip/internal/services"
	"pawtrip/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, jwtManager *utils.JWTManager, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtManager, log)
}
